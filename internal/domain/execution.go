package domain

// Language represents a supported programming language.
type Language string

const (
	LangPython Language = "python"
	LangCpp    Language = "cpp"
)

// judgeLanguageIDs maps each supported language to the numeric language ID
// understood by the remote judge. This mapping is the only piece of judge
// domain knowledge owned by this service; SupportedLanguages and the
// exhaustiveness test in execution_test.go must be kept in sync with it.
var judgeLanguageIDs = map[Language]int{
	LangPython: 71,
	LangCpp:    54,
}

// IsValid checks if the language is supported.
func (l Language) IsValid() bool {
	_, ok := judgeLanguageIDs[l]
	return ok
}

// JudgeID returns the remote judge's numeric language ID.
// The boolean is false for unsupported languages.
func (l Language) JudgeID() (int, bool) {
	id, ok := judgeLanguageIDs[l]
	return id, ok
}

// SupportedLanguages lists every recognized language.
func SupportedLanguages() []Language {
	return []Language{LangPython, LangCpp}
}

// RunRequest is an incoming code-execution request.
type RunRequest struct {
	Language Language `json:"language"`
	Code     string   `json:"code"`
	Input    string   `json:"input"`
}

// RunResponse carries the single result string of an execution. Standard
// output, compiler diagnostics and runtime errors all collapse into the one
// Output field.
type RunResponse struct {
	Output string `json:"output"`
}

// LanguageInfo describes a supported language for the editor's selector.
type LanguageInfo struct {
	Name     Language `json:"name"`
	Version  string   `json:"version"`
	Compiler string   `json:"compiler,omitempty"`
}
