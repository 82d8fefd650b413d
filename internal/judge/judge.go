// Package judge talks to the remote judging service that compiles and runs
// submitted source code in an isolated environment.
package judge

import "context"

// Submission is a single synchronous execution request.
type Submission struct {
	LanguageID int    `json:"language_id"`
	SourceCode string `json:"source_code"`
	Stdin      string `json:"stdin"`
}

// Status is the judge's terminal status for a submission.
type Status struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
}

// Result is the judge's response to a completed submission. Stdout, Stderr
// and CompileOutput are pointers because the judge reports absent channels
// as JSON null.
type Result struct {
	Status        Status  `json:"status"`
	Stdout        *string `json:"stdout"`
	Stderr        *string `json:"stderr"`
	CompileOutput *string `json:"compile_output"`
}

// Verdict is a tagged classification of the judge's numeric status codes.
// It is constructed once at this boundary so nothing downstream branches on
// raw status integers.
type Verdict int

const (
	// VerdictAccepted means the program compiled and ran to completion.
	VerdictAccepted Verdict = iota
	// VerdictCompileError means the program failed to compile.
	VerdictCompileError
	// VerdictOtherFailure covers runtime errors, time limits and every other
	// non-accepted terminal status.
	VerdictOtherFailure
)

const (
	statusAccepted         = 3
	statusCompilationError = 6
)

// Verdict classifies the result's status code.
func (r *Result) Verdict() Verdict {
	switch r.Status.ID {
	case statusAccepted:
		return VerdictAccepted
	case statusCompilationError:
		return VerdictCompileError
	default:
		return VerdictOtherFailure
	}
}

// Client submits source code to the judge and waits for a terminal result.
type Client interface {
	Submit(ctx context.Context, sub Submission) (*Result, error)
}
