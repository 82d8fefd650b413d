package domain

// ChatRequest is an incoming assistant request. Message carries the user's
// question; Code, Language and Output give the model the state of the editor.
// There is no server-side conversation history: each call stands alone, and
// any prior context the model should see must be resent by the caller.
type ChatRequest struct {
	Message  string `json:"message"`
	Code     string `json:"code"`
	Language string `json:"language"`
	Output   string `json:"output"`
}

// ChatResponse carries the model's reply verbatim.
type ChatResponse struct {
	Text string `json:"text"`
}

// GenerateRequest is an incoming practice-problem generation request.
type GenerateRequest struct {
	Thought string `json:"thought"`
}

// GenerateResponse carries the generated problem text verbatim.
type GenerateResponse struct {
	Text string `json:"text"`
}
