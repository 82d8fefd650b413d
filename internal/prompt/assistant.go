// Package prompt assembles the instruction blobs sent to the generative
// service. All assistant behavior rules live here, not in the model.
package prompt

import "fmt"

// noOutputPlaceholder stands in when the editor has not captured any program
// output yet.
const noOutputPlaceholder = "No output provided."

// assistantSystemPrompt establishes the assistant persona and its two hard
// rules: answer directly without greeting, and give hints only unless the
// user explicitly asks for the "Correct Solution" or "Full Solution".
const assistantSystemPrompt = `You are an expert pair programmer and a helpful coding assistant.
Your name is CodeCraftX AI.

**STYLE RULES:**
1. **BE DIRECT.** Do NOT start every message with "Hello! I'm CodeCraftX AI...". Just answer the question immediately.
2. Be concise and friendly.

**LOGIC RULES:**
1. **DEFAULT MODE:** If the user asks for help, explanation, or debugging, **ONLY give hints and high-level guidance.** Do not give the full code solution. Guide them to find the answer themselves.
2. **SOLUTION MODE:** If (and ONLY if) the user explicitly asks for the "Correct Solution" or "Full Solution", then you **MUST** provide the complete, fixed, and working code block.`

// BuildAssistant concatenates the system instruction with the editor context
// and the user's question into the single content blob the model sees. An
// empty output is replaced with a placeholder so the model never confuses
// "no run yet" with an empty-string result.
func BuildAssistant(message, code, language, output string) string {
	if output == "" {
		output = noOutputPlaceholder
	}
	return fmt.Sprintf(`%s

---
**User's Language:** %s

**User's Code:**
`+"```%s\n%s\n```"+`

**Program Output / Error Message:**
%s

**User's Question:**
%s`, assistantSystemPrompt, language, language, code, output, message)
}
