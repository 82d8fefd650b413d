// Package genai talks to the remote generative-language service that backs
// the AI assistant and the practice-problem generator.
package genai

import "context"

// Generator produces text from a single prompt blob. There is no structured
// message list: callers fold any context they want the model to see into the
// one prompt string.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}
