package mock

import (
	"context"

	"github.com/Devanshk2004/CodeCraftX/internal/genai"
)

// Ensure MockGenerator implements genai.Generator.
var _ genai.Generator = (*MockGenerator)(nil)

// MockGenerator is a scripted text generator for testing.
type MockGenerator struct {
	// Prompts records every prompt received.
	Prompts []string

	// Reply is returned when GenerateFn is nil.
	Reply string

	// GenerateFn overrides the default behavior when set.
	GenerateFn func(ctx context.Context, prompt string) (string, error)
}

// NewMockGenerator creates a mock generator that answers every prompt with
// the given reply.
func NewMockGenerator(reply string) *MockGenerator {
	return &MockGenerator{Reply: reply}
}

func (m *MockGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	m.Prompts = append(m.Prompts, prompt)
	if m.GenerateFn != nil {
		return m.GenerateFn(ctx, prompt)
	}
	return m.Reply, nil
}
