package mock

import (
	"context"

	"github.com/Devanshk2004/CodeCraftX/internal/judge"
)

// Ensure MockClient implements judge.Client.
var _ judge.Client = (*MockClient)(nil)

// MockClient is a scripted judge client for testing.
type MockClient struct {
	// Submissions records every submission received.
	Submissions []judge.Submission

	// Result is returned when SubmitFn is nil.
	Result *judge.Result

	// SubmitFn overrides the default behavior when set.
	SubmitFn func(ctx context.Context, sub judge.Submission) (*judge.Result, error)
}

// NewMockClient creates a mock judge client that answers every submission
// with the given result.
func NewMockClient(result *judge.Result) *MockClient {
	return &MockClient{Result: result}
}

func (m *MockClient) Submit(ctx context.Context, sub judge.Submission) (*judge.Result, error) {
	m.Submissions = append(m.Submissions, sub)
	if m.SubmitFn != nil {
		return m.SubmitFn(ctx, sub)
	}
	return m.Result, nil
}
