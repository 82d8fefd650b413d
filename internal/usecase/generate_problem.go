package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Devanshk2004/CodeCraftX/internal/domain"
	"github.com/Devanshk2004/CodeCraftX/internal/genai"
	"github.com/Devanshk2004/CodeCraftX/internal/metrics"
	"github.com/Devanshk2004/CodeCraftX/internal/prompt"
)

// GenerateProblemUsecase turns a rough idea into a formatted practice
// problem via the generative service.
type GenerateProblemUsecase struct {
	gen    genai.Generator
	logger *zap.Logger
}

// NewGenerateProblemUsecase creates a new GenerateProblemUsecase.
func NewGenerateProblemUsecase(gen genai.Generator, logger *zap.Logger) *GenerateProblemUsecase {
	return &GenerateProblemUsecase{
		gen:    gen,
		logger: logger,
	}
}

// Execute wraps the idea in the problem-generation instruction and returns
// the generated problem text verbatim.
func (uc *GenerateProblemUsecase) Execute(ctx context.Context, req *domain.GenerateRequest) (*domain.GenerateResponse, error) {
	fullPrompt := prompt.BuildGenerator(req.Thought)

	start := time.Now()
	text, err := uc.gen.GenerateContent(ctx, fullPrompt)
	metrics.UpstreamRequestDuration.WithLabelValues("gemini").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues("gemini", metrics.OutcomeError).Inc()
		uc.logger.Error("Problem generation failed", zap.Error(err))
		return nil, err
	}
	metrics.UpstreamRequestsTotal.WithLabelValues("gemini", metrics.OutcomeOK).Inc()

	return &domain.GenerateResponse{Text: text}, nil
}
