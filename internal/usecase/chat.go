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

// ChatUsecase assembles the assistant prompt from the editor context and
// forwards it to the generative service.
type ChatUsecase struct {
	gen    genai.Generator
	logger *zap.Logger
}

// NewChatUsecase creates a new ChatUsecase.
func NewChatUsecase(gen genai.Generator, logger *zap.Logger) *ChatUsecase {
	return &ChatUsecase{
		gen:    gen,
		logger: logger,
	}
}

// Execute builds the single prompt blob and returns the model's reply
// verbatim. No history is kept between calls.
func (uc *ChatUsecase) Execute(ctx context.Context, req *domain.ChatRequest) (*domain.ChatResponse, error) {
	fullPrompt := prompt.BuildAssistant(req.Message, req.Code, req.Language, req.Output)

	start := time.Now()
	text, err := uc.gen.GenerateContent(ctx, fullPrompt)
	metrics.UpstreamRequestDuration.WithLabelValues("gemini").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues("gemini", metrics.OutcomeError).Inc()
		uc.logger.Error("Assistant generation failed", zap.Error(err))
		return nil, err
	}
	metrics.UpstreamRequestsTotal.WithLabelValues("gemini", metrics.OutcomeOK).Inc()

	return &domain.ChatResponse{Text: text}, nil
}
