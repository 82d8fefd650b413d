package usecase

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Devanshk2004/CodeCraftX/internal/domain"
	"github.com/Devanshk2004/CodeCraftX/internal/judge"
	"github.com/Devanshk2004/CodeCraftX/internal/metrics"
)

const maxSourceCodeSize = 1 << 20 // 1 MB

// RunCodeUsecase submits source code to the judge and collapses the judge's
// result channels into a single output string.
type RunCodeUsecase struct {
	judge  judge.Client
	logger *zap.Logger
}

// NewRunCodeUsecase creates a new RunCodeUsecase.
func NewRunCodeUsecase(judgeClient judge.Client, logger *zap.Logger) *RunCodeUsecase {
	return &RunCodeUsecase{
		judge:  judgeClient,
		logger: logger,
	}
}

// Execute validates the request, runs it on the judge and classifies the
// result. Validation failures never reach the judge.
func (uc *RunCodeUsecase) Execute(ctx context.Context, req *domain.RunRequest) (*domain.RunResponse, error) {
	languageID, ok := req.Language.JudgeID()
	if !ok {
		return nil, domain.ErrInvalidLanguage
	}

	if strings.TrimSpace(req.Code) == "" {
		return nil, domain.ErrEmptySourceCode
	}
	if len(req.Code) > maxSourceCodeSize {
		return nil, domain.ErrPayloadTooLarge
	}

	start := time.Now()
	result, err := uc.judge.Submit(ctx, judge.Submission{
		LanguageID: languageID,
		SourceCode: req.Code,
		Stdin:      req.Input,
	})
	metrics.UpstreamRequestDuration.WithLabelValues("judge0").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues("judge0", metrics.OutcomeError).Inc()
		uc.logger.Error("Judge submission failed",
			zap.Error(err),
			zap.String("language", string(req.Language)),
		)
		return nil, domain.ErrUpstreamUnavailable
	}
	metrics.UpstreamRequestsTotal.WithLabelValues("judge0", metrics.OutcomeOK).Inc()

	verdict := result.Verdict()
	metrics.ExecutionsTotal.WithLabelValues(string(req.Language), verdictLabel(verdict)).Inc()
	uc.logger.Info("Execution completed",
		zap.String("language", string(req.Language)),
		zap.Int("status_id", result.Status.ID),
		zap.String("status", result.Status.Description),
	)

	return &domain.RunResponse{Output: classify(result, verdict)}, nil
}

// classify collapses the judge's three result channels into the one output
// string the editor displays.
func classify(result *judge.Result, verdict judge.Verdict) string {
	switch verdict {
	case judge.VerdictAccepted:
		return orElse(result.Stdout, "")
	case judge.VerdictCompileError:
		return orElse(result.CompileOutput, "Compilation Error")
	default:
		return orElse(result.Stderr, result.Status.Description)
	}
}

// orElse dereferences s, substituting fallback when s is null or empty.
func orElse(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}

func verdictLabel(v judge.Verdict) string {
	switch v {
	case judge.VerdictAccepted:
		return "accepted"
	case judge.VerdictCompileError:
		return "compile_error"
	default:
		return "failure"
	}
}
