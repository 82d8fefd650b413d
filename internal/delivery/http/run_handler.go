package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Devanshk2004/CodeCraftX/internal/domain"
	"github.com/Devanshk2004/CodeCraftX/internal/usecase"
)

// RunHandler handles HTTP requests for code execution.
type RunHandler struct {
	runUC  *usecase.RunCodeUsecase
	logger *zap.Logger
}

// NewRunHandler creates a new RunHandler.
func NewRunHandler(runUC *usecase.RunCodeUsecase, logger *zap.Logger) *RunHandler {
	return &RunHandler{
		runUC:  runUC,
		logger: logger,
	}
}

// Run handles POST /api/run
func (h *RunHandler) Run(c *gin.Context) {
	var req domain.RunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body: " + err.Error(),
		})
		return
	}

	resp, err := h.runUC.Execute(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidLanguage):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, domain.ErrEmptySourceCode):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, domain.ErrPayloadTooLarge):
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
		case errors.Is(err, domain.ErrUpstreamUnavailable):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "An unexpected error occurred."})
		default:
			h.logger.Error("Run code failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "An unexpected error occurred."})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}
