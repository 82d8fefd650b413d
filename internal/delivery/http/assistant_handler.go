package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Devanshk2004/CodeCraftX/internal/domain"
	"github.com/Devanshk2004/CodeCraftX/internal/usecase"
)

// AssistantHandler handles HTTP requests for the AI assistant and the
// practice-problem generator.
type AssistantHandler struct {
	chatUC     *usecase.ChatUsecase
	generateUC *usecase.GenerateProblemUsecase
	logger     *zap.Logger
}

// NewAssistantHandler creates a new AssistantHandler.
func NewAssistantHandler(chatUC *usecase.ChatUsecase, generateUC *usecase.GenerateProblemUsecase, logger *zap.Logger) *AssistantHandler {
	return &AssistantHandler{
		chatUC:     chatUC,
		generateUC: generateUC,
		logger:     logger,
	}
}

// Chat handles POST /api/chat. Any failure, parse or upstream, surfaces as a
// 500 with an error string and detail; the frontend shows the strings as-is.
func (h *AssistantHandler) Chat(c *gin.Context) {
	var req domain.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "An unexpected error occurred.",
			"details": err.Error(),
		})
		return
	}

	resp, err := h.chatUC.Execute(c.Request.Context(), &req)
	if err != nil {
		h.logger.Error("Chat request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "An unexpected error occurred.",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Generate handles POST /api/generate
func (h *AssistantHandler) Generate(c *gin.Context) {
	var req domain.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to generate problem.",
			"details": err.Error(),
		})
		return
	}

	resp, err := h.generateUC.Execute(c.Request.Context(), &req)
	if err != nil {
		h.logger.Error("Generate request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to generate problem.",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}
