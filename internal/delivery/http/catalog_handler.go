package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Devanshk2004/CodeCraftX/internal/catalog"
)

// CatalogHandler serves the static learning-content catalog.
type CatalogHandler struct{}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// ListTopics handles GET /api/topics
func (h *CatalogHandler) ListTopics(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"topics": catalog.Topics(),
	})
}

// GetTopic handles GET /api/topics/:id
func (h *CatalogHandler) GetTopic(c *gin.Context) {
	topic, ok := catalog.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Topic not found"})
		return
	}
	c.JSON(http.StatusOK, topic)
}

// GetLesson handles GET /api/topics/:id/lessons/:num where :num is the
// 1-based position of the subtopic within the topic.
func (h *CatalogHandler) GetLesson(c *gin.Context) {
	topicID := c.Param("id")
	num, err := strconv.Atoi(c.Param("num"))
	if err != nil || num < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lesson number"})
		return
	}

	lesson, ok := catalog.GetLesson(topicID, num)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lesson not found"})
		return
	}
	c.JSON(http.StatusOK, lesson)
}
