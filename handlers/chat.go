// File: handlers/chat.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/mmh06md-hub/Dental-Clinic-V2/models"
	"github.com/mmh06md-hub/Dental-Clinic-V2/services/chatbot"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler exposes the booking chatbot endpoint.
type ChatHandler struct {
	Engine *chatbot.Engine
}

// ChatHandlerFunc handles POST /api/chat. An empty sessionId starts a new
// conversation; the response carries the id to use for following turns.
func (h *ChatHandler) ChatHandlerFunc(c *gin.Context) {
	logger := getLogger(c)

	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid chat payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.Engine.Advance(c.Request.Context(), req.SessionID, req.Message)
	if err != nil {
		if errors.Is(err, chatbot.ErrStorageUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Chat service temporarily unavailable"})
			return
		}
		logger.Error("Chat turn failed", zap.String("sessionId", req.SessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}
