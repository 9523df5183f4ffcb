package handlers

import (
	"encoding/json"
	"net/http"

	"skyrio/internal/domain"
	"skyrio/internal/domain/models"
	"skyrio/internal/http/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const atlasServerError = "Atlas server error"

// ChatResponder produces the Atlas reply for a raw messages field.
type ChatResponder interface {
	Respond(requestID string, messages json.RawMessage) (models.ChatReply, error)
}

// AtlasRecovery answers panics under /api/ai with the Atlas error body.
func AtlasRecovery(logger *zap.Logger) gin.HandlerFunc {
	return middleware.RecoveryWith(logger, func(*gin.Context) any {
		return gin.H{"error": atlasServerError}
	})
}

// POST /api/ai/chat
func AtlasChat(svc ChatResponder, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ChatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "messages required"})
			return
		}

		reqID := middleware.GetRequestID(c)
		reply, err := svc.Respond(reqID, req.Messages)
		if err != nil {
			if domain.IsValidation(err) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			logger.Error("atlas chat failed", zap.String("request_id", reqID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": atlasServerError})
			return
		}
		c.JSON(http.StatusOK, reply)
	}
}
