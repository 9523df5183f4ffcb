package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Recovery turns a panic into a 500 without leaking the stack to the client.
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return RecoveryWith(logger, func(c *gin.Context) any {
		return gin.H{
			"error":      "internal server error",
			"request_id": GetRequestID(c),
		}
	})
}

// RecoveryWith is Recovery with a caller-chosen 500 body, for route groups
// whose clients expect their own error shape.
func RecoveryWith(logger *zap.Logger, body func(c *gin.Context) any) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("panic recovered",
					zap.String("request_id", GetRequestID(c)),
					zap.String("path", c.Request.URL.Path),
					zap.Any("panic", rec),
					zap.Stack("stack"),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, body(c))
			}
		}()
		c.Next()
	}
}
