package utils

import (
	"strings"

	"go.uber.org/zap"
)

// NewLogger builds the process logger. Local runs get the human-readable
// development encoder, everything else JSON.
func NewLogger(local bool) (*zap.Logger, error) {
	if local {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// LogEvent writes a standardized module/action line.
// Avoid logging payloads; message should be a summary.
func LogEvent(logger *zap.Logger, requestID, module, action, message string, fields ...zap.Field) {
	if logger == nil {
		return
	}
	base := []zap.Field{
		zap.String("module", strings.ToLower(module)),
		zap.String("action", action),
		zap.String("request_id", strings.TrimSpace(requestID)),
	}
	logger.Info(message, append(base, fields...)...)
}
