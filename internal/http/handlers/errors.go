package handlers

import (
	"net/http"

	"skyrio/internal/domain"
	"skyrio/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// ErrorResponse standardizes error payloads.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// RespondError sends the standard error payload with request_id included.
func RespondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, ErrorResponse{
		Error:     message,
		Code:      code,
		RequestID: middleware.GetRequestID(c),
	})
}

// RespondDomainError maps domain errors to HTTP responses. InternalError
// messages are written by this codebase and safe to show; the wrapped cause
// is only attached to the gin context for the access log.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		RespondError(c, http.StatusBadRequest, "validation_error", err.Error())
	case domain.IsNotFound(err):
		RespondError(c, http.StatusNotFound, "not_found", err.Error())
	case domain.IsInternal(err):
		_ = c.Error(err)
		RespondError(c, http.StatusInternalServerError, "internal_error", err.Error())
	default:
		_ = c.Error(err)
		RespondError(c, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
