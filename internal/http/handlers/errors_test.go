package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"skyrio/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRespondDomainError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		err    error
		status int
		code   string
		msg    string
		logged bool
	}{
		{"validation", domain.ValidationError{Field: "planned", Msg: "must not be negative"}, http.StatusBadRequest, "validation_error", "planned: must not be negative", false},
		{"not found", domain.NotFoundError{Resource: "table airports"}, http.StatusNotFound, "not_found", "table airports not found", false},
		{"internal keeps its message", domain.InternalError{Msg: "check airports table", Err: errors.New("dial tcp: refused")}, http.StatusInternalServerError, "internal_error", "check airports table", true},
		{"unknown is masked", errors.New("dial tcp 10.0.0.7:3306: refused"), http.StatusInternalServerError, "internal_error", "internal server error", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			c.Set("request_id", "req-1")

			RespondDomainError(c, tt.err)

			assert.Equal(t, tt.status, w.Code)
			assert.JSONEq(t, `{"error":"`+tt.msg+`","code":"`+tt.code+`","request_id":"req-1"}`, w.Body.String())
			assert.NotContains(t, w.Body.String(), "refused")
			assert.Equal(t, tt.logged, len(c.Errors) > 0)
		})
	}
}
