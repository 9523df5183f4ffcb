package handlers

import (
	"net/http"

	"skyrio/internal/domain/models"
	"skyrio/internal/services"

	"github.com/gin-gonic/gin"
)

// POST /api/budget/pace
func PaceBudget(svc services.BudgetService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in models.BudgetInput
		if err := c.ShouldBindJSON(&in); err != nil {
			RespondError(c, http.StatusBadRequest, "invalid_payload", "invalid payload")
			return
		}

		out, err := svc.Pace(in)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}
