package handlers

import (
	"net/http"

	"skyrio/internal/http/middleware"
	"skyrio/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/airports?q=
func SearchAirports(svc services.AirportService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, svc.Search(middleware.GetRequestID(c), c.Query("q")))
	}
}
