package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Skyrio Atlas running"})
}

// Routes lists every route mounted on r.
func Routes(r *gin.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		routes := r.Routes()
		out := make([]gin.H, 0, len(routes))
		for _, rt := range routes {
			out = append(out, gin.H{"method": rt.Method, "path": rt.Path})
		}
		c.JSON(http.StatusOK, gin.H{"routes": out})
	}
}

func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"error":  "route not found",
		"path":   c.Request.URL.Path,
		"method": c.Request.Method,
	})
}
