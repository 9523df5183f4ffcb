package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	rateLimitKeyPrefix = "skyrio:ratelimit:"
	rateLimitWindow    = time.Second
)

// RateLimit caps requests per client IP per second using a Redis counter
// shared by all instances. Redis failures answer 503.
func RateLimit(rdb *redis.Client, limitPerSec int, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := rateLimitKeyPrefix + c.ClientIP()
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			logger.Warn("rate limit unavailable", zap.String("request_id", GetRequestID(c)), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "service unavailable"})
			return
		}
		if count == 1 {
			rdb.Expire(ctx, key, rateLimitWindow)
		} else if ttl, _ := rdb.TTL(ctx, key).Result(); ttl < 0 {
			rdb.Expire(ctx, key, rateLimitWindow)
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(limitPerSec))
		if count > int64(limitPerSec) {
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
