package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/kim0hyeon/CRUDBoard/internal/response"
)

// RateLimit limits each client IP to maxRequests per window using a fixed
// Redis counter. A nil client disables limiting, so tests and local runs
// work without Redis.
func RateLimit(client *redis.Client, maxRequests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if client == nil {
			c.Next()
			return
		}

		key := "ratelimit:" + c.ClientIP()
		ctx := c.Request.Context()

		count, err := client.Incr(ctx, key).Result()
		if err != nil {
			// Redis being down must not take the API with it
			c.Next()
			return
		}
		if count == 1 {
			client.Expire(ctx, key, window)
		}

		if count > int64(maxRequests) {
			response.SendError(c, http.StatusTooManyRequests, response.ErrCodeTooManyRequests, "Too many requests")
			c.Abort()
			return
		}

		c.Next()
	}
}
