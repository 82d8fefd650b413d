package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const rateKeyPrefix = "codecraftx:ratelimit:"

// RedisRateLimiter returns a middleware that enforces per-IP rate limiting
// with a fixed one-minute window shared across replicas. The counter key is
// created with an expiry on first increment; on Redis errors the request is
// allowed through rather than failing closed.
func RedisRateLimiter(client *goredis.Client, maxRequests int, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := rateKeyPrefix + c.ClientIP()
		ctx := c.Request.Context()

		count, err := client.Incr(ctx, key).Result()
		if err != nil {
			logger.Warn("Rate limiter Redis error, allowing request", zap.Error(err))
			c.Next()
			return
		}
		if count == 1 {
			if err := client.Expire(ctx, key, time.Minute).Err(); err != nil {
				logger.Warn("Rate limiter failed to set key expiry", zap.Error(err))
			}
		}

		if count > int64(maxRequests) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": fmt.Sprintf("Rate limit exceeded. Maximum %d requests per minute.", maxRequests),
			})
			return
		}

		c.Next()
	}
}
