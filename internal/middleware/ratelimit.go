package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/akademika/student-admin/internal/response"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// RateLimiter bounds mutating requests per client IP using a fixed window
// counter in Redis, so the limit holds across replicas and restarts.
type RateLimiter struct {
	rdb    *redis.Client
	log    zerolog.Logger
	limit  int
	window time.Duration
}

// NewRateLimiter creates a RateLimiter (e.g., 30 requests per minute).
func NewRateLimiter(rdb *redis.Client, log zerolog.Logger, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{rdb: rdb, log: log, limit: limit, window: window}
}

// Middleware returns a Gin middleware that rate-limits requests by IP.
// Redis failures are logged and the request is let through; throttling is
// protective, not load-bearing.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return rl.middleware(nil)
}

// MiddlewareWithSkipper rate-limits only requests for which skip returns
// false. Used where mutating and read-only requests share a route, such as
// the action-dispatched page endpoint.
func (rl *RateLimiter) MiddlewareWithSkipper(skip func(c *gin.Context) bool) gin.HandlerFunc {
	return rl.middleware(skip)
}

func (rl *RateLimiter) middleware(skip func(c *gin.Context) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if skip != nil && skip(c) {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := fmt.Sprintf("ratelimit:%s", c.ClientIP())

		count, err := rl.rdb.Incr(ctx, key).Result()
		if err != nil {
			rl.log.Warn().Err(err).Str("key", key).Msg("Rate limit check failed, allowing request")
			c.Next()
			return
		}

		if count == 1 {
			// First hit in this window owns the expiry.
			if err := rl.rdb.Expire(ctx, key, rl.window).Err(); err != nil {
				rl.log.Warn().Err(err).Str("key", key).Msg("Rate limit expire failed")
			}
		}

		if count > int64(rl.limit) {
			response.AbortFail(c, http.StatusTooManyRequests, response.ErrRateLimitExceeded)
			return
		}

		c.Next()
	}
}
