package ratelimit

import (
	"fmt"
	"net/http"

	"voice-crm/internal/observability"

	"github.com/gin-gonic/gin"
)

// Middleware limits requests per client IP. A nil Service lets every request through.
func (s *Service) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s == nil {
			c.Next()
			return
		}
		ctx := c.Request.Context()

		result := s.CheckRateLimit(ctx, observability.GetRealClientIP(c))

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", result.Limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", result.Remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", result.ResetAt.Unix()))

		if !result.Allowed {
			retryAfter := (result.RetryAfterMs + 999) / 1000
			c.Header("Retry-After", fmt.Sprintf("%d", retryAfter))
			s.logger.Warn(observability.WithFields(ctx,
				observability.Field{Key: "retry_after_ms", Value: result.RetryAfterMs},
			), "rate limit exceeded")

			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "Rate limit exceeded",
				"code":        "RATE_LIMIT_EXCEEDED",
				"limit":       result.Limit,
				"retry_after": retryAfter,
				"reset_at":    result.ResetAt.Unix(),
			})
			return
		}

		c.Next()
	}
}
