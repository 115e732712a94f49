package ratelimit

import (
	"fmt"
	"math"

	"loyalty-server/internal/apierrors"
	"loyalty-server/internal/authz"
	"loyalty-server/internal/observability"

	"github.com/gin-gonic/gin"
)

// Middleware limits each authenticated caller, or each client address before
// authentication. A Redis failure lets the request through.
func (s *Service) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s == nil {
			c.Next()
			return
		}
		ctx := c.Request.Context()

		key := "ip:" + c.ClientIP()
		if caller, ok := authz.CallerFrom(c); ok {
			key = "user:" + caller.UserID.String()
		}

		result, err := s.Check(ctx, key)
		if err != nil {
			s.logger.WarnWithError(ctx, "rate limit check failed, allowing request", err)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", result.Limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", result.Remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", result.ResetAt.Unix()))

		if !result.Allowed {
			retryAfter := int(math.Ceil(result.RetryAfter.Seconds()))
			c.Header("Retry-After", fmt.Sprintf("%d", retryAfter))
			s.logger.Warn(observability.WithFields(ctx,
				observability.Field{Key: "rate_limit_key", Value: key},
				observability.Field{Key: "limit", Value: result.Limit},
				observability.Field{Key: "retry_after_seconds", Value: retryAfter},
			), "rate limit exceeded")
			apierrors.Abort(c, apierrors.TooManyRequests("Rate limit exceeded, try again later"))
			return
		}

		c.Next()
	}
}
