package ratelimit

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/terval-edu/orienta/internal/errors"
	"github.com/terval-edu/orienta/internal/monitoring"
)

// SubmitMiddleware applies the per-IP submission limit to a route.
func SubmitMiddleware(limiter *Limiter, metrics *monitoring.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := limiter.AllowSubmit(c.Request.Context(), c.ClientIP())
		if err != nil {
			// Limiter errors never block the submission path.
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", result.Limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", result.Remaining))

		if !result.Allowed {
			metrics.IncrementRateLimitBlock()
			c.Header("Retry-After", fmt.Sprintf("%.0f", result.RetryAfter.Seconds()))
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				apperrors.NewRateLimitError("too many submissions from this address", result.RetryAfter))
			return
		}

		c.Next()
	}
}
