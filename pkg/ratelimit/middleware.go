package ratelimit

import (
	"fmt"
	"net/http"
	"strings"

	"flightly/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

// Middleware enforces per-IP rate limits, with the tier derived from the
// matched route.
func Middleware(rateLimiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		limitType := getRateLimitType(c.FullPath())

		result, err := rateLimiter.IsAllowed(c.Request.Context(), clientIP, limitType)
		if err != nil {
			// Rate limiting is protective, not load-bearing: if Redis is
			// down, let the request through rather than failing closed.
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", result.Limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", result.Remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", result.ResetTime))

		if !result.Allowed {
			response.RespondJSON(c, "error", http.StatusTooManyRequests,
				"Rate limit exceeded", nil, map[string]interface{}{
					"limit":      result.Limit,
					"reset_time": result.ResetTime,
				})
			c.Abort()
			return
		}

		c.Next()
	}
}

func getRateLimitType(path string) RateLimitType {
	switch {
	// Health/monitoring endpoints
	case strings.HasPrefix(path, "/health"),
		strings.HasPrefix(path, "/ping"),
		strings.HasPrefix(path, "/status"):
		return RateLimitTypeHealth

	// Ops/reporting endpoints
	case strings.Contains(path, "/reports"):
		return RateLimitTypeAdmin

	// Booking flow: creation, cancellation, slip confirmation
	case strings.Contains(path, "/reservations"):
		return RateLimitTypeBooking

	// Public browsing endpoints
	case strings.Contains(path, "/flights"),
		strings.Contains(path, "/aircraft"):
		return RateLimitTypePublic

	default:
		return RateLimitTypeDefault
	}
}
