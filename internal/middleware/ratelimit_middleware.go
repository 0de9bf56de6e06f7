package middleware

import (
	"net/http"
	"strconv"

	"github.com/ninjaCoderr/social-app-backend/internal/redis"
	social_errors "github.com/ninjaCoderr/social-app-backend/pkg/errors"

	"github.com/gin-gonic/gin"
)

// RateLimitMiddleware limits signup/login attempts per client IP.
func RateLimitMiddleware(limiter *redis.RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()

		path := c.Request.URL.Path
		if isAuthEndpoint(path) {
			result, err := limiter.AllowAuth(c.Request.Context(), clientIP)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "rate limit error"})
				c.Abort()
				return
			}

			setRateLimitHeaders(c, result)

			if !result.Allowed {
				c.JSON(http.StatusTooManyRequests, gin.H{"error": social_errors.ErrRateLimited.Error()})
				c.Abort()
				return
			}
		}

		c.Next()
	}
}

// setRateLimitHeaders sets standard rate limit response headers
func setRateLimitHeaders(c *gin.Context, result *redis.RateLimitResult) {
	c.Header("X-RateLimit-Limit", strconv.Itoa(result.Limit))
	c.Header("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
	c.Header("X-RateLimit-Reset", strconv.FormatInt(int64(result.ResetIn.Seconds()), 10))
}

// isAuthEndpoint checks if the request path is an auth endpoint
func isAuthEndpoint(path string) bool {
	return path == "/signup" || path == "/login"
}
