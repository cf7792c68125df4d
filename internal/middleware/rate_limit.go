package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smart-task-parser/pkg/response"
)

// RateLimit rejects requests over the configured budget with 429.
// A nil limiter passes everything through.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter != nil && !m.limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "RateLimit: rejecting %s %s", c.Request.Method, c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.Resp{
				ErrorCode: http.StatusTooManyRequests,
				Message:   "Too many requests",
			})
			return
		}
		c.Next()
	}
}
