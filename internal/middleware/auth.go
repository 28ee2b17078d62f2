package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gin-gonic/gin"

	"taskboard/pkg/response"
)

// Auth validates the bearer token against the configured API key. When no
// key is configured all requests pass (development mode).
func (mw Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if mw.apiKey == "" {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		if subtle.ConstantTimeCompare([]byte(token), []byte(mw.apiKey)) != 1 {
			mw.l.Warnf(c.Request.Context(), "auth: invalid API key from %s", c.ClientIP())
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
