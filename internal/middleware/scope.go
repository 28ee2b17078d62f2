package middleware

import (
	"github.com/gin-gonic/gin"

	"taskboard/internal/model"
)

const (
	scopeContextKey = "taskboard.scope"

	// HeaderUserID and HeaderUsername identify the requesting user. They
	// are set by the board frontend or the API gateway in front of us.
	HeaderUserID   = "X-User-ID"
	HeaderUsername = "X-Username"
)

// Scope reads the caller identity headers into the request context so
// handlers can attribute extraction requests to a user.
func (mw Middleware) Scope() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(scopeContextKey, model.Scope{
			UserID:   c.GetHeader(HeaderUserID),
			Username: c.GetHeader(HeaderUsername),
		})
		c.Next()
	}
}

// ScopeFromContext returns the scope set by Scope(), or a zero scope when
// the middleware did not run.
func ScopeFromContext(c *gin.Context) model.Scope {
	if v, ok := c.Get(scopeContextKey); ok {
		if sc, ok := v.(model.Scope); ok {
			return sc
		}
	}
	return model.Scope{}
}
