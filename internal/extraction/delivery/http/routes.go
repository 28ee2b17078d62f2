package http

import (
	"github.com/gin-gonic/gin"

	"taskboard/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/tasks", mw.Auth(), mw.Scope(), h.Extract)
	rg.POST("/task", mw.Auth(), mw.Scope(), h.ExtractSingle)
	rg.POST("/triage", mw.Auth(), mw.Scope(), h.Triage)
}
