package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	extractionHTTP "taskboard/internal/extraction/delivery/http"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.mw.RequestID())
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	api := srv.gin.Group("/api/v1")
	extractionHTTP.RegisterRoutes(api.Group("/extraction"), srv.extractionHandler, srv.mw)
	srv.l.Infof(ctx, "Extraction routes registered under /api/v1/extraction")

	if srv.mailHandler != nil {
		srv.gin.POST("/webhook/inbound-mail", srv.mailHandler.HandleInboundMail)
		srv.l.Infof(ctx, "Inbound mail webhook registered at POST /webhook/inbound-mail")
	} else {
		srv.l.Infof(ctx, "Inbound mail handler not configured, skipping webhook route")
	}

	return nil
}
