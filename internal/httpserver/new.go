package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	extractionHTTP "taskboard/internal/extraction/delivery/http"
	"taskboard/internal/middleware"
	"taskboard/pkg/log"
)

// InboundMailHandler is the inbound mail webhook boundary.
type InboundMailHandler interface {
	HandleInboundMail(c *gin.Context)
}

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	extractionHandler extractionHTTP.Handler
	mailHandler       InboundMailHandler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Middleware

	ExtractionHandler extractionHTTP.Handler
	// MailHandler is optional; nil skips the inbound-mail webhook route.
	MailHandler InboundMailHandler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                 logger,
		gin:               gin.Default(),
		port:              cfg.Port,
		mode:              cfg.Mode,
		environment:       cfg.Environment,
		mw:                cfg.Middleware,
		extractionHandler: cfg.ExtractionHandler,
		mailHandler:       cfg.MailHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.extractionHandler == nil {
		return errors.New("extraction handler is required")
	}
	return nil
}
