package http

import (
	"github.com/gin-gonic/gin"

	"taskboard/config"
	"taskboard/internal/extraction"
	"taskboard/internal/notify"
	"taskboard/internal/roster"
	"taskboard/internal/taskstore"
	pkgLog "taskboard/pkg/log"
)

// Handler is the public interface for the extraction HTTP delivery layer.
type Handler interface {
	Extract(c *gin.Context)
	ExtractSingle(c *gin.Context)
	Triage(c *gin.Context)
}

type handler struct {
	l         pkgLog.Logger
	uc        extraction.UseCase
	rosterSrc roster.Source
	store     taskstore.Repository
	notifier  notify.Dispatcher
	policy    config.ExtractionConfig
}

// New creates the HTTP handler for the extraction domain. store and
// notifier may be nil; extraction then always behaves as a dry run.
func New(
	l pkgLog.Logger,
	uc extraction.UseCase,
	rosterSrc roster.Source,
	store taskstore.Repository,
	notifier notify.Dispatcher,
	policy config.ExtractionConfig,
) *handler {
	return &handler{
		l:         l,
		uc:        uc,
		rosterSrc: rosterSrc,
		store:     store,
		notifier:  notifier,
		policy:    policy,
	}
}
