package mailgw

import (
	"context"

	"taskboard/internal/extraction"
	"taskboard/internal/notify"
	"taskboard/internal/roster"
	"taskboard/internal/taskstore"
	pkgLog "taskboard/pkg/log"
	"taskboard/pkg/mailer"
)

// Sender is the outbound mail boundary. *mailer.Client satisfies it.
type Sender interface {
	Send(ctx context.Context, req mailer.SendRequest) (*mailer.Message, error)
}

type Handler struct {
	extractionUC extraction.UseCase
	rosterSrc    roster.Source
	store        taskstore.Repository
	mail         Sender
	notifier     notify.Dispatcher
	security     *SecurityValidator
	l            pkgLog.Logger
}

// NewHandler wires the inbound-mail gateway. mail may be nil when
// outbound replies are disabled; the gateway then only creates tasks.
func NewHandler(
	extractionUC extraction.UseCase,
	rosterSrc roster.Source,
	store taskstore.Repository,
	mail Sender,
	notifier notify.Dispatcher,
	securityConfig SecurityConfig,
	l pkgLog.Logger,
) *Handler {
	return &Handler{
		extractionUC: extractionUC,
		rosterSrc:    rosterSrc,
		store:        store,
		mail:         mail,
		notifier:     notifier,
		security:     NewSecurityValidator(securityConfig),
		l:            l,
	}
}
