package middleware

import (
	pkgLog "taskboard/pkg/log"
)

type Middleware struct {
	l      pkgLog.Logger
	apiKey string
}

// New creates the shared middleware set. apiKey may be empty, which
// disables bearer auth (development mode).
func New(l pkgLog.Logger, apiKey string) Middleware {
	return Middleware{
		l:      l,
		apiKey: apiKey,
	}
}
