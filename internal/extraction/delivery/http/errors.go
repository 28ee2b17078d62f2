package http

import (
	"errors"

	"taskboard/internal/extraction"
)

var errTriageUnavailable = errors.New("email triage is unavailable right now, please try again later")

// mapError translates use-case errors into user-facing ones. Triage
// details stay in the logs; callers only learn the pipeline is down.
func (h *handler) mapError(err error) error {
	var terr *extraction.TriageError
	if errors.As(err, &terr) {
		return errTriageUnavailable
	}
	return err
}
