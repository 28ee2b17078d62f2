package extraction

import (
	"errors"
	"fmt"
)

// Domain-specific errors for the extraction package. These never reach
// ExtractTasks callers (the orchestrator recovers by falling back); they
// classify the internal failure for logging and for triage, which has no
// fallback.
var (
	// ErrGenerationUnavailable covers network, timeout, and provider-side
	// failures of the text-generation call.
	ErrGenerationUnavailable = errors.New("generation service unavailable")

	// ErrMalformedResponse means no JSON object could be located in the
	// model output, or the located object did not parse.
	ErrMalformedResponse = errors.New("malformed generation response")

	// ErrValidation means the JSON parsed but required fields are missing.
	ErrValidation = errors.New("generation response failed validation")
)

// TriageError is the irrecoverable failure of the email triage pipeline.
// Callers substitute a generic acknowledgment reply when they catch it.
type TriageError struct {
	Reason string
	Err    error
}

func (e *TriageError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("triage failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("triage failed: %s", e.Reason)
}

func (e *TriageError) Unwrap() error {
	return e.Err
}
