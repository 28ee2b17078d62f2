package extraction

import (
	"context"

	"taskboard/internal/model"
)

// UseCase defines the business logic interface for the extraction domain.
type UseCase interface {
	// ExtractTasks parses free text into 1..10 structured task proposals.
	// It never fails: any generation or validation error falls back to the
	// deterministic parser, so every input yields at least one task.
	ExtractTasks(ctx context.Context, sc model.Scope, input ExtractInput) model.ParsedTaskBatch

	// ExtractSingleTask returns the first task of ExtractTasks.
	ExtractSingleTask(ctx context.Context, sc model.Scope, input ExtractInput) model.ParsedTask

	// TriageEmail classifies one inbound email into a category, routing
	// role, task proposal, and draft reply. Unlike task extraction there is
	// no fallback: irrecoverable failures surface as *TriageError.
	TriageEmail(ctx context.Context, sc model.Scope, input TriageInput) (model.TriageResult, error)
}
