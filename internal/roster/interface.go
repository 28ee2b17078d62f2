package roster

import (
	"context"

	"taskboard/internal/model"
)

// Source supplies the roster and project snapshots the extraction core
// resolves against. Read-only.
type Source interface {
	ListMembers(ctx context.Context) ([]model.TeamMember, error)
	ListProjects(ctx context.Context) ([]model.ProjectRef, error)
}
