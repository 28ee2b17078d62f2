package taskstore

import (
	"time"

	"taskboard/internal/model"
)

// CreateTaskOptions holds the parameters for creating a task in the store.
type CreateTaskOptions struct {
	Title       string
	Description string
	AssigneeID  *string
	ProjectID   *string
	DueAt       *time.Time
	Priority    int
	Status      model.TaskStatus
	Source      string // e.g. "chat", "email"
}

// ListTasksOptions holds the parameters for listing tasks.
type ListTasksOptions struct {
	ProjectID  string
	AssigneeID string
	Status     string
	Limit      int // default 20
	Offset     int
}

// FromParsedTask builds create options from one extraction proposal.
func FromParsedTask(t model.ParsedTask, source string) CreateTaskOptions {
	return CreateTaskOptions{
		Title:      t.Title,
		AssigneeID: t.AssigneeID,
		ProjectID:  t.ProjectID,
		DueAt:      t.DueAt,
		Priority:   t.Priority,
		Status:     t.Status,
		Source:     source,
	}
}
