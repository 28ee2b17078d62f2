package model

import (
	"strings"
	"time"
)

// TaskStatus is the board column a task lands in.
type TaskStatus string

const (
	StatusBacklog TaskStatus = "backlog"
	StatusDoing   TaskStatus = "doing"
	StatusWaiting TaskStatus = "waiting"
	StatusDone    TaskStatus = "done"
)

// ParseStatus maps a raw status string to a TaskStatus, defaulting to doing.
func ParseStatus(raw string) TaskStatus {
	switch TaskStatus(strings.ToLower(strings.TrimSpace(raw))) {
	case StatusBacklog:
		return StatusBacklog
	case StatusWaiting:
		return StatusWaiting
	case StatusDone:
		return StatusDone
	default:
		return StatusDoing
	}
}

// Priority bounds. 1 is urgent, 4 is low.
const (
	PriorityUrgent  = 1
	PriorityDefault = 3
	PriorityLow     = 4
)

// ClampPriority forces a priority into the 1..4 range, defaulting to 3
// for out-of-range or unset values.
func ClampPriority(p int) int {
	if p < PriorityUrgent || p > PriorityLow {
		return PriorityDefault
	}
	return p
}

// ParsedTask is a single structured task proposal produced by the
// extraction pipeline. It is a request-scoped value object: callers
// persist it into the task store, this core never does.
type ParsedTask struct {
	Title      string     `json:"title"`
	AssigneeID *string    `json:"assignee_id"`
	ProjectID  *string    `json:"project_id"`
	DueAt      *time.Time `json:"due_at"`
	Priority   int        `json:"priority"`
	Status     TaskStatus `json:"status"`
	Confidence float64    `json:"confidence"`
}

// ParsedTaskBatch is the batch output of one extraction call, 1..10 tasks.
// Batch confidence is independent of per-task confidences.
type ParsedTaskBatch struct {
	Tasks      []ParsedTask `json:"tasks"`
	Confidence float64      `json:"confidence"`
}
