package model

import "time"

// Task is a task record as the board store returns it. The extraction
// core never builds these itself; delivery persists ParsedTask proposals
// and gets Tasks back.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	AssigneeID  *string    `json:"assignee_id"`
	ProjectID   *string    `json:"project_id"`
	DueAt       *time.Time `json:"due_at"`
	Priority    int        `json:"priority"`
	Status      TaskStatus `json:"status"`
	Source      string     `json:"source,omitempty"`
	URL         string     `json:"url,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
