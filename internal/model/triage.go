package model

import "strings"

// EmailCategory classifies an inbound email for triage routing.
type EmailCategory string

const (
	CategoryDesign      EmailCategory = "design"
	CategoryStrategy    EmailCategory = "strategy"
	CategoryDevelopment EmailCategory = "development"
	CategoryPM          EmailCategory = "pm"
	CategoryGeneral     EmailCategory = "general"
)

// ParseEmailCategory maps a raw category string, defaulting to general.
func ParseEmailCategory(raw string) EmailCategory {
	switch EmailCategory(strings.ToLower(strings.TrimSpace(raw))) {
	case CategoryDesign:
		return CategoryDesign
	case CategoryStrategy:
		return CategoryStrategy
	case CategoryDevelopment:
		return CategoryDevelopment
	case CategoryPM:
		return CategoryPM
	default:
		return CategoryGeneral
	}
}

// TaskSection is one heading/content pair of a triage task body.
type TaskSection struct {
	Heading string `json:"heading"`
	Content string `json:"content"`
}

// TriageResult is the single-object output of the email triage pipeline.
// AssigneeRole names a routing role, not a member id: callers resolve it
// against the roster, with PM as the universal fallback.
type TriageResult struct {
	Category     EmailCategory `json:"category"`
	AssigneeRole Role          `json:"assignee_role"`
	TaskTitle    string        `json:"task_title"`
	TaskPriority int           `json:"task_priority"`
	TaskSections []TaskSection `json:"task_sections"`
	DraftReply   string        `json:"draft_reply"`
	Reasoning    string        `json:"reasoning"`
	Confidence   float64       `json:"confidence"`
}

// InboundEmail is the email payload handed to triage by the mail gateway.
type InboundEmail struct {
	FromEmail       string   `json:"from_email"`
	FromName        string   `json:"from_name"`
	Subject         string   `json:"subject"`
	Body            string   `json:"body"`
	ProjectID       string   `json:"project_id,omitempty"`
	ProjectName     string   `json:"project_name,omitempty"`
	AttachmentNames []string `json:"attachment_names,omitempty"`
}
