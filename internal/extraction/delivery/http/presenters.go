package http

import (
	"time"

	"taskboard/internal/extraction"
	"taskboard/internal/model"
)

// --- Request DTOs ---

type extractReq struct {
	Text string `json:"text" binding:"required,min=1,max=10000"`
	// DryRun skips task creation and returns proposals only.
	DryRun bool `json:"dry_run"`
}

func (r extractReq) validate() error { return nil }

func (r extractReq) toInput(members []model.TeamMember, projects []model.ProjectRef) extraction.ExtractInput {
	return extraction.ExtractInput{
		Text:     r.Text,
		Roster:   members,
		Projects: projects,
	}
}

// ---

type triageReq struct {
	FromEmail       string   `json:"from_email" binding:"required,email"`
	FromName        string   `json:"from_name"`
	Subject         string   `json:"subject"`
	Body            string   `json:"body" binding:"required"`
	ProjectID       string   `json:"project_id"`
	ProjectName     string   `json:"project_name"`
	AttachmentNames []string `json:"attachment_names"`
}

func (r triageReq) validate() error { return nil }

func (r triageReq) toInput(members []model.TeamMember) extraction.TriageInput {
	return extraction.TriageInput{
		Email: model.InboundEmail{
			FromEmail:       r.FromEmail,
			FromName:        r.FromName,
			Subject:         r.Subject,
			Body:            r.Body,
			ProjectID:       r.ProjectID,
			ProjectName:     r.ProjectName,
			AttachmentNames: r.AttachmentNames,
		},
		Roster:         members,
		ProjectContext: r.ProjectName,
	}
}

// --- Response DTOs ---

type parsedTaskResp struct {
	Title      string     `json:"title"`
	AssigneeID *string    `json:"assignee_id"`
	ProjectID  *string    `json:"project_id"`
	DueAt      *time.Time `json:"due_at"`
	Priority   int        `json:"priority"`
	Status     string     `json:"status"`
	Confidence float64    `json:"confidence"`
}

func newParsedTaskResp(t model.ParsedTask) parsedTaskResp {
	return parsedTaskResp{
		Title:      t.Title,
		AssigneeID: t.AssigneeID,
		ProjectID:  t.ProjectID,
		DueAt:      t.DueAt,
		Priority:   t.Priority,
		Status:     string(t.Status),
		Confidence: t.Confidence,
	}
}

type createdTaskResp struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url,omitempty"`
}

func newCreatedTaskResp(t model.Task) createdTaskResp {
	return createdTaskResp{
		ID:    t.ID,
		Title: t.Title,
		URL:   t.URL,
	}
}

type extractResp struct {
	Tasks      []parsedTaskResp  `json:"tasks"`
	Confidence float64           `json:"confidence"`
	Created    []createdTaskResp `json:"created,omitempty"`
}

func (h *handler) newExtractResp(batch model.ParsedTaskBatch, created []model.Task) extractResp {
	tasks := make([]parsedTaskResp, len(batch.Tasks))
	for i, t := range batch.Tasks {
		tasks[i] = newParsedTaskResp(t)
	}
	resp := extractResp{
		Tasks:      tasks,
		Confidence: batch.Confidence,
	}
	for _, t := range created {
		resp.Created = append(resp.Created, newCreatedTaskResp(t))
	}
	return resp
}

type extractSingleResp struct {
	Task    parsedTaskResp   `json:"task"`
	Created *createdTaskResp `json:"created,omitempty"`
}

func (h *handler) newExtractSingleResp(task model.ParsedTask, created *model.Task) extractSingleResp {
	resp := extractSingleResp{Task: newParsedTaskResp(task)}
	if created != nil {
		c := newCreatedTaskResp(*created)
		resp.Created = &c
	}
	return resp
}

type taskSectionResp struct {
	Heading string `json:"heading"`
	Content string `json:"content"`
}

type triageResp struct {
	Category     string            `json:"category"`
	AssigneeRole string            `json:"assignee_role"`
	AssigneeID   *string           `json:"assignee_id"`
	TaskTitle    string            `json:"task_title"`
	TaskPriority int               `json:"task_priority"`
	TaskSections []taskSectionResp `json:"task_sections"`
	DraftReply   string            `json:"draft_reply"`
	Reasoning    string            `json:"reasoning"`
	Confidence   float64           `json:"confidence"`
}

func (h *handler) newTriageResp(result model.TriageResult, members []model.TeamMember) triageResp {
	var assigneeID *string
	if assignee := extraction.ResolveAssignee(members, result.AssigneeRole); assignee != nil {
		assigneeID = &assignee.ID
	}

	sections := make([]taskSectionResp, len(result.TaskSections))
	for i, s := range result.TaskSections {
		sections[i] = taskSectionResp{Heading: s.Heading, Content: s.Content}
	}

	return triageResp{
		Category:     string(result.Category),
		AssigneeRole: string(result.AssigneeRole),
		AssigneeID:   assigneeID,
		TaskTitle:    result.TaskTitle,
		TaskPriority: result.TaskPriority,
		TaskSections: sections,
		DraftReply:   result.DraftReply,
		Reasoning:    result.Reasoning,
		Confidence:   result.Confidence,
	}
}
