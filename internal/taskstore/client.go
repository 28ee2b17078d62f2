package taskstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"taskboard/internal/model"
	pkgLog "taskboard/pkg/log"
)

// Client is the HTTP wrapper for the TaskBoard store REST API. It
// implements Repository.
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
	l           pkgLog.Logger
}

// NewClient creates a new task-store HTTP client.
func NewClient(baseURL, accessToken string, l pkgLog.Logger) *Client {
	return &Client{
		baseURL:     baseURL,
		accessToken: accessToken,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		l:           l,
	}
}

// createTaskRequest is the body for POST /api/v1/tasks.
type createTaskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	AssigneeID  *string    `json:"assignee_id,omitempty"`
	ProjectID   *string    `json:"project_id,omitempty"`
	DueAt       *time.Time `json:"due_at,omitempty"`
	Priority    int        `json:"priority"`
	Status      string     `json:"status"`
	Source      string     `json:"source,omitempty"`
}

// CreateTask creates one task via POST /api/v1/tasks.
func (c *Client) CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error) {
	status := opt.Status
	if status == "" {
		status = model.StatusDoing
	}
	priority := model.ClampPriority(opt.Priority)

	req := createTaskRequest{
		Title:       opt.Title,
		Description: opt.Description,
		AssigneeID:  opt.AssigneeID,
		ProjectID:   opt.ProjectID,
		DueAt:       opt.DueAt,
		Priority:    priority,
		Status:      string(status),
		Source:      opt.Source,
	}

	var task model.Task
	if err := c.do(ctx, http.MethodPost, "/api/v1/tasks", req, &task); err != nil {
		return model.Task{}, err
	}
	return task, nil
}

// CreateTasksBatch creates tasks one by one with partial success: a
// failed item is logged and skipped, the rest still land.
func (c *Client) CreateTasksBatch(ctx context.Context, opts []CreateTaskOptions) ([]model.Task, error) {
	tasks := make([]model.Task, 0, len(opts))
	for i, opt := range opts {
		t, err := c.CreateTask(ctx, opt)
		if err != nil {
			c.l.Errorf(ctx, "taskstore: batch item %d (%q) failed: %v", i, opt.Title, err)
			continue
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// GetTask fetches a single task by its ID.
func (c *Client) GetTask(ctx context.Context, id string) (model.Task, error) {
	var task model.Task
	if err := c.do(ctx, http.MethodGet, "/api/v1/tasks/"+url.PathEscape(id), nil, &task); err != nil {
		return model.Task{}, err
	}
	return task, nil
}

// ListTasks lists tasks with optional filters.
func (c *Client) ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error) {
	limit := opt.Limit
	if limit == 0 {
		limit = 20
	}

	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	if opt.Offset > 0 {
		q.Set("offset", strconv.Itoa(opt.Offset))
	}
	if opt.ProjectID != "" {
		q.Set("project_id", opt.ProjectID)
	}
	if opt.AssigneeID != "" {
		q.Set("assignee_id", opt.AssigneeID)
	}
	if opt.Status != "" {
		q.Set("status", opt.Status)
	}

	var listResp struct {
		Tasks []model.Task `json:"tasks"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/tasks?"+q.Encode(), nil, &listResp); err != nil {
		return nil, err
	}
	return listResp.Tasks, nil
}

// do runs one authenticated JSON round trip against the store API.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal taskstore request: %w", err)
		}
		reader = bytes.NewBuffer(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build taskstore request: %w", err)
	}
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.accessToken))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call taskstore API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("taskstore API error %d: %s", resp.StatusCode, string(raw))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode taskstore response: %w", err)
		}
	}
	return nil
}
