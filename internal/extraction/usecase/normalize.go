package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"taskboard/internal/extraction"
	"taskboard/internal/model"
)

// rawTask is the wire shape of one task in the model output. Pointers
// distinguish absent fields from zero values.
type rawTask struct {
	Title      string   `json:"title"`
	AssigneeID *string  `json:"assignee_id"`
	ProjectID  *string  `json:"project_id"`
	DueAt      *string  `json:"due_at"`
	Priority   *int     `json:"priority"`
	Status     *string  `json:"status"`
	Confidence *float64 `json:"confidence"`
}

// rawBatch is the wire shape of the batch response.
type rawBatch struct {
	Tasks      []rawTask `json:"tasks"`
	Confidence *float64  `json:"confidence"`
}

// normalizeBatch turns raw model output into a validated ParsedTaskBatch.
// It tolerates prose and code fences around the JSON, clamps the batch to
// MaxTasksPerBatch, and accepts the legacy flat single-task shape.
func (uc *implUseCase) normalizeBatch(ctx context.Context, raw string, roster []model.TeamMember, projects []model.ProjectRef) (model.ParsedTaskBatch, error) {
	obj, err := extractJSONObject(raw)
	if err != nil {
		uc.l.Errorf(ctx, "normalizeBatch: no JSON object in model output: %q", truncate(raw, 200))
		return model.ParsedTaskBatch{}, fmt.Errorf("%w: %v", extraction.ErrMalformedResponse, err)
	}

	var batch rawBatch
	if err := json.Unmarshal([]byte(obj), &batch); err != nil {
		uc.l.Errorf(ctx, "normalizeBatch: JSON parse failed: %v raw=%q", err, truncate(obj, 200))
		return model.ParsedTaskBatch{}, fmt.Errorf("%w: %v", extraction.ErrMalformedResponse, err)
	}

	tasks := batch.Tasks
	if tasks == nil {
		// Legacy flat shape: the whole object is a single task.
		var single rawTask
		if err := json.Unmarshal([]byte(obj), &single); err != nil {
			return model.ParsedTaskBatch{}, fmt.Errorf("%w: %v", extraction.ErrMalformedResponse, err)
		}
		tasks = []rawTask{single}
	}

	if len(tasks) == 0 {
		return model.ParsedTaskBatch{}, fmt.Errorf("%w: empty tasks array", extraction.ErrValidation)
	}
	if len(tasks) > MaxTasksPerBatch {
		tasks = tasks[:MaxTasksPerBatch]
	}

	out := make([]model.ParsedTask, 0, len(tasks))
	for i, t := range tasks {
		if strings.TrimSpace(t.Title) == "" {
			return model.ParsedTaskBatch{}, fmt.Errorf("%w: task %d has no title", extraction.ErrValidation, i)
		}
		out = append(out, normalizeTask(t, roster, projects))
	}

	return model.ParsedTaskBatch{
		Tasks:      out,
		Confidence: batchConfidence(batch, tasks),
	}, nil
}

// batchConfidence prefers the explicit batch-level field, then the first
// task's, then the default.
func batchConfidence(batch rawBatch, tasks []rawTask) float64 {
	if batch.Confidence != nil {
		return clampConfidence(*batch.Confidence)
	}
	if len(tasks) > 0 && tasks[0].Confidence != nil {
		return clampConfidence(*tasks[0].Confidence)
	}
	return DefaultConfidence
}

// normalizeTask applies defaults, clamps ranges, and enforces reference
// integrity: assignee_id and project_id survive only when they name an
// entry of the input snapshot.
func normalizeTask(t rawTask, roster []model.TeamMember, projects []model.ProjectRef) model.ParsedTask {
	out := model.ParsedTask{
		Title:      strings.TrimSpace(t.Title),
		Priority:   model.PriorityDefault,
		Status:     model.StatusDoing,
		Confidence: DefaultConfidence,
	}

	if t.Priority != nil {
		out.Priority = model.ClampPriority(*t.Priority)
	}
	if t.Status != nil {
		out.Status = model.ParseStatus(*t.Status)
	}
	if t.Confidence != nil {
		out.Confidence = clampConfidence(*t.Confidence)
	}

	if t.AssigneeID != nil {
		for _, m := range roster {
			if m.ID == *t.AssigneeID {
				out.AssigneeID = t.AssigneeID
				break
			}
		}
	}
	if t.ProjectID != nil {
		for _, p := range projects {
			if p.ID == *t.ProjectID {
				out.ProjectID = t.ProjectID
				break
			}
		}
	}

	if t.DueAt != nil {
		if due, err := time.Parse(time.RFC3339, *t.DueAt); err == nil {
			out.DueAt = &due
		}
	}

	return out
}

// extractJSONObject returns the first balanced {...} object in text.
// Braces inside JSON strings do not count toward the balance, so titles
// like "fix the {} bug" cannot derail the scan.
func extractJSONObject(text string) (string, error) {
	start := strings.IndexByte(text, '{')
	if start == -1 {
		return "", fmt.Errorf("no JSON object found")
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(text); i++ {
		c := text[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], nil
			}
		}
	}

	return "", fmt.Errorf("unbalanced JSON object")
}

func clampConfidence(c float64) float64 {
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
