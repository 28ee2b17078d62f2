package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"taskboard/internal/extraction"
	"taskboard/internal/model"
)

func TestNormalizeBatchHappyPath(t *testing.T) {
	uc := newTestUseCase(nil)

	raw := `{
		"tasks": [
			{"title": "Fix login bug", "assignee_id": "m-1", "project_id": "p-2", "due_at": "2026-08-27T17:00:00Z", "priority": 2, "status": "backlog", "confidence": 0.9}
		],
		"confidence": 0.85
	}`

	batch, err := uc.normalizeBatch(context.Background(), raw, testRoster, testProjects)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(batch.Tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(batch.Tasks))
	}
	if batch.Confidence != 0.85 {
		t.Errorf("batch confidence = %v, want 0.85", batch.Confidence)
	}

	task := batch.Tasks[0]
	if task.Title != "Fix login bug" {
		t.Errorf("title = %q", task.Title)
	}
	if task.AssigneeID == nil || *task.AssigneeID != "m-1" {
		t.Errorf("assignee_id = %v, want m-1", task.AssigneeID)
	}
	if task.ProjectID == nil || *task.ProjectID != "p-2" {
		t.Errorf("project_id = %v, want p-2", task.ProjectID)
	}
	if task.DueAt == nil {
		t.Error("expected due_at")
	}
	if task.Priority != 2 {
		t.Errorf("priority = %d, want 2", task.Priority)
	}
	if task.Status != model.StatusBacklog {
		t.Errorf("status = %q, want backlog", task.Status)
	}
}

func TestNormalizeBatchToleratesProseAndFences(t *testing.T) {
	uc := newTestUseCase(nil)

	raw := "Sure! Here is the extraction result:\n```json\n" +
		`{"tasks": [{"title": "Write docs"}], "confidence": 0.7}` +
		"\n```\nLet me know if you need anything else."

	batch, err := uc.normalizeBatch(context.Background(), raw, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if batch.Tasks[0].Title != "Write docs" {
		t.Errorf("title = %q", batch.Tasks[0].Title)
	}
	if batch.Confidence != 0.7 {
		t.Errorf("confidence = %v, want 0.7", batch.Confidence)
	}
}

func TestNormalizeBatchClampsToTen(t *testing.T) {
	uc := newTestUseCase(nil)

	var tasks []string
	for i := 0; i < 15; i++ {
		tasks = append(tasks, fmt.Sprintf(`{"title": "task %d"}`, i))
	}
	raw := `{"tasks": [` + strings.Join(tasks, ",") + `]}`

	batch, err := uc.normalizeBatch(context.Background(), raw, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(batch.Tasks) != MaxTasksPerBatch {
		t.Errorf("expected clamp to %d tasks, got %d", MaxTasksPerBatch, len(batch.Tasks))
	}
}

func TestNormalizeBatchLegacyFlatShape(t *testing.T) {
	uc := newTestUseCase(nil)

	raw := `{"title": "Single legacy task", "priority": 1}`

	batch, err := uc.normalizeBatch(context.Background(), raw, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(batch.Tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(batch.Tasks))
	}
	if batch.Tasks[0].Title != "Single legacy task" {
		t.Errorf("title = %q", batch.Tasks[0].Title)
	}
	if batch.Tasks[0].Priority != 1 {
		t.Errorf("priority = %d, want 1", batch.Tasks[0].Priority)
	}
	if batch.Confidence != DefaultConfidence {
		t.Errorf("confidence = %v, want default %v", batch.Confidence, DefaultConfidence)
	}
}

func TestNormalizeBatchConfidenceFromFirstTask(t *testing.T) {
	uc := newTestUseCase(nil)

	raw := `{"tasks": [{"title": "a", "confidence": 0.6}, {"title": "b", "confidence": 0.2}]}`

	batch, err := uc.normalizeBatch(context.Background(), raw, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if batch.Confidence != 0.6 {
		t.Errorf("batch confidence = %v, want first task's 0.6", batch.Confidence)
	}
}

func TestNormalizeBatchErrors(t *testing.T) {
	uc := newTestUseCase(nil)

	cases := []struct {
		name string
		raw  string
		want error
	}{
		{"no JSON object", "the model rambled and produced nothing", extraction.ErrMalformedResponse},
		{"unbalanced object", `{"tasks": [{"title": "x"`, extraction.ErrMalformedResponse},
		{"parse failure", `{"tasks": "not an array"}`, extraction.ErrMalformedResponse},
		{"missing title", `{"tasks": [{"title": "ok"}, {"priority": 2}]}`, extraction.ErrValidation},
		{"empty tasks array", `{"tasks": []}`, extraction.ErrValidation},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.normalizeBatch(context.Background(), tc.raw, nil, nil)
			if !errors.Is(err, tc.want) {
				t.Errorf("error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestNormalizeTaskReferenceIntegrity(t *testing.T) {
	uc := newTestUseCase(nil)

	raw := `{"tasks": [{"title": "Ghost refs", "assignee_id": "nobody", "project_id": "no-project"}]}`

	batch, err := uc.normalizeBatch(context.Background(), raw, testRoster, testProjects)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	task := batch.Tasks[0]
	if task.AssigneeID != nil {
		t.Errorf("assignee_id = %v, want nil for unknown roster id", *task.AssigneeID)
	}
	if task.ProjectID != nil {
		t.Errorf("project_id = %v, want nil for unknown project id", *task.ProjectID)
	}
}

func TestNormalizeTaskClampsAndDefaults(t *testing.T) {
	uc := newTestUseCase(nil)

	raw := `{"tasks": [
		{"title": "high", "priority": 0, "confidence": 1.5},
		{"title": "low", "priority": 9, "confidence": -0.2, "status": "nonsense", "due_at": "not a date"}
	]}`

	batch, err := uc.normalizeBatch(context.Background(), raw, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if batch.Tasks[0].Priority != model.PriorityDefault {
		t.Errorf("out-of-range priority = %d, want default", batch.Tasks[0].Priority)
	}
	if batch.Tasks[0].Confidence != 1 {
		t.Errorf("confidence = %v, want clamp to 1", batch.Tasks[0].Confidence)
	}
	if batch.Tasks[1].Confidence != 0 {
		t.Errorf("confidence = %v, want clamp to 0", batch.Tasks[1].Confidence)
	}
	if batch.Tasks[1].Status != model.StatusDoing {
		t.Errorf("status = %q, want doing", batch.Tasks[1].Status)
	}
	if batch.Tasks[1].DueAt != nil {
		t.Errorf("due_at = %v, want nil for unparseable timestamp", batch.Tasks[1].DueAt)
	}
}

func TestExtractJSONObjectBracesInStrings(t *testing.T) {
	raw := `noise {"title": "fix the {weird} bug", "note": "escaped \" quote"} trailing`

	obj, err := extractJSONObject(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(obj, `{"title"`) || !strings.HasSuffix(obj, `"}`) {
		t.Errorf("unexpected object bounds: %q", obj)
	}
}
