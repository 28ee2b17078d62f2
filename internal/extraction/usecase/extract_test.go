package usecase

import (
	"context"
	"errors"
	"testing"

	"taskboard/internal/extraction"
	"taskboard/internal/model"
)

func TestExtractTasksGenerationPathway(t *testing.T) {
	gen := &stubGenerator{text: `{
		"tasks": [
			{"title": "Review deck", "assignee_id": "m-2", "confidence": 0.9},
			{"title": "Draft proposal", "assignee_id": "m-2", "confidence": 0.9},
			{"title": "Schedule meeting", "assignee_id": "m-2", "confidence": 0.9}
		],
		"confidence": 0.9
	}`}
	uc := newTestUseCase(gen)

	batch := uc.ExtractTasks(context.Background(), model.Scope{UserID: "u1"}, extraction.ExtractInput{
		Text:     "Bob: review deck, draft proposal, and schedule meeting",
		Roster:   testRoster,
		Projects: testProjects,
	})

	if len(batch.Tasks) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(batch.Tasks))
	}
	if batch.Confidence != 0.9 {
		t.Errorf("confidence = %v, want 0.9", batch.Confidence)
	}
	for _, task := range batch.Tasks {
		if task.AssigneeID == nil || *task.AssigneeID != "m-2" {
			t.Errorf("task %q: shared assignee not applied, got %v", task.Title, task.AssigneeID)
		}
	}
	if gen.calls != 1 {
		t.Errorf("expected 1 generation call, got %d", gen.calls)
	}
}

func TestExtractTasksFallsBackOnGenerationError(t *testing.T) {
	gen := &stubGenerator{err: errors.New("provider down")}
	uc := newTestUseCase(gen)

	batch := uc.ExtractTasks(context.Background(), model.Scope{}, extraction.ExtractInput{
		Text:   "Fix bug due today urgent",
		Roster: testRoster,
	})

	if len(batch.Tasks) != 1 {
		t.Fatalf("expected 1 fallback task, got %d", len(batch.Tasks))
	}
	if batch.Confidence != FallbackConfidence {
		t.Errorf("batch confidence = %v, want fallback %v", batch.Confidence, FallbackConfidence)
	}
	task := batch.Tasks[0]
	if task.Title != "Fix bug" {
		t.Errorf("title = %q, want %q", task.Title, "Fix bug")
	}
	if task.Priority != model.PriorityUrgent {
		t.Errorf("priority = %d, want 1", task.Priority)
	}
	if task.DueAt == nil {
		t.Error("expected due date from fallback parser")
	}
}

func TestExtractTasksFallsBackOnMalformedResponse(t *testing.T) {
	gen := &stubGenerator{text: "I could not produce JSON today, sorry"}
	uc := newTestUseCase(gen)

	batch := uc.ExtractTasks(context.Background(), model.Scope{}, extraction.ExtractInput{
		Text: "write changelog",
	})

	if len(batch.Tasks) != 1 || batch.Tasks[0].Title != "write changelog" {
		t.Fatalf("unexpected fallback batch: %+v", batch)
	}
	if batch.Confidence != FallbackConfidence {
		t.Errorf("confidence = %v, want %v", batch.Confidence, FallbackConfidence)
	}
}

func TestExtractTasksFallsBackOnValidationError(t *testing.T) {
	gen := &stubGenerator{text: `{"tasks": [{"priority": 2}]}`}
	uc := newTestUseCase(gen)

	batch := uc.ExtractTasks(context.Background(), model.Scope{}, extraction.ExtractInput{
		Text: "deploy staging",
	})

	if batch.Confidence != FallbackConfidence {
		t.Errorf("expected fallback on missing title, got confidence %v", batch.Confidence)
	}
}

func TestExtractTasksNilGeneratorUsesFallback(t *testing.T) {
	uc := newTestUseCase(nil)

	batch := uc.ExtractTasks(context.Background(), model.Scope{}, extraction.ExtractInput{
		Text: "ship the thing",
	})

	if len(batch.Tasks) != 1 || batch.Tasks[0].Title != "ship the thing" {
		t.Fatalf("unexpected batch: %+v", batch)
	}
}

func TestExtractTasksCancelledContextShortCircuits(t *testing.T) {
	gen := &stubGenerator{text: `{"tasks": [{"title": "never returned"}]}`}
	uc := newTestUseCase(gen)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	batch := uc.ExtractTasks(ctx, model.Scope{}, extraction.ExtractInput{Text: "do the thing"})

	if gen.calls != 0 {
		t.Errorf("expected no generation call on cancelled context, got %d", gen.calls)
	}
	if batch.Confidence != FallbackConfidence {
		t.Errorf("confidence = %v, want fallback", batch.Confidence)
	}
}

func TestExtractSingleTask(t *testing.T) {
	gen := &stubGenerator{text: `{"tasks": [{"title": "first"}, {"title": "second"}]}`}
	uc := newTestUseCase(gen)

	task := uc.ExtractSingleTask(context.Background(), model.Scope{}, extraction.ExtractInput{Text: "two things"})
	if task.Title != "first" {
		t.Errorf("title = %q, want first task of the batch", task.Title)
	}
}

func TestExtractTasksNeverFails(t *testing.T) {
	// Property: any non-empty input yields a 1..10 batch of titled tasks,
	// whatever the generation pathway does.
	inputs := []string{
		"x",
		"due today",
		"assign to Nobody: @ @@ project: ,,,,",
		"urgent urgent urgent",
	}
	gens := []*stubGenerator{
		{err: errors.New("down")},
		{text: "garbage"},
		{text: `{"tasks": []}`},
		nil,
	}

	for _, in := range inputs {
		for i, gen := range gens {
			var g Generator
			if gen != nil {
				g = gen
			}
			uc := newTestUseCase(g)
			batch := uc.ExtractTasks(context.Background(), model.Scope{}, extraction.ExtractInput{Text: in, Roster: testRoster})
			if len(batch.Tasks) < 1 || len(batch.Tasks) > MaxTasksPerBatch {
				t.Errorf("input %q gen %d: batch size %d out of range", in, i, len(batch.Tasks))
			}
			for _, task := range batch.Tasks {
				if task.Title == "" {
					t.Errorf("input %q gen %d: empty title", in, i)
				}
			}
		}
	}
}
