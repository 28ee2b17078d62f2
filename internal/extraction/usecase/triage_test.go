package usecase

import (
	"context"
	"errors"
	"testing"

	"taskboard/internal/extraction"
	"taskboard/internal/model"
)

const validTriageJSON = `{
	"category": "development",
	"assignee_role": "development",
	"task_title": "Fix checkout crash",
	"task_priority": 1,
	"task_sections": [
		{"heading": "Goal", "content": "checkout works again"},
		{"heading": "Context", "content": "customer reported a crash"}
	],
	"draft_reply": "Thanks for the report, we are on it.",
	"reasoning": "crash report is engineering work",
	"confidence": 0.8
}`

var testEmail = model.InboundEmail{
	FromEmail: "customer@example.com",
	FromName:  "Customer",
	Subject:   "Checkout crashes",
	Body:      "The checkout page crashes when I click pay.",
}

func TestTriageEmailSuccess(t *testing.T) {
	gen := &stubGenerator{text: validTriageJSON}
	uc := newTestUseCase(gen)

	result, err := uc.TriageEmail(context.Background(), model.Scope{UserID: "u1"}, extraction.TriageInput{
		Email:  testEmail,
		Roster: testRoster,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Category != model.CategoryDevelopment {
		t.Errorf("category = %q, want development", result.Category)
	}
	if result.AssigneeRole != model.RoleDevelopment {
		t.Errorf("assignee_role = %q, want development", result.AssigneeRole)
	}
	if result.TaskTitle != "Fix checkout crash" {
		t.Errorf("task_title = %q", result.TaskTitle)
	}
	if result.TaskPriority != 1 {
		t.Errorf("task_priority = %d, want 1", result.TaskPriority)
	}
	if len(result.TaskSections) != 2 {
		t.Errorf("expected 2 sections, got %d", len(result.TaskSections))
	}
	if result.DraftReply == "" {
		t.Error("expected draft reply")
	}
}

func TestTriageEmailGenerationFailure(t *testing.T) {
	gen := &stubGenerator{err: errors.New("provider down")}
	uc := newTestUseCase(gen)

	_, err := uc.TriageEmail(context.Background(), model.Scope{}, extraction.TriageInput{Email: testEmail})

	var terr *extraction.TriageError
	if !errors.As(err, &terr) {
		t.Fatalf("expected *TriageError, got %v", err)
	}
	if !errors.Is(err, extraction.ErrGenerationUnavailable) {
		t.Errorf("expected ErrGenerationUnavailable in chain, got %v", err)
	}
}

func TestTriageEmailNoProvider(t *testing.T) {
	uc := newTestUseCase(nil)

	_, err := uc.TriageEmail(context.Background(), model.Scope{}, extraction.TriageInput{Email: testEmail})

	var terr *extraction.TriageError
	if !errors.As(err, &terr) {
		t.Fatalf("expected *TriageError, got %v", err)
	}
}

func TestTriageEmailValidation(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"not JSON", "no structured output here"},
		{"missing category", `{"task_title": "t", "draft_reply": "r", "task_sections": [{"heading":"Goal","content":"g"},{"heading":"Context","content":"c"}]}`},
		{"missing task_title", `{"category": "pm", "draft_reply": "r", "task_sections": [{"heading":"Goal","content":"g"},{"heading":"Context","content":"c"}]}`},
		{"missing draft_reply", `{"category": "pm", "task_title": "t", "task_sections": [{"heading":"Goal","content":"g"},{"heading":"Context","content":"c"}]}`},
		{"too few sections", `{"category": "pm", "task_title": "t", "draft_reply": "r", "task_sections": [{"heading":"Goal","content":"g"}]}`},
		{"too many sections", `{"category": "pm", "task_title": "t", "draft_reply": "r", "task_sections": [{"heading":"Goal","content":"g"},{"heading":"a","content":"x"},{"heading":"b","content":"x"},{"heading":"c","content":"x"},{"heading":"d","content":"x"}]}`},
		{"no Goal section", `{"category": "pm", "task_title": "t", "draft_reply": "r", "task_sections": [{"heading":"Context","content":"c"},{"heading":"Scope","content":"s"}]}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := newTestUseCase(&stubGenerator{text: tc.text})
			_, err := uc.TriageEmail(context.Background(), model.Scope{}, extraction.TriageInput{Email: testEmail})

			var terr *extraction.TriageError
			if !errors.As(err, &terr) {
				t.Fatalf("expected *TriageError, got %v", err)
			}
		})
	}
}

func TestTriageEmailNormalizesLooseValues(t *testing.T) {
	gen := &stubGenerator{text: `{
		"category": "SOMETHING ELSE",
		"assignee_role": "design",
		"task_title": "t",
		"task_priority": 42,
		"task_sections": [{"heading":"goal","content":"g"},{"heading":"Context","content":"c"}],
		"draft_reply": "r",
		"confidence": 3.0
	}`}
	uc := newTestUseCase(gen)

	result, err := uc.TriageEmail(context.Background(), model.Scope{}, extraction.TriageInput{Email: testEmail})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Category != model.CategoryGeneral {
		t.Errorf("category = %q, want general for unknown value", result.Category)
	}
	if result.TaskPriority != model.PriorityDefault {
		t.Errorf("task_priority = %d, want clamp to default", result.TaskPriority)
	}
	if result.Confidence != 1 {
		t.Errorf("confidence = %v, want clamp to 1", result.Confidence)
	}
}
