package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"taskboard/internal/extraction"
	"taskboard/internal/model"
	"taskboard/pkg/llmprovider"
)

// rawTriage is the wire shape of the triage response.
type rawTriage struct {
	Category     string              `json:"category"`
	AssigneeRole string              `json:"assignee_role"`
	TaskTitle    string              `json:"task_title"`
	TaskPriority *int                `json:"task_priority"`
	TaskSections []model.TaskSection `json:"task_sections"`
	DraftReply   string              `json:"draft_reply"`
	Reasoning    string              `json:"reasoning"`
	Confidence   *float64            `json:"confidence"`
}

// TriageEmail classifies one inbound email. There is no fallback parser
// here: any failure surfaces as *TriageError and the mail gateway sends a
// generic acknowledgment instead.
func (uc *implUseCase) TriageEmail(ctx context.Context, sc model.Scope, input extraction.TriageInput) (model.TriageResult, error) {
	if uc.llm == nil {
		return model.TriageResult{}, &extraction.TriageError{
			Reason: "no generation provider configured",
			Err:    extraction.ErrGenerationUnavailable,
		}
	}

	uc.l.Infof(ctx, "TriageEmail: user=%s from=%s subject_length=%d",
		sc.UserID, input.Email.FromEmail, len(input.Email.Subject))

	prompt := buildTriagePrompt(uc.now(), input.Roster, input.ProjectContext)

	callCtx, cancel := context.WithTimeout(ctx, uc.llmTimeout)
	defer cancel()

	resp, err := uc.llm.GenerateContent(callCtx, &llmprovider.Request{
		SystemInstruction: prompt,
		UserText:          formatEmail(input.Email),
		Temperature:       generationTemperature,
		MaxTokens:         generationMaxTokens,
	})
	if err != nil {
		return model.TriageResult{}, &extraction.TriageError{
			Reason: "generation call failed",
			Err:    fmt.Errorf("%w: %v", extraction.ErrGenerationUnavailable, err),
		}
	}

	result, err := uc.normalizeTriage(ctx, resp.Text)
	if err != nil {
		return model.TriageResult{}, err
	}

	uc.l.Infof(ctx, "TriageEmail: category=%s role=%s confidence=%.2f",
		result.Category, result.AssigneeRole, result.Confidence)
	return result, nil
}

// normalizeTriage parses and validates the raw triage output.
func (uc *implUseCase) normalizeTriage(ctx context.Context, raw string) (model.TriageResult, error) {
	obj, err := extractJSONObject(raw)
	if err != nil {
		uc.l.Errorf(ctx, "normalizeTriage: no JSON object in model output: %q", truncate(raw, 200))
		return model.TriageResult{}, &extraction.TriageError{
			Reason: "no JSON object in model output",
			Err:    fmt.Errorf("%w: %v", extraction.ErrMalformedResponse, err),
		}
	}

	var t rawTriage
	if err := json.Unmarshal([]byte(obj), &t); err != nil {
		return model.TriageResult{}, &extraction.TriageError{
			Reason: "JSON parse failed",
			Err:    fmt.Errorf("%w: %v", extraction.ErrMalformedResponse, err),
		}
	}

	if err := validateTriage(t); err != nil {
		return model.TriageResult{}, &extraction.TriageError{
			Reason: "required fields missing",
			Err:    err,
		}
	}

	result := model.TriageResult{
		Category:     model.ParseEmailCategory(t.Category),
		AssigneeRole: model.ParseRole(t.AssigneeRole),
		TaskTitle:    strings.TrimSpace(t.TaskTitle),
		TaskPriority: model.PriorityDefault,
		TaskSections: t.TaskSections,
		DraftReply:   t.DraftReply,
		Reasoning:    t.Reasoning,
		Confidence:   DefaultConfidence,
	}
	if t.TaskPriority != nil {
		result.TaskPriority = model.ClampPriority(*t.TaskPriority)
	}
	if t.Confidence != nil {
		result.Confidence = clampConfidence(*t.Confidence)
	}
	return result, nil
}

func validateTriage(t rawTriage) error {
	switch {
	case strings.TrimSpace(t.Category) == "":
		return fmt.Errorf("%w: missing category", extraction.ErrValidation)
	case strings.TrimSpace(t.TaskTitle) == "":
		return fmt.Errorf("%w: missing task_title", extraction.ErrValidation)
	case strings.TrimSpace(t.DraftReply) == "":
		return fmt.Errorf("%w: missing draft_reply", extraction.ErrValidation)
	}

	if n := len(t.TaskSections); n < minTaskSections || n > maxTaskSections {
		return fmt.Errorf("%w: %d task_sections, want %d..%d", extraction.ErrValidation, n, minTaskSections, maxTaskSections)
	}

	hasGoal := false
	for _, s := range t.TaskSections {
		if strings.EqualFold(strings.TrimSpace(s.Heading), requiredSectionKey) {
			hasGoal = true
			break
		}
	}
	if !hasGoal {
		return fmt.Errorf("%w: task_sections missing %q heading", extraction.ErrValidation, requiredSectionKey)
	}

	return nil
}
