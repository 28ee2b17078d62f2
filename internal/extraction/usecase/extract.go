package usecase

import (
	"context"
	"fmt"

	"taskboard/internal/extraction"
	"taskboard/internal/model"
	"taskboard/pkg/llmprovider"
)

// ExtractTasks parses free text into structured task proposals. The
// generation pathway is attempted first; on any failure the deterministic
// fallback parser takes over, so callers never see an error.
func (uc *implUseCase) ExtractTasks(ctx context.Context, sc model.Scope, input extraction.ExtractInput) model.ParsedTaskBatch {
	uc.l.Infof(ctx, "ExtractTasks: user=%s input_length=%d roster=%d projects=%d",
		sc.UserID, len(input.Text), len(input.Roster), len(input.Projects))

	batch, err := uc.generateBatch(ctx, input)
	if err != nil {
		uc.l.Warnf(ctx, "ExtractTasks: generation pathway failed, using fallback parser: %v", err)
		return uc.fallbackBatch(input)
	}

	uc.l.Infof(ctx, "ExtractTasks: generation pathway parsed %d tasks confidence=%.2f",
		len(batch.Tasks), batch.Confidence)
	return batch
}

// ExtractSingleTask returns the first task of the batch.
func (uc *implUseCase) ExtractSingleTask(ctx context.Context, sc model.Scope, input extraction.ExtractInput) model.ParsedTask {
	return uc.ExtractTasks(ctx, sc, input).Tasks[0]
}

// generateBatch runs the generation pathway end to end: prompt, model
// call, validation. Every failure mode comes back as an error so the
// orchestrator can fall back.
func (uc *implUseCase) generateBatch(ctx context.Context, input extraction.ExtractInput) (model.ParsedTaskBatch, error) {
	if uc.llm == nil {
		return model.ParsedTaskBatch{}, extraction.ErrGenerationUnavailable
	}

	// A cancelled caller short-circuits straight to fallback instead of
	// waiting out the outbound timeout.
	select {
	case <-ctx.Done():
		return model.ParsedTaskBatch{}, fmt.Errorf("%w: %v", extraction.ErrGenerationUnavailable, ctx.Err())
	default:
	}

	prompt := buildExtractionPrompt(uc.now(), input.Roster, input.Projects)

	callCtx, cancel := context.WithTimeout(ctx, uc.llmTimeout)
	defer cancel()

	resp, err := uc.llm.GenerateContent(callCtx, &llmprovider.Request{
		SystemInstruction: prompt,
		UserText:          input.Text,
		Temperature:       generationTemperature,
		MaxTokens:         generationMaxTokens,
	})
	if err != nil {
		return model.ParsedTaskBatch{}, fmt.Errorf("%w: %v", extraction.ErrGenerationUnavailable, err)
	}

	return uc.normalizeBatch(ctx, resp.Text, input.Roster, input.Projects)
}
