package usecase

import (
	"context"
	"time"

	"taskboard/pkg/datemath"
	"taskboard/pkg/llmprovider"
	pkgLog "taskboard/pkg/log"
)

// Generator is the text-generation boundary. *llmprovider.Manager
// satisfies it; tests substitute a stub.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

type implUseCase struct {
	l          pkgLog.Logger
	llm        Generator
	dateMath   *datemath.Parser
	timezone   string
	llmTimeout time.Duration

	// clock is swapped in tests to pin the temporal anchor.
	clock func() time.Time
}

// New creates the extraction UseCase. llm may be nil when no provider is
// configured; extraction then always takes the fallback path and triage
// reports the generation service unavailable.
func New(
	l pkgLog.Logger,
	llm Generator,
	dateMath *datemath.Parser,
	timezone string,
	llmTimeout time.Duration,
) *implUseCase {
	if llmTimeout <= 0 {
		llmTimeout = 25 * time.Second
	}
	return &implUseCase{
		l:          l,
		llm:        llm,
		dateMath:   dateMath,
		timezone:   timezone,
		llmTimeout: llmTimeout,
		clock:      time.Now,
	}
}

// now returns the current time in the configured timezone.
func (uc *implUseCase) now() time.Time {
	t := uc.clock()
	if loc, err := time.LoadLocation(uc.timezone); err == nil {
		t = t.In(loc)
	}
	return t
}
