package usecase

import (
	"context"
	"time"

	"taskboard/internal/model"
	"taskboard/pkg/datemath"
	"taskboard/pkg/llmprovider"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// stubGenerator returns a canned response or error.
type stubGenerator struct {
	text  string
	err   error
	calls int
}

func (s *stubGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &llmprovider.Response{Text: s.text, ProviderName: "stub", Usage: &llmprovider.Usage{}}, nil
}

// testNow is the pinned clock for all extraction tests: a Wednesday.
var testNow = time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC)

// newTestUseCase builds a usecase with a pinned clock and UTC datemath.
func newTestUseCase(gen Generator) *implUseCase {
	dm, _ := datemath.NewParser("UTC")
	uc := New(&mockLogger{}, gen, dm, "UTC", 5*time.Second)
	uc.clock = func() time.Time { return testNow }
	return uc
}

// testRoster is the standard roster used across extraction tests.
var testRoster = []model.TeamMember{
	{ID: "m-1", Name: "Alice", Role: model.RoleDevelopment, Description: "back-end developer"},
	{ID: "m-2", Name: "Bob", Role: model.RoleDesign},
	{ID: "m-3", Name: "Carol", Role: model.RolePM},
	{ID: "m-4", Name: "Dave", Role: model.RoleMember, Description: "front-end developer"},
}

var testProjects = []model.ProjectRef{
	{ID: "p-1", Name: "Apollo Launch"},
	{ID: "p-2", Name: "Website Redesign"},
}
