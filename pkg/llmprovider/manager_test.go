package llmprovider

import (
	"context"
	"errors"
	"testing"
	"time"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, args ...any)  {}

type fakeProvider struct {
	name  string
	text  string
	err   error
	calls int
}

func (p *fakeProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return &Response{Text: p.text, ProviderName: p.name, Usage: &Usage{}}, nil
}

func (p *fakeProvider) Name() string  { return p.name }
func (p *fakeProvider) Model() string { return p.name + "-model" }

func TestManagerNoProviders(t *testing.T) {
	m := NewManager(nil, &Config{}, &mockLogger{})
	_, err := m.GenerateContent(context.Background(), &Request{UserText: "hi"})
	if !errors.Is(err, ErrNoProvidersConfigured) {
		t.Fatalf("expected ErrNoProvidersConfigured, got %v", err)
	}
}

func TestManagerFirstProviderWins(t *testing.T) {
	first := &fakeProvider{name: "first", text: "ok"}
	second := &fakeProvider{name: "second", text: "never"}

	m := NewManager([]Provider{first, second}, &Config{FallbackEnabled: true, RetryAttempts: 1}, &mockLogger{})

	resp, err := m.GenerateContent(context.Background(), &Request{UserText: "hi"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != "ok" {
		t.Errorf("expected first provider response, got %q", resp.Text)
	}
	if second.calls != 0 {
		t.Errorf("second provider should not be called, got %d calls", second.calls)
	}
}

func TestManagerFallsBackToNextProvider(t *testing.T) {
	first := &fakeProvider{name: "first", err: errors.New("boom")}
	second := &fakeProvider{name: "second", text: "recovered"}

	m := NewManager([]Provider{first, second}, &Config{FallbackEnabled: true, RetryAttempts: 2}, &mockLogger{})

	resp, err := m.GenerateContent(context.Background(), &Request{UserText: "hi"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != "recovered" {
		t.Errorf("expected fallback provider response, got %q", resp.Text)
	}
	if first.calls != 2 {
		t.Errorf("expected 2 retry attempts on first provider, got %d", first.calls)
	}
}

func TestManagerFallbackDisabled(t *testing.T) {
	first := &fakeProvider{name: "first", err: errors.New("boom")}
	second := &fakeProvider{name: "second", text: "never"}

	m := NewManager([]Provider{first, second}, &Config{FallbackEnabled: false, RetryAttempts: 1}, &mockLogger{})

	_, err := m.GenerateContent(context.Background(), &Request{UserText: "hi"})
	if !errors.Is(err, ErrAllProvidersFailed) {
		t.Fatalf("expected ErrAllProvidersFailed, got %v", err)
	}
	if second.calls != 0 {
		t.Errorf("second provider should not be called when fallback disabled")
	}
}

func TestManagerAllFail(t *testing.T) {
	first := &fakeProvider{name: "first", err: errors.New("a")}
	second := &fakeProvider{name: "second", err: errors.New("b")}

	m := NewManager([]Provider{first, second}, &Config{FallbackEnabled: true, RetryAttempts: 1}, &mockLogger{})

	_, err := m.GenerateContent(context.Background(), &Request{UserText: "hi"})
	if !errors.Is(err, ErrAllProvidersFailed) {
		t.Fatalf("expected ErrAllProvidersFailed, got %v", err)
	}

	var perr *ProviderError
	if !errors.As(err, &perr) {
		// wrapped as text, not as chain; the message must still name the provider
		if got := err.Error(); got == "" {
			t.Errorf("expected descriptive error, got empty")
		}
	}
}

func TestManagerGlobalTimeout(t *testing.T) {
	slow := &fakeProvider{name: "slow", err: errors.New("always fails")}

	m := NewManager([]Provider{slow}, &Config{
		FallbackEnabled: true,
		RetryAttempts:   5,
		RetryDelay:      200 * time.Millisecond,
		MaxTotalTimeout: 50 * time.Millisecond,
	}, &mockLogger{})

	start := time.Now()
	_, err := m.GenerateContent(context.Background(), &Request{UserText: "hi"})
	if err == nil {
		t.Fatal("expected error")
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("timeout not enforced, took %v", elapsed)
	}
}
