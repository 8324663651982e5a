package llmprovider

import (
	"context"
	"errors"
	"testing"
	"time"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{}) {}

type mockProvider struct {
	name     string
	response *Response
	err      error
	calls    int
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.response, nil
}

func (m *mockProvider) GenerateStream(ctx context.Context, req *Request) (<-chan string, <-chan error) {
	textCh := make(chan string, 1)
	errCh := make(chan error, 1)
	textCh <- "streamed"
	close(textCh)
	close(errCh)
	return textCh, errCh
}

func (m *mockProvider) Name() string  { return m.name }
func (m *mockProvider) Model() string { return "test-model" }

func textResponse(text string) *Response {
	return &Response{
		Content: Message{
			Role:  "assistant",
			Parts: []Part{{Text: text}},
		},
		Usage: &Usage{InputTokens: 1, OutputTokens: 1},
	}
}

func testConfig() *Config {
	return &Config{
		FallbackEnabled: true,
		RetryAttempts:   1,
		RetryDelay:      time.Millisecond,
	}
}

func TestManager_GenerateContent(t *testing.T) {
	ctx := context.Background()

	t.Run("first provider succeeds", func(t *testing.T) {
		primary := &mockProvider{name: "primary", response: textResponse("hello")}
		secondary := &mockProvider{name: "secondary", response: textResponse("fallback")}
		m := NewManager([]Provider{primary, secondary}, testConfig(), &mockLogger{})

		resp, err := m.GenerateContent(ctx, &Request{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text() != "hello" {
			t.Errorf("text = %q", resp.Text())
		}
		if secondary.calls != 0 {
			t.Errorf("secondary called %d times", secondary.calls)
		}
	})

	t.Run("falls back to next provider on failure", func(t *testing.T) {
		primary := &mockProvider{name: "primary", err: errors.New("rate limited")}
		secondary := &mockProvider{name: "secondary", response: textResponse("fallback")}
		m := NewManager([]Provider{primary, secondary}, testConfig(), &mockLogger{})

		resp, err := m.GenerateContent(ctx, &Request{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text() != "fallback" {
			t.Errorf("text = %q", resp.Text())
		}
	})

	t.Run("all providers failing yields ErrAllProvidersFailed", func(t *testing.T) {
		a := &mockProvider{name: "a", err: errors.New("down")}
		b := &mockProvider{name: "b", err: errors.New("also down")}
		m := NewManager([]Provider{a, b}, testConfig(), &mockLogger{})

		_, err := m.GenerateContent(ctx, &Request{})
		if !errors.Is(err, ErrAllProvidersFailed) {
			t.Fatalf("expected ErrAllProvidersFailed, got %v", err)
		}
	})

	t.Run("no providers configured", func(t *testing.T) {
		m := NewManager(nil, testConfig(), &mockLogger{})
		_, err := m.GenerateContent(ctx, &Request{})
		if !errors.Is(err, ErrNoProvidersConfigured) {
			t.Fatalf("expected ErrNoProvidersConfigured, got %v", err)
		}
	})

	t.Run("fallback disabled stops after first provider", func(t *testing.T) {
		primary := &mockProvider{name: "primary", err: errors.New("down")}
		secondary := &mockProvider{name: "secondary", response: textResponse("fallback")}
		cfg := testConfig()
		cfg.FallbackEnabled = false
		m := NewManager([]Provider{primary, secondary}, cfg, &mockLogger{})

		if _, err := m.GenerateContent(ctx, &Request{}); err == nil {
			t.Fatal("expected error")
		}
		if secondary.calls != 0 {
			t.Errorf("secondary called %d times", secondary.calls)
		}
	})

	t.Run("retries before falling back", func(t *testing.T) {
		primary := &mockProvider{name: "primary", err: errors.New("flaky")}
		secondary := &mockProvider{name: "secondary", response: textResponse("ok")}
		cfg := testConfig()
		cfg.RetryAttempts = 3
		m := NewManager([]Provider{primary, secondary}, cfg, &mockLogger{})

		if _, err := m.GenerateContent(ctx, &Request{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if primary.calls != 3 {
			t.Errorf("primary called %d times, want 3", primary.calls)
		}
	})
}

func TestManager_GenerateStream(t *testing.T) {
	t.Run("delegates to the first provider", func(t *testing.T) {
		primary := &mockProvider{name: "primary"}
		m := NewManager([]Provider{primary}, testConfig(), &mockLogger{})

		textCh, errCh := m.GenerateStream(context.Background(), &Request{})
		var got string
		for fragment := range textCh {
			got += fragment
		}
		if err := <-errCh; err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "streamed" {
			t.Errorf("streamed text = %q", got)
		}
	})

	t.Run("no providers configured", func(t *testing.T) {
		m := NewManager(nil, testConfig(), &mockLogger{})
		_, errCh := m.GenerateStream(context.Background(), &Request{})
		if err := <-errCh; !errors.Is(err, ErrNoProvidersConfigured) {
			t.Fatalf("expected ErrNoProvidersConfigured, got %v", err)
		}
	})
}
