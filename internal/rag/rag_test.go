package rag

import (
	"context"
	"errors"
	"strings"
	"testing"

	"multi-agent-code-assistant/internal/vectorstore"
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

type mockStore struct {
	results []vectorstore.SearchResult
	err     error
	addErr  error
}

func (m *mockStore) Search(ctx context.Context, query string, topK int, filter map[string]interface{}) ([]vectorstore.SearchResult, error) {
	return m.results, m.err
}
func (m *mockStore) AddDocuments(ctx context.Context, docs []vectorstore.Document) error {
	return m.addErr
}

func TestBuilder_Query(t *testing.T) {
	ctx := context.Background()

	t.Run("maps store results to chunks", func(t *testing.T) {
		store := &mockStore{results: []vectorstore.SearchResult{
			{Content: "goroutines are lightweight", Metadata: map[string]interface{}{"source": "concurrency.md"}, Score: 0.91},
		}}
		b := New(store, &mockLogger{})

		out := b.Query(ctx, "goroutines", 5, nil)
		if len(out.Results) != 1 {
			t.Fatalf("results = %d, want 1", len(out.Results))
		}
		if out.Results[0].Content != "goroutines are lightweight" || out.Results[0].Score != 0.91 {
			t.Errorf("unexpected chunk: %+v", out.Results[0])
		}
	})

	t.Run("store failure yields empty results, not an error", func(t *testing.T) {
		store := &mockStore{err: errors.New("connection refused")}
		b := New(store, &mockLogger{})

		out := b.Query(ctx, "anything", 5, nil)
		if len(out.Results) != 0 {
			t.Errorf("results = %v, want empty", out.Results)
		}
	})
}

func TestBuilder_AddDocumentation(t *testing.T) {
	ctx := context.Background()

	t.Run("propagates ingestion failures", func(t *testing.T) {
		store := &mockStore{addErr: errors.New("write failed")}
		b := New(store, &mockLogger{})

		err := b.AddDocumentation(ctx, []vectorstore.Document{{Content: "doc"}})
		if err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestFormatContext(t *testing.T) {
	t.Run("empty input yields empty string", func(t *testing.T) {
		if got := FormatContext(nil); got != "" {
			t.Errorf("FormatContext(nil) = %q, want empty", got)
		}
		if got := FormatContext([]Chunk{}); got != "" {
			t.Errorf("FormatContext([]) = %q, want empty", got)
		}
	})

	t.Run("single chunk includes source label and two-decimal score", func(t *testing.T) {
		got := FormatContext([]Chunk{{
			Content:  "channels synchronize goroutines",
			Metadata: map[string]interface{}{"source": "channels.md"},
			Score:    0.8765,
		}})

		if !strings.Contains(got, "## Retrieved Context:") {
			t.Errorf("missing header:\n%s", got)
		}
		if !strings.Contains(got, "### Source 1: channels.md") {
			t.Errorf("missing source label:\n%s", got)
		}
		if !strings.Contains(got, "Relevance: 0.88") {
			t.Errorf("score not formatted with two decimals:\n%s", got)
		}
		if !strings.Contains(got, "channels synchronize goroutines") {
			t.Errorf("missing content:\n%s", got)
		}
	})

	t.Run("missing source metadata falls back to Unknown", func(t *testing.T) {
		got := FormatContext([]Chunk{{Content: "text", Score: 0.5}})
		if !strings.Contains(got, "### Source 1: Unknown") {
			t.Errorf("missing fallback label:\n%s", got)
		}
	})

	t.Run("chunks are numbered in order", func(t *testing.T) {
		got := FormatContext([]Chunk{
			{Content: "first", Metadata: map[string]interface{}{"source": "a.md"}, Score: 0.9},
			{Content: "second", Metadata: map[string]interface{}{"source": "b.md"}, Score: 0.8},
		})
		if strings.Index(got, "### Source 1: a.md") > strings.Index(got, "### Source 2: b.md") {
			t.Errorf("sources out of order:\n%s", got)
		}
	})
}
