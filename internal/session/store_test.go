package session

import (
	"context"
	"testing"

	"multi-agent-code-assistant/internal/agent/orchestrator"
	"multi-agent-code-assistant/pkg/llmprovider"
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

type stubGenerator struct{}

func (s *stubGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	return &llmprovider.Response{}, nil
}

func newTestStore(t *testing.T, capacity int) *Store {
	t.Helper()
	l := &mockLogger{}
	store, err := New(capacity, func(conversationID string) *orchestrator.Orchestrator {
		return orchestrator.New(&stubGenerator{}, nil, l)
	}, l)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	return store
}

func TestStore(t *testing.T) {
	t.Run("get or create reuses the same instance", func(t *testing.T) {
		store := newTestStore(t, 4)

		a := store.GetOrCreate("conv-1")
		b := store.GetOrCreate("conv-1")
		if a != b {
			t.Error("expected the same orchestrator for the same conversation")
		}
		if store.Len() != 1 {
			t.Errorf("len = %d, want 1", store.Len())
		}
	})

	t.Run("distinct conversations get distinct instances", func(t *testing.T) {
		store := newTestStore(t, 4)

		a := store.GetOrCreate("conv-1")
		b := store.GetOrCreate("conv-2")
		if a == b {
			t.Error("expected distinct orchestrators")
		}
	})

	t.Run("delete removes a conversation", func(t *testing.T) {
		store := newTestStore(t, 4)
		store.GetOrCreate("conv-1")

		if !store.Delete("conv-1") {
			t.Error("expected delete to report removal")
		}
		if store.Delete("conv-1") {
			t.Error("expected second delete to be a no-op")
		}
		if store.Len() != 0 {
			t.Errorf("len = %d, want 0", store.Len())
		}
	})

	t.Run("reset on unknown conversation fails", func(t *testing.T) {
		store := newTestStore(t, 4)
		if err := store.Reset("nope"); err == nil {
			t.Error("expected error for unknown conversation")
		}
	})

	t.Run("reset on known conversation succeeds", func(t *testing.T) {
		store := newTestStore(t, 4)
		store.GetOrCreate("conv-1")
		if err := store.Reset("conv-1"); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("capacity evicts least recently used", func(t *testing.T) {
		store := newTestStore(t, 2)
		store.GetOrCreate("conv-1")
		store.GetOrCreate("conv-2")
		store.GetOrCreate("conv-3")

		if store.Len() != 2 {
			t.Fatalf("len = %d, want 2", store.Len())
		}
		ids := store.List()
		for _, id := range ids {
			if id == "conv-1" {
				t.Errorf("conv-1 should have been evicted, got %v", ids)
			}
		}
	})

	t.Run("list reports live conversations", func(t *testing.T) {
		store := newTestStore(t, 4)
		store.GetOrCreate("a")
		store.GetOrCreate("b")

		ids := store.List()
		if len(ids) != 2 {
			t.Errorf("ids = %v", ids)
		}
	})
}
