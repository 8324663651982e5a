package vectorstore

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	pkgQdrant "multi-agent-code-assistant/pkg/qdrant"
	"multi-agent-code-assistant/pkg/voyage"
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

func newEmbeddingServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req voyage.EmbedRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		data := make([]voyage.EmbeddingData, len(req.Input))
		for i := range req.Input {
			data[i] = voyage.EmbeddingData{Index: i, Embedding: []float32{0.1, 0.2, 0.3}}
		}
		json.NewEncoder(w).Encode(voyage.EmbedResponse{Data: data})
	}))
}

func TestStore_Search(t *testing.T) {
	embedSrv := newEmbeddingServer(t)
	defer embedSrv.Close()

	qdrantSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/points/search") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode(pkgQdrant.SearchResponse{
			Result: []pkgQdrant.ScoredPoint{
				{
					ID:    "p1",
					Score: 0.92,
					Payload: map[string]interface{}{
						"content": "slices share backing arrays",
						"source":  "slices.md",
					},
				},
			},
		})
	}))
	defer qdrantSrv.Close()

	embedder, err := voyage.New("test-key")
	if err != nil {
		t.Fatalf("failed to create embedder: %v", err)
	}
	embedder.WithBaseURL(embedSrv.URL)

	store := New(pkgQdrant.NewClient(qdrantSrv.URL), embedder, "code_docs", 3, &mockLogger{})

	results, err := store.Search(context.Background(), "slices", 5, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("results = %d, want 1", len(results))
	}

	got := results[0]
	if got.Content != "slices share backing arrays" {
		t.Errorf("content = %q", got.Content)
	}
	if _, leaked := got.Metadata["content"]; leaked {
		t.Error("content payload key should not leak into metadata")
	}
	if got.Metadata["source"] != "slices.md" {
		t.Errorf("metadata = %v", got.Metadata)
	}
	if got.Score != 0.92 {
		t.Errorf("score = %v", got.Score)
	}
}

func TestStore_AddDocuments(t *testing.T) {
	embedSrv := newEmbeddingServer(t)
	defer embedSrv.Close()

	var upserted pkgQdrant.UpsertPointsRequest
	qdrantSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut && strings.HasSuffix(r.URL.Path, "/points") {
			json.NewDecoder(r.Body).Decode(&upserted)
		}
		w.Write([]byte(`{"status":"ok"}`))
	}))
	defer qdrantSrv.Close()

	embedder, _ := voyage.New("test-key")
	embedder.WithBaseURL(embedSrv.URL)
	store := New(pkgQdrant.NewClient(qdrantSrv.URL), embedder, "code_docs", 3, &mockLogger{})

	docs := []Document{
		{Content: "first doc", Metadata: map[string]interface{}{"source": "a.md"}},
		{ID: "fixed-id", Content: "second doc"},
	}
	if err := store.AddDocuments(context.Background(), docs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(upserted.Points) != 2 {
		t.Fatalf("points = %d, want 2", len(upserted.Points))
	}
	if upserted.Points[0].ID == "" {
		t.Error("missing generated ID on first point")
	}
	if upserted.Points[1].ID != "fixed-id" {
		t.Errorf("second point ID = %v", upserted.Points[1].ID)
	}
	if upserted.Points[0].Payload["content"] != "first doc" {
		t.Errorf("payload = %v", upserted.Points[0].Payload)
	}
}

func TestStore_EnsureCollection(t *testing.T) {
	t.Run("creates missing collection", func(t *testing.T) {
		created := false
		qdrantSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet:
				w.WriteHeader(http.StatusNotFound)
			case http.MethodPut:
				created = true
				w.Write([]byte(`{"status":"ok"}`))
			}
		}))
		defer qdrantSrv.Close()

		embedder, _ := voyage.New("test-key")
		store := New(pkgQdrant.NewClient(qdrantSrv.URL), embedder, "code_docs", 3, &mockLogger{})

		if err := store.EnsureCollection(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !created {
			t.Error("collection was not created")
		}
	})

	t.Run("existing collection is left alone", func(t *testing.T) {
		qdrantSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodPut {
				t.Error("unexpected create call")
			}
			w.Write([]byte(`{"status":"ok"}`))
		}))
		defer qdrantSrv.Close()

		embedder, _ := voyage.New("test-key")
		store := New(pkgQdrant.NewClient(qdrantSrv.URL), embedder, "code_docs", 3, &mockLogger{})

		if err := store.EnsureCollection(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
