package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"multi-agent-code-assistant/internal/agent/orchestrator"
	chatHTTP "multi-agent-code-assistant/internal/chat/delivery/http"
	"multi-agent-code-assistant/internal/session"
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
	return &llmprovider.Response{
		Content: llmprovider.Message{
			Role:  "assistant",
			Parts: []llmprovider.Part{{Text: "simulated agent output"}},
		},
	}, nil
}

func newTestEngine(t *testing.T) (*gin.Engine, *session.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l := &mockLogger{}
	sessions, err := session.New(8, func(conversationID string) *orchestrator.Orchestrator {
		return orchestrator.New(&stubGenerator{}, nil, l)
	}, l)
	if err != nil {
		t.Fatalf("failed to create session store: %v", err)
	}

	h := chatHTTP.New(l, sessions)

	engine := gin.New()
	api := engine.Group("/api/v1")
	chat := api.Group("/chat")
	chat.POST("", h.Chat)
	chat.POST("/reset/:conversation_id", h.ResetConversation)
	chat.GET("/conversations", h.ListConversations)
	chat.DELETE("/:conversation_id", h.DeleteConversation)

	return engine, sessions
}

func doJSON(engine *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func dataFrom(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var envelope struct {
		Data map[string]interface{} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("failed to decode response: %v\n%s", err, w.Body.String())
	}
	return envelope.Data
}

func TestChat(t *testing.T) {
	t.Run("returns a composed response with a trace", func(t *testing.T) {
		engine, _ := newTestEngine(t)

		w := doJSON(engine, http.MethodPost, "/api/v1/chat", map[string]interface{}{
			"message": "Write a function to reverse a string",
			"use_rag": false,
		})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d\n%s", w.Code, w.Body.String())
		}

		data := dataFrom(t, w)
		if data["response"] == "" {
			t.Error("empty response")
		}
		if data["conversation_id"] == "" {
			t.Error("missing generated conversation id")
		}
		trace, ok := data["agent_trace"].([]interface{})
		if !ok || len(trace) != 3 {
			t.Errorf("agent_trace = %v", data["agent_trace"])
		}
	})

	t.Run("missing message is a bad request", func(t *testing.T) {
		engine, _ := newTestEngine(t)

		w := doJSON(engine, http.MethodPost, "/api/v1/chat", map[string]interface{}{})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d", w.Code)
		}
	})

	t.Run("supplied conversation id is echoed back", func(t *testing.T) {
		engine, sessions := newTestEngine(t)

		w := doJSON(engine, http.MethodPost, "/api/v1/chat", map[string]interface{}{
			"message":         "explain maps",
			"conversation_id": "conv-42",
			"use_rag":         false,
		})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d\n%s", w.Code, w.Body.String())
		}
		data := dataFrom(t, w)
		if data["conversation_id"] != "conv-42" {
			t.Errorf("conversation_id = %v", data["conversation_id"])
		}
		if sessions.Len() != 1 {
			t.Errorf("sessions = %d, want 1", sessions.Len())
		}
	})
}

func TestConversationLifecycle(t *testing.T) {
	engine, sessions := newTestEngine(t)
	sessions.GetOrCreate("conv-1")

	t.Run("list", func(t *testing.T) {
		w := doJSON(engine, http.MethodGet, "/api/v1/chat/conversations", nil)
		data := dataFrom(t, w)
		if data["count"].(float64) != 1 {
			t.Errorf("count = %v", data["count"])
		}
	})

	t.Run("reset known conversation", func(t *testing.T) {
		w := doJSON(engine, http.MethodPost, "/api/v1/chat/reset/conv-1", nil)
		data := dataFrom(t, w)
		if data["status"] != "reset" {
			t.Errorf("status = %v", data["status"])
		}
	})

	t.Run("reset unknown conversation", func(t *testing.T) {
		w := doJSON(engine, http.MethodPost, "/api/v1/chat/reset/missing", nil)
		data := dataFrom(t, w)
		if data["status"] != "not_found" {
			t.Errorf("status = %v", data["status"])
		}
	})

	t.Run("delete", func(t *testing.T) {
		w := doJSON(engine, http.MethodDelete, "/api/v1/chat/conv-1", nil)
		data := dataFrom(t, w)
		if data["status"] != "deleted" {
			t.Errorf("status = %v", data["status"])
		}
		if sessions.Len() != 0 {
			t.Errorf("sessions = %d, want 0", sessions.Len())
		}

		w = doJSON(engine, http.MethodDelete, "/api/v1/chat/conv-1", nil)
		data = dataFrom(t, w)
		if data["status"] != "not_found" {
			t.Errorf("status = %v", data["status"])
		}
	})
}
