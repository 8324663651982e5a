package anthropic

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) IAnthropic {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := New(Config{
		APIKey:  "test-key",
		Model:   "claude-sonnet-4-5",
		BaseURL: srv.URL,
	})
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return client
}

func TestGenerateContent(t *testing.T) {
	t.Run("text response", func(t *testing.T) {
		var captured apiRequest
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("x-api-key") != "test-key" {
				t.Errorf("missing api key header")
			}
			if r.Header.Get("anthropic-version") == "" {
				t.Errorf("missing version header")
			}
			json.NewDecoder(r.Body).Decode(&captured)
			json.NewEncoder(w).Encode(apiResponse{
				Role: "assistant",
				Content: []apiBlock{
					{Type: "text", Text: "hello"},
				},
				StopReason: "end_turn",
				Usage:      apiUsage{InputTokens: 3, OutputTokens: 1},
			})
		})

		resp, err := client.GenerateContent(context.Background(), &Request{
			SystemInstruction: &Content{Parts: []Part{{Text: "be terse"}}},
			Messages:          []Content{{Role: "user", Parts: []Part{{Text: "hi"}}}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resp.Content.Parts) == 0 || resp.Content.Parts[0].Text != "hello" {
			t.Errorf("content = %+v", resp.Content)
		}
		if captured.System != "be terse" {
			t.Errorf("system = %q, want top-level field", captured.System)
		}
		if captured.MaxTokens != DefaultMaxTokens {
			t.Errorf("max_tokens = %d, want default applied", captured.MaxTokens)
		}
	})

	t.Run("tool use response", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(apiResponse{
				Role: "assistant",
				Content: []apiBlock{
					{Type: "tool_use", ID: "toolu_1", Name: "execute_code", Input: map[string]interface{}{"code": "print(1)"}},
				},
				StopReason: "tool_use",
			})
		})

		resp, err := client.GenerateContent(context.Background(), &Request{
			Messages: []Content{{Role: "user", Parts: []Part{{Text: "run it"}}}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var call *FunctionCall
		for _, p := range resp.Content.Parts {
			if p.FunctionCall != nil {
				call = p.FunctionCall
			}
		}
		if call == nil || call.Name != "execute_code" || call.Args["code"] != "print(1)" {
			t.Fatalf("tool call = %+v", call)
		}
	})

	t.Run("API error propagates", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":{"message":"bad request"}}`))
		})

		_, err := client.GenerateContent(context.Background(), &Request{
			Messages: []Content{{Role: "user", Parts: []Part{{Text: "hi"}}}},
		})
		if err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestGenerateStream(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		w.Write([]byte("event: content_block_delta\n"))
		w.Write([]byte("data: {\"type\":\"content_block_delta\",\"delta\":{\"type\":\"text_delta\",\"text\":\"hel\"}}\n\n"))
		w.Write([]byte("event: content_block_delta\n"))
		w.Write([]byte("data: {\"type\":\"content_block_delta\",\"delta\":{\"type\":\"text_delta\",\"text\":\"lo\"}}\n\n"))
		w.Write([]byte("event: message_stop\n"))
		w.Write([]byte("data: {\"type\":\"message_stop\"}\n\n"))
	})

	textCh, errCh := client.GenerateStream(context.Background(), &Request{
		Messages: []Content{{Role: "user", Parts: []Part{{Text: "hi"}}}},
	})

	var got string
	for fragment := range textCh {
		got += fragment
	}
	if err := <-errCh; err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "hello" {
		t.Errorf("streamed text = %q", got)
	}
}
