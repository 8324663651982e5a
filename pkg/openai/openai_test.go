package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) IOpenAI {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := New(Config{
		APIKey:  "test-key",
		Model:   "gpt-4o-mini",
		BaseURL: srv.URL,
	})
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return client
}

func TestGenerateContent(t *testing.T) {
	t.Run("text response", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != "Bearer test-key" {
				t.Errorf("missing auth header")
			}
			json.NewEncoder(w).Encode(apiResponse{
				Model: "gpt-4o-mini",
				Choices: []apiChoice{{
					Message:      apiMessage{Role: "assistant", Content: "hello"},
					FinishReason: "stop",
				}},
				Usage: apiUsage{PromptTokens: 3, CompletionTokens: 1, TotalTokens: 4},
			})
		})

		resp, err := client.GenerateContent(context.Background(), &Request{
			Messages: []Content{{Role: "user", Parts: []Part{{Text: "hi"}}}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resp.Content.Parts) == 0 || resp.Content.Parts[0].Text != "hello" {
			t.Errorf("content = %+v", resp.Content)
		}
		if resp.Usage == nil || resp.Usage.TotalTokens != 4 {
			t.Errorf("usage = %+v", resp.Usage)
		}
	})

	t.Run("tool call response", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(apiResponse{
				Choices: []apiChoice{{
					Message: apiMessage{
						Role: "assistant",
						ToolCalls: []apiToolCall{{
							ID:   "call_1",
							Type: "function",
							Function: apiFunctionCall{
								Name:      "execute_code",
								Arguments: `{"code":"print(1)"}`,
							},
						}},
					},
					FinishReason: "tool_calls",
				}},
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
		if call == nil || call.Name != "execute_code" {
			t.Fatalf("no function call in response: %+v", resp.Content)
		}
		if call.Args["code"] != "print(1)" {
			t.Errorf("args = %v", call.Args)
		}
	})

	t.Run("API error propagates", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":{"message":"rate limited"}}`))
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
		w.Write([]byte("data: {\"choices\":[{\"delta\":{\"content\":\"hel\"}}]}\n\n"))
		w.Write([]byte("data: {\"choices\":[{\"delta\":{\"content\":\"lo\"}}]}\n\n"))
		w.Write([]byte("data: [DONE]\n\n"))
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
