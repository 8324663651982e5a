package anthropic

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// newAnthropicImpl creates a new Anthropic implementation
func newAnthropicImpl(cfg Config) *anthropicImpl {
	return &anthropicImpl{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		httpClient: cfg.HTTPClient,
	}
}

// GenerateContent sends a messages request to the Anthropic API
func (a *anthropicImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	apiReq := a.transformRequest(req)

	body, err := json.Marshal(apiReq)
	if err != nil {
		return nil, fmt.Errorf("anthropic: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		a.baseURL+"/messages", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("anthropic: failed to create request: %w", err)
	}

	a.setHeaders(httpReq)

	resp, err := a.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("anthropic: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("anthropic: API error %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var apiResp apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("anthropic: failed to decode response: %w", err)
	}

	return a.transformResponse(&apiResp), nil
}

// GenerateStream sends a streaming messages request. Only text deltas are
// forwarded; tool-use blocks are not supported on the streaming path.
func (a *anthropicImpl) GenerateStream(ctx context.Context, req *Request) (<-chan string, <-chan error) {
	textCh := make(chan string)
	errCh := make(chan error, 1)

	go func() {
		defer close(textCh)
		defer close(errCh)

		apiReq := a.transformRequest(req)
		apiReq.Stream = true

		body, err := json.Marshal(apiReq)
		if err != nil {
			errCh <- fmt.Errorf("anthropic: failed to marshal request: %w", err)
			return
		}

		httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
			a.baseURL+"/messages", bytes.NewBuffer(body))
		if err != nil {
			errCh <- fmt.Errorf("anthropic: failed to create request: %w", err)
			return
		}

		a.setHeaders(httpReq)
		httpReq.Header.Set("Accept", "text/event-stream")

		resp, err := a.httpClient.Do(httpReq)
		if err != nil {
			errCh <- fmt.Errorf("anthropic: API call failed: %w", err)
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			bodyBytes, _ := io.ReadAll(resp.Body)
			errCh <- fmt.Errorf("anthropic: API error %d: %s", resp.StatusCode, string(bodyBytes))
			return
		}

		scanner := bufio.NewScanner(resp.Body)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if !strings.HasPrefix(line, "data:") {
				continue
			}
			payload := strings.TrimSpace(strings.TrimPrefix(line, "data:"))

			var event apiStreamEvent
			if err := json.Unmarshal([]byte(payload), &event); err != nil {
				errCh <- fmt.Errorf("anthropic: failed to decode stream event: %w", err)
				return
			}

			switch event.Type {
			case "content_block_delta":
				if event.Delta.Text != "" {
					select {
					case textCh <- event.Delta.Text:
					case <-ctx.Done():
						errCh <- ctx.Err()
						return
					}
				}
			case "message_stop":
				return
			}
		}
		if err := scanner.Err(); err != nil {
			errCh <- fmt.Errorf("anthropic: stream read failed: %w", err)
		}
	}()

	return textCh, errCh
}

// Model returns the model being used
func (a *anthropicImpl) Model() string {
	return a.model
}

func (a *anthropicImpl) setHeaders(req *http.Request) {
	req.Header.Set("x-api-key", a.apiKey)
	req.Header.Set("anthropic-version", APIVersion)
	req.Header.Set("Content-Type", "application/json")
}

// transformRequest converts a normalized request to the wire format.
// The messages API takes the system prompt as a top-level field, so system
// content is folded into the request instead of the message list.
func (a *anthropicImpl) transformRequest(req *Request) *apiRequest {
	apiReq := &apiRequest{
		Model:       a.model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Messages:    make([]apiMessage, 0),
	}
	if apiReq.MaxTokens == 0 {
		apiReq.MaxTokens = DefaultMaxTokens
	}

	var systemParts []string
	if req.SystemInstruction != nil {
		for _, p := range req.SystemInstruction.Parts {
			if p.Text != "" {
				systemParts = append(systemParts, p.Text)
			}
		}
	}

	for _, msg := range req.Messages {
		if msg.Role == "system" {
			for _, p := range msg.Parts {
				if p.Text != "" {
					systemParts = append(systemParts, p.Text)
				}
			}
			continue
		}
		apiReq.Messages = append(apiReq.Messages, a.transformMessage(&msg))
	}
	apiReq.System = strings.Join(systemParts, "\n\n")

	if len(req.Tools) > 0 {
		apiReq.Tools = make([]apiTool, len(req.Tools))
		for i, tool := range req.Tools {
			apiReq.Tools[i] = apiTool{
				Name:        tool.Name,
				Description: tool.Description,
				InputSchema: tool.Parameters,
			}
		}
	}

	return apiReq
}

func (a *anthropicImpl) transformMessage(msg *Content) apiMessage {
	apiMsg := apiMessage{Role: msg.Role}
	if apiMsg.Role == "model" {
		apiMsg.Role = "assistant"
	}

	for _, part := range msg.Parts {
		if part.Text != "" {
			apiMsg.Content = append(apiMsg.Content, apiBlock{Type: "text", Text: part.Text})
		}

		if part.FunctionCall != nil {
			apiMsg.Content = append(apiMsg.Content, apiBlock{
				Type:  "tool_use",
				ID:    "toolu_" + part.FunctionCall.Name,
				Name:  part.FunctionCall.Name,
				Input: part.FunctionCall.Args,
			})
		}

		if part.FunctionResponse != nil {
			apiMsg.Role = "user"
			responseJSON, _ := json.Marshal(part.FunctionResponse.Response)
			apiMsg.Content = append(apiMsg.Content, apiBlock{
				Type:      "tool_result",
				ToolUseID: "toolu_" + part.FunctionResponse.Name,
				Content:   responseJSON,
			})
		}
	}

	return apiMsg
}

func (a *anthropicImpl) transformResponse(resp *apiResponse) *Response {
	if resp == nil {
		return &Response{Usage: &Usage{}}
	}

	message := Content{
		Role:  "assistant",
		Parts: make([]Part, 0),
	}

	for _, block := range resp.Content {
		switch block.Type {
		case "text":
			message.Parts = append(message.Parts, Part{Text: block.Text})
		case "tool_use":
			message.Parts = append(message.Parts, Part{
				FunctionCall: &FunctionCall{
					Name: block.Name,
					Args: block.Input,
				},
			})
		}
	}

	return &Response{
		Content:    message,
		StopReason: resp.StopReason,
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.InputTokens + resp.Usage.OutputTokens,
		},
	}
}
