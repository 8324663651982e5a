package openai

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

// newOpenAIImpl creates a new OpenAI implementation
func newOpenAIImpl(cfg Config) *openAIImpl {
	return &openAIImpl{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		httpClient: cfg.HTTPClient,
	}
}

// GenerateContent sends a chat completion request to the OpenAI API
func (o *openAIImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	apiReq := o.transformRequest(req)

	body, err := json.Marshal(apiReq)
	if err != nil {
		return nil, fmt.Errorf("openai: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		o.baseURL+"/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("openai: failed to create request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+o.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := o.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("openai: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("openai: API error %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var apiResp apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("openai: failed to decode response: %w", err)
	}

	return o.transformResponse(&apiResp), nil
}

// GenerateStream sends a streaming chat completion request. The text channel
// is closed when the server finishes the stream; a failed request or a broken
// stream is reported on the error channel.
func (o *openAIImpl) GenerateStream(ctx context.Context, req *Request) (<-chan string, <-chan error) {
	textCh := make(chan string)
	errCh := make(chan error, 1)

	go func() {
		defer close(textCh)
		defer close(errCh)

		apiReq := o.transformRequest(req)
		apiReq.Stream = true

		body, err := json.Marshal(apiReq)
		if err != nil {
			errCh <- fmt.Errorf("openai: failed to marshal request: %w", err)
			return
		}

		httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
			o.baseURL+"/chat/completions", bytes.NewBuffer(body))
		if err != nil {
			errCh <- fmt.Errorf("openai: failed to create request: %w", err)
			return
		}

		httpReq.Header.Set("Authorization", "Bearer "+o.apiKey)
		httpReq.Header.Set("Content-Type", "application/json")
		httpReq.Header.Set("Accept", "text/event-stream")

		resp, err := o.httpClient.Do(httpReq)
		if err != nil {
			errCh <- fmt.Errorf("openai: API call failed: %w", err)
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			bodyBytes, _ := io.ReadAll(resp.Body)
			errCh <- fmt.Errorf("openai: API error %d: %s", resp.StatusCode, string(bodyBytes))
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
			if payload == "[DONE]" {
				return
			}

			var chunk apiStreamChunk
			if err := json.Unmarshal([]byte(payload), &chunk); err != nil {
				errCh <- fmt.Errorf("openai: failed to decode stream chunk: %w", err)
				return
			}
			if len(chunk.Choices) == 0 {
				continue
			}
			if text := chunk.Choices[0].Delta.Content; text != "" {
				select {
				case textCh <- text:
				case <-ctx.Done():
					errCh <- ctx.Err()
					return
				}
			}
		}
		if err := scanner.Err(); err != nil {
			errCh <- fmt.Errorf("openai: stream read failed: %w", err)
		}
	}()

	return textCh, errCh
}

// Model returns the model being used
func (o *openAIImpl) Model() string {
	return o.model
}

// transformRequest converts a normalized request to the wire format
func (o *openAIImpl) transformRequest(req *Request) *apiRequest {
	apiReq := &apiRequest{
		Model:       o.model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Messages:    make([]apiMessage, 0),
	}

	if req.SystemInstruction != nil {
		systemMsg := o.transformMessage(req.SystemInstruction)
		systemMsg.Role = "system"
		apiReq.Messages = append(apiReq.Messages, systemMsg)
	}

	for _, msg := range req.Messages {
		apiReq.Messages = append(apiReq.Messages, o.transformMessage(&msg))
	}

	if len(req.Tools) > 0 {
		apiReq.Tools = make([]apiTool, len(req.Tools))
		for i, tool := range req.Tools {
			apiReq.Tools[i] = apiTool{
				Type: "function",
				Function: apiFunctionDecl{
					Name:        tool.Name,
					Description: tool.Description,
					Parameters:  tool.Parameters,
				},
			}
		}
		apiReq.ToolChoice = "auto"
	}

	return apiReq
}

func (o *openAIImpl) transformMessage(msg *Content) apiMessage {
	apiMsg := apiMessage{Role: msg.Role}

	for _, part := range msg.Parts {
		if part.Text != "" {
			if apiMsg.Content != "" {
				apiMsg.Content += "\n"
			}
			apiMsg.Content += part.Text
		}

		if part.FunctionCall != nil {
			argsJSON, _ := json.Marshal(part.FunctionCall.Args)
			toolCall := apiToolCall{
				ID:   "call_" + part.FunctionCall.Name,
				Type: "function",
				Function: apiFunctionCall{
					Name:      part.FunctionCall.Name,
					Arguments: string(argsJSON),
				},
			}
			apiMsg.ToolCalls = append(apiMsg.ToolCalls, toolCall)
		}

		if part.FunctionResponse != nil {
			apiMsg.Role = "tool"
			apiMsg.ToolCallID = "call_" + part.FunctionResponse.Name
			responseJSON, _ := json.Marshal(part.FunctionResponse.Response)
			apiMsg.Content = string(responseJSON)
		}
	}

	return apiMsg
}

func (o *openAIImpl) transformResponse(resp *apiResponse) *Response {
	if resp == nil || len(resp.Choices) == 0 {
		return &Response{Usage: &Usage{}}
	}

	choice := resp.Choices[0]
	message := Content{
		Role:  choice.Message.Role,
		Parts: make([]Part, 0),
	}

	if choice.Message.Content != "" {
		message.Parts = append(message.Parts, Part{Text: choice.Message.Content})
	}

	for _, toolCall := range choice.Message.ToolCalls {
		if toolCall.Type == "function" {
			var args map[string]interface{}
			if err := json.Unmarshal([]byte(toolCall.Function.Arguments), &args); err != nil {
				args = make(map[string]interface{})
			}

			message.Parts = append(message.Parts, Part{
				FunctionCall: &FunctionCall{
					Name: toolCall.Function.Name,
					Args: args,
				},
			})
		}
	}

	usage := &Usage{
		InputTokens:  resp.Usage.PromptTokens,
		OutputTokens: resp.Usage.CompletionTokens,
		TotalTokens:  resp.Usage.TotalTokens,
	}

	return &Response{
		Content:      message,
		FinishReason: choice.FinishReason,
		Usage:        usage,
	}
}
