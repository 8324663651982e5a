package llmprovider

import (
	"context"

	"multi-agent-code-assistant/pkg/anthropic"
	"multi-agent-code-assistant/pkg/openai"
)

// OpenAIAdapter adapts pkg/openai to the llmprovider.Provider interface
type OpenAIAdapter struct {
	client openai.IOpenAI
}

// NewOpenAIAdapter creates a new OpenAI adapter
func NewOpenAIAdapter(client openai.IOpenAI) *OpenAIAdapter {
	return &OpenAIAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	openaiReq := &openai.Request{
		SystemInstruction: convertToOpenAIContent(req.SystemInstruction),
		Messages:          convertToOpenAIContents(req.Messages),
		Tools:             convertToOpenAITools(req.Tools),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	}

	resp, err := a.client.GenerateContent(ctx, openaiReq)
	if err != nil {
		return nil, err
	}

	return &Response{
		Content:      convertFromOpenAIContent(resp.Content),
		FinishReason: resp.FinishReason,
		ProviderName: "openai",
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// GenerateStream implements Provider interface
func (a *OpenAIAdapter) GenerateStream(ctx context.Context, req *Request) (<-chan string, <-chan error) {
	openaiReq := &openai.Request{
		SystemInstruction: convertToOpenAIContent(req.SystemInstruction),
		Messages:          convertToOpenAIContents(req.Messages),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	}
	return a.client.GenerateStream(ctx, openaiReq)
}

// Name returns provider name
func (a *OpenAIAdapter) Name() string {
	return "openai"
}

// Model returns model name
func (a *OpenAIAdapter) Model() string {
	return a.client.Model()
}

// AnthropicAdapter adapts pkg/anthropic to the llmprovider.Provider interface
type AnthropicAdapter struct {
	client anthropic.IAnthropic
}

// NewAnthropicAdapter creates a new Anthropic adapter
func NewAnthropicAdapter(client anthropic.IAnthropic) *AnthropicAdapter {
	return &AnthropicAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *AnthropicAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	anthropicReq := &anthropic.Request{
		SystemInstruction: convertToAnthropicContent(req.SystemInstruction),
		Messages:          convertToAnthropicContents(req.Messages),
		Tools:             convertToAnthropicTools(req.Tools),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	}

	resp, err := a.client.GenerateContent(ctx, anthropicReq)
	if err != nil {
		return nil, err
	}

	return &Response{
		Content:      convertFromAnthropicContent(resp.Content),
		FinishReason: resp.StopReason,
		ProviderName: "anthropic",
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// GenerateStream implements Provider interface
func (a *AnthropicAdapter) GenerateStream(ctx context.Context, req *Request) (<-chan string, <-chan error) {
	anthropicReq := &anthropic.Request{
		SystemInstruction: convertToAnthropicContent(req.SystemInstruction),
		Messages:          convertToAnthropicContents(req.Messages),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	}
	return a.client.GenerateStream(ctx, anthropicReq)
}

// Name returns provider name
func (a *AnthropicAdapter) Name() string {
	return "anthropic"
}

// Model returns model name
func (a *AnthropicAdapter) Model() string {
	return a.client.Model()
}

// Conversion helpers for OpenAI
func convertToOpenAIContent(msg *Message) *openai.Content {
	if msg == nil {
		return nil
	}
	parts := make([]openai.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = openai.Part{Text: p.Text}
		if p.FunctionCall != nil {
			parts[i].FunctionCall = &openai.FunctionCall{
				Name: p.FunctionCall.Name,
				Args: p.FunctionCall.Args,
			}
		}
		if p.FunctionResponse != nil {
			parts[i].FunctionResponse = &openai.FunctionResponse{
				Name:     p.FunctionResponse.Name,
				Response: p.FunctionResponse.Response,
			}
		}
	}
	return &openai.Content{Role: msg.Role, Parts: parts}
}

func convertToOpenAIContents(msgs []Message) []openai.Content {
	contents := make([]openai.Content, len(msgs))
	for i, msg := range msgs {
		contents[i] = *convertToOpenAIContent(&msg)
	}
	return contents
}

func convertToOpenAITools(tools []Tool) []openai.Tool {
	openaiTools := make([]openai.Tool, len(tools))
	for i, t := range tools {
		openaiTools[i] = openai.Tool{
			Name:        t.Name,
			Description: t.Description,
			Parameters:  t.Parameters,
		}
	}
	return openaiTools
}

func convertFromOpenAIContent(content openai.Content) Message {
	parts := make([]Part, len(content.Parts))
	for i, p := range content.Parts {
		parts[i] = Part{Text: p.Text}
		if p.FunctionCall != nil {
			parts[i].FunctionCall = &FunctionCall{
				Name: p.FunctionCall.Name,
				Args: p.FunctionCall.Args,
			}
		}
	}
	return Message{Role: content.Role, Parts: parts}
}

// Conversion helpers for Anthropic
func convertToAnthropicContent(msg *Message) *anthropic.Content {
	if msg == nil {
		return nil
	}
	parts := make([]anthropic.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = anthropic.Part{Text: p.Text}
		if p.FunctionCall != nil {
			parts[i].FunctionCall = &anthropic.FunctionCall{
				Name: p.FunctionCall.Name,
				Args: p.FunctionCall.Args,
			}
		}
		if p.FunctionResponse != nil {
			parts[i].FunctionResponse = &anthropic.FunctionResponse{
				Name:     p.FunctionResponse.Name,
				Response: p.FunctionResponse.Response,
			}
		}
	}
	return &anthropic.Content{Role: msg.Role, Parts: parts}
}

func convertToAnthropicContents(msgs []Message) []anthropic.Content {
	contents := make([]anthropic.Content, len(msgs))
	for i, msg := range msgs {
		contents[i] = *convertToAnthropicContent(&msg)
	}
	return contents
}

func convertToAnthropicTools(tools []Tool) []anthropic.Tool {
	anthropicTools := make([]anthropic.Tool, len(tools))
	for i, t := range tools {
		anthropicTools[i] = anthropic.Tool{
			Name:        t.Name,
			Description: t.Description,
			Parameters:  t.Parameters,
		}
	}
	return anthropicTools
}

func convertFromAnthropicContent(content anthropic.Content) Message {
	parts := make([]Part, len(content.Parts))
	for i, p := range content.Parts {
		parts[i] = Part{Text: p.Text}
		if p.FunctionCall != nil {
			parts[i].FunctionCall = &FunctionCall{
				Name: p.FunctionCall.Name,
				Args: p.FunctionCall.Args,
			}
		}
	}
	return Message{Role: content.Role, Parts: parts}
}
