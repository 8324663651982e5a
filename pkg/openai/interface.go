package openai

import "context"

// IOpenAI defines the interface for OpenAI-compatible chat completion APIs.
// Implementations are safe for concurrent use.
type IOpenAI interface {
	// GenerateContent sends a chat completion request
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// GenerateStream sends a streaming chat completion request.
	// Fragments are delivered in order on the returned channel, which is
	// closed when the stream ends. Errors are delivered on the error channel.
	GenerateStream(ctx context.Context, req *Request) (<-chan string, <-chan error)

	// Model returns the model being used
	Model() string
}

// New creates a new OpenAI client with the given configuration
func New(cfg Config) (IOpenAI, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newOpenAIImpl(cfg), nil
}
