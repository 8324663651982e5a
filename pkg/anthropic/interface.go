package anthropic

import "context"

// IAnthropic defines the interface for the Anthropic messages API client.
// Implementations are safe for concurrent use.
type IAnthropic interface {
	// GenerateContent sends a messages request
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// GenerateStream sends a streaming messages request. Fragments are
	// delivered in order on the returned channel, which is closed when the
	// stream ends. Errors are delivered on the error channel.
	GenerateStream(ctx context.Context, req *Request) (<-chan string, <-chan error)

	// Model returns the model being used
	Model() string
}

// New creates a new Anthropic client with the given configuration
func New(cfg Config) (IAnthropic, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newAnthropicImpl(cfg), nil
}
