package anthropic

import "time"

const (
	// DefaultModel is the default Claude model
	DefaultModel = "claude-3-sonnet-20240229"

	// DefaultBaseURL is the default Anthropic API endpoint
	DefaultBaseURL = "https://api.anthropic.com/v1"

	// DefaultMaxTokens is required by the messages API when the caller does not set one
	DefaultMaxTokens = 2000

	// APIVersion is the anthropic-version header value
	APIVersion = "2023-06-01"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 60 * time.Second
)
