package anthropic

import "time"

const (
	// DefaultBaseURL is the default Anthropic API endpoint
	DefaultBaseURL = "https://api.anthropic.com"

	// DefaultModel is the default model to use
	DefaultModel = "claude-3-haiku-20240307"

	// DefaultMaxTokens caps the completion length when the caller does not set one
	DefaultMaxTokens = 500

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 60 * time.Second

	// apiVersion is the required anthropic-version header value
	apiVersion = "2023-06-01"
)
