package llmprovider

import "context"

// Provider defines the interface for LLM providers
type Provider interface {
	// Generate sends a completion request and returns a response
	Generate(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "anthropic", "gemini")
	Name() string

	// Model returns the model being used
	Model() string
}

// Message represents one conversation entry in provider-neutral form
type Message struct {
	Role    string // "user", "assistant", "system"
	Content string
}

// Request represents a normalized completion request. All conversational
// state is carried explicitly; providers are assumed stateless.
type Request struct {
	System      string
	Messages    []Message
	Temperature float64
	MaxTokens   int
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Response represents a normalized completion response
type Response struct {
	Text         string
	ProviderName string
	ModelName    string
	Usage        Usage
}
