package anthropic

import (
	"fmt"
	"net/http"
)

// Config holds the client configuration.
type Config struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// Validate checks that the required fields are set.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("anthropic: API key is required")
	}
	return nil
}

// Message is one entry in the conversation sent to the API.
// Content is plain text; the messages API also accepts block lists but this
// client only needs text.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request is the body for POST /v1/messages.
type Request struct {
	Model       string    `json:"model"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature,omitempty"`
	System      string    `json:"system,omitempty"`
	Messages    []Message `json:"messages"`
}

// ContentBlock is one element of the response content list.
type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Usage reports token consumption for one call.
type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

// Response is the body returned by POST /v1/messages.
type Response struct {
	ID         string         `json:"id"`
	Model      string         `json:"model"`
	StopReason string         `json:"stop_reason"`
	Content    []ContentBlock `json:"content"`
	Usage      Usage          `json:"usage"`
}

// Text concatenates the text blocks of the response.
func (r *Response) Text() string {
	out := ""
	for _, block := range r.Content {
		if block.Type == "text" {
			out += block.Text
		}
	}
	return out
}

// errorResponse is the error envelope returned on non-2xx statuses.
type errorResponse struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// APIError is a non-2xx response from the Anthropic API.
type APIError struct {
	StatusCode int
	ErrorType  string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("anthropic: API error %d (%s): %s", e.StatusCode, e.ErrorType, e.Message)
}
