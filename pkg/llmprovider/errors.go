package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"ai-negotiator/pkg/anthropic"
	"ai-negotiator/pkg/gemini"
)

var (
	// ErrNoProvidersConfigured indicates no providers are enabled
	ErrNoProvidersConfigured = errors.New("no providers configured")

	// ErrRejected indicates the provider rejected the request permanently
	// (invalid request, content policy). Not retried.
	ErrRejected = errors.New("generation rejected by provider")

	// ErrEmptyCompletion indicates a successful call that produced no usable
	// text. Treated as a permanent failure.
	ErrEmptyCompletion = errors.New("empty completion")

	// ErrUnavailable indicates all transient retries were exhausted
	ErrUnavailable = errors.New("generation unavailable")
)

// ProviderError wraps a provider-specific error with its origin.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// IsTransient classifies a provider call error. Timeouts, rate limits and
// 5xx-class responses are worth retrying; everything else is permanent.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	if errors.Is(err, ErrRejected) || errors.Is(err, ErrEmptyCompletion) {
		return false
	}

	var status int
	var anthropicErr *anthropic.APIError
	var geminiErr *gemini.APIError
	switch {
	case errors.As(err, &anthropicErr):
		status = anthropicErr.StatusCode
	case errors.As(err, &geminiErr):
		status = geminiErr.StatusCode
	default:
		// Network-level failures (connection refused, reset) arrive as
		// wrapped url.Error values without a status. Retry them.
		return true
	}

	switch {
	case status == http.StatusTooManyRequests, status == http.StatusRequestTimeout:
		return true
	case status >= 500:
		return true
	default:
		return false
	}
}
