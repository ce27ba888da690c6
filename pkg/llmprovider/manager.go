package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ai-negotiator/pkg/log"
)

// Manager orchestrates provider selection, fallback, and retry logic
type Manager struct {
	providers []Provider
	config    *Config
	logger    log.Logger
}

// Config defines configuration for the Provider Manager
type Config struct {
	FallbackEnabled bool
	MaxRetries      int           // attempts per provider, including the first
	RetryBaseDelay  time.Duration // doubled on each subsequent attempt
	CallTimeout     time.Duration // per-attempt deadline; 0 disables
}

// NewManager creates a new Provider Manager with the given providers, config, and logger
func NewManager(providers []Provider, config *Config, logger log.Logger) *Manager {
	if config.MaxRetries <= 0 {
		config.MaxRetries = 1
	}
	return &Manager{
		providers: providers,
		config:    config,
		logger:    logger,
	}
}

// Generate runs the completion through the provider chain. Transient failures
// are retried per provider with exponential backoff; permanent failures stop
// the whole chain immediately and are surfaced unwrapped so callers can map
// them to stable error codes.
func (m *Manager) Generate(ctx context.Context, req *Request) (*Response, error) {
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	var lastErr error

	for _, provider := range m.providers {
		resp, err := m.generateWithRetry(ctx, provider, req)
		if err == nil {
			m.logSuccess(ctx, provider, resp)
			return resp, nil
		}

		if !IsTransient(err) {
			m.logFailure(ctx, provider, err)
			return nil, &ProviderError{Provider: provider.Name(), Err: err}
		}

		m.logFailure(ctx, provider, err)
		lastErr = err

		if !m.config.FallbackEnabled {
			break
		}
	}

	return nil, fmt.Errorf("%w: %v", ErrUnavailable, lastErr)
}

// generateWithRetry attempts one provider with exponential backoff between
// transient failures.
func (m *Manager) generateWithRetry(ctx context.Context, provider Provider, req *Request) (*Response, error) {
	var lastErr error

	for attempt := 0; attempt < m.config.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := m.config.RetryBaseDelay << (attempt - 1)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		resp, err := m.callOnce(ctx, provider, req)
		if err == nil {
			return resp, nil
		}
		if !IsTransient(err) {
			return nil, err
		}
		lastErr = err
	}

	return nil, lastErr
}

// callOnce performs a single provider call under the per-attempt timeout and
// normalizes an empty completion into ErrEmptyCompletion.
func (m *Manager) callOnce(ctx context.Context, provider Provider, req *Request) (*Response, error) {
	if m.config.CallTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.config.CallTimeout)
		defer cancel()
	}

	resp, err := provider.Generate(ctx, req)
	if err != nil {
		// A deadline hit inside the provider surfaces as ctx.Err here.
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, context.DeadlineExceeded
		}
		if !IsTransient(err) {
			// Normalize permanent provider errors so callers only need the
			// package sentinels, not provider-specific error types.
			return nil, fmt.Errorf("%w: %v", ErrRejected, err)
		}
		return nil, err
	}
	if resp == nil || resp.Text == "" {
		return nil, ErrEmptyCompletion
	}
	return resp, nil
}

func (m *Manager) logSuccess(ctx context.Context, provider Provider, resp *Response) {
	m.logger.Infof(ctx, "LLM generation successful: provider=%s model=%s input_tokens=%d output_tokens=%d",
		provider.Name(), provider.Model(), resp.Usage.InputTokens, resp.Usage.OutputTokens)
}

func (m *Manager) logFailure(ctx context.Context, provider Provider, err error) {
	m.logger.Warnf(ctx, "LLM generation failed: provider=%s model=%s error=%v",
		provider.Name(), provider.Model(), err)
}
