package config

import (
	"strings"
	"testing"
)

func TestValidateLLMConfig(t *testing.T) {
	valid := func() *LLMConfig {
		return &LLMConfig{
			Providers: []ProviderConfig{
				{Name: "anthropic", Enabled: true, Priority: 1, Model: "claude-3-5-haiku-latest", APIKey: "k"},
				{Name: "gemini", Enabled: true, Priority: 2, Model: "gemini-2.0-flash", APIKey: "k"},
			},
		}
	}

	t.Run("valid", func(t *testing.T) {
		if err := validateLLMConfig(valid()); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("no providers", func(t *testing.T) {
		if err := validateLLMConfig(&LLMConfig{}); err == nil {
			t.Error("expected error for empty provider list")
		}
	})

	t.Run("missing model", func(t *testing.T) {
		cfg := valid()
		cfg.Providers[0].Model = ""
		if err := validateLLMConfig(cfg); err == nil || !strings.Contains(err.Error(), "model is required") {
			t.Errorf("error = %v, want model is required", err)
		}
	})

	t.Run("duplicate priority", func(t *testing.T) {
		cfg := valid()
		cfg.Providers[1].Priority = 1
		if err := validateLLMConfig(cfg); err == nil || !strings.Contains(err.Error(), "duplicate priority") {
			t.Errorf("error = %v, want duplicate priority", err)
		}
	})

	t.Run("all disabled", func(t *testing.T) {
		cfg := valid()
		cfg.Providers[0].Enabled = false
		cfg.Providers[1].Enabled = false
		if err := validateLLMConfig(cfg); err == nil || !strings.Contains(err.Error(), "no enabled") {
			t.Errorf("error = %v, want no enabled providers", err)
		}
	})
}

func TestExpandEnvVar(t *testing.T) {
	t.Run("plain value passes through", func(t *testing.T) {
		if got := expandEnvVar("literal-key"); got != "literal-key" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("expands from environment", func(t *testing.T) {
		t.Setenv("NEGOTIATOR_TEST_KEY", "secret")
		if got := expandEnvVar("${NEGOTIATOR_TEST_KEY}"); got != "secret" {
			t.Errorf("got %q, want secret", got)
		}
	})

	t.Run("unset variable stays as written", func(t *testing.T) {
		if got := expandEnvVar("${NEGOTIATOR_DEFINITELY_UNSET}"); got != "${NEGOTIATOR_DEFINITELY_UNSET}" {
			t.Errorf("got %q", got)
		}
	})
}
