package prompt

import (
	"fmt"
	"unicode/utf8"

	"github.com/pkoukk/tiktoken-go"
)

// Counter measures prompt content in budget units. The orchestrator does not
// care whether a unit is a rune or a token; the budget policy is whatever
// counter it is configured with.
type Counter interface {
	Count(text string) int
	Name() string
}

// RuneCounter budgets by rune count. Cheap and dependency-free; the default.
type RuneCounter struct{}

func (RuneCounter) Count(text string) int { return utf8.RuneCountInString(text) }
func (RuneCounter) Name() string          { return "runes" }

// TokenCounter budgets by model token count using tiktoken.
type TokenCounter struct {
	enc *tiktoken.Tiktoken
}

// NewTokenCounter builds a token counter for the given model, falling back
// to the cl100k_base encoding for models tiktoken does not know.
func NewTokenCounter(model string) (*TokenCounter, error) {
	enc, err := tiktoken.EncodingForModel(model)
	if err != nil {
		enc, err = tiktoken.GetEncoding("cl100k_base")
		if err != nil {
			return nil, fmt.Errorf("get tokenizer: %w", err)
		}
	}
	return &TokenCounter{enc: enc}, nil
}

func (c *TokenCounter) Count(text string) int { return len(c.enc.Encode(text, nil, nil)) }
func (c *TokenCounter) Name() string          { return "tokens" }
