package llmprovider

import (
	"context"

	"ai-negotiator/pkg/anthropic"
	"ai-negotiator/pkg/gemini"
)

// anthropicAdapter adapts the Anthropic messages API client to Provider.
type anthropicAdapter struct {
	client anthropic.IAnthropic
}

// NewAnthropicAdapter wraps an Anthropic client as a Provider
func NewAnthropicAdapter(client anthropic.IAnthropic) Provider {
	return &anthropicAdapter{client: client}
}

func (a *anthropicAdapter) Generate(ctx context.Context, req *Request) (*Response, error) {
	apiReq := &anthropic.Request{
		System:      req.System,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Messages:    make([]anthropic.Message, 0, len(req.Messages)),
	}
	for _, msg := range req.Messages {
		// System entries travel in the dedicated field; the messages list
		// only accepts user/assistant roles.
		if msg.Role == "system" {
			if apiReq.System == "" {
				apiReq.System = msg.Content
			}
			continue
		}
		apiReq.Messages = append(apiReq.Messages, anthropic.Message{
			Role:    msg.Role,
			Content: msg.Content,
		})
	}

	resp, err := a.client.CreateMessage(ctx, apiReq)
	if err != nil {
		return nil, err
	}

	return &Response{
		Text:         resp.Text(),
		ProviderName: a.Name(),
		ModelName:    resp.Model,
		Usage: Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.InputTokens + resp.Usage.OutputTokens,
		},
	}, nil
}

func (a *anthropicAdapter) Name() string  { return "anthropic" }
func (a *anthropicAdapter) Model() string { return a.client.Model() }

// geminiAdapter adapts the Gemini client to Provider.
type geminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter wraps a Gemini client as a Provider
func NewGeminiAdapter(client gemini.IGemini) Provider {
	return &geminiAdapter{client: client}
}

func (g *geminiAdapter) Generate(ctx context.Context, req *Request) (*Response, error) {
	apiReq := &gemini.Request{
		Contents: make([]gemini.Content, 0, len(req.Messages)),
	}
	if req.System != "" {
		apiReq.SystemInstruction = &gemini.Content{
			Parts: []gemini.Part{{Text: req.System}},
		}
	}
	for _, msg := range req.Messages {
		role := msg.Role
		switch role {
		case "assistant":
			role = "model"
		case "system":
			// Fold stray system entries into the system instruction.
			if apiReq.SystemInstruction == nil {
				apiReq.SystemInstruction = &gemini.Content{
					Parts: []gemini.Part{{Text: msg.Content}},
				}
			}
			continue
		}
		apiReq.Contents = append(apiReq.Contents, gemini.Content{
			Role:  role,
			Parts: []gemini.Part{{Text: msg.Content}},
		})
	}
	if req.Temperature > 0 || req.MaxTokens > 0 {
		apiReq.GenerationConfig = &gemini.GenerationConfig{
			Temperature:     req.Temperature,
			MaxOutputTokens: req.MaxTokens,
		}
	}

	resp, err := g.client.GenerateContent(ctx, apiReq)
	if err != nil {
		return nil, err
	}

	out := &Response{
		Text:         resp.Text(),
		ProviderName: g.Name(),
		ModelName:    g.client.Model(),
	}
	if resp.UsageMetadata != nil {
		out.Usage = Usage{
			InputTokens:  resp.UsageMetadata.PromptTokenCount,
			OutputTokens: resp.UsageMetadata.CandidatesTokenCount,
			TotalTokens:  resp.UsageMetadata.TotalTokenCount,
		}
	}
	return out, nil
}

func (g *geminiAdapter) Name() string  { return "gemini" }
func (g *geminiAdapter) Model() string { return g.client.Model() }
