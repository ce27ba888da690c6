package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"ai-negotiator/internal/chat"
	"ai-negotiator/internal/model"
	"ai-negotiator/internal/negotiation"
	"ai-negotiator/internal/prompt"
	"ai-negotiator/pkg/llmprovider"
)

// dealParamsKey is the session metadata slot holding the hidden deal
// parameters as JSON.
const dealParamsKey = "deal_params"

const (
	replyTemperature = 0.7
	replyMaxTokens   = 500

	reportTemperature = 0.3
	reportMaxTokens   = 1500
)

func storeParams(session *model.Session, params negotiation.DealParams) {
	raw, _ := json.Marshal(params)
	if session.Metadata == nil {
		session.Metadata = make(map[string]string, 1)
	}
	session.Metadata[dealParamsKey] = string(raw)
}

// paramsFor reads the deal parameters out of session metadata. Sessions that
// predate the metadata slot get deterministic parameters re-derived from
// their id, and the slot backfilled.
func paramsFor(session *model.Session) negotiation.DealParams {
	if raw, ok := session.Metadata[dealParamsKey]; ok {
		var params negotiation.DealParams
		if err := json.Unmarshal([]byte(raw), &params); err == nil {
			return params
		}
	}
	params := negotiation.GenerateParams(session.ID)
	storeParams(session, params)
	return params
}

func planToRequest(plan *prompt.Plan, temperature float64, maxTokens int) *llmprovider.Request {
	req := &llmprovider.Request{
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}
	for _, entry := range plan.Entries {
		if entry.Role == model.RoleSystem {
			req.System = entry.Content
			continue
		}
		req.Messages = append(req.Messages, llmprovider.Message{
			Role:    string(entry.Role),
			Content: entry.Content,
		})
	}
	return req
}

// mapGenerationError translates provider-package sentinels into chat domain
// errors. Anything unrecognized is treated as unavailability.
func mapGenerationError(err error) error {
	switch {
	case errors.Is(err, llmprovider.ErrEmptyCompletion):
		return fmt.Errorf("%w: %v", chat.ErrGenerationEmpty, err)
	case errors.Is(err, llmprovider.ErrRejected):
		return fmt.Errorf("%w: %v", chat.ErrGenerationRejected, err)
	case errors.Is(err, llmprovider.ErrNoProvidersConfigured):
		return fmt.Errorf("%w: %v", chat.ErrGenerationUnavailable, err)
	default:
		return fmt.Errorf("%w: %v", chat.ErrGenerationUnavailable, err)
	}
}

// conversationLog renders session history as the transcript block of the
// evaluation prompt.
func conversationLog(turns []model.Turn) string {
	var sb strings.Builder
	for _, turn := range turns {
		label := "Buyer (User)"
		if turn.Role == model.RoleAssistant {
			label = "Seller (Alex)"
		}
		sb.WriteString(label)
		sb.WriteString(": ")
		sb.WriteString(turn.Content)
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (uc *implUseCase) logErr(ctx context.Context, where string, err error) {
	uc.l.Errorf(ctx, "chat.usecase.%s: %v", where, err)
}
