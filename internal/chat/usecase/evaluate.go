package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"ai-negotiator/internal/chat"
	"ai-negotiator/internal/chat/repository"
	"ai-negotiator/internal/model"
	"ai-negotiator/internal/negotiation"
	"ai-negotiator/internal/prompt"
	"ai-negotiator/pkg/llmprovider"
)

// Evaluate grades a finished negotiation against the session's hidden
// parameters and returns the coach report.
func (uc *implUseCase) Evaluate(ctx context.Context, input chat.EvaluateInput) (chat.EvaluateOutput, error) {
	if input.SessionID == "" {
		return chat.EvaluateOutput{}, chat.ErrInvalidInput
	}

	sess, err := uc.repo.Get(ctx, input.SessionID)
	switch {
	case err == nil:
	case errors.Is(err, repository.ErrNotFound):
		return chat.EvaluateOutput{}, chat.ErrSessionNotFound
	default:
		return chat.EvaluateOutput{}, fmt.Errorf("%w: %v", chat.ErrSessionUnavailable, err)
	}
	if len(sess.Turns) == 0 {
		return chat.EvaluateOutput{}, fmt.Errorf("%w: session has no conversation to evaluate", chat.ErrInvalidInput)
	}

	params := paramsFor(sess)
	terms := finalTerms(input.FinalTerms, sess.Turns)

	rendered, err := uc.evalTmpl.Render(map[string]string{
		prompt.SlotDealParameters:  negotiation.FormatParams(params),
		prompt.SlotConversationLog: conversationLog(sess.Turns),
		prompt.SlotFinalPrice:      formatTerm(terms.Price, func(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }),
		prompt.SlotFinalDelivery:   formatTerm(terms.Delivery, strconv.Itoa),
		prompt.SlotFinalVolume:     formatTerm(terms.Volume, strconv.Itoa),
	})
	if err != nil {
		return chat.EvaluateOutput{}, err
	}

	resp, err := uc.completer.Generate(ctx, &llmprovider.Request{
		Messages:    []llmprovider.Message{{Role: "user", Content: rendered}},
		Temperature: reportTemperature,
		MaxTokens:   reportMaxTokens,
	})
	if err != nil {
		return chat.EvaluateOutput{}, mapGenerationError(err)
	}

	return chat.EvaluateOutput{
		SessionID: input.SessionID,
		Report:    resp.Text,
	}, nil
}

// finalTerms prefers the caller-supplied terms, filling gaps from the most
// recent mention in the conversation.
func finalTerms(supplied negotiation.Terms, turns []model.Turn) negotiation.Terms {
	for i := len(turns) - 1; i >= 0; i-- {
		if supplied.Complete() && supplied.Volume != nil {
			break
		}
		extracted := negotiation.ExtractTerms(turns[i].Content)
		if supplied.Price == nil {
			supplied.Price = extracted.Price
		}
		if supplied.Delivery == nil {
			supplied.Delivery = extracted.Delivery
		}
		if supplied.Volume == nil {
			supplied.Volume = extracted.Volume
		}
	}
	return supplied
}

func formatTerm[T any](v *T, format func(T) string) string {
	if v == nil {
		return "not agreed"
	}
	return format(*v)
}
