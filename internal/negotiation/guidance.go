package negotiation

import (
	"fmt"
	"math"
	"strings"

	"ai-negotiator/internal/model"
)

// Concession thresholds and step sizes, relative to the seller's last price.
const (
	lowballGapThreshold = 0.20
	closeGapThreshold   = 0.10

	lowballStep  = 0.995
	standardStep = 0.985
	closingStep  = 0.975
)

var agreementWords = []string{"deal", "agree", "accept", "done", "sounds good", "okay"}

// TurnGuidance computes the exact move for the seller's next reply. The
// result is injected into the prompt as an instruction the model must obey,
// which keeps the arithmetic out of the model's hands.
func TurnGuidance(userInput string, turns []model.Turn, params DealParams) string {
	lastAIPrice, lastAIDelivery := lastSellerTerms(turns, params)

	userPrice := ExtractPrice(userInput)
	userVolume := ExtractVolume(userInput)
	userDelivery := ExtractDelivery(userInput)

	// Agreement with a missing critical term: never confirm an incomplete deal.
	lower := strings.ToLower(userInput)
	for _, w := range agreementWords {
		if !strings.Contains(lower, w) {
			continue
		}
		if userDelivery == nil && lastAIDelivery == nil {
			return "User agreed, but DELIVERY DATE is missing. Do NOT confirm. Say: 'We have a price, but we need to agree on delivery time.'"
		}
		if userPrice == nil && lastAIPrice == 0 {
			return "User agreed, but PRICE is unclear. Do NOT confirm. Ask to confirm price."
		}
		break
	}

	// Small orders lose their leverage.
	if userVolume != nil && *userVolume < params.StandardVolume {
		return fmt.Sprintf("User asked for %d units. Small orders cost MORE. Refuse discount. Hold firm at $%.2f.", *userVolume, lastAIPrice)
	}

	// An offer above the current ask is almost certainly a typo.
	if userPrice != nil && *userPrice > lastAIPrice {
		return fmt.Sprintf("User offered $%.2f, which is HIGHER than your price ($%.2f). Ask if that is a typo.", *userPrice, lastAIPrice)
	}

	// Repeated offer means stalemate: hold the line.
	if prev := previousUserInput(turns); prev != "" {
		prevPrice := ExtractPrice(prev)
		same := strings.EqualFold(strings.TrimSpace(userInput), strings.TrimSpace(prev))
		if same || (userPrice != nil && prevPrice != nil && math.Abs(*userPrice-*prevPrice) < 0.1) {
			return fmt.Sprintf("User repeated their offer. You MUST hold firm at exactly $%.2f. Say: 'As I stated, I cannot accept that.'", lastAIPrice)
		}
	}

	// Gap-proportional concession.
	if userPrice != nil {
		gap := (lastAIPrice - *userPrice) / lastAIPrice
		switch {
		case gap > lowballGapThreshold:
			next := round2(lastAIPrice * lowballStep)
			return fmt.Sprintf("User is lowballing ($%.2f). You MUST offer exactly $%.2f. Say: 'That is far too low.'", *userPrice, next)
		case gap < closeGapThreshold:
			next := round2(lastAIPrice * closingStep)
			return fmt.Sprintf("We are getting close. Offer exactly $%.2f. Say: 'I can make a significant move.'", next)
		default:
			next := round2(lastAIPrice * standardStep)
			return fmt.Sprintf("Standard negotiation. Offer exactly $%.2f.", next)
		}
	}

	return fmt.Sprintf("Hold at $%.2f. Discuss delivery time.", lastAIPrice)
}

// lastSellerTerms walks the history backwards for the seller's most recent
// quoted price and delivery. Falls back to the opening price.
func lastSellerTerms(turns []model.Turn, params DealParams) (float64, *int) {
	var price float64
	var delivery *int
	for i := len(turns) - 1; i >= 0; i-- {
		if turns[i].Role != model.RoleAssistant {
			continue
		}
		content := turns[i].Content
		if p := ExtractPrice(content); p != nil && price == 0 {
			price = *p
		}
		if d := ExtractDelivery(content); d != nil && delivery == nil {
			delivery = d
		}
		if price != 0 && delivery != nil {
			break
		}
	}
	if price == 0 {
		price = params.Price.Opening
	}
	return price, delivery
}

// previousUserInput returns the user turn before the one just appended,
// or "" when there is none.
func previousUserInput(turns []model.Turn) string {
	// turns[len-1] is the current user message; look one user turn earlier.
	seen := 0
	for i := len(turns) - 1; i >= 0; i-- {
		if turns[i].Role != model.RoleUser {
			continue
		}
		seen++
		if seen == 2 {
			return turns[i].Content
		}
	}
	return ""
}
