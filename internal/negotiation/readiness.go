package negotiation

import (
	"strings"

	"ai-negotiator/internal/model"
)

// Phrases that signal the counterpart accepted the current offer.
var agreementSignals = []string{
	"i accept", "we accept", "accepted", "i agree", "we agree", "agreed",
	"deal confirmed", "confirm deal", "confirm the deal",
	"sounds good", "works for me", "perfect", "it's a deal", "its a deal",
	"let's do it", "lets do it", "i can do that", "that works",
	"done", "fine", "ok deal", "okay deal", "deal",
}

// Negations that invalidate an apparent agreement signal.
var negations = []string{"don't", "dont", "cannot", "can't", "won't", "not", "unable"}

// readinessWindow is how many trailing turns are scanned for deal terms.
const readinessWindow = 3

// DetectReadiness checks whether the conversation has actually closed a deal:
// the last message must carry an agreement signal without negation, and both
// price and delivery must be extractable from the recent turns.
func DetectReadiness(turns []model.Turn) (bool, *Terms) {
	if len(turns) < 3 {
		return false, nil
	}

	content := strings.ToLower(turns[len(turns)-1].Content)

	hasSignal := false
	for _, phrase := range agreementSignals {
		if strings.Contains(content, phrase) {
			hasSignal = true
			break
		}
	}
	if hasSignal {
		confirmed := strings.Contains(content, "confirmed") || strings.Contains(content, "agreed")
		for _, neg := range negations {
			if strings.Contains(content, neg) && !confirmed {
				hasSignal = false
				break
			}
		}
	}
	if !hasSignal {
		return false, nil
	}

	// Gather terms from the trailing window, newest first.
	var terms Terms
	start := len(turns) - readinessWindow
	if start < 0 {
		start = 0
	}
	for i := len(turns) - 1; i >= start; i-- {
		txt := turns[i].Content
		if terms.Price == nil {
			terms.Price = ExtractPrice(txt)
		}
		if terms.Delivery == nil {
			terms.Delivery = ExtractDelivery(txt)
		}
		if terms.Volume == nil {
			terms.Volume = ExtractVolume(txt)
		}
	}

	if !terms.Complete() {
		return false, nil
	}
	return true, &terms
}
