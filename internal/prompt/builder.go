package prompt

import (
	"errors"
	"strconv"

	"ai-negotiator/internal/model"
)

// ErrPromptTooLarge means the plan cannot fit the unit budget even with all
// history dropped. Structural; not retried.
var ErrPromptTooLarge = errors.New("prompt exceeds unit budget")

// Entry is one role/content pair of a rendered plan.
type Entry struct {
	Role    model.Role
	Content string
}

// Plan is the fully rendered, ready-to-submit message sequence for one
// completion call. It is ephemeral and never persisted.
type Plan struct {
	Entries []Entry
	Units   int
}

// SystemData carries the per-turn values for the system template's slots.
type SystemData struct {
	DealParameters string
	TurnGuidance   string
	StandardVolume int
}

// Builder deterministically renders unit-budgeted prompt plans. Given
// identical session state, data, and message, the output is byte-identical.
type Builder struct {
	tmpl     *Template
	counter  Counter
	maxUnits int
}

// NewBuilder wires a builder from its parts. maxUnits bounds the total plan
// size as measured by counter.
func NewBuilder(tmpl *Template, counter Counter, maxUnits int) *Builder {
	return &Builder{tmpl: tmpl, counter: counter, maxUnits: maxUnits}
}

// Build renders the plan: the system entry first, then the session history
// oldest to newest, then the new user entry. When the plan exceeds the unit
// budget the oldest history turns are dropped one at a time; the system
// entry and the new user entry are never dropped.
func (b *Builder) Build(session *model.Session, newMessage string, data SystemData) (*Plan, error) {
	system, err := b.tmpl.Render(map[string]string{
		SlotDealParameters: data.DealParameters,
		SlotTurnGuidance:   data.TurnGuidance,
		SlotStandardVolume: strconv.Itoa(data.StandardVolume),
	})
	if err != nil {
		return nil, err
	}

	fixed := b.counter.Count(system) + b.counter.Count(newMessage)

	history := session.Turns
	historyUnits := make([]int, len(history))
	total := fixed
	for i, turn := range history {
		historyUnits[i] = b.counter.Count(turn.Content)
		total += historyUnits[i]
	}

	drop := 0
	for total > b.maxUnits && drop < len(history) {
		total -= historyUnits[drop]
		drop++
	}
	if total > b.maxUnits {
		return nil, ErrPromptTooLarge
	}

	entries := make([]Entry, 0, len(history)-drop+2)
	entries = append(entries, Entry{Role: model.RoleSystem, Content: system})
	for _, turn := range history[drop:] {
		entries = append(entries, Entry{Role: turn.Role, Content: turn.Content})
	}
	entries = append(entries, Entry{Role: model.RoleUser, Content: newMessage})

	return &Plan{Entries: entries, Units: total}, nil
}
