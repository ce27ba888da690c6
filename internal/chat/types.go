package chat

import (
	"ai-negotiator/internal/negotiation"
	"ai-negotiator/pkg/llmprovider"
)

// ProcessTurnInput is one inbound user utterance.
type ProcessTurnInput struct {
	SessionID string
	Message   string
	// Context is an opaque caller payload, passed through unmodified and
	// never inspected structurally.
	Context map[string]string
}

// ProcessTurnOutput is the orchestrator's result for one turn.
type ProcessTurnOutput struct {
	SessionID string
	Response  string
	DealReady bool
	Terms     *negotiation.Terms
	Usage     llmprovider.Usage

	// PersistenceFailed is set when the reply was generated but the session
	// write failed. Response delivery takes priority over persistence, so
	// this travels alongside the text instead of replacing it.
	PersistenceFailed bool
}

// StartSessionInput creates a fresh negotiation session.
type StartSessionInput struct {
	// Seed makes the hidden deal parameters reproducible (e.g. a student
	// id). Empty means random.
	Seed     string
	Metadata map[string]string
}

// StartSessionOutput reports the new session and its opening state.
type StartSessionOutput struct {
	SessionID string
	Greeting  string
	Params    negotiation.DealParams
}

// EvaluateInput requests the grading report for a finished negotiation.
type EvaluateInput struct {
	SessionID  string
	FinalTerms negotiation.Terms
}

// EvaluateOutput carries the generated report.
type EvaluateOutput struct {
	SessionID string
	Report    string
}
