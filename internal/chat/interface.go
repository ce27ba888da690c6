package chat

import (
	"context"

	"ai-negotiator/pkg/llmprovider"
)

// UseCase defines the business logic interface for the chat domain.
type UseCase interface {
	// StartSession creates a new negotiation session with hidden deal
	// parameters and the seller's opening greeting.
	StartSession(ctx context.Context, input StartSessionInput) (StartSessionOutput, error)

	// ProcessTurn runs one conversational turn: load session, build prompt,
	// call the completion provider, reconcile the result back into history.
	ProcessTurn(ctx context.Context, input ProcessTurnInput) (ProcessTurnOutput, error)

	// Evaluate generates the grading report for a session's negotiation.
	Evaluate(ctx context.Context, input EvaluateInput) (EvaluateOutput, error)
}

// Completer is the narrow completion-provider contract the orchestrator
// consumes. *llmprovider.Manager satisfies it.
type Completer interface {
	Generate(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}
