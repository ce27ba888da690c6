package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"ai-negotiator/internal/chat"
	"ai-negotiator/internal/model"
	"ai-negotiator/internal/negotiation"
)

// StartSession creates a new session with deterministic deal parameters and
// seeds its history with the seller's greeting.
func (uc *implUseCase) StartSession(ctx context.Context, input chat.StartSessionInput) (chat.StartSessionOutput, error) {
	id := uuid.NewString()
	seed := input.Seed
	if seed == "" {
		seed = id
	}
	params := negotiation.GenerateParams(seed)
	greeting := negotiation.Greeting(params)

	now := uc.now()
	sess := &model.Session{
		ID:        id,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if len(input.Metadata) > 0 {
		sess.Metadata = make(map[string]string, len(input.Metadata)+1)
		for k, v := range input.Metadata {
			sess.Metadata[k] = v
		}
	}
	storeParams(sess, params)
	sess.Append(model.RoleAssistant, greeting, now)

	if err := uc.repo.Create(ctx, sess); err != nil {
		uc.logErr(ctx, "start_session.create", err)
		return chat.StartSessionOutput{}, fmt.Errorf("%w: %v", chat.ErrSessionUnavailable, err)
	}

	uc.l.Infof(ctx, "chat.usecase.start_session: created session %s", id)
	return chat.StartSessionOutput{
		SessionID: id,
		Greeting:  greeting,
		Params:    params,
	}, nil
}
