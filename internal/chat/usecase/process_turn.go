package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ai-negotiator/internal/chat"
	"ai-negotiator/internal/chat/repository"
	"ai-negotiator/internal/model"
	"ai-negotiator/internal/negotiation"
	"ai-negotiator/internal/prompt"
)

// ProcessTurn runs one conversational turn. Exactly one completion call is
// made per invocation; persistence conflicts redo only the write, never the
// generation.
func (uc *implUseCase) ProcessTurn(ctx context.Context, input chat.ProcessTurnInput) (chat.ProcessTurnOutput, error) {
	out := chat.ProcessTurnOutput{SessionID: input.SessionID}
	if input.SessionID == "" || strings.TrimSpace(input.Message) == "" {
		return out, chat.ErrInvalidInput
	}

	sess, isNew, err := uc.loadOrCreate(ctx, input.SessionID)
	if err != nil {
		return out, err
	}
	params := paramsFor(sess)

	userTurn := model.Turn{Role: model.RoleUser, Content: input.Message, Timestamp: uc.now()}
	withUser := append(append([]model.Turn(nil), sess.Turns...), userTurn)

	guidance := negotiation.TurnGuidance(input.Message, withUser, params)
	plan, err := uc.builder.Build(sess, input.Message, prompt.SystemData{
		DealParameters: negotiation.FormatParams(params),
		TurnGuidance:   guidance,
		StandardVolume: params.StandardVolume,
	})
	if err != nil {
		if errors.Is(err, prompt.ErrPromptTooLarge) {
			// Keep the user's message even though no reply will come back.
			if _, perr := uc.persistAppended(ctx, sess, isNew, []model.Turn{userTurn}); perr != nil {
				uc.logErr(ctx, "process_turn.persist_user", perr)
			}
			return out, chat.ErrPromptTooLarge
		}
		return out, err
	}

	resp, genErr := uc.completer.Generate(ctx, planToRequest(plan, replyTemperature, replyMaxTokens))
	if genErr != nil {
		// Generation failed, but the user turn survives so the session
		// reflects what was actually said.
		if _, perr := uc.persistAppended(ctx, sess, isNew, []model.Turn{userTurn}); perr != nil {
			uc.logErr(ctx, "process_turn.persist_user", perr)
		}
		return out, mapGenerationError(genErr)
	}

	reply := negotiation.CleanReply(resp.Text)
	assistantTurn := model.Turn{Role: model.RoleAssistant, Content: reply, Timestamp: uc.now()}

	out.Response = reply
	out.Usage = resp.Usage

	final, perr := uc.persistAppended(ctx, sess, isNew, []model.Turn{userTurn, assistantTurn})
	turns := append(withUser, assistantTurn)
	if final != nil {
		turns = final.Turns
	}
	out.DealReady, out.Terms = negotiation.DetectReadiness(turns)

	switch {
	case perr == nil:
		return out, nil
	case errors.Is(perr, chat.ErrConcurrentModification):
		return chat.ProcessTurnOutput{SessionID: input.SessionID}, perr
	default:
		// Delivery takes priority over persistence: the reply still goes
		// out, flagged so the caller knows history may be incomplete.
		uc.logErr(ctx, "process_turn.persist", perr)
		out.PersistenceFailed = true
		return out, nil
	}
}

// loadOrCreate fetches the session, materializing a fresh one on first
// reference. A store read failure fails fast unless the orchestrator is
// configured to fabricate a session and carry on.
func (uc *implUseCase) loadOrCreate(ctx context.Context, id string) (*model.Session, bool, error) {
	sess, err := uc.repo.Get(ctx, id)
	switch {
	case err == nil:
		return sess, false, nil
	case errors.Is(err, repository.ErrNotFound):
		return uc.freshSession(id), true, nil
	case uc.cfg.CreateSessionOnStoreFailure:
		uc.l.Warnf(ctx, "chat.usecase.loadOrCreate: store read failed for %s, fabricating session: %v", id, err)
		return uc.freshSession(id), true, nil
	default:
		return nil, false, fmt.Errorf("%w: %v", chat.ErrSessionUnavailable, err)
	}
}

func (uc *implUseCase) freshSession(id string) *model.Session {
	now := uc.now()
	sess := &model.Session{ID: id, CreatedAt: now, UpdatedAt: now}
	storeParams(sess, negotiation.GenerateParams(id))
	return sess
}

// persistAppended writes base plus the appended turns, redoing the
// load-modify-persist cycle on version conflicts. It returns the session as
// written, or ErrConcurrentModification once retries run out.
func (uc *implUseCase) persistAppended(ctx context.Context, base *model.Session, isNew bool, appended []model.Turn) (*model.Session, error) {
	for attempt := 0; attempt <= uc.cfg.ConflictRetries; attempt++ {
		working := base.Clone()
		working.Turns = append(working.Turns, appended...)
		if len(appended) > 0 {
			working.UpdatedAt = appended[len(appended)-1].Timestamp
		}

		var err error
		if isNew {
			err = uc.repo.Create(ctx, working)
			if errors.Is(err, repository.ErrAlreadyExists) {
				// Lost the create race; merge onto the winner's session.
				isNew = false
				if base, err = uc.repo.Get(ctx, working.ID); err != nil {
					return nil, fmt.Errorf("%w: %v", chat.ErrPersistenceFailed, err)
				}
				continue
			}
		} else {
			err = uc.repo.Update(ctx, working)
			if errors.Is(err, repository.ErrVersionConflict) {
				uc.l.Warnf(ctx, "chat.usecase.persistAppended: version conflict on session %s, retrying", working.ID)
				var gerr error
				if base, gerr = uc.repo.Get(ctx, working.ID); gerr != nil {
					return nil, fmt.Errorf("%w: %v", chat.ErrPersistenceFailed, gerr)
				}
				continue
			}
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", chat.ErrPersistenceFailed, err)
		}
		return working, nil
	}
	return nil, chat.ErrConcurrentModification
}
