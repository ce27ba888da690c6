package usecase

import (
	"time"

	"ai-negotiator/internal/chat"
	"ai-negotiator/internal/chat/repository"
	"ai-negotiator/internal/prompt"
	pkgLog "ai-negotiator/pkg/log"
)

// Config holds the orchestrator policies.
type Config struct {
	// ConflictRetries bounds how often a losing writer redoes its
	// load-modify-persist cycle before surfacing ConcurrentModification.
	ConflictRetries int

	// CreateSessionOnStoreFailure makes a store read failure fabricate a
	// fresh session instead of failing fast. Off by default.
	CreateSessionOnStoreFailure bool
}

const defaultConflictRetries = 3

type implUseCase struct {
	l         pkgLog.Logger
	completer chat.Completer
	repo      repository.SessionRepository
	builder   *prompt.Builder
	evalTmpl  *prompt.Template
	cfg       Config

	now func() time.Time
}

var _ chat.UseCase = (*implUseCase)(nil)

// New creates a new chat UseCase instance.
func New(
	l pkgLog.Logger,
	completer chat.Completer,
	repo repository.SessionRepository,
	builder *prompt.Builder,
	cfg Config,
) *implUseCase {
	if cfg.ConflictRetries <= 0 {
		cfg.ConflictRetries = defaultConflictRetries
	}
	return &implUseCase{
		l:         l,
		completer: completer,
		repo:      repo,
		builder:   builder,
		evalTmpl:  prompt.EvaluationTemplate,
		cfg:       cfg,
		now:       time.Now,
	}
}
