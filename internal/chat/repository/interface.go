package repository

import (
	"context"

	"ai-negotiator/internal/model"
)

// SessionRepository is the persistence contract for conversation sessions.
// Implementations must provide read-modify-write atomicity per session:
// Update is a compare-and-swap keyed on Session.Version, so two concurrent
// turns on one session can never silently overwrite each other's history.
type SessionRepository interface {
	// Get returns a copy of the session, or ErrNotFound.
	Get(ctx context.Context, id string) (*model.Session, error)

	// Create stores a new session and assigns its initial Version.
	// Returns ErrAlreadyExists when the id is taken.
	Create(ctx context.Context, session *model.Session) error

	// Update persists the session iff the stored Version still matches
	// session.Version, then increments session.Version. A losing writer
	// gets ErrVersionConflict and must redo its load-modify-persist cycle.
	Update(ctx context.Context, session *model.Session) error
}
