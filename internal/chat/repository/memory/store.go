package memory

import (
	"context"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"ai-negotiator/internal/chat/repository"
	"ai-negotiator/internal/model"
)

// DefaultCapacity bounds the number of live sessions kept in memory.
const DefaultCapacity = 4096

// Store is an in-memory SessionRepository. Sessions are held in an LRU so
// abandoned conversations age out instead of growing without bound. The
// mutex serializes the check-and-set in Update, which is what gives the
// per-session read-modify-write atomicity the orchestrator relies on.
type Store struct {
	mu       sync.Mutex
	sessions *lru.Cache[string, *model.Session]
}

var _ repository.SessionRepository = (*Store)(nil)

// New creates a store bounded to capacity sessions. Non-positive capacity
// uses DefaultCapacity.
func New(capacity int) (*Store, error) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	cache, err := lru.New[string, *model.Session](capacity)
	if err != nil {
		return nil, err
	}
	return &Store{sessions: cache}, nil
}

// Get returns a deep copy of the stored session.
func (s *Store) Get(ctx context.Context, id string) (*model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.sessions.Get(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	return stored.Clone(), nil
}

// Create stores a new session with Version 1.
func (s *Store) Create(ctx context.Context, session *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions.Get(session.ID); ok {
		return repository.ErrAlreadyExists
	}

	session.Version = 1
	now := time.Now()
	if session.CreatedAt.IsZero() {
		session.CreatedAt = now
	}
	session.UpdatedAt = now

	s.sessions.Add(session.ID, session.Clone())
	return nil
}

// Update is a compare-and-swap on Session.Version.
func (s *Store) Update(ctx context.Context, session *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.sessions.Get(session.ID)
	if !ok {
		return repository.ErrNotFound
	}
	if stored.Version != session.Version {
		return repository.ErrVersionConflict
	}

	session.Version++
	session.UpdatedAt = time.Now()
	s.sessions.Add(session.ID, session.Clone())
	return nil
}

// Len reports the number of live sessions, for introspection and tests.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions.Len()
}
