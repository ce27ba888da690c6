package model

import "time"

// Role identifies the author of a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAssistant, RoleSystem:
		return true
	}
	return false
}

// Turn is a single role-attributed message within a session's history.
// Turns are immutable once appended.
type Turn struct {
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Session is the durable conversational context keyed by a caller-supplied
// identifier. The turn sequence is append-only; truncation for prompt
// budgeting happens at render time and never mutates the stored history.
type Session struct {
	ID       string            `json:"id"`
	Turns    []Turn            `json:"turns"`
	Metadata map[string]string `json:"metadata,omitempty"`

	// Version increases monotonically on every persisted update and backs
	// the store's compare-and-swap. A zero Version marks a new session.
	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Append returns the session with a new turn added. The receiver is taken by
// value so callers holding the original slice header are not affected.
func (s *Session) Append(role Role, content string, at time.Time) {
	s.Turns = append(s.Turns, Turn{Role: role, Content: content, Timestamp: at})
	s.UpdatedAt = at
}

// LastTurn returns the most recent turn, or nil for an empty history.
func (s *Session) LastTurn() *Turn {
	if len(s.Turns) == 0 {
		return nil
	}
	return &s.Turns[len(s.Turns)-1]
}

// Clone returns a deep copy so the caller can mutate freely without
// aliasing the stored history.
func (s *Session) Clone() *Session {
	cp := *s
	cp.Turns = make([]Turn, len(s.Turns))
	copy(cp.Turns, s.Turns)
	if s.Metadata != nil {
		cp.Metadata = make(map[string]string, len(s.Metadata))
		for k, v := range s.Metadata {
			cp.Metadata[k] = v
		}
	}
	return &cp
}
