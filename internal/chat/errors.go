package chat

import "errors"

// Domain-specific errors for the chat package. The delivery layer maps each
// of these to a stable external error code; nothing else crosses the API
// boundary.
var (
	ErrInvalidInput           = errors.New("invalid input")
	ErrSessionNotFound        = errors.New("session not found")
	ErrPromptTooLarge         = errors.New("prompt too large")
	ErrGenerationRejected     = errors.New("generation rejected")
	ErrGenerationEmpty        = errors.New("generation returned empty response")
	ErrGenerationUnavailable  = errors.New("generation unavailable")
	ErrSessionUnavailable     = errors.New("session store unavailable")
	ErrPersistenceFailed      = errors.New("failed to persist session")
	ErrConcurrentModification = errors.New("concurrent session modification")
)
