package repository

import "errors"

// Errors returned by SessionRepository implementations.
var (
	ErrNotFound        = errors.New("session not found")
	ErrAlreadyExists   = errors.New("session already exists")
	ErrVersionConflict = errors.New("session version conflict")
	ErrUnavailable     = errors.New("session store unavailable")
)
