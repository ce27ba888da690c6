package http

import (
	"errors"
	"net/http"

	"ai-negotiator/internal/chat"
)

// mapError translates chat domain errors into a transport status, a stable
// external error code, and a safe public message. Codes are part of the API
// contract; clients branch on them, so they never change with internal
// refactors. Wrapped provider detail stays server-side.
func mapError(err error) (status int, code string, message string) {
	switch {
	case errors.Is(err, chat.ErrInvalidInput):
		return http.StatusBadRequest, "InvalidInput", chat.ErrInvalidInput.Error()
	case errors.Is(err, chat.ErrSessionNotFound):
		return http.StatusNotFound, "SessionNotFound", chat.ErrSessionNotFound.Error()
	case errors.Is(err, chat.ErrPromptTooLarge):
		return http.StatusRequestEntityTooLarge, "PromptTooLarge", chat.ErrPromptTooLarge.Error()
	case errors.Is(err, chat.ErrGenerationRejected):
		return http.StatusUnprocessableEntity, "GenerationRejected", chat.ErrGenerationRejected.Error()
	case errors.Is(err, chat.ErrGenerationEmpty):
		return http.StatusBadGateway, "GenerationEmpty", chat.ErrGenerationEmpty.Error()
	case errors.Is(err, chat.ErrGenerationUnavailable):
		return http.StatusServiceUnavailable, "GenerationUnavailable", chat.ErrGenerationUnavailable.Error()
	case errors.Is(err, chat.ErrSessionUnavailable):
		return http.StatusServiceUnavailable, "SessionUnavailable", chat.ErrSessionUnavailable.Error()
	case errors.Is(err, chat.ErrConcurrentModification):
		return http.StatusConflict, "ConcurrentModification", chat.ErrConcurrentModification.Error()
	case errors.Is(err, chat.ErrPersistenceFailed):
		return http.StatusInternalServerError, "PersistenceFailed", chat.ErrPersistenceFailed.Error()
	default:
		return http.StatusInternalServerError, "InternalError", "internal server error"
	}
}
