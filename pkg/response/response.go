package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Resp is the standard JSON envelope. The transport status code is mirrored
// inside the payload so clients behind proxies that flatten statuses can
// still branch on it.
type Resp struct {
	StatusCode int `json:"statusCode"`
	Body       any `json:"body"`
}

// ErrorBody is the envelope body for failed requests. ErrorCode is a stable
// machine-readable identifier; Message is human-readable detail.
type ErrorBody struct {
	ErrorCode string `json:"errorCode"`
	Message   string `json:"message"`
	SessionID string `json:"sessionId,omitempty"`
}

// JSON writes the envelope with the given status.
func JSON(c *gin.Context, status int, body any) {
	c.JSON(status, Resp{StatusCode: status, Body: body})
}

// OK sends 200 with the given body.
func OK(c *gin.Context, body any) {
	JSON(c, http.StatusOK, body)
}

// Error sends an error envelope with a stable error code.
func Error(c *gin.Context, status int, code, message, sessionID string) {
	JSON(c, status, ErrorBody{
		ErrorCode: code,
		Message:   message,
		SessionID: sessionID,
	})
}

// InternalError sends 500 without leaking internal detail.
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "InternalError", "internal server error", "")
}

// TooManyRequests sends 429.
func TooManyRequests(c *gin.Context) {
	Error(c, http.StatusTooManyRequests, "RateLimited", "too many requests", "")
}
