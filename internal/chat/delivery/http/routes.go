package http

import (
	"github.com/gin-gonic/gin"

	"ai-negotiator/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. All routes
// are throttled; the chat endpoint is the expensive one but limiting only it
// would just move abuse to the others.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/sessions", mw.RateLimit(), h.StartSession)
	rg.POST("/chat", mw.RateLimit(), h.Chat)
	rg.POST("/evaluate", mw.RateLimit(), h.Evaluate)
}
