package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	chatHTTP "ai-negotiator/internal/chat/delivery/http"
)

// setupChatDomain registers the chat domain routes.
//
// Pattern to follow when adding a new domain:
//  1. Build the repository, use case, and HTTP handler in cmd/api.
//  2. Pass the handler in through httpserver.Config.
//  3. Register its routes here.
func (srv HTTPServer) setupChatDomain(ctx context.Context, api *gin.RouterGroup) {
	// Routes: /api/v1/sessions, /api/v1/chat, /api/v1/evaluate
	chatHTTP.RegisterRoutes(api, srv.chatHandler, srv.mw)

	srv.l.Infof(ctx, "Chat domain registered")
}
