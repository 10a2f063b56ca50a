// Package routes registers the HTTP API route groups.
package routes

import (
	"github.com/gin-gonic/gin"

	"aura-server/internal/interfaces/httpserver/handlers/authhandler"
	"aura-server/internal/interfaces/httpserver/handlers/conversationhandler"
)

// Provider holds the route handlers and the auth gate.
type Provider struct {
	auth          *authhandler.AuthHandler
	conversations *conversationhandler.ConversationHandler
	authGate      gin.HandlerFunc
}

// NewProvider creates a new route provider. The auth gate guards every route
// that requires an authenticated account.
func NewProvider(
	auth *authhandler.AuthHandler,
	conversations *conversationhandler.ConversationHandler,
	authGate gin.HandlerFunc,
) *Provider {
	return &Provider{
		auth:          auth,
		conversations: conversations,
		authGate:      authGate,
	}
}

// Register registers all routes on the engine.
func (p *Provider) Register(engine *gin.Engine) {
	api := engine.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", p.auth.Register)
	auth.POST("/login", p.auth.Login)
	auth.GET("/me", p.authGate, p.auth.Me)
	auth.POST("/change-password", p.authGate, p.auth.ChangePassword)
	auth.POST("/logout", p.authGate, p.auth.Logout)

	conversations := api.Group("/conversations", p.authGate)
	conversations.POST("", p.conversations.CreateConversation)
	conversations.GET("", p.conversations.ListConversations)
	conversations.GET("/:conversation_id", p.conversations.GetConversation)
	conversations.POST("/:conversation_id/messages", p.conversations.CreateMessage)
	conversations.GET("/:conversation_id/messages", p.conversations.ListMessages)

	engine.GET("/protected", p.authGate, p.auth.Protected)
}
