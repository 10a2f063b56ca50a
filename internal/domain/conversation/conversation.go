// Package conversation provides conversation and message domain models and behaviors.
package conversation

import (
	"context"
	"time"
)

// ===============================================
// Conversation Types
// ===============================================

// MessageRole identifies the author class of a message.
type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
	RoleSystem    MessageRole = "system"
)

// Conversation models a user-owned conversation thread.
type Conversation struct {
	ID        uint
	PublicID  string
	Title     *string
	UserID    uint
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Message models a single message inside a conversation.
type Message struct {
	ID             uint
	PublicID       string
	ConversationID uint
	UserID         uint
	Content        string
	Role           MessageRole
	CreatedAt      time.Time
}

// ===============================================
// Repositories
// ===============================================

// ConversationRepository defines storage operations for conversations.
type ConversationRepository interface {
	Create(ctx context.Context, conversation *Conversation) error
	FindByPublicID(ctx context.Context, publicID string) (*Conversation, error)
	ListByUserID(ctx context.Context, userID uint) ([]*Conversation, error)
}

// MessageRepository defines storage operations for messages.
type MessageRepository interface {
	Create(ctx context.Context, message *Message) error
	ListByConversationID(ctx context.Context, conversationID uint) ([]*Message, error)
}

// ===============================================
// Factory Functions
// ===============================================

// NewConversation creates a new conversation owned by the given user.
func NewConversation(publicID string, userID uint, title *string) *Conversation {
	now := time.Now()

	return &Conversation{
		PublicID:  publicID,
		Title:     title,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewMessage creates a new message inside the given conversation.
func NewMessage(publicID string, conversationID, userID uint, content string, role MessageRole) *Message {
	return &Message{
		PublicID:       publicID,
		ConversationID: conversationID,
		UserID:         userID,
		Content:        content,
		Role:           role,
		CreatedAt:      time.Now(),
	}
}
