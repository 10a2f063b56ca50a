package responses

import (
	"time"

	"aura-server/internal/domain/conversation"
	"aura-server/internal/utils/functional"
)

// ConversationResponse is the public view of a conversation
type ConversationResponse struct {
	ID        string    `json:"id"`
	Title     *string   `json:"title"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewConversationResponse maps a conversation to its wire form. Owner
// identity is exposed as the owner's public ID, never the internal key.
func NewConversationResponse(conv *conversation.Conversation, ownerPublicID string) ConversationResponse {
	return ConversationResponse{
		ID:        conv.PublicID,
		Title:     conv.Title,
		UserID:    ownerPublicID,
		CreatedAt: conv.CreatedAt,
		UpdatedAt: conv.UpdatedAt,
	}
}

// NewConversationListResponse maps a slice of conversations owned by one user.
func NewConversationListResponse(convs []*conversation.Conversation, ownerPublicID string) []ConversationResponse {
	return functional.Map(convs, func(conv *conversation.Conversation) ConversationResponse {
		return NewConversationResponse(conv, ownerPublicID)
	})
}

// MessageResponse is the public view of a message
type MessageResponse struct {
	ID             string    `json:"id"`
	Content        string    `json:"content"`
	Role           string    `json:"role"`
	ConversationID string    `json:"conversationId"`
	UserID         string    `json:"userId"`
	CreatedAt      time.Time `json:"createdAt"`
}

// NewMessageResponse maps a message to its wire form.
func NewMessageResponse(msg *conversation.Message, conversationPublicID, authorPublicID string) MessageResponse {
	return MessageResponse{
		ID:             msg.PublicID,
		Content:        msg.Content,
		Role:           string(msg.Role),
		ConversationID: conversationPublicID,
		UserID:         authorPublicID,
		CreatedAt:      msg.CreatedAt,
	}
}

// NewMessageListResponse maps a conversation's messages authored by one user.
func NewMessageListResponse(msgs []*conversation.Message, conversationPublicID, authorPublicID string) []MessageResponse {
	return functional.Map(msgs, func(msg *conversation.Message) MessageResponse {
		return NewMessageResponse(msg, conversationPublicID, authorPublicID)
	})
}
