package entities

import (
	"time"

	"aura-server/internal/domain/conversation"
)

// Message represents the database schema for conversation messages
type Message struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`

	PublicID       string `gorm:"type:varchar(50);uniqueIndex;not null"`
	ConversationID uint   `gorm:"index:idx_messages_conversation_created_at;not null"`
	UserID         uint   `gorm:"index;not null"`
	Content        string `gorm:"type:text;not null"`
	Role           string `gorm:"type:varchar(20);not null;default:'user'"`
}

// TableName specifies the table name for Message.
func (Message) TableName() string {
	return "messages"
}

// EtoD converts database entity to domain model
func (m *Message) EtoD() *conversation.Message {
	if m == nil {
		return nil
	}

	return &conversation.Message{
		ID:             m.ID,
		PublicID:       m.PublicID,
		ConversationID: m.ConversationID,
		UserID:         m.UserID,
		Content:        m.Content,
		Role:           conversation.MessageRole(m.Role),
		CreatedAt:      m.CreatedAt,
	}
}

// NewSchemaMessage creates a database entity from domain model
func NewSchemaMessage(m *conversation.Message) *Message {
	if m == nil {
		return nil
	}

	return &Message{
		ID:             m.ID,
		PublicID:       m.PublicID,
		ConversationID: m.ConversationID,
		UserID:         m.UserID,
		Content:        m.Content,
		Role:           string(m.Role),
		CreatedAt:      m.CreatedAt,
	}
}
