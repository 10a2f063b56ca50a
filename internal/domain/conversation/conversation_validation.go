package conversation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"aura-server/internal/utils/idgen"
)

// ===============================================
// Conversation Validation
// ===============================================

// ConversationValidationConfig holds conversation-level validation rules
type ConversationValidationConfig struct {
	MaxTitleLength int
}

// DefaultConversationValidationConfig returns the default validation rules
func DefaultConversationValidationConfig() *ConversationValidationConfig {
	return &ConversationValidationConfig{
		MaxTitleLength: 255, // matches the column width
	}
}

// ConversationValidator handles conversation-level validation
type ConversationValidator struct {
	config *ConversationValidationConfig
}

// NewConversationValidator creates a validator for conversations
func NewConversationValidator(config *ConversationValidationConfig) *ConversationValidator {
	if config == nil {
		config = DefaultConversationValidationConfig()
	}

	return &ConversationValidator{config: config}
}

// ValidateTitle validates an optional conversation title.
func (v *ConversationValidator) ValidateTitle(title *string) error {
	if title == nil {
		return nil
	}

	length := utf8.RuneCountInString(*title)
	if length > v.config.MaxTitleLength {
		return fmt.Errorf("title cannot exceed %d characters (got %d)", v.config.MaxTitleLength, length)
	}

	if strings.Contains(*title, "\x00") {
		return fmt.Errorf("title cannot contain null bytes")
	}

	return nil
}

// ValidateConversationID validates conversation public ID format
func (v *ConversationValidator) ValidateConversationID(id string) error {
	if id == "" {
		return fmt.Errorf("conversation ID cannot be empty")
	}

	if !idgen.ValidateIDFormat(id, "conv") {
		return fmt.Errorf("invalid conversation ID format")
	}

	return nil
}

// ValidateContent validates message content.
func (v *ConversationValidator) ValidateContent(content string) error {
	if content == "" {
		return fmt.Errorf("message content cannot be empty")
	}

	if strings.Contains(content, "\x00") {
		return fmt.Errorf("message content cannot contain null bytes")
	}

	return nil
}

// ValidateRole validates the message role against the known set.
func (v *ConversationValidator) ValidateRole(role MessageRole) error {
	switch role {
	case RoleUser, RoleAssistant, RoleSystem:
		return nil
	default:
		return fmt.Errorf("invalid message role: %s (must be user, assistant, or system)", role)
	}
}
