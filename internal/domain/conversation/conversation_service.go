package conversation

import (
	"context"

	"aura-server/internal/utils/idgen"
	"aura-server/internal/utils/platformerrors"
)

// ConversationService handles business logic for conversations and messages
type ConversationService struct {
	convRepo  ConversationRepository
	msgRepo   MessageRepository
	validator *ConversationValidator
}

// NewConversationService creates a new conversation service
func NewConversationService(convRepo ConversationRepository, msgRepo MessageRepository) *ConversationService {
	return &ConversationService{
		convRepo:  convRepo,
		msgRepo:   msgRepo,
		validator: NewConversationValidator(nil), // Use default config
	}
}

// ===============================================
// Conversation Operations
// ===============================================

// CreateConversationInput represents the input for creating a conversation
type CreateConversationInput struct {
	UserID uint
	Title  *string
}

// CreateConversation creates a new conversation owned by the requesting user.
func (s *ConversationService) CreateConversation(ctx context.Context, input CreateConversationInput) (*Conversation, error) {
	if err := s.validator.ValidateTitle(input.Title); err != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"conversation validation failed", err, "b8c0d2e4-6f8a-4b0c-2d4e-7f9a1b3c5d6e")
	}

	publicID, err := idgen.GenerateSecureID("conv", 16)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to generate conversation ID")
	}

	conversation := NewConversation(publicID, input.UserID, input.Title)

	if err := s.convRepo.Create(ctx, conversation); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to create conversation")
	}

	return conversation, nil
}

// GetConversationByPublicIDAndUserID retrieves a conversation by public ID and
// validates ownership. A conversation that does not exist and one owned by a
// different user are reported identically as not found.
func (s *ConversationService) GetConversationByPublicIDAndUserID(ctx context.Context, publicID string, userID uint) (*Conversation, error) {
	if err := s.validator.ValidateConversationID(publicID); err != nil {
		// A malformed ID can never match a row; report it the same way.
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeNotFound,
			"Conversation not found", err, "d0e2f4a6-8b0c-4d2e-4f6a-9b1c3d5e7f8a")
	}

	conversation, err := s.convRepo.FindByPublicID(ctx, publicID)
	if err != nil {
		if platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound) {
			return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeNotFound,
				"Conversation not found", err, "e4f6a8b0-2c4d-4e6f-8a0b-3c5d7e9f1a3b")
		}
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to load conversation")
	}

	if conversation.UserID != userID {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeNotFound,
			"Conversation not found", nil, "f2a4b6c8-0d2e-4f4a-6b8c-1d3e5f7a9b0c")
	}

	return conversation, nil
}

// ListConversations returns the user's conversations, most recently updated first.
func (s *ConversationService) ListConversations(ctx context.Context, userID uint) ([]*Conversation, error) {
	conversations, err := s.convRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to list conversations")
	}
	return conversations, nil
}

// ===============================================
// Message Operations
// ===============================================

// CreateMessageInput represents the input for appending a message
type CreateMessageInput struct {
	UserID               uint
	ConversationPublicID string
	Content              string
	Role                 MessageRole
}

// CreateMessage appends a message to a conversation owned by the requesting
// user. Appending does not touch the parent conversation's update time.
func (s *ConversationService) CreateMessage(ctx context.Context, input CreateMessageInput) (*Message, error) {
	if input.Role == "" {
		input.Role = RoleUser
	}

	if err := s.validator.ValidateContent(input.Content); err != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"message validation failed", err, "a4b6c8d0-2e4f-4a6b-8c0d-3e5f7a9b1c2d")
	}
	if err := s.validator.ValidateRole(input.Role); err != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"message validation failed", err, "c6d8e0f2-4a6b-4c8d-0e2f-5a7b9c1d3e4f")
	}

	conversation, err := s.GetConversationByPublicIDAndUserID(ctx, input.ConversationPublicID, input.UserID)
	if err != nil {
		return nil, err
	}

	publicID, err := idgen.GenerateSecureID("msg", 16)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to generate message ID")
	}

	message := NewMessage(publicID, conversation.ID, input.UserID, input.Content, input.Role)

	if err := s.msgRepo.Create(ctx, message); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to create message")
	}

	return message, nil
}

// ListMessages returns a conversation's messages in creation order after
// validating ownership of the parent.
func (s *ConversationService) ListMessages(ctx context.Context, userID uint, conversationPublicID string) ([]*Message, error) {
	conversation, err := s.GetConversationByPublicIDAndUserID(ctx, conversationPublicID, userID)
	if err != nil {
		return nil, err
	}

	messages, err := s.msgRepo.ListByConversationID(ctx, conversation.ID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to list messages")
	}

	return messages, nil
}
