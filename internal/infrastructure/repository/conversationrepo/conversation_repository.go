// Package conversationrepo persists conversations and their messages with GORM.
package conversationrepo

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	domain "aura-server/internal/domain/conversation"
	"aura-server/internal/infrastructure/database/entities"
	"aura-server/internal/utils/functional"
	"aura-server/internal/utils/platformerrors"
)

// ConversationGormRepository persists conversation records.
type ConversationGormRepository struct {
	db *gorm.DB
}

// NewConversationGormRepository builds a conversation repository.
func NewConversationGormRepository(db *gorm.DB) domain.ConversationRepository {
	return &ConversationGormRepository{db: db}
}

// Create inserts the conversation record.
func (r *ConversationGormRepository) Create(ctx context.Context, conv *domain.Conversation) error {
	entity := entities.NewSchemaConversation(conv)

	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to create conversation",
			err,
			"4b0c8d7e-9f1a-4b2c-5d3e-6f7a8b9c0d1f",
		)
	}

	conv.ID = entity.ID
	conv.CreatedAt = entity.CreatedAt
	conv.UpdatedAt = entity.UpdatedAt
	return nil
}

// FindByPublicID fetches a conversation by its public ID.
func (r *ConversationGormRepository) FindByPublicID(ctx context.Context, publicID string) (*domain.Conversation, error) {
	var entity entities.Conversation
	if err := r.db.WithContext(ctx).
		Where("public_id = ?", publicID).
		First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformerrors.NewError(
				ctx,
				platformerrors.LayerRepository,
				platformerrors.ErrorTypeNotFound,
				fmt.Sprintf("conversation not found: %s", publicID),
				nil,
				"5c1d9e8f-0a2b-4c3d-6e4f-7a8b9c0d1e2a",
			)
		}
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to fetch conversation",
			err,
			"6d2e0f9a-1b3c-4d4e-7f5a-8b9c0d1e2f3b",
		)
	}

	return entity.EtoD(), nil
}

// ListByUserID returns the user's conversations, most recently updated first.
func (r *ConversationGormRepository) ListByUserID(ctx context.Context, userID uint) ([]*domain.Conversation, error) {
	var records []entities.Conversation
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&records).Error; err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to list conversations",
			err,
			"7e3f1a0b-2c4d-4e5f-8a6b-9c0d1e2f3a4c",
		)
	}

	return functional.Map(records, func(record entities.Conversation) *domain.Conversation {
		return record.EtoD()
	}), nil
}
