package conversationrepo

import (
	"context"

	"gorm.io/gorm"

	domain "aura-server/internal/domain/conversation"
	"aura-server/internal/infrastructure/database/entities"
	"aura-server/internal/utils/functional"
	"aura-server/internal/utils/platformerrors"
)

// MessageGormRepository persists message records.
type MessageGormRepository struct {
	db *gorm.DB
}

// NewMessageGormRepository builds a message repository.
func NewMessageGormRepository(db *gorm.DB) domain.MessageRepository {
	return &MessageGormRepository{db: db}
}

// Create inserts the message record.
func (r *MessageGormRepository) Create(ctx context.Context, msg *domain.Message) error {
	entity := entities.NewSchemaMessage(msg)

	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to create message",
			err,
			"8f4a2b1c-3d5e-4f6a-9b7c-0d1e2f3a4b5d",
		)
	}

	msg.ID = entity.ID
	msg.CreatedAt = entity.CreatedAt
	return nil
}

// ListByConversationID returns a conversation's messages oldest first. The
// internal ID breaks ties between messages created in the same instant.
func (r *MessageGormRepository) ListByConversationID(ctx context.Context, conversationID uint) ([]*domain.Message, error) {
	var records []entities.Message
	if err := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("created_at ASC, id ASC").
		Find(&records).Error; err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to list messages",
			err,
			"9a5b3c2d-4e6f-4a7b-0c8d-1e2f3a4b5c6e",
		)
	}

	return functional.Map(records, func(record entities.Message) *domain.Message {
		return record.EtoD()
	}), nil
}
