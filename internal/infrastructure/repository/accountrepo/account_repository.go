// Package accountrepo persists user accounts with GORM.
package accountrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"gorm.io/gorm"

	domain "aura-server/internal/domain/account"
	"aura-server/internal/infrastructure/database/entities"
	"aura-server/internal/utils/platformerrors"
)

// uniqueViolation is the PostgreSQL error code for a unique constraint hit.
const uniqueViolation = "23505"

// Repository persists user accounts.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds an account repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts the account record. An insert that loses a race on the
// unique email constraint is reported as a conflict.
func (r *Repository) Create(ctx context.Context, acct *domain.Account) error {
	entity := entities.NewSchemaUser(acct)

	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		if isUniqueViolation(err) {
			return platformerrors.NewError(
				ctx,
				platformerrors.LayerRepository,
				platformerrors.ErrorTypeConflict,
				fmt.Sprintf("account already exists: %s", acct.Email),
				err,
				"8b4c2d1e-3f5a-4b6c-9d7e-0f1a2b3c4d5f",
			)
		}
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to create account",
			err,
			"9c5d3e2f-4a6b-4c7d-0e8f-1a2b3c4d5e6a",
		)
	}

	acct.ID = entity.ID
	acct.CreatedAt = entity.CreatedAt
	acct.UpdatedAt = entity.UpdatedAt
	return nil
}

// FindByEmail fetches an account by its email address.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	var entity entities.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformerrors.NewError(
				ctx,
				platformerrors.LayerRepository,
				platformerrors.ErrorTypeNotFound,
				fmt.Sprintf("account not found: %s", email),
				nil,
				"0d6e4f3a-5b7c-4d8e-1f9a-2b3c4d5e6f7b",
			)
		}
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to fetch account",
			err,
			"1e7f5a4b-6c8d-4e9f-2a0b-3c4d5e6f7a8c",
		)
	}

	return entity.EtoD(), nil
}

// UpdatePassword stores a new password hash for the account.
func (r *Repository) UpdatePassword(ctx context.Context, id uint, passwordHash string) error {
	result := r.db.WithContext(ctx).
		Model(&entities.User{}).
		Where("id = ?", id).
		Update("password_hash", passwordHash)
	if result.Error != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to update password",
			result.Error,
			"2f8a6b5c-7d9e-4f0a-3b1c-4d5e6f7a8b9d",
		)
	}
	if result.RowsAffected == 0 {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeNotFound,
			fmt.Sprintf("account not found: %d", id),
			nil,
			"3a9b7c6d-8e0f-4a1b-4c2d-5e6f7a8b9c0e",
		)
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation
}
