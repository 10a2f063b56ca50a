// Package account provides account domain models and behaviors.
package account

import (
	"context"
	"time"
)

// Account models a registered user.
type Account struct {
	ID           uint
	PublicID     string
	Email        string
	PasswordHash string
	FirstName    *string
	LastName     *string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Repository defines storage operations for accounts.
type Repository interface {
	Create(ctx context.Context, account *Account) error
	FindByEmail(ctx context.Context, email string) (*Account, error)
	UpdatePassword(ctx context.Context, id uint, passwordHash string) error
}

// NewAccount creates a new active account with the given attributes.
func NewAccount(publicID, email, passwordHash string, firstName, lastName *string) *Account {
	now := time.Now()

	return &Account{
		PublicID:     publicID,
		Email:        email,
		PasswordHash: passwordHash,
		FirstName:    firstName,
		LastName:     lastName,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
