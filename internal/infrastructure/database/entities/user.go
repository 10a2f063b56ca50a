package entities

import (
	"time"

	"aura-server/internal/domain/account"
)

// User represents the database schema for user accounts
type User struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	PublicID     string  `gorm:"type:varchar(50);uniqueIndex;not null"`
	Email        string  `gorm:"type:varchar(320);uniqueIndex:ux_users_email;not null"`
	PasswordHash string  `gorm:"type:varchar(128);not null"`
	FirstName    *string `gorm:"type:varchar(150)"`
	LastName     *string `gorm:"type:varchar(150)"`
	IsActive     bool    `gorm:"not null;default:true"`
}

// TableName specifies the table name for User.
func (User) TableName() string {
	return "users"
}

// EtoD converts database entity to domain model
func (u *User) EtoD() *account.Account {
	if u == nil {
		return nil
	}

	return &account.Account{
		ID:           u.ID,
		PublicID:     u.PublicID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		IsActive:     u.IsActive,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

// NewSchemaUser creates a database entity from domain model
func NewSchemaUser(a *account.Account) *User {
	if a == nil {
		return nil
	}

	return &User{
		ID:           a.ID,
		PublicID:     a.PublicID,
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
		FirstName:    a.FirstName,
		LastName:     a.LastName,
		IsActive:     a.IsActive,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}
