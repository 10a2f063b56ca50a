package responses

import (
	"time"

	"aura-server/internal/domain/account"
	"aura-server/internal/infrastructure/auth"
)

// TokenResponse is returned after a successful login
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	ExpiresIn   int    `json:"expiresIn"`
}

// NewTokenResponse maps an issued access token to its wire form.
func NewTokenResponse(token *auth.AccessToken) TokenResponse {
	return TokenResponse{
		AccessToken: token.Token,
		TokenType:   "bearer",
		ExpiresIn:   token.ExpiresIn,
	}
}

// UserResponse is the public view of an account
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName *string   `json:"firstName"`
	LastName  *string   `json:"lastName"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewUserResponse maps an account to its wire form. The password hash never
// leaves the domain.
func NewUserResponse(acct *account.Account) UserResponse {
	return UserResponse{
		ID:        acct.PublicID,
		Email:     acct.Email,
		FirstName: acct.FirstName,
		LastName:  acct.LastName,
		IsActive:  acct.IsActive,
		CreatedAt: acct.CreatedAt,
		UpdatedAt: acct.UpdatedAt,
	}
}

// ProtectedResponse is returned by the authenticated smoke-test route
type ProtectedResponse struct {
	Message       string `json:"message"`
	UserID        string `json:"userId"`
	AccessGranted bool   `json:"accessGranted"`
}
