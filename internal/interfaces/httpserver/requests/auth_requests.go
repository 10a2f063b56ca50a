// Package requests defines the JSON bodies accepted by the HTTP API.
package requests

// RegisterRequest represents the request to register a new account.
// Field-level rules run in the domain validator so all violations are
// reported together.
type RegisterRequest struct {
	Email           string  `json:"email"`
	Password        string  `json:"password"`
	ConfirmPassword string  `json:"confirmPassword"`
	FirstName       *string `json:"firstName,omitempty"`
	LastName        *string `json:"lastName,omitempty"`
}

// LoginRequest represents the credentials presented at login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ChangePasswordRequest carries the current and replacement passwords
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}
