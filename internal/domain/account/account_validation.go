package account

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"aura-server/internal/utils/functional"
)

// ===============================================
// Registration Validation
// ===============================================

// RegistrationValidationConfig holds account registration rules
type RegistrationValidationConfig struct {
	AllowedDomains    []string
	MinPasswordLength int
}

// DefaultRegistrationValidationConfig returns the institutional registration rules
func DefaultRegistrationValidationConfig() *RegistrationValidationConfig {
	return &RegistrationValidationConfig{
		AllowedDomains:    []string{"@iitbhilai.ac.in"},
		MinPasswordLength: 8,
	}
}

// RegistrationValidator handles account registration validation
type RegistrationValidator struct {
	config *RegistrationValidationConfig
}

// NewRegistrationValidator creates a validator for account registration
func NewRegistrationValidator(config *RegistrationValidationConfig) *RegistrationValidator {
	if config == nil {
		config = DefaultRegistrationValidationConfig()
	}

	return &RegistrationValidator{config: config}
}

// Validate checks a registration request and returns every violation in
// fixed rule order: domain, password length, digit, uppercase, confirmation.
// An empty slice means the request is valid.
func (v *RegistrationValidator) Validate(email, password, confirmPassword string) []string {
	var violations []string

	if !v.IsAllowedDomain(email) {
		violations = append(violations, fmt.Sprintf("Only %s domain emails are allowed", strings.Join(v.config.AllowedDomains, " or ")))
	}

	if utf8.RuneCountInString(password) < v.config.MinPasswordLength {
		violations = append(violations, fmt.Sprintf("Password must be at least %d characters long", v.config.MinPasswordLength))
	}

	if !functional.Any([]rune(password), unicode.IsDigit) {
		violations = append(violations, "Password must contain at least one digit")
	}

	if !functional.Any([]rune(password), unicode.IsUpper) {
		violations = append(violations, "Password must contain at least one uppercase letter")
	}

	if password != confirmPassword {
		violations = append(violations, "Passwords do not match")
	}

	return violations
}

// IsAllowedDomain reports whether the email's domain suffix is on the allow-list.
func (v *RegistrationValidator) IsAllowedDomain(email string) bool {
	for _, domain := range v.config.AllowedDomains {
		if strings.HasSuffix(email, domain) {
			return true
		}
	}
	return false
}

// ValidateNewPassword checks the rule applied on password change; only the
// minimum length is enforced there. Returns the violation, or "" if valid.
func (v *RegistrationValidator) ValidateNewPassword(password string) string {
	if utf8.RuneCountInString(password) < v.config.MinPasswordLength {
		return fmt.Sprintf("New password must be at least %d characters long", v.config.MinPasswordLength)
	}
	return ""
}
