package account

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"aura-server/internal/infrastructure/auth"
	"aura-server/internal/utils/idgen"
	"aura-server/internal/utils/platformerrors"
)

// AccountService handles business logic for accounts
type AccountService struct {
	repo      Repository
	hasher    *auth.PasswordHasher
	tokens    *auth.TokenService
	validator *RegistrationValidator
	logger    zerolog.Logger
}

// NewAccountService creates a new account service
func NewAccountService(repo Repository, hasher *auth.PasswordHasher, tokens *auth.TokenService, validator *RegistrationValidator, logger zerolog.Logger) *AccountService {
	if validator == nil {
		validator = NewRegistrationValidator(nil)
	}

	return &AccountService{
		repo:      repo,
		hasher:    hasher,
		tokens:    tokens,
		validator: validator,
		logger:    logger.With().Str("component", "account-service").Logger(),
	}
}

// ===============================================
// Registration
// ===============================================

// RegisterInput represents the input for registering an account
type RegisterInput struct {
	Email           string
	Password        string
	ConfirmPassword string
	FirstName       *string
	LastName        *string
}

// Register validates a registration request, checks email uniqueness and
// persists the new account with a hashed password.
func (s *AccountService) Register(ctx context.Context, input RegisterInput) (*Account, error) {
	if violations := s.validator.Validate(input.Email, input.Password, input.ConfirmPassword); len(violations) > 0 {
		return nil, platformerrors.NewErrorWithContext(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			strings.Join(violations, "; "), nil, "f3a1c6d0-2b4e-4e8a-9c5d-7e0f1a2b3c4d",
			map[string]any{"violations": violations})
	}

	existing, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil && !platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound) {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to check existing account")
	}
	if existing != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeConflict,
			"Email already registered", nil, "a7b2d4e6-8f0a-4c1b-9d3e-5f7a9b1c3d5e")
	}

	passwordHash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to hash password")
	}

	publicID, err := idgen.GenerateSecureID("user", 16)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to generate account ID")
	}

	account := NewAccount(publicID, input.Email, passwordHash, input.FirstName, input.LastName)

	if err := s.repo.Create(ctx, account); err != nil {
		// A concurrent registration can slip past the pre-check; the unique
		// constraint surfaces it as a conflict here.
		if platformerrors.IsErrorType(err, platformerrors.ErrorTypeConflict) {
			return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeConflict,
				"Email already registered", err, "c9d1e3f5-0a2b-4c6d-8e0f-1a3b5c7d9e1f")
		}
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to create account")
	}

	s.logger.Info().Str("account_id", account.PublicID).Msg("account registered")

	return account, nil
}

// ===============================================
// Authentication
// ===============================================

// Login verifies credentials and issues an access token for the account.
func (s *AccountService) Login(ctx context.Context, email, password string) (*auth.AccessToken, error) {
	acct, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound) {
			return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeUnauthorized,
				"Incorrect email or password", nil, "e1f3a5b7-2c4d-4e6f-8a0b-3c5d7e9f1a2b")
		}
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to load account")
	}

	if !s.hasher.Compare(acct.PasswordHash, password) {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeUnauthorized,
			"Incorrect email or password", nil, "b5c7d9e1-4f6a-4b8c-0d2e-5f7a9b1c3d4e")
	}

	if !acct.IsActive {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeUnauthorized,
			"User account is disabled", nil, "d7e9f1a3-6b8c-4d0e-2f4a-7b9c1d3e5f6a")
	}

	token, err := s.tokens.Issue(acct.Email)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to issue access token")
	}

	return token, nil
}

// GetByEmail resolves an account by email. Used by the auth middleware to
// attach the principal to the request context.
func (s *AccountService) GetByEmail(ctx context.Context, email string) (*Account, error) {
	acct, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "account lookup failed")
	}
	return acct, nil
}

// ===============================================
// Password Management
// ===============================================

// ChangePassword re-verifies the current password and persists a new hash.
func (s *AccountService) ChangePassword(ctx context.Context, acct *Account, currentPassword, newPassword string) error {
	if !s.hasher.Compare(acct.PasswordHash, currentPassword) {
		return platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeInvalidRequest,
			"Incorrect current password", nil, "f9a1b3c5-8d0e-4f2a-4b6c-9d1e3f5a7b8c")
	}

	if violation := s.validator.ValidateNewPassword(newPassword); violation != "" {
		return platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeInvalidRequest,
			violation, nil, "a3b5c7d9-0e2f-4a4b-6c8d-1e3f5a7b9c0d")
	}

	passwordHash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to hash password")
	}

	if err := s.repo.UpdatePassword(ctx, acct.ID, passwordHash); err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to update password")
	}

	s.logger.Info().Str("account_id", acct.PublicID).Msg("password changed")

	return nil
}
