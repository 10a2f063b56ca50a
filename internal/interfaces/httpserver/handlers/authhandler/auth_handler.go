// Package authhandler serves the account endpoints: registration, login,
// identity, password change and logout.
package authhandler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"aura-server/internal/domain/account"
	"aura-server/internal/infrastructure/metrics"
	"aura-server/internal/interfaces/httpserver/middlewares"
	"aura-server/internal/interfaces/httpserver/requests"
	"aura-server/internal/interfaces/httpserver/responses"
	"aura-server/internal/utils/platformerrors"
)

// AuthHandler invokes account domain logic for the auth routes.
type AuthHandler struct {
	accounts *account.AccountService
	logger   zerolog.Logger
}

// NewAuthHandler wires dependencies for the auth routes.
func NewAuthHandler(accounts *account.AccountService, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		accounts: accounts,
		logger:   logger.With().Str("component", "auth-handler").Logger(),
	}
}

// Register godoc
// @Summary Register a new account
// @Description Creates an account for an allowed email domain. All validation failures are reported together.
// @Tags Auth API
// @Accept json
// @Produce json
// @Param request body requests.RegisterRequest true "Registration payload"
// @Success 201 {object} responses.StandardResponse "Account created"
// @Failure 400 {object} responses.ErrorResponse "Email already registered"
// @Failure 422 {object} responses.ErrorResponse "Validation failures"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	var req requests.RegisterRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeInvalidRequest,
			"invalid request body", "6e0a4c8d-3f5b-4a7c-1d9e-0f2a4b6c8d3e")
		return
	}

	acct, err := h.accounts.Register(ctx, account.RegisterInput{
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
	})
	if err != nil {
		metrics.RecordAuth("register", "failed")
		responses.HandleError(reqCtx, err)
		return
	}

	metrics.RecordAuth("register", "ok")
	metrics.AccountsRegisteredTotal.Inc()

	reqCtx.JSON(http.StatusCreated, responses.StandardResponse{
		Message: fmt.Sprintf("User %s registered successfully", acct.Email),
		Success: true,
	})
}

// Login godoc
// @Summary Log in with email and password
// @Description Verifies credentials and issues a bearer token.
// @Tags Auth API
// @Accept json
// @Produce json
// @Param request body requests.LoginRequest true "Credentials"
// @Success 200 {object} responses.TokenResponse "Access token"
// @Failure 400 {object} responses.ErrorResponse "Invalid request body"
// @Failure 401 {object} responses.ErrorResponse "Incorrect email or password"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	var req requests.LoginRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeInvalidRequest,
			"invalid request body", "7f1b5d9e-4a6c-4b8d-2e0f-1a3b5c7d9e4f")
		return
	}

	token, err := h.accounts.Login(ctx, req.Email, req.Password)
	if err != nil {
		metrics.RecordAuth("login", "failed")
		responses.HandleError(reqCtx, err)
		return
	}

	metrics.RecordAuth("login", "ok")

	reqCtx.JSON(http.StatusOK, responses.NewTokenResponse(token))
}

// Me godoc
// @Summary Get the authenticated account
// @Tags Auth API
// @Security BearerAuth
// @Produce json
// @Success 200 {object} responses.UserResponse "Authenticated account"
// @Failure 401 {object} responses.ErrorResponse "Could not validate credentials"
// @Failure 403 {object} responses.ErrorResponse "Not authenticated"
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(reqCtx *gin.Context) {
	acct, ok := middlewares.GetAccountFromContext(reqCtx)
	if !ok {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeUnauthorized,
			"authentication required", "8a2c6e0f-5b7d-4c9e-3f1a-2b4c6d8e0f5a")
		return
	}

	reqCtx.JSON(http.StatusOK, responses.NewUserResponse(acct))
}

// ChangePassword godoc
// @Summary Change the account password
// @Description Re-verifies the current password before storing the new one.
// @Tags Auth API
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body requests.ChangePasswordRequest true "Current and new password"
// @Success 200 {object} responses.StandardResponse "Password changed"
// @Failure 400 {object} responses.ErrorResponse "Incorrect current password or invalid new password"
// @Failure 401 {object} responses.ErrorResponse "Could not validate credentials"
// @Failure 403 {object} responses.ErrorResponse "Not authenticated"
// @Router /api/auth/change-password [post]
func (h *AuthHandler) ChangePassword(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	acct, ok := middlewares.GetAccountFromContext(reqCtx)
	if !ok {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeUnauthorized,
			"authentication required", "9b3d7f1a-6c8e-4d0f-4a2b-3c5d7e9f1a6b")
		return
	}

	var req requests.ChangePasswordRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeInvalidRequest,
			"invalid request body", "0c4e8a2b-7d9f-4e1a-5b3c-4d6e8f0a2b7c")
		return
	}

	if err := h.accounts.ChangePassword(ctx, acct, req.OldPassword, req.NewPassword); err != nil {
		responses.HandleError(reqCtx, err)
		return
	}

	reqCtx.JSON(http.StatusOK, responses.StandardResponse{
		Message: "Password changed successfully",
		Success: true,
	})
}

// Logout godoc
// @Summary Log out
// @Description Tokens are stateless, so logout acknowledges without revoking; the client discards the token.
// @Tags Auth API
// @Security BearerAuth
// @Produce json
// @Success 200 {object} responses.StandardResponse "Logged out"
// @Failure 401 {object} responses.ErrorResponse "Could not validate credentials"
// @Failure 403 {object} responses.ErrorResponse "Not authenticated"
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(reqCtx *gin.Context) {
	acct, ok := middlewares.GetAccountFromContext(reqCtx)
	if !ok {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeUnauthorized,
			"authentication required", "1d5f9b3c-8e0a-4f2b-6c4d-5e7f9a1b3c8d")
		return
	}

	h.logger.Info().Str("account_id", acct.PublicID).Msg("account logged out")

	reqCtx.JSON(http.StatusOK, responses.StandardResponse{
		Message: "Logged out successfully",
		Success: true,
	})
}

// Protected godoc
// @Summary Authenticated smoke-test route
// @Tags Auth API
// @Security BearerAuth
// @Produce json
// @Success 200 {object} responses.ProtectedResponse "Greeting for the authenticated account"
// @Failure 401 {object} responses.ErrorResponse "Could not validate credentials"
// @Failure 403 {object} responses.ErrorResponse "Not authenticated"
// @Router /protected [get]
func (h *AuthHandler) Protected(reqCtx *gin.Context) {
	acct, ok := middlewares.GetAccountFromContext(reqCtx)
	if !ok {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeUnauthorized,
			"authentication required", "2e6a0c4d-9f1b-4a3c-7d5e-6f8a0b2c4d9e")
		return
	}

	reqCtx.JSON(http.StatusOK, responses.ProtectedResponse{
		Message:       fmt.Sprintf("Hello %s!", acct.Email),
		UserID:        acct.PublicID,
		AccessGranted: true,
	})
}
