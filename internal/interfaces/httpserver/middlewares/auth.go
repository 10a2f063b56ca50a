package middlewares

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"aura-server/internal/domain/account"
	"aura-server/internal/infrastructure/auth"
	"aura-server/internal/infrastructure/metrics"
	"aura-server/internal/interfaces/httpserver/responses"
	"aura-server/internal/utils/platformerrors"
)

const accountContextKey = "authenticated-account"

// AuthMiddleware verifies the bearer token on every protected route and
// attaches the resolved account to the gin context. The subject is re-fetched
// from the account store on each request, so a deleted account is rejected
// even with a structurally valid token.
//
// A missing Authorization header is a 403; everything else that fails is a
// generic 401 so callers cannot distinguish expired, forged and orphaned
// tokens.
func AuthMiddleware(tokens *auth.TokenService, accounts *account.AccountService, logger zerolog.Logger) gin.HandlerFunc {
	log := logger.With().Str("component", "auth-middleware").Logger()

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			metrics.RecordAuth("token", "missing")
			responses.HandleNewError(c, platformerrors.ErrorTypeForbidden,
				"Not authenticated", "4c8e2a6b-1d3f-4e5a-9b7c-8d0e2f4a6b1c")
			return
		}

		rawToken, ok := bearerToken(header)
		if !ok {
			metrics.RecordAuth("token", "malformed")
			unauthorized(c)
			return
		}

		email, err := tokens.Verify(rawToken)
		if err != nil {
			metrics.RecordAuth("token", "invalid")
			log.Debug().Str("token_fp", tokens.Fingerprint(rawToken)).Err(err).Msg("token verification failed")
			unauthorized(c)
			return
		}

		acct, err := accounts.GetByEmail(c.Request.Context(), email)
		if err != nil {
			metrics.RecordAuth("token", "unknown_account")
			unauthorized(c)
			return
		}

		metrics.RecordAuth("token", "ok")
		c.Set(accountContextKey, acct)
		c.Next()
	}
}

func unauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	responses.HandleNewError(c, platformerrors.ErrorTypeUnauthorized,
		"Could not validate credentials", "5d9f3b7c-2e4a-4f6b-0c8d-9e1f3a5b7c2d")
}

// bearerToken extracts the credential from an Authorization header value.
func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

// GetAccountFromContext returns the account attached by AuthMiddleware.
func GetAccountFromContext(c *gin.Context) (*account.Account, bool) {
	val, ok := c.Get(accountContextKey)
	if !ok || val == nil {
		return nil, false
	}
	acct, ok := val.(*account.Account)
	return acct, ok && acct != nil
}
