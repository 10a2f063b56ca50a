package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"aura-server/internal/utils/idgen"
)

// AccessToken carries a signed token and its lifetime in seconds.
type AccessToken struct {
	Token     string
	ExpiresIn int
}

// TokenService issues and validates HS256 signed access tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService constructs a TokenService signing with the given secret.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs an access token whose subject is the given email.
func (s *TokenService) Issue(subject string) (*AccessToken, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub": subject,
		"iat": now.Unix(),
		"exp": now.Add(s.ttl).Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &AccessToken{Token: signed, ExpiresIn: int(s.ttl.Seconds())}, nil
}

// Verify parses and validates the given token returning its subject.
func (s *TokenService) Verify(rawToken string) (string, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{"HS256"}))
	token, err := parser.ParseWithClaims(rawToken, jwt.MapClaims{}, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("parse token: %w", err)
	}

	if !token.Valid {
		return "", errors.New("invalid token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid claims")
	}

	sub, _ := mapClaims["sub"].(string)
	if sub == "" {
		return "", errors.New("sub claim missing")
	}

	return sub, nil
}

// Fingerprint returns a non-reversible identifier for a presented token,
// safe to include in logs.
func (s *TokenService) Fingerprint(rawToken string) string {
	return idgen.HashKey256(rawToken, s.secret)
}
