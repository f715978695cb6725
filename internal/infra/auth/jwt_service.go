// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"vaultd/config"
	"vaultd/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// It signs the short-lived service-account tokens internal callers present to
// the gateway as an alternative to the static internal token.
type jwtService struct {
	secret string        // Secret key for signing tokens.
	ttl    time.Duration // Time-to-live for issued tokens.
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.InternalAuth == nil || cfg.InternalAuth.JWTSecret == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	return &jwtService{
		secret: cfg.InternalAuth.JWTSecret,
		ttl:    time.Hour,
	}, nil
}

// GenerateToken creates a signed service-account token for a caller.
func (s *jwtService) GenerateToken(subject string, scopes []string) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		Caller: subject,
		Scopes: scopes,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

// ValidateToken checks the validity of a token string.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &service.Claims{}, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "parsing token")
	}

	claims, ok := token.Claims.(*service.Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}

// GetTokenDuration returns the configured token lifetime.
func (s *jwtService) GetTokenDuration() time.Duration {
	return s.ttl
}
