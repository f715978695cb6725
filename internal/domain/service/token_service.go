package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims for internal service-account JWTs.
type Claims struct {
	Caller string // Calling subsystem name, e.g. "n8n", "scheduler".
	Scopes []string
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating the JWTs
// internal callers present to the gateway.
type TokenService interface {
	// GenerateToken creates a signed service-account token for a caller.
	GenerateToken(subject string, scopes []string) (string, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)

	// GetTokenDuration returns the configured token lifetime.
	GetTokenDuration() time.Duration
}
