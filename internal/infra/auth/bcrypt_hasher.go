// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"vaultd/internal/domain/service"
)

// bcryptHasher is a concrete implementation of the SecretHasher interface using bcrypt.
// It protects the static internal token: configuration stores only the hash,
// so a leaked config file does not leak the token itself.
type bcryptHasher struct{}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.SecretHasher interface.
func NewBcryptHasher() service.SecretHasher {
	return &bcryptHasher{}
}

// Hash generates a salted hash from a plaintext secret using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(secret string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	return string(bytes), err
}

// Check compares a plaintext secret with a bcrypt hash.
func (h *bcryptHasher) Check(secret, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret))
	// err is nil if the secret and hash match.
	return err == nil
}
