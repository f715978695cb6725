// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ConnectionStatus describes whether a connection's credentials are currently
// usable, derived from expiry and refresh-token presence.
type ConnectionStatus string

const (
	// StatusValid means the access credential is usable right now.
	StatusValid ConnectionStatus = "valid"
	// StatusRefreshNeeded means the access token has expired but a refresh
	// token is stored, so the connection can be recovered automatically.
	StatusRefreshNeeded ConnectionStatus = "refresh_needed"
	// StatusExpired means the access token has expired and no refresh token
	// exists; manual re-authorization is required.
	StatusExpired ConnectionStatus = "expired"
)

// Connection represents one owner's stored link to a third-party service.
// The four secret fields hold the at-rest storage form produced by the
// encryption engine (version:iv:authTag:ciphertext, hex components), never
// plaintext. A nil field means the secret was never supplied.
type Connection struct {
	ID                uuid.UUID  // The unique ID for this connection record.
	OwnerID           uuid.UUID  // The owner (user or client) this connection belongs to.
	ServiceID         int64      // Links to the third-party Service catalog entry.
	ServiceName       string     // Denormalized service name, populated on reads that join the catalog.
	Name              string     // Human-readable connection name, e.g. "alice@example.com - google".
	AccessToken       *string    // Encrypted OAuth access token.
	RefreshToken      *string    // Encrypted OAuth refresh token.
	APIKey            *string    // Encrypted API key for non-OAuth services.
	Secret            *string    // Encrypted generic secret (e.g. API secret paired with a key).
	TokenExpiresAt    *time.Time // Access token expiry; nil means the token never expires.
	Scopes            []string   // OAuth scopes granted, in the order the provider returned them.
	AccountIdentifier string     // External account identity, usually an email address.
	OAuthAppID        *uuid.UUID // The OAuth application used to create this connection, if any.
	KeyVersion        int        // Master key generation used to encrypt the secret fields.
	IsActive          bool       // Soft-delete flag; inactive rows are retained for audit only.
	CreatedAt         time.Time
	UpdatedAt         time.Time
	LastUsedAt        *time.Time // Bumped on every credential read.
}

// Status derives the connection status at the given instant.
// No expiry means the credential never expires; an expired token is still
// recoverable while a refresh token is stored.
func (c *Connection) Status(now time.Time) ConnectionStatus {
	if c.TokenExpiresAt == nil || c.TokenExpiresAt.After(now) {
		return StatusValid
	}
	if c.RefreshToken != nil {
		return StatusRefreshNeeded
	}

	return StatusExpired
}

// HasSecret reports whether at least one secret field is present. A connection
// without any secret is invalid and must never be persisted.
func (c *Connection) HasSecret() bool {
	return c.AccessToken != nil || c.RefreshToken != nil || c.APIKey != nil || c.Secret != nil
}
