// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"vaultd/internal/domain/entity"

	"github.com/google/uuid"
)

// CredentialUsecase defines the interface for credential store operations.
// Plaintext secrets enter through StoreConnection and UpdateTokens and leave
// through GetCredentials; everywhere else only encrypted forms and metadata
// circulate.
type CredentialUsecase interface {
	// StoreConnection encrypts and persists a manually entered connection.
	StoreConnection(ctx context.Context, input *StoreConnectionInput) (uuid.UUID, error)

	// GetCredentials returns the decrypted credentials of the latest active
	// connection for an owner and service. The refresh token is never included.
	GetCredentials(ctx context.Context, input *GetCredentialsInput) (*CredentialsOutput, error)

	// ListConnections returns metadata for all active connections of an owner.
	ListConnections(ctx context.Context, ownerID uuid.UUID) ([]*ConnectionSummary, error)

	// ConnectionStatus reports the health of a single connection.
	ConnectionStatus(ctx context.Context, connectionID uuid.UUID) (*ConnectionStatusOutput, error)

	// UpdateTokens encrypts and applies a partial token update. Nil fields
	// leave the stored values untouched.
	UpdateTokens(ctx context.Context, connectionID uuid.UUID, input *UpdateTokensInput) error

	// Deactivate revokes a connection without deleting its audit trail.
	Deactivate(ctx context.Context, connectionID uuid.UUID, accessedBy string) error
}

// --- Input DTOs ---

// StoreConnectionInput defines the data required to store a manual connection.
// All credential fields are plaintext; at least one must be set.
type StoreConnectionInput struct {
	OwnerID           uuid.UUID  `json:"owner_id"`
	ServiceName       string     `json:"service_name"`
	ConnectionName    string     `json:"connection_name"`
	AccessToken       *string    `json:"access_token,omitempty"`
	RefreshToken      *string    `json:"refresh_token,omitempty"`
	APIKey            *string    `json:"api_key,omitempty"`
	Secret            *string    `json:"secret,omitempty"`
	TokenExpiresAt    *time.Time `json:"token_expires_at,omitempty"`
	Scopes            []string   `json:"scopes,omitempty"`
	AccountIdentifier string     `json:"account_identifier,omitempty"`
}

// GetCredentialsInput identifies whose credentials are being read and by whom.
type GetCredentialsInput struct {
	OwnerID     uuid.UUID
	ServiceName string
	AccessedBy  string  // Calling subsystem recorded in the audit trail.
	IPAddress   *string // Source address when known.
}

// UpdateTokensInput carries plaintext replacement tokens. A nil field keeps
// the stored value, so refresh responses without a rotated refresh token do
// not clobber the existing one.
type UpdateTokensInput struct {
	AccessToken  *string    `json:"access_token,omitempty"`
	RefreshToken *string    `json:"refresh_token,omitempty"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
}

// --- Output DTOs ---

// CredentialsOutput is the decrypted credential payload handed to internal
// callers. Refresh tokens and secrets stay out of it.
type CredentialsOutput struct {
	ConnectionID uuid.UUID           `json:"connectionId"`
	Credentials  DecryptedCredential `json:"credentials"`
	Metadata     CredentialMetadata  `json:"metadata"`
}

// DecryptedCredential holds the plaintext values a caller needs to reach the
// third-party service.
type DecryptedCredential struct {
	AccessToken *string `json:"accessToken,omitempty"`
	APIKey      *string `json:"apiKey,omitempty"`
}

// CredentialMetadata describes the connection without exposing secret values.
type CredentialMetadata struct {
	AccountIdentifier string     `json:"accountIdentifier,omitempty"`
	Scopes            []string   `json:"scopes,omitempty"`
	TokenExpired      bool       `json:"tokenExpired"`
	TokenExpiresAt    *time.Time `json:"tokenExpiresAt,omitempty"`
}

// ConnectionSummary is one row of an owner's connection listing.
type ConnectionSummary struct {
	ID                 uuid.UUID               `json:"id"`
	ServiceName        string                  `json:"service_name"`
	ServiceDisplayName string                  `json:"service_display_name"`
	ConnectionName     string                  `json:"connection_name"`
	AccountIdentifier  string                  `json:"account_identifier,omitempty"`
	TokenExpiresAt     *time.Time              `json:"token_expires_at,omitempty"`
	LastUsedAt         *time.Time              `json:"last_used_at,omitempty"`
	Status             entity.ConnectionStatus `json:"status"`
}

// ConnectionStatusOutput reports the health of one connection.
type ConnectionStatusOutput struct {
	ID             uuid.UUID               `json:"id"`
	ServiceName    string                  `json:"service_name"`
	IsActive       bool                    `json:"is_active"`
	Status         entity.ConnectionStatus `json:"status"`
	TokenExpiresAt *time.Time              `json:"token_expires_at,omitempty"`
	LastUsedAt     *time.Time              `json:"last_used_at,omitempty"`
	ErrorCount     int                     `json:"error_count"` // Open refresh failures.
}
