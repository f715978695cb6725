// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"vaultd/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrConnectionNotFound is a domain-specific error returned when a connection is not found.
var ErrConnectionNotFound = errors.New("connection not found")

// TokenPatch carries a partial token update. A nil field leaves the stored
// value untouched, so a refresh response that omits a new refresh token keeps
// the previous one.
type TokenPatch struct {
	AccessToken  *string
	RefreshToken *string
	ExpiresAt    *time.Time
}

// ConnectionRepository defines the standard operations for connection persistence.
// Credential fields cross this boundary in their encrypted storage form only;
// the repository never sees plaintext secrets.
type ConnectionRepository interface {
	// Create persists a new connection entity to the storage.
	Create(ctx context.Context, conn *entity.Connection) error

	// FindByID retrieves a single connection by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Connection, error)

	// FindActiveByOwnerAndService retrieves the most recently created active
	// connection for an owner and service. Multiple active connections may
	// coexist; the latest one wins.
	FindActiveByOwnerAndService(ctx context.Context, ownerID uuid.UUID, serviceName string) (*entity.Connection, error)

	// ListByOwner retrieves all active connections for an owner.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Connection, error)

	// FindDueForRefresh retrieves active connections holding a refresh token
	// whose access token expires before the given deadline.
	FindDueForRefresh(ctx context.Context, deadline time.Time) ([]*entity.Connection, error)

	// UpdateTokens applies a partial token update to a connection.
	UpdateTokens(ctx context.Context, id uuid.UUID, patch TokenPatch) error

	// TouchLastUsed records that the connection's credentials were just read.
	TouchLastUsed(ctx context.Context, id uuid.UUID, at time.Time) error

	// Deactivate marks a connection inactive. Rows are never deleted so the
	// audit trail stays intact.
	Deactivate(ctx context.Context, id uuid.UUID) error
}
