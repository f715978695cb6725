// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"vaultd/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrOAuthAppNotFound is a domain-specific error returned when no OAuth application matches.
var ErrOAuthAppNotFound = errors.New("oauth application not found")

// OAuthAppRepository defines operations for registered OAuth applications.
// Client secrets cross this boundary in their encrypted storage form only.
type OAuthAppRepository interface {
	// FindByID retrieves a single OAuth application by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.OAuthApp, error)

	// ResolveForOwner retrieves the active application for a service, preferring
	// an app scoped to the owner over the global one.
	ResolveForOwner(ctx context.Context, ownerID uuid.UUID, serviceName string) (*entity.OAuthApp, error)

	// ListActive retrieves all active applications, optionally filtered to one owner.
	ListActive(ctx context.Context, ownerID *uuid.UUID) ([]*entity.OAuthApp, error)

	// Upsert inserts the application or updates the existing row with the same
	// (service, owner) scope. Rotated client secrets take effect on the next
	// flow step because configs are always re-read from storage.
	Upsert(ctx context.Context, app *entity.OAuthApp) error

	// Deactivate marks an application inactive without deleting it.
	Deactivate(ctx context.Context, id uuid.UUID) error
}
