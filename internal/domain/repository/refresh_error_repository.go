// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"vaultd/internal/domain/entity"

	"github.com/google/uuid"
)

// RefreshErrorRepository defines operations for the token refresh failure ledger.
type RefreshErrorRepository interface {
	// RecordFailure appends or updates the open failure record for a connection.
	// When an unresolved record of the same error type exists its retry count is
	// incremented and LastRetryAt is set; otherwise a new record is created.
	// The updated record is returned so callers can check the retry count.
	RecordFailure(ctx context.Context, connectionID uuid.UUID, errorType, errorMessage string, at time.Time) (*entity.RefreshError, error)

	// Resolve closes all open failure records for a connection after a
	// successful refresh.
	Resolve(ctx context.Context, connectionID uuid.UUID, at time.Time) error

	// ListUnresolved retrieves open failure records, most recent first.
	ListUnresolved(ctx context.Context, limit int) ([]*entity.RefreshError, error)

	// CountUnresolved returns the number of open failure records for a connection.
	CountUnresolved(ctx context.Context, connectionID uuid.UUID) (int, error)
}
