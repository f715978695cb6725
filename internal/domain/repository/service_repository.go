// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"vaultd/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrServiceNotFound is a domain-specific error returned when a service catalog entry is not found.
var ErrServiceNotFound = errors.New("service not found")

// ServiceRepository defines read and maintenance operations for the service catalog.
type ServiceRepository interface {
	// FindByName retrieves a single service by its unique machine name.
	FindByName(ctx context.Context, name string) (*entity.Service, error)

	// FindByID retrieves a single service by its ID.
	FindByID(ctx context.Context, id int64) (*entity.Service, error)

	// ListActive retrieves all active services.
	ListActive(ctx context.Context) ([]*entity.Service, error)

	// Upsert inserts the service or updates the existing row with the same name.
	// Used to seed the catalog at startup.
	Upsert(ctx context.Context, svc *entity.Service) error
}
