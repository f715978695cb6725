// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"vaultd/internal/domain/entity"
)

// AuditLogRepository defines append-only operations for the audit trail.
// Entries record that an access happened, never the credential values involved.
type AuditLogRepository interface {
	// AppendAccess records one credential access event.
	AppendAccess(ctx context.Context, log *entity.AccessLog) error

	// AppendOAuthUsage records one use of a registered OAuth application.
	AppendOAuthUsage(ctx context.Context, log *entity.OAuthUsageLog) error
}
