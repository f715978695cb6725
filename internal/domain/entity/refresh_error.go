package entity

import (
	"time"

	"github.com/google/uuid"
)

// AlertRetryThreshold is the unresolved retry count past which a connection's
// refresh failures are surfaced for operator attention. Connections are never
// auto-disabled on failure.
const AlertRetryThreshold = 5

// RefreshError is an append-only record of failed token refresh attempts for
// one connection. Repeated failures increment RetryCount on the open record
// instead of creating a new row; a later successful refresh resolves it.
type RefreshError struct {
	ID           int64
	ConnectionID uuid.UUID
	ErrorType    string // Coarse classification, e.g. "refresh_failed", "upstream_timeout".
	ErrorMessage string
	RetryCount   int
	CreatedAt    time.Time
	LastRetryAt  *time.Time
	ResolvedAt   *time.Time // nil while the failure is outstanding.
}

// NeedsAttention reports whether the record has failed often enough to alert on.
func (e *RefreshError) NeedsAttention() bool {
	return e.ResolvedAt == nil && e.RetryCount > AlertRetryThreshold
}
