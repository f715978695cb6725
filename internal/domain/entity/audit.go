package entity

import (
	"time"

	"github.com/google/uuid"
)

// AccessType tags an audit log entry with the operation that touched a
// connection's credentials.
type AccessType string

const (
	AccessCreate  AccessType = "create"
	AccessRead    AccessType = "read"
	AccessRefresh AccessType = "refresh"
	AccessRevoke  AccessType = "revoke"
)

// AccessLog is one append-only audit entry for a credential access.
type AccessLog struct {
	ID           int64
	ConnectionID uuid.UUID
	AccessType   AccessType
	AccessedBy   string  // Calling subsystem, e.g. "api", "system", "n8n".
	IPAddress    *string // Source address when the access came over the gateway.
	CreatedAt    time.Time
}

// OAuthUsageLog records one use of a registered OAuth application, both
// successful and failed, keyed by flow step.
type OAuthUsageLog struct {
	ID           int64
	OAuthAppID   uuid.UUID
	OwnerID      uuid.UUID
	Action       string // "authorize", "token_exchange", "connection_created".
	Success      bool
	ErrorMessage *string
	CreatedAt    time.Time
}
