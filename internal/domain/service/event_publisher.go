package service

import (
	"context"
)

// AuditEvent represents a credential or OAuth application access event pushed
// to downstream consumers. It carries identifiers only, never secret values.
type AuditEvent struct {
	RequestID    string `json:"request_id,omitempty"` // For distributed tracing
	EventType    string `json:"event_type"`           // "credential_access", "oauth_app_usage", "refresh_alert"
	ConnectionID string `json:"connection_id,omitempty"`
	OAuthAppID   string `json:"oauth_app_id,omitempty"`
	OwnerID      string `json:"owner_id"`
	ServiceName  string `json:"service_name,omitempty"`
	Action       string `json:"action"` // "create", "read", "refresh", "revoke", "authorize", ...
	Success      bool   `json:"success"`
	Detail       string `json:"detail,omitempty"`
	OccurredAt   int64  `json:"occurred_at"` // Unix seconds.
}

// EventPublisher defines the interface for publishing audit events to a message queue.
// Publishing is best effort: a failed publish never aborts the operation that
// produced the event.
type EventPublisher interface {
	// PublishAuditEvent publishes an audit event for async processing.
	PublishAuditEvent(ctx context.Context, event *AuditEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
