package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// RefreshUsecase defines the interface for the token refresh orchestrator.
type RefreshUsecase interface {
	// RefreshDueConnections scans for connections whose access token expires
	// inside the refresh window and refreshes each one. Failures are isolated
	// per connection: one broken refresh never stops the batch.
	RefreshDueConnections(ctx context.Context) (*RefreshReport, error)
}

// RefreshReport summarizes one orchestrator run.
type RefreshReport struct {
	Processed int              `json:"processed"`
	Results   []*RefreshResult `json:"results"`
}

// RefreshResult is the outcome for a single connection.
type RefreshResult struct {
	ConnectionID uuid.UUID  `json:"connectionId"`
	Status       string     `json:"status"` // "success" or "error".
	Error        string     `json:"error,omitempty"`
	NewExpiresAt *time.Time `json:"newExpiresAt,omitempty"`
}

// RefreshResult status values.
const (
	RefreshStatusSuccess = "success"
	RefreshStatusError   = "error"
)
