package model

import (
	"time"

	"github.com/google/uuid"
)

// RefreshErrorModel mirrors the 'token_refresh_errors' table. An open record
// (resolved_at NULL) accumulates retries instead of spawning new rows.
type RefreshErrorModel struct {
	ID           int64     `gorm:"primary_key;autoIncrement"`
	ConnectionID uuid.UUID `gorm:"type:uuid;not null;index"`
	ErrorType    string    `gorm:"type:varchar(100);not null"`
	ErrorMessage string    `gorm:"type:text"`
	RetryCount   int       `gorm:"not null;default:1"`
	CreatedAt    time.Time
	LastRetryAt  *time.Time
	ResolvedAt   *time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (RefreshErrorModel) TableName() string {
	return "token_refresh_errors"
}
