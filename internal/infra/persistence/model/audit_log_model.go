package model

import (
	"time"

	"github.com/google/uuid"
)

// AccessLogModel mirrors the 'credential_access_logs' table. Append-only.
type AccessLogModel struct {
	ID           int64     `gorm:"primary_key;autoIncrement"`
	ConnectionID uuid.UUID `gorm:"type:uuid;not null;index"`
	AccessType   string    `gorm:"type:varchar(20);not null"`
	AccessedBy   string    `gorm:"type:varchar(100);not null"`
	IPAddress    *string   `gorm:"type:varchar(45)"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccessLogModel) TableName() string {
	return "credential_access_logs"
}

// OAuthUsageLogModel mirrors the 'oauth_app_usage_logs' table. Append-only.
type OAuthUsageLogModel struct {
	ID           int64     `gorm:"primary_key;autoIncrement"`
	OAuthAppID   uuid.UUID `gorm:"type:uuid;not null;index"`
	OwnerID      uuid.UUID `gorm:"type:uuid;not null"`
	Action       string    `gorm:"type:varchar(50);not null"`
	Success      bool      `gorm:"not null;default:true"`
	ErrorMessage *string   `gorm:"type:text"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (OAuthUsageLogModel) TableName() string {
	return "oauth_app_usage_logs"
}
