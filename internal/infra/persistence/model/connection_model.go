package model

import (
	"time"

	"github.com/google/uuid"
)

// ConnectionModel mirrors the 'client_connections' table. Credential columns
// hold the versioned encrypted storage form, never plaintext. Rows are
// deactivated instead of deleted so the audit trail keeps its references.
type ConnectionModel struct {
	ID                    uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	OwnerID               uuid.UUID `gorm:"type:uuid;not null;index:idx_connections_owner"`
	ServiceID             int64     `gorm:"not null;index"`
	ConnectionName        string    `gorm:"type:varchar(255);not null"`
	EncryptedAccessToken  *string   `gorm:"type:text"`
	EncryptedRefreshToken *string   `gorm:"type:text"`
	EncryptedAPIKey       *string   `gorm:"type:text"`
	EncryptedSecret       *string   `gorm:"type:text"`
	TokenExpiresAt        *time.Time
	Scopes                string     `gorm:"type:text"` // Space-separated scope list.
	AccountIdentifier     string     `gorm:"type:varchar(255)"`
	OAuthAppID            *uuid.UUID `gorm:"type:uuid"`
	KeyVersion            int        `gorm:"not null;default:1"`
	IsActive              bool       `gorm:"not null;default:true"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
	LastUsedAt            *time.Time

	Service *ServiceModel `gorm:"foreignKey:ServiceID"`
}

// TableName explicitly sets the table name for GORM.
func (ConnectionModel) TableName() string {
	return "client_connections"
}
