package model

import (
	"time"

	"github.com/google/uuid"
)

// OAuthAppModel mirrors the 'oauth_applications' table. A NULL owner marks a
// global application shared by every owner. The client secret column holds the
// encrypted storage form.
type OAuthAppModel struct {
	ID                    uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	OwnerID               *uuid.UUID `gorm:"type:uuid;index"`
	ServiceName           string     `gorm:"type:varchar(100);not null;index"`
	AppName               string     `gorm:"type:varchar(255);not null"`
	ClientID              string     `gorm:"type:varchar(255);not null"`
	EncryptedClientSecret string     `gorm:"type:text;not null"`
	RedirectURI           string     `gorm:"type:text;not null"`
	Scopes                string     `gorm:"type:text"` // Space-separated scope list.
	IsActive              bool       `gorm:"not null;default:true"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// TableName explicitly sets the table name for GORM.
func (OAuthAppModel) TableName() string {
	return "oauth_applications"
}
