package model

import "time"

// ServiceModel mirrors the 'services' catalog table.
type ServiceModel struct {
	ID          int64  `gorm:"primary_key;autoIncrement"`
	Name        string `gorm:"type:varchar(100);unique;not null"`
	DisplayName string `gorm:"type:varchar(255);not null"`
	OAuthType   string `gorm:"type:varchar(20);not null"`
	IsActive    bool   `gorm:"not null;default:true"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ServiceModel) TableName() string {
	return "services"
}
