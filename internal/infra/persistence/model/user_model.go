// Package model holds the GORM persistence models. They never leave the persistence layer.
package model

import (
	"database/sql"
	"time"
)

// UserModel mirrors the 'users' table. The schema itself is owned by the goose migrations.
type UserModel struct {
	ID               int64          `gorm:"primaryKey;autoIncrement"`
	Email            string         `gorm:"type:varchar(255);uniqueIndex:users_email_key;not null"`
	Name             string         `gorm:"type:varchar(255);not null;default:''"`
	Password         sql.NullString `gorm:"column:password;type:varchar(255)"`
	Provider         sql.NullString `gorm:"type:varchar(32)"`
	ProviderID       sql.NullString `gorm:"type:varchar(255)"`
	ProfileImageLink sql.NullString `gorm:"type:text"`
	IsActive         bool           `gorm:"not null;default:true"`
	SubscriptionType string         `gorm:"type:varchar(16);not null;default:FREE"`
	SubscriptionEnd  *time.Time
	CreatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
