package model

import (
	"time"
)

// PostModel mirrors the 'posts' table. UserID references users.id with ON DELETE CASCADE.
type PostModel struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	Title      string `gorm:"type:varchar(255);not null"`
	Image      string `gorm:"type:text"`
	Content    string `gorm:"type:text;not null"`
	Category   string `gorm:"type:varchar(100);not null"`
	UserID     int64  `gorm:"not null;index"`
	IsActive   bool   `gorm:"not null"`
	IsTrending bool   `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	User *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (PostModel) TableName() string {
	return "posts"
}
