package dbmysql

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Handle       string         `gorm:"uniqueIndex;size:50;not null" json:"name"`
	Email        string         `gorm:"size:255" json:"email"`
	PasswordHash string         `gorm:"size:255;not null" json:"-"`
	AvatarID     string         `gorm:"size:64" json:"avatar,omitempty"`
	Status       string         `gorm:"type:enum('active','banned','deleted');default:'active'" json:"-"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
