package dbmysql

import (
	"time"
)

// Notification is the persisted trail of async notification events
// (currently only new-message events).
type Notification struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	UserID        uint       `gorm:"not null;index" json:"user_id"`
	TriggerUserID *uint      `gorm:"index" json:"trigger_user_id,omitempty"`
	Type          string     `gorm:"not null;size:50" json:"type"`
	Header        string     `gorm:"not null;size:255" json:"header"`
	Content       string     `gorm:"not null;type:text" json:"content"`
	Status        string     `gorm:"default:'pending';size:50" json:"status"`
	ReadAt        *time.Time `json:"read_at,omitempty"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}
