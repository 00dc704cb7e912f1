package dbmysql

import (
	"time"
)

// UserDetail is one row in the personal detail manager. Rows belong to
// exactly one user; only the owner may read or mutate them.
type UserDetail struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"index;not null" json:"user_id"`
	Nickname    string    `gorm:"size:255;not null" json:"nickname"`
	Hobbies     string    `gorm:"type:text;not null" json:"hobbies"`
	Description string    `gorm:"type:text;not null" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
