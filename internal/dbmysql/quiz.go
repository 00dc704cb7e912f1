package dbmysql

import (
	"time"
)

type Quiz struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	UserID      uint       `gorm:"index;not null" json:"user_id"`
	Topic       string     `gorm:"size:255;not null" json:"topic"`
	Description string     `gorm:"size:1000;not null" json:"description"`
	Questions   []Question `gorm:"constraint:OnDelete:CASCADE" json:"questions"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

type Question struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	QuizID       uint      `gorm:"index;not null" json:"quiz_id"`
	Question     string    `gorm:"type:text;not null" json:"question"`
	Options      []string  `gorm:"serializer:json;type:json" json:"options"`
	CorrectIndex int       `gorm:"not null" json:"correct_index"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
