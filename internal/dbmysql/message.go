package dbmysql

import (
	"time"
)

// Message is one directed message between two users. Rows are never
// physically removed; the two delete flags control per-viewer visibility
// and only ever flip from false to true.
type Message struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	SenderID         uint      `gorm:"index;not null" json:"sender_id"`
	ReceiverID       uint      `gorm:"index;not null" json:"receiver_id"`
	Content          string    `gorm:"type:text;not null" json:"content"`
	CreatedAt        time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	IsDeletedForBoth bool      `gorm:"default:false" json:"is_deleted_for_both"`
	DeletedBySender  bool      `gorm:"default:false" json:"deleted_by_sender"`
}
