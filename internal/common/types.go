package common

import (
	"time"
)

type NotificationType string

const (
	MessageType NotificationType = "message"
	SystemType  NotificationType = "system"
)

type NotificationStatus string

const (
	StatusPending NotificationStatus = "pending"
	StatusSent    NotificationStatus = "sent"
	StatusFailed  NotificationStatus = "failed"
	StatusRead    NotificationStatus = "read"
)

type NotificationEvent struct {
	Type          NotificationType
	UserID        uint
	TriggerUserID *uint
	Header        string
	Content       string
	CreatedAt     time.Time
}
