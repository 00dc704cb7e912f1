package common

import (
	"context"
)

type Observer interface {
	Update(event NotificationEvent) error
	Name() string
}

type Subject interface {
	Subscribe(observer Observer)
	Unsubscribe(observer Observer)
	Notify(event NotificationEvent)
	NotifyAsync(event NotificationEvent)
}

type NotificationStore interface {
	Create(ctx context.Context, event NotificationEvent) error
	ByUserID(ctx context.Context, userID uint, limit, offset int) ([]NotificationEvent, error)
	UnreadCount(ctx context.Context, userID uint) (int64, error)
}
