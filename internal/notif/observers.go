package notif

import (
	"context"
	"fmt"

	"chatline/internal/common"
)

// DatabaseNotificationObserver persists every event so the receiver can
// see what they missed between polls.
type DatabaseNotificationObserver struct {
	store common.NotificationStore
}

func NewDatabaseNotificationObserver(store common.NotificationStore) *DatabaseNotificationObserver {
	return &DatabaseNotificationObserver{store: store}
}

func (d *DatabaseNotificationObserver) Name() string {
	return "database_observer"
}

func (d *DatabaseNotificationObserver) Update(event common.NotificationEvent) error {
	if err := d.store.Create(context.Background(), event); err != nil {
		return fmt.Errorf("failed to store notification: %w", err)
	}
	return nil
}
