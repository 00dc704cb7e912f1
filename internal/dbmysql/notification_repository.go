package dbmysql

import (
	"context"
	"fmt"

	"chatline/internal/common"

	"gorm.io/gorm"
)

type notificationStore struct {
	db *gorm.DB
}

func NewNotificationStore(db *gorm.DB) common.NotificationStore {
	return &notificationStore{db: db}
}

func (r *notificationStore) Create(ctx context.Context, event common.NotificationEvent) error {
	notif := &Notification{
		UserID:        event.UserID,
		TriggerUserID: event.TriggerUserID,
		Type:          string(event.Type),
		Header:        event.Header,
		Content:       event.Content,
		Status:        string(common.StatusPending),
	}

	if err := r.db.WithContext(ctx).Create(notif).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

func (r *notificationStore) ByUserID(ctx context.Context, userID uint, limit, offset int) ([]common.NotificationEvent, error) {
	var notifications []*Notification

	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&notifications).Error; err != nil {
		return nil, fmt.Errorf("failed to get user notifications: %w", err)
	}

	events := make([]common.NotificationEvent, 0, len(notifications))
	for _, n := range notifications {
		events = append(events, common.NotificationEvent{
			Type:          common.NotificationType(n.Type),
			UserID:        n.UserID,
			TriggerUserID: n.TriggerUserID,
			Header:        n.Header,
			Content:       n.Content,
			CreatedAt:     n.CreatedAt,
		})
	}
	return events, nil
}

func (r *notificationStore) UnreadCount(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Notification{}).
		Where("user_id = ? AND read_at IS NULL", userID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}
