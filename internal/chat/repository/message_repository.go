package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"chatline/internal/common"
	"chatline/internal/dbmysql"
)

type MessageRepository interface {
	Create(ctx context.Context, msg *dbmysql.Message) error
	ByID(ctx context.Context, id uint) (*dbmysql.Message, error)
	Conversation(ctx context.Context, userA, userB uint) ([]*dbmysql.Message, error)
	MarkDeletedBySender(ctx context.Context, id uint) error
	MarkDeletedForBoth(ctx context.Context, id uint) error
}

type messageRepo struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepo{db: db}
}

func (r *messageRepo) Create(ctx context.Context, msg *dbmysql.Message) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *messageRepo) ByID(ctx context.Context, id uint) (*dbmysql.Message, error) {
	var msg dbmysql.Message
	err := r.db.WithContext(ctx).First(&msg, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("message", id)
		}
		return nil, fmt.Errorf("failed to load message: %w", err)
	}
	return &msg, nil
}

// Conversation returns every message between the two users, in both
// directions, ordered by creation time with id as the tiebreak. Delete
// flags are not filtered here: the receiver must still see a message the
// sender hid from themself, so visibility is applied at render time.
func (r *messageRepo) Conversation(ctx context.Context, userA, userB uint) ([]*dbmysql.Message, error) {
	var messages []*dbmysql.Message
	err := r.db.WithContext(ctx).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userA, userB, userB, userA).
		Order("created_at ASC, id ASC").
		Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load conversation: %w", err)
	}
	return messages, nil
}

// MarkDeletedBySender flips deleted_by_sender only. The update targets the
// single column so a concurrent MarkDeletedForBoth on the same row can
// never be overwritten by a stale read.
func (r *messageRepo) MarkDeletedBySender(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&dbmysql.Message{}).
		Where("id = ?", id).
		Update("deleted_by_sender", true).Error
}

// MarkDeletedForBoth flips is_deleted_for_both only, same single-column
// contract as MarkDeletedBySender.
func (r *messageRepo) MarkDeletedForBoth(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&dbmysql.Message{}).
		Where("id = ?", id).
		Update("is_deleted_for_both", true).Error
}
