// Package presence tracks the ephemeral per-user signals the chat page
// shows next to a conversation: "is typing" and last-seen. Both live in
// Redis with TTLs; nothing here is durable or worth a MySQL table.
package presence

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// typingTTL caps how long a typing flag can outlive a lost stop-typing
// signal.
const typingTTL = 10 * time.Second

type Store interface {
	SetTyping(ctx context.Context, userID uint, isTyping bool) error
	IsTyping(ctx context.Context, userID uint) (bool, error)
	Touch(ctx context.Context, userID uint) error
	LastSeen(ctx context.Context, userID uint) (time.Time, error)
}

type redisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) Store {
	return &redisStore{rdb: rdb}
}

func typingKey(userID uint) string {
	return fmt.Sprintf("typing:%d", userID)
}

func lastSeenKey(userID uint) string {
	return fmt.Sprintf("lastseen:%d", userID)
}

func (s *redisStore) SetTyping(ctx context.Context, userID uint, isTyping bool) error {
	if !isTyping {
		return s.rdb.Del(ctx, typingKey(userID)).Err()
	}
	return s.rdb.Set(ctx, typingKey(userID), "1", typingTTL).Err()
}

func (s *redisStore) IsTyping(ctx context.Context, userID uint) (bool, error) {
	n, err := s.rdb.Exists(ctx, typingKey(userID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *redisStore) Touch(ctx context.Context, userID uint) error {
	return s.rdb.Set(ctx, lastSeenKey(userID), time.Now().UTC().Format(time.RFC3339), 0).Err()
}

func (s *redisStore) LastSeen(ctx context.Context, userID uint) (time.Time, error) {
	raw, err := s.rdb.Get(ctx, lastSeenKey(userID)).Result()
	if err != nil {
		if err == redis.Nil {
			return time.Time{}, nil
		}
		return time.Time{}, err
	}
	return time.Parse(time.RFC3339, raw)
}
