package service

import (
	"context"
	"strings"

	"chatline/internal/chat/repository"
	"chatline/internal/common"
	"chatline/internal/dbmysql"
)

// MessageService defines the interface exposed to the handler layer
type MessageService interface {
	Send(ctx context.Context, senderID, receiverID uint, content string) (*dbmysql.Message, error)
	Delete(ctx context.Context, messageID, requesterID uint, forBoth bool) (*dbmysql.Message, error)
	Conversation(ctx context.Context, viewerID, otherID uint) ([]*dbmysql.Message, error)
}

// UserDirectory is the slice of the user layer the messaging core needs:
// resolving a receiver id to an existing account.
type UserDirectory interface {
	UserByID(ctx context.Context, id uint) (*dbmysql.User, error)
}

type messageService struct {
	repo     repository.MessageRepository
	users    UserDirectory
	notifier common.Subject
}

// Constructor used in DI/wire
func NewMessageService(r repository.MessageRepository, users UserDirectory, notifier common.Subject) MessageService {
	return &messageService{repo: r, users: users, notifier: notifier}
}

// Send validates the payload, persists the message with both delete flags
// false and notifies the receiver. A sender may message themself; the
// store does not reject sender == receiver.
func (s *messageService) Send(ctx context.Context, senderID, receiverID uint, content string) (*dbmysql.Message, error) {
	verr := &common.ValidationError{}
	if strings.TrimSpace(content) == "" {
		verr.Add("content", "The content field is required.")
	}
	if receiverID == 0 {
		verr.Add("receiver_id", "The receiver_id field is required.")
	} else if _, err := s.users.UserByID(ctx, receiverID); err != nil {
		verr.Add("receiver_id", "The selected receiver_id is invalid.")
	}
	if !verr.Empty() {
		return nil, verr
	}

	msg := &dbmysql.Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
	}
	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.NotifyAsync(common.NotificationEvent{
			Type:          common.MessageType,
			UserID:        receiverID,
			TriggerUserID: &senderID,
			Header:        "New message",
			Content:       content,
		})
	}

	return msg, nil
}

// Delete applies one of the two soft-delete transitions. Only the sender
// may delete, a set flag is never cleared, and repeating a delete that
// already happened is a successful no-op.
func (s *messageService) Delete(ctx context.Context, messageID, requesterID uint, forBoth bool) (*dbmysql.Message, error) {
	msg, err := s.repo.ByID(ctx, messageID)
	if err != nil {
		return nil, err
	}
	if msg.SenderID != requesterID {
		return nil, common.NewAuthorizationError("only the sender may delete a message")
	}

	if forBoth {
		if !msg.IsDeletedForBoth {
			if err := s.repo.MarkDeletedForBoth(ctx, messageID); err != nil {
				return nil, err
			}
		}
	} else {
		if !msg.DeletedBySender {
			if err := s.repo.MarkDeletedBySender(ctx, messageID); err != nil {
				return nil, err
			}
		}
	}

	return s.repo.ByID(ctx, messageID)
}

// Conversation returns the full ordered history between the viewer and the
// other user. The list is unfiltered; per-viewer visibility is a
// presentation concern (see the client package).
func (s *messageService) Conversation(ctx context.Context, viewerID, otherID uint) ([]*dbmysql.Message, error) {
	return s.repo.Conversation(ctx, viewerID, otherID)
}
