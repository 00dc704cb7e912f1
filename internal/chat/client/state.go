package client

import (
	"sync"

	"chatline/internal/dbmysql"
)

// State is the conversation view's explicitly-owned state container. It
// replaces the kind of ambient shared store a UI framework would provide:
// every mutation is a discrete method, and each one is atomic so a poll
// result landing mid-render is never observed half-applied.
type State struct {
	mu        sync.RWMutex
	messages  []*dbmysql.Message
	otherUser *dbmysql.User
}

func NewState() *State {
	return &State{}
}

// SetMessages replaces the list wholesale. Poll results are applied
// through here, not merged.
func (s *State) SetMessages(msgs []*dbmysql.Message) {
	copied := make([]*dbmysql.Message, len(msgs))
	copy(copied, msgs)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = copied
}

// AppendMessage adds a just-acknowledged sent message to the local list.
func (s *State) AppendMessage(msg *dbmysql.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
}

func (s *State) SetOtherUser(u *dbmysql.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.otherUser = u
}

// Messages returns a snapshot of the current list.
func (s *State) Messages() []*dbmysql.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*dbmysql.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

func (s *State) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.messages)
}

func (s *State) OtherUser() *dbmysql.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.otherUser
}
