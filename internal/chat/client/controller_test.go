package client

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chatline/internal/dbmysql"
)

type fakeAPI struct {
	mu sync.Mutex

	conv      []*dbmysql.Message
	convErr   error
	convCalls int

	sendResult *dbmysql.Message
	sendErr    error
	sent       []string

	deleteErr error
	deleted   []uint

	typingSignals []bool
}

func (f *fakeAPI) Conversation(ctx context.Context, otherID uint) ([]*dbmysql.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.convCalls++
	if f.convErr != nil {
		return nil, f.convErr
	}
	out := make([]*dbmysql.Message, len(f.conv))
	copy(out, f.conv)
	return out, nil
}

func (f *fakeAPI) Send(ctx context.Context, receiverID uint, content string) (*dbmysql.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	f.sent = append(f.sent, content)
	return f.sendResult, nil
}

func (f *fakeAPI) Delete(ctx context.Context, messageID uint, forBoth bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, messageID)
	return nil
}

func (f *fakeAPI) Typing(ctx context.Context, isTyping bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.typingSignals = append(f.typingSignals, isTyping)
	return nil
}

func (f *fakeAPI) conversationCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.convCalls
}

func (f *fakeAPI) setConversation(msgs []*dbmysql.Message) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.conv = msgs
}

func (f *fakeAPI) typingCount(isTyping bool) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, s := range f.typingSignals {
		if s == isTyping {
			n++
		}
	}
	return n
}

func newTestController(api API, opts Options) (*Controller, *State, *Viewport) {
	state := NewState()
	view := NewViewport(500)
	return NewController(api, state, view, 2, opts), state, view
}

func TestController_PollReplacesState(t *testing.T) {
	api := &fakeAPI{conv: []*dbmysql.Message{
		{ID: 1, SenderID: 1, ReceiverID: 2, Content: "Hello B"},
		{ID: 2, SenderID: 2, ReceiverID: 1, Content: "Hi A"},
	}}
	c, state, _ := newTestController(api, Options{})

	// seed stale local state: the poll result replaces it wholesale
	state.SetMessages([]*dbmysql.Message{{ID: 99, SenderID: 1, ReceiverID: 2, Content: "stale"}})

	c.pollOnce(context.Background())

	msgs := state.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, "Hello B", msgs[0].Content)
	assert.Equal(t, "Hi A", msgs[1].Content)
}

func TestController_PollErrorKeepsState(t *testing.T) {
	api := &fakeAPI{convErr: assert.AnError}
	c, state, _ := newTestController(api, Options{})

	state.SetMessages([]*dbmysql.Message{{ID: 1, Content: "kept"}})

	c.pollOnce(context.Background())

	msgs := state.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "kept", msgs[0].Content)
}

func TestController_ScrollFollow(t *testing.T) {
	t.Run("follows growth when reader is at the bottom", func(t *testing.T) {
		api := &fakeAPI{conv: []*dbmysql.Message{{ID: 1}, {ID: 2}}}
		c, state, view := newTestController(api, Options{})
		view.SetContentHeight(2000)
		view.ScrollToBottom()
		state.SetMessages([]*dbmysql.Message{{ID: 1}})

		c.pollOnce(context.Background())

		assert.True(t, view.AtBottom())
	})

	t.Run("leaves the reader alone in history", func(t *testing.T) {
		api := &fakeAPI{conv: []*dbmysql.Message{{ID: 1}, {ID: 2}}}
		c, state, view := newTestController(api, Options{})
		view.SetContentHeight(2000)
		view.Scroll(100)
		state.SetMessages([]*dbmysql.Message{{ID: 1}})

		c.pollOnce(context.Background())

		assert.Equal(t, 100, view.ScrollTop())
		assert.False(t, view.AtBottom())
	})

	t.Run("no follow when nothing grew", func(t *testing.T) {
		api := &fakeAPI{conv: []*dbmysql.Message{{ID: 1}}}
		c, state, view := newTestController(api, Options{})
		view.SetContentHeight(2000)
		view.ScrollToBottom()
		before := view.ScrollTop()
		state.SetMessages([]*dbmysql.Message{{ID: 1}})

		c.pollOnce(context.Background())

		assert.Equal(t, before, view.ScrollTop())
	})
}

func TestController_StartPollsOnInterval(t *testing.T) {
	api := &fakeAPI{}
	c, _, _ := newTestController(api, Options{PollInterval: 10 * time.Millisecond})

	c.Start(context.Background())
	defer c.Close()

	assert.Eventually(t, func() bool {
		return api.conversationCalls() >= 2
	}, time.Second, 5*time.Millisecond)
}

func TestController_CloseStopsPolling(t *testing.T) {
	api := &fakeAPI{}
	c, _, _ := newTestController(api, Options{PollInterval: 5 * time.Millisecond})

	c.Start(context.Background())
	assert.Eventually(t, func() bool {
		return api.conversationCalls() >= 1
	}, time.Second, time.Millisecond)

	c.Close()
	calls := api.conversationCalls()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, calls, api.conversationCalls())

	// second Close must not panic or block
	c.Close()
}

func TestController_Send(t *testing.T) {
	t.Run("appends only after the server acknowledged", func(t *testing.T) {
		api := &fakeAPI{sendResult: &dbmysql.Message{ID: 7, SenderID: 1, ReceiverID: 2, Content: "Hello B"}}
		c, state, view := newTestController(api, Options{})
		defer c.Close()
		view.SetContentHeight(2000)
		view.Scroll(100)

		c.SetInput("Hello B")
		msg, err := c.Send(context.Background())

		assert.NoError(t, err)
		require.NotNil(t, msg)
		assert.Equal(t, uint(7), msg.ID)
		require.Len(t, state.Messages(), 1)
		assert.Equal(t, "", c.Input(), "draft clears on success")
		assert.True(t, view.AtBottom(), "own sends always pull the view down")
	})

	t.Run("failed send keeps the draft and local state", func(t *testing.T) {
		api := &fakeAPI{sendErr: assert.AnError}
		c, state, _ := newTestController(api, Options{})
		defer c.Close()

		c.SetInput("Hello B")
		msg, err := c.Send(context.Background())

		assert.Error(t, err)
		assert.Nil(t, msg)
		assert.Empty(t, state.Messages())
		assert.Equal(t, "Hello B", c.Input())
	})

	t.Run("blank draft sends nothing", func(t *testing.T) {
		api := &fakeAPI{}
		c, _, _ := newTestController(api, Options{})
		defer c.Close()

		c.SetInput("   ")
		msg, err := c.Send(context.Background())

		assert.NoError(t, err)
		assert.Nil(t, msg)
		api.mu.Lock()
		assert.Empty(t, api.sent)
		api.mu.Unlock()
	})
}

func TestController_Delete(t *testing.T) {
	api := &fakeAPI{}
	c, state, _ := newTestController(api, Options{})
	state.SetMessages([]*dbmysql.Message{
		{ID: 1, SenderID: 1, ReceiverID: 2, Content: "one"},
		{ID: 2, SenderID: 1, ReceiverID: 2, Content: "two"},
	})

	err := c.Delete(context.Background(), 2, true)

	assert.NoError(t, err)
	msgs := state.Messages()
	require.Len(t, msgs, 2)
	assert.False(t, msgs[0].IsDeletedForBoth)
	assert.True(t, msgs[1].IsDeletedForBoth)
}

func TestController_DeleteErrorLeavesState(t *testing.T) {
	api := &fakeAPI{deleteErr: assert.AnError}
	c, state, _ := newTestController(api, Options{})
	state.SetMessages([]*dbmysql.Message{{ID: 1, SenderID: 1, Content: "one"}})

	err := c.Delete(context.Background(), 1, false)

	assert.Error(t, err)
	assert.False(t, state.Messages()[0].DeletedBySender)
}

func TestController_TypingDebounce(t *testing.T) {
	api := &fakeAPI{}
	c, _, _ := newTestController(api, Options{TypingIdle: 50 * time.Millisecond})
	defer c.Close()

	c.SetInput("H")
	c.SetInput("He")
	c.SetInput("Hel")

	// one start signal for the whole burst
	assert.Eventually(t, func() bool {
		return api.typingCount(true) == 1
	}, time.Second, time.Millisecond)
	assert.Equal(t, 0, api.typingCount(false), "stop must wait for the idle window")

	// idle elapses, stop fires exactly once
	assert.Eventually(t, func() bool {
		return api.typingCount(false) == 1
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, 1, api.typingCount(true))
}

func TestController_TypingRestartsAfterIdle(t *testing.T) {
	api := &fakeAPI{}
	c, _, _ := newTestController(api, Options{TypingIdle: 20 * time.Millisecond})
	defer c.Close()

	c.SetInput("first")
	assert.Eventually(t, func() bool {
		return api.typingCount(false) == 1
	}, time.Second, time.Millisecond)

	c.SetInput("second")
	assert.Eventually(t, func() bool {
		return api.typingCount(true) == 2
	}, time.Second, time.Millisecond)
}

func TestController_CloseCancelsTypingTimer(t *testing.T) {
	api := &fakeAPI{}
	c, _, _ := newTestController(api, Options{TypingIdle: 20 * time.Millisecond})

	c.SetInput("draft")
	assert.Eventually(t, func() bool {
		return api.typingCount(true) == 1
	}, time.Second, time.Millisecond)

	c.Close()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 0, api.typingCount(false), "no stop signal after teardown")
}
