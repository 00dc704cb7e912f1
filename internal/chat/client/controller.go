package client

import (
	"context"
	"strings"
	"sync"
	"time"

	"chatline/internal/dbmysql"
)

const (
	// DefaultPollInterval is how often the open conversation is re-fetched.
	DefaultPollInterval = 2 * time.Second
	// DefaultTypingIdle is how long after the last keystroke the
	// stop-typing signal fires.
	DefaultTypingIdle = 1500 * time.Millisecond
)

// Options tune the controller's timers. Zero values fall back to the
// defaults; tests shrink them.
type Options struct {
	PollInterval time.Duration
	TypingIdle   time.Duration
}

// Controller drives one open conversation: it polls the server on a fixed
// interval, applies each result to the injected State in one atomic
// replacement, follows the bottom of the Viewport when appropriate, and
// debounces typing signals. Close tears down every timer so nothing keeps
// polling or posting after the view is gone.
type Controller struct {
	api   API
	state *State
	view  *Viewport

	otherID      uint
	pollInterval time.Duration
	typingIdle   time.Duration

	mu          sync.Mutex
	input       string
	typing      bool
	typingTimer *time.Timer
	closed      bool

	cancel  context.CancelFunc
	done    chan struct{}
	started bool
}

func NewController(api API, state *State, view *Viewport, otherID uint, opts Options) *Controller {
	if opts.PollInterval <= 0 {
		opts.PollInterval = DefaultPollInterval
	}
	if opts.TypingIdle <= 0 {
		opts.TypingIdle = DefaultTypingIdle
	}
	return &Controller{
		api:          api,
		state:        state,
		view:         view,
		otherID:      otherID,
		pollInterval: opts.PollInterval,
		typingIdle:   opts.TypingIdle,
		done:         make(chan struct{}),
	}
}

// Start launches the polling loop for the open conversation. Only the
// currently open conversation is polled; opening another one means a new
// controller.
func (c *Controller) Start(ctx context.Context) {
	c.mu.Lock()
	if c.started || c.closed {
		c.mu.Unlock()
		return
	}
	c.started = true
	ctx, c.cancel = context.WithCancel(ctx)
	c.mu.Unlock()

	go func() {
		defer close(c.done)
		ticker := time.NewTicker(c.pollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.pollOnce(ctx)
			}
		}
	}()
}

// pollOnce fetches the conversation and applies it. Fetch errors are
// ignored; the next tick retries, which is all the recovery a fixed
// interval needs.
func (c *Controller) pollOnce(ctx context.Context) {
	msgs, err := c.api.Conversation(ctx, c.otherID)
	if err != nil {
		return
	}

	wasAtBottom := c.view.AtBottom()
	grew := len(msgs) > c.state.Len()

	c.state.SetMessages(msgs)

	// Follow new messages only when the reader was already at the bottom;
	// never yank them away from history they scrolled up to.
	if grew && wasAtBottom {
		c.view.ScrollToBottom()
	}
}

// SetInput records the draft text. Each change counts as a keystroke: the
// transition into typing fires a fire-and-forget signal, and the
// stop-typing signal is debounced behind typingIdle of inactivity.
func (c *Controller) SetInput(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.input = text

	if !c.typing {
		c.typing = true
		go func() { _ = c.api.Typing(context.Background(), true) }()
	}

	if c.typingTimer != nil {
		c.typingTimer.Stop()
	}
	c.typingTimer = time.AfterFunc(c.typingIdle, c.stopTyping)
}

func (c *Controller) stopTyping() {
	c.mu.Lock()
	if c.closed || !c.typing {
		c.mu.Unlock()
		return
	}
	c.typing = false
	c.mu.Unlock()

	go func() { _ = c.api.Typing(context.Background(), false) }()
}

// Input returns the current draft.
func (c *Controller) Input() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.input
}

// Send posts the draft. The message is appended locally only after the
// server acknowledged it, and the draft clears only on success.
func (c *Controller) Send(ctx context.Context) (*dbmysql.Message, error) {
	c.mu.Lock()
	content := strings.TrimSpace(c.input)
	c.mu.Unlock()
	if content == "" {
		return nil, nil
	}

	msg, err := c.api.Send(ctx, c.otherID, content)
	if err != nil {
		return nil, err
	}

	c.state.AppendMessage(msg)
	c.view.ScrollToBottom()

	c.mu.Lock()
	c.input = ""
	c.mu.Unlock()
	return msg, nil
}

// Delete asks the server to soft-delete a message, then reflects the new
// flag in local state without waiting for the next poll.
func (c *Controller) Delete(ctx context.Context, messageID uint, forBoth bool) error {
	if err := c.api.Delete(ctx, messageID, forBoth); err != nil {
		return err
	}

	msgs := c.state.Messages()
	updated := make([]*dbmysql.Message, len(msgs))
	for i, m := range msgs {
		if m.ID == messageID {
			clone := *m
			if forBoth {
				clone.IsDeletedForBoth = true
			} else {
				clone.DeletedBySender = true
			}
			updated[i] = &clone
		} else {
			updated[i] = m
		}
	}
	c.state.SetMessages(updated)
	return nil
}

// Close cancels the poll loop and the typing debounce timer. Safe to call
// more than once; after Close no timer fires and nothing is posted for
// this conversation again.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	if c.typingTimer != nil {
		c.typingTimer.Stop()
	}
	cancel := c.cancel
	started := c.started
	c.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if started {
		<-c.done
	}
}
