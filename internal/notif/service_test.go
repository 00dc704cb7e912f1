package notif

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"chatline/internal/common"
)

type recordingObserver struct {
	mu     sync.Mutex
	name   string
	events []common.NotificationEvent
	err    error
}

func (r *recordingObserver) Name() string {
	return r.name
}

func (r *recordingObserver) Update(event common.NotificationEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.events = append(r.events, event)
	return nil
}

func (r *recordingObserver) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

func messageEvent(userID uint) common.NotificationEvent {
	trigger := uint(1)
	return common.NotificationEvent{
		Type:          common.MessageType,
		UserID:        userID,
		TriggerUserID: &trigger,
		Header:        "New message",
		Content:       "hello",
	}
}

func TestNotificationManager_SubscribeAndNotify(t *testing.T) {
	nm := NewNotificationManager(2)
	defer nm.Shutdown()

	obs := &recordingObserver{name: "recorder"}
	nm.Subscribe(obs)

	nm.Notify(messageEvent(2))

	assert.Equal(t, 1, obs.count())
	assert.Equal(t, common.MessageType, obs.events[0].Type)
}

func TestNotificationManager_Unsubscribe(t *testing.T) {
	nm := NewNotificationManager(2)
	defer nm.Shutdown()

	obs := &recordingObserver{name: "recorder"}
	nm.Subscribe(obs)
	nm.Unsubscribe(obs)

	nm.Notify(messageEvent(2))

	assert.Equal(t, 0, obs.count())
}

func TestNotificationManager_NotifyAsync(t *testing.T) {
	nm := NewNotificationManager(2)
	defer nm.Shutdown()

	obs := &recordingObserver{name: "recorder"}
	nm.Subscribe(obs)

	for i := 0; i < 5; i++ {
		nm.NotifyAsync(messageEvent(uint(i + 2)))
	}

	assert.Eventually(t, func() bool {
		return obs.count() == 5
	}, time.Second, 5*time.Millisecond)
}

func TestNotificationManager_FailingObserverDoesNotBlockOthers(t *testing.T) {
	nm := NewNotificationManager(1)
	defer nm.Shutdown()

	broken := &recordingObserver{name: "broken", err: assert.AnError}
	healthy := &recordingObserver{name: "healthy"}
	nm.Subscribe(broken)
	nm.Subscribe(healthy)

	nm.Notify(messageEvent(2))

	assert.Equal(t, 1, healthy.count())
}

func TestNotificationManager_ShutdownStopsWorkers(t *testing.T) {
	nm := NewNotificationManager(2)

	obs := &recordingObserver{name: "recorder"}
	nm.Subscribe(obs)

	nm.Shutdown()

	// queueing after shutdown must not panic or block
	nm.NotifyAsync(messageEvent(2))
}
