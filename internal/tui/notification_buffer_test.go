package tui

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/enroll/internal/core/notify"
)

func TestNotificationBuffer_DrainEmpty(t *testing.T) {
	b := NewNotificationBuffer()
	assert.Nil(t, b.Drain())
}

func TestNotificationBuffer_DrainKeepsOrder(t *testing.T) {
	b := NewNotificationBuffer()
	b.Push(notify.Notification{Level: notify.LevelInfo, Message: "Redirecting to Google sign up..."})
	b.Push(notify.Notification{Level: notify.LevelInfo, Message: "Account created successfully"})

	items := b.Drain()
	require.Len(t, items, 2)
	assert.Equal(t, "Redirecting to Google sign up...", items[0].Message)
	assert.Equal(t, "Account created successfully", items[1].Message)
	assert.False(t, items[0].CreatedAt.IsZero())
	assert.Nil(t, b.Drain())
}

func TestNotificationBuffer_SignalsAreCoalesced(t *testing.T) {
	b := NewNotificationBuffer()
	b.Push(notify.Notification{Level: notify.LevelError, Message: "one"})
	b.Push(notify.Notification{Level: notify.LevelError, Message: "two"})

	msg := b.WaitForSignal()()
	assert.IsType(t, drainNotificationsMsg{}, msg)
	assert.Len(t, b.Drain(), 2)
	assert.Empty(t, b.signal, "only one signal is buffered")
}

func TestNotificationBuffer_ConcurrentPush(t *testing.T) {
	b := NewNotificationBuffer()

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b.Push(notify.Notification{Level: notify.LevelInfo, Message: "x"})
		}()
	}
	wg.Wait()

	assert.Len(t, b.Drain(), 20)
}
