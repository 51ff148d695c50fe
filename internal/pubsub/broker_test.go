package pubsub

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroker_PublishReachesSubscriber(t *testing.T) {
	b := NewBroker[string]()
	defer b.Close()

	ch := b.Subscribe(context.Background())
	b.Publish(CreatedEvent, "lead-1")

	select {
	case event := <-ch:
		assert.Equal(t, CreatedEvent, event.Type)
		assert.Equal(t, "lead-1", event.Payload)
		assert.WithinDuration(t, time.Now(), event.Timestamp, time.Second)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestBroker_MultipleSubscribersEachReceive(t *testing.T) {
	b := NewBroker[int]()
	defer b.Close()

	ch1 := b.Subscribe(context.Background())
	ch2 := b.Subscribe(context.Background())
	b.Publish(UpdatedEvent, 42)

	for _, ch := range []<-chan Event[int]{ch1, ch2} {
		select {
		case event := <-ch:
			assert.Equal(t, 42, event.Payload)
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for event")
		}
	}
}

func TestBroker_CancelledSubscriberStopsReceiving(t *testing.T) {
	b := NewBroker[string]()
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	ch := b.Subscribe(ctx)
	cancel()

	// Give the cleanup goroutine a moment to unsubscribe.
	time.Sleep(10 * time.Millisecond)
	b.Publish(DeletedEvent, "gone")

	select {
	case _, open := <-ch:
		assert.False(t, open)
	case <-time.After(100 * time.Millisecond):
		// No event delivered either way.
	}
}

func TestBroker_CloseClosesChannels(t *testing.T) {
	b := NewBroker[string]()
	ch := b.Subscribe(context.Background())

	b.Close()

	select {
	case _, open := <-ch:
		require.False(t, open)
	case <-time.After(time.Second):
		t.Fatal("channel not closed")
	}
}

func TestBroker_PublishAfterCloseDoesNotPanic(t *testing.T) {
	b := NewBroker[string]()
	b.Close()
	assert.NotPanics(t, func() { b.Publish(StateEvent, "late") })
}
