package pubsub

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mgoltzsche/echo-vui/internal/model"
)

func TestPubSub(t *testing.T) {
	testee := New[model.Event]()
	s := testee.Subscribe(context.Background())
	defer s.Stop()

	eventCount := 3

	go func() {
		for i := 0; i < eventCount; i++ {
			testee.Publish(model.Event{Kind: model.StatusChanged, Text: fmt.Sprintf("status %d", i)})
		}

		testee.Stop()
		testee.Publish(model.Event{Text: "event sent after stop"})
	}()

	expected := []string{"status 0", "status 1", "status 2"}
	actual := make([]string, 0, 3)

	for evt := range s.ResultChan() {
		actual = append(actual, evt.Text)
	}

	require.Equal(t, expected, actual, "received events")
}

func TestSubscriptionStopsWithContext(t *testing.T) {
	testee := New[model.Event]()
	ctx, cancel := context.WithCancel(context.Background())
	s := testee.Subscribe(ctx)

	cancel()

	select {
	case _, ok := <-s.ResultChan():
		require.False(t, ok, "channel should be closed")
	case <-time.After(5 * time.Second):
		t.Fatal("subscription was not stopped after context cancellation")
	}

	testee.Publish(model.Event{Text: "not delivered"})
	s.Stop()
}

func TestSlowSubscriberIsKicked(t *testing.T) {
	testee := New[model.Event]()
	testee.KickTimeout = 10 * time.Millisecond
	s := testee.Subscribe(context.Background())

	for i := 0; i < 12; i++ {
		testee.Publish(model.Event{Text: fmt.Sprintf("event %d", i)})
	}

	received := 0
	for range s.ResultChan() {
		received++
	}

	require.Less(t, received, 12, "events delivered to the kicked subscriber")
}

func TestSubscribeAfterStop(t *testing.T) {
	testee := New[model.Event]()
	testee.Stop()

	s := testee.Subscribe(context.Background())
	_, ok := <-s.ResultChan()
	require.False(t, ok, "noop subscription channel is closed")
	s.Stop()
}
