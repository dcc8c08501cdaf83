package eventbus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishReachesSubscriber(t *testing.T) {
	bus := New()

	got := make(chan DomainEvent, 1)
	bus.Subscribe(EventSelectionChanged, func(e DomainEvent) {
		got <- e
	})

	bus.Publish(SelectionChangedEvent{Added: []string{"Google"}, Total: 1})

	select {
	case e := <-got:
		event, ok := e.(SelectionChangedEvent)
		require.True(t, ok)
		assert.Equal(t, []string{"Google"}, event.Added)
		assert.Equal(t, 1, event.Total)
	case <-time.After(time.Second):
		t.Fatal("subscriber never received the event")
	}
}

func TestSubscribersOnlyGetTheirEventType(t *testing.T) {
	bus := New()

	got := make(chan DomainEvent, 1)
	bus.Subscribe(EventDispatchCompleted, func(e DomainEvent) {
		got <- e
	})

	bus.Publish(SelectionClearedEvent{})

	select {
	case <-got:
		t.Fatal("subscriber received an event of the wrong type")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	bus := New()

	first := make(chan DomainEvent, 1)
	unsubscribe := bus.Subscribe(EventSelectionCleared, func(e DomainEvent) {
		first <- e
	})
	second := make(chan DomainEvent, 1)
	bus.Subscribe(EventSelectionCleared, func(e DomainEvent) {
		second <- e
	})

	unsubscribe()
	bus.Publish(SelectionClearedEvent{})

	select {
	case <-second:
	case <-time.After(time.Second):
		t.Fatal("remaining subscriber never received the event")
	}
	select {
	case <-first:
		t.Fatal("unsubscribed handler still received the event")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestPanickingHandlerDoesNotKillTheBus(t *testing.T) {
	bus := New()

	bus.Subscribe(EventError, func(DomainEvent) {
		panic("boom")
	})
	got := make(chan DomainEvent, 1)
	bus.Subscribe(EventError, func(e DomainEvent) {
		got <- e
	})

	bus.Publish(ErrorEvent{Message: "something broke"})

	select {
	case <-got:
	case <-time.After(time.Second):
		t.Fatal("bus stopped delivering after a handler panic")
	}
}
