package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusDeliversToSubscriber(t *testing.T) {
	bus := NewBus()

	var received []Event
	bus.Subscribe("menu:open-settings", func(e Event) {
		received = append(received, e)
	})

	bus.Publish(Event{Name: "menu:open-settings"})

	require.Len(t, received, 1)
	assert.Equal(t, "menu:open-settings", received[0].Name)
	assert.Nil(t, received[0].Payload)
	assert.False(t, received[0].Timestamp.IsZero())
}

func TestBusIgnoresUnrelatedEvents(t *testing.T) {
	bus := NewBus()

	count := 0
	bus.Subscribe("wanted", func(Event) { count++ })

	bus.Publish(Event{Name: "unwanted"})
	assert.Equal(t, 0, count)
}

func TestBusPublishWithoutSubscribersIsNoOp(t *testing.T) {
	bus := NewBus()
	bus.Publish(Event{Name: "nobody-listens"})
}

func TestBusUnsubscribeStopsDelivery(t *testing.T) {
	bus := NewBus()

	count := 0
	cancel := bus.Subscribe("evt", func(Event) { count++ })

	bus.Publish(Event{Name: "evt"})
	cancel()
	bus.Publish(Event{Name: "evt"})

	assert.Equal(t, 1, count)
}

func TestBusShutdownDropsSubscriptions(t *testing.T) {
	bus := NewBus()

	count := 0
	bus.Subscribe("evt", func(Event) { count++ })

	bus.Shutdown()
	bus.Publish(Event{Name: "evt"})

	assert.Equal(t, 0, count)
}

func TestBusPanickingHandlerDoesNotAffectOthers(t *testing.T) {
	bus := NewBus()

	delivered := false
	bus.Subscribe("evt", func(Event) { panic("handler failure") })
	bus.Subscribe("evt", func(Event) { delivered = true })

	bus.Publish(Event{Name: "evt"})

	assert.True(t, delivered)
}
