package events

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Event is a named notification delivered to a window's front-end context.
// Payload may be nil.
type Event struct {
	Name      string
	Timestamp time.Time
	Payload   map[string]interface{}
}

// Handler receives events published under a subscribed name.
type Handler func(Event)

// Bus is a best-effort publish/subscribe channel scoped to one window. The
// window host serialises UI callbacks, so dispatch happens inline on the
// publisher's goroutine. Publishing with no subscribers, or after Shutdown,
// is a no-op.
type Bus struct {
	mu          sync.RWMutex
	subscribers map[string]map[string]Handler
	closed      bool
}

func NewBus() *Bus {
	return &Bus{
		subscribers: make(map[string]map[string]Handler),
	}
}

// Subscribe registers a handler for the given event name and returns a
// function that removes the subscription.
func (b *Bus) Subscribe(name string, handler Handler) func() {
	id := uuid.NewString()

	b.mu.Lock()
	if b.subscribers[name] == nil {
		b.subscribers[name] = make(map[string]Handler)
	}
	b.subscribers[name][id] = handler
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subscribers[name], id)
	}
}

// Publish stamps the event and delivers it to every current subscriber of its
// name. A panicking handler does not affect the others.
func (b *Bus) Publish(event Event) {
	event.Timestamp = time.Now()

	b.mu.RLock()
	if b.closed {
		b.mu.RUnlock()
		return
	}
	handlers := make([]Handler, 0, len(b.subscribers[event.Name]))
	for _, h := range b.subscribers[event.Name] {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	for _, handler := range handlers {
		b.dispatch(handler, event)
	}
}

func (b *Bus) dispatch(handler Handler, event Event) {
	defer func() {
		_ = recover()
	}()
	handler(event)
}

// Shutdown drops all subscriptions and makes further publishes no-ops.
func (b *Bus) Shutdown() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.closed = true
	b.subscribers = make(map[string]map[string]Handler)
}
