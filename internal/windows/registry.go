package windows

import (
	"fmt"
	"sync"

	"fyne.io/fyne/v2"

	"deskshell/internal/events"
)

// MainWindowName is the fixed name under which the main window is registered.
const MainWindowName = "main"

// Handle exposes the parts of a hosted window that dispatchers and commands
// may touch: its title and the event bus of its front-end context.
type Handle interface {
	Title() string
	Events() *events.Bus
}

// Registry maps window names to handles. Lookups are read-only from event
// callbacks; the host serialises those on the UI thread.
type Registry interface {
	Attach(name string, handle Handle) error
	Detach(name string)
	Lookup(name string) (Handle, bool)
}

type registry struct {
	mu     sync.RWMutex
	byName map[string]Handle
}

func NewRegistry() Registry {
	return &registry{
		byName: make(map[string]Handle),
	}
}

func (r *registry) Attach(name string, handle Handle) error {
	if name == "" {
		return fmt.Errorf("attach window: empty name")
	}
	if handle == nil {
		return fmt.Errorf("attach window %q: nil handle", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[name]; exists {
		return fmt.Errorf("attach window %q: name already in use", name)
	}
	r.byName[name] = handle
	return nil
}

func (r *registry) Detach(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byName, name)
}

func (r *registry) Lookup(name string) (Handle, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	handle, ok := r.byName[name]
	return handle, ok
}

type windowHandle struct {
	window fyne.Window
	bus    *events.Bus
}

// NewHandle wraps a host window and its front-end event bus.
func NewHandle(window fyne.Window, bus *events.Bus) Handle {
	return &windowHandle{window: window, bus: bus}
}

func (h *windowHandle) Title() string {
	return h.window.Title()
}

func (h *windowHandle) Events() *events.Bus {
	return h.bus
}
