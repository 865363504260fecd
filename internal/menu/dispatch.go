package menu

import (
	"deskshell/internal/events"
	"deskshell/internal/logger"
	"deskshell/internal/windows"
)

// EventOpenSettings is published to the main window's front-end context when
// the Settings menu entry is activated.
const EventOpenSettings = "menu:open-settings"

// Action is the closed set of things a menu activation can mean to the
// application. Predefined entries are handled by the host and never parse to
// anything but ActionOther.
type Action int

const (
	ActionOther Action = iota
	ActionOpenSettings
)

// ParseAction maps an activated item's identifier onto an Action.
func ParseAction(id string) Action {
	if id == IDOpenSettings {
		return ActionOpenSettings
	}
	return ActionOther
}

// Dispatcher routes menu activations. It holds its dependencies explicitly so
// tests can substitute a fake window registry.
type Dispatcher struct {
	registry windows.Registry
	logger   logger.Logger
}

func NewDispatcher(registry windows.Registry, log logger.Logger) *Dispatcher {
	if log == nil {
		log = logger.Nop{}
	}
	return &Dispatcher{
		registry: registry,
		logger:   log,
	}
}

// Handle processes one menu activation. Recognised identifiers emit a UI
// event to the main window; a missing window is a silent skip because the
// emission is best-effort notification, not guaranteed delivery.
func (d *Dispatcher) Handle(id string) {
	if ParseAction(id) != ActionOpenSettings {
		return
	}

	handle, ok := d.registry.Lookup(windows.MainWindowName)
	if !ok {
		d.logger.Debug("MenuDispatcher", "main window not registered, skipping emit", map[string]interface{}{
			"item": id,
		})
		return
	}

	handle.Events().Publish(events.Event{Name: EventOpenSettings})
	d.logger.Debug("MenuDispatcher", "settings event emitted", map[string]interface{}{
		"event": EventOpenSettings,
	})
}
