package app

import (
	"deskshell/internal/events"
	"deskshell/internal/gui"
	"deskshell/internal/logger"
)

// Lifecycle sequences shutdown. Components stop in reverse dependency order;
// the guard flag makes repeated calls safe because both the close intercept
// and the signal path can trigger it.
type Lifecycle struct {
	guiManager *gui.Manager
	bus        *events.Bus
	logger     logger.Logger
	isShutdown bool
}

func NewLifecycle(gm *gui.Manager, bus *events.Bus, log logger.Logger) *Lifecycle {
	if log == nil {
		log = logger.Nop{}
	}
	return &Lifecycle{
		guiManager: gm,
		bus:        bus,
		logger:     log,
	}
}

func (l *Lifecycle) Shutdown() {
	if l.isShutdown {
		return
	}
	l.isShutdown = true

	l.logger.Info("Lifecycle", "shutdown sequence initiated", nil)

	if l.guiManager != nil {
		l.guiManager.Shutdown()
		l.logger.Debug("Lifecycle", "GUI manager shutdown completed", nil)
	}

	if l.bus != nil {
		l.bus.Shutdown()
		l.logger.Debug("Lifecycle", "event bus shutdown completed", nil)
	}

	l.logger.Info("Lifecycle", "shutdown sequence completed", nil)
}
