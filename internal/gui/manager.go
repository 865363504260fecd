package gui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"deskshell/internal/commands"
	"deskshell/internal/config"
	"deskshell/internal/events"
	"deskshell/internal/logger"
	"deskshell/internal/menu"
)

// Manager owns the main window's content and is the front-end collaborator on
// the UI event channel: it subscribes to the settings event and opens the
// settings panel when it arrives.
type Manager struct {
	window     fyne.Window
	commands   *commands.Registry
	cfg        config.Config
	logger     logger.Logger
	isShutdown bool

	unsubscribe func()

	nameEntry *widget.Entry
	greeting  *widget.Label
}

func NewManager(window fyne.Window, bus *events.Bus, registry *commands.Registry, cfg config.Config, log logger.Logger) (*Manager, error) {
	if log == nil {
		log = logger.Nop{}
	}

	manager := &Manager{
		window:   window,
		commands: registry,
		cfg:      cfg,
		logger:   log,
	}

	manager.nameEntry = widget.NewEntry()
	manager.nameEntry.SetPlaceHolder("Enter a name…")
	manager.greeting = widget.NewLabel("")

	manager.unsubscribe = bus.Subscribe(menu.EventOpenSettings, func(events.Event) {
		fyne.Do(manager.ShowSettings)
	})

	log.Info("GUIManager", "initialized", map[string]interface{}{
		"subscribed": menu.EventOpenSettings,
	})

	return manager, nil
}

func (m *Manager) GetMainContainer() *fyne.Container {
	greetButton := widget.NewButton("Greet", m.handleGreet)

	return container.NewVBox(
		widget.NewLabelWithStyle("Deskshell", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		m.nameEntry,
		greetButton,
		m.greeting,
	)
}

func (m *Manager) handleGreet() {
	result, err := m.commands.Invoke(commands.GreetCommand, m.nameEntry.Text)
	if err != nil {
		m.showError(err)
		return
	}
	m.greeting.SetText(result)
}

// ShowSettings opens the settings panel. The shell has no persisted settings,
// so the panel shows the active runtime configuration.
func (m *Manager) ShowSettings() {
	if m.isShutdown {
		return
	}

	form := widget.NewForm(
		widget.NewFormItem("Platform", widget.NewLabel(m.cfg.Platform)),
		widget.NewFormItem("Log level", widget.NewLabel(m.cfg.LogLevel)),
		widget.NewFormItem("Commands", widget.NewLabel(strings.Join(m.commands.Names(), ", "))),
	)

	dialog.ShowCustom("Settings", "Close", form, m.window)
	m.logger.Debug("GUIManager", "settings panel opened", nil)
}

func (m *Manager) showError(err error) {
	m.logger.Error("GUIManager", err, nil)
	fyne.Do(func() {
		dialog.ShowError(err, m.window)
	})
}

func (m *Manager) Shutdown() {
	if m.isShutdown {
		return
	}
	m.isShutdown = true

	if m.unsubscribe != nil {
		m.unsubscribe()
	}
	m.logger.Info("GUIManager", "shutdown completed", nil)
}
