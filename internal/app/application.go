package app

import (
	"fmt"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"

	"deskshell/internal/commands"
	"deskshell/internal/config"
	"deskshell/internal/events"
	"deskshell/internal/gui"
	"deskshell/internal/logger"
	"deskshell/internal/menu"
	"deskshell/internal/windows"
)

const (
	AppName    = "Deskshell"
	AppID      = "com.deskshell.desktop"
	AppVersion = "1.0.0"

	WindowWidth  = 480
	WindowHeight = 320
)

// BuilderFactory creates the menu builder used during setup. The default
// builds native menus on the window; tests substitute failing fakes.
type BuilderFactory func(window fyne.Window, onActivate menu.ActivateFunc) menu.Builder

func defaultBuilderFactory(window fyne.Window, onActivate menu.ActivateFunc) menu.Builder {
	return menu.NewFyneBuilder(window, onActivate)
}

// Application wires the window host, the command table, the menu strategy,
// and the activation dispatcher together. Construction is fail-fast: any
// setup error aborts startup with no retry and no degraded mode.
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	cfg     config.Config
	logger  logger.Logger

	bus             *events.Bus
	windowRegistry  windows.Registry
	commandRegistry *commands.Registry
	dispatcher      *menu.Dispatcher
	strategy        menu.Strategy
	guiManager      *gui.Manager
	lifecycle       *Lifecycle
}

func New(cfg config.Config, log logger.Logger) (*Application, error) {
	return newApplication(fyneapp.NewWithID(AppID), cfg, log, defaultBuilderFactory)
}

func newApplication(fyneApp fyne.App, cfg config.Config, log logger.Logger, newBuilder BuilderFactory) (*Application, error) {
	if log == nil {
		log = logger.Nop{}
	}

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	window.CenterOnScreen()
	window.SetMaster()

	bus := events.NewBus()
	windowRegistry := windows.NewRegistry()
	if err := windowRegistry.Attach(windows.MainWindowName, windows.NewHandle(window, bus)); err != nil {
		return nil, fmt.Errorf("register main window: %w", err)
	}

	commandRegistry := commands.NewRegistry(log)
	if err := commands.RegisterGreet(commandRegistry); err != nil {
		return nil, fmt.Errorf("register commands: %w", err)
	}

	dispatcher := menu.NewDispatcher(windowRegistry, log)

	strategy := menu.StrategyFor(cfg.Platform)
	log.Info("Application", "menu strategy selected", map[string]interface{}{
		"platform": cfg.Platform,
		"strategy": strategy.Name(),
	})

	if err := strategy.Install(newBuilder(window, dispatcher.Handle), menu.AppBar(AppName)); err != nil {
		return nil, fmt.Errorf("install menu: %w", err)
	}

	guiManager, err := gui.NewManager(window, bus, commandRegistry, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("initialize gui: %w", err)
	}

	application := &Application{
		fyneApp:         fyneApp,
		window:          window,
		cfg:             cfg,
		logger:          log,
		bus:             bus,
		windowRegistry:  windowRegistry,
		commandRegistry: commandRegistry,
		dispatcher:      dispatcher,
		strategy:        strategy,
		guiManager:      guiManager,
	}
	application.lifecycle = NewLifecycle(guiManager, bus, log)

	log.Info("Application", "initialization complete", map[string]interface{}{
		"version": AppVersion,
	})
	return application, nil
}

// Run shows the main window and drives the host event loop until quit.
func (a *Application) Run() error {
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "shutdown requested", nil)
		a.lifecycle.Shutdown()
		a.window.Close()
	})

	a.window.SetContent(a.guiManager.GetMainContainer())
	a.window.Show()

	a.logger.Info("Application", "main window displayed", nil)
	a.fyneApp.Run()

	return nil
}

// Quit tears the application down from outside the UI, e.g. on a signal.
func (a *Application) Quit() {
	a.lifecycle.Shutdown()
	a.fyneApp.Quit()
}

// Commands exposes the invocable command table to the front-end layer.
func (a *Application) Commands() *commands.Registry {
	return a.commandRegistry
}
