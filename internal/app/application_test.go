package app

import (
	"errors"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deskshell/internal/config"
	"deskshell/internal/events"
	"deskshell/internal/logger"
	"deskshell/internal/menu"
)

func testConfig(platform string) config.Config {
	return config.Config{
		LogLevel: "info",
		Platform: platform,
	}
}

func TestNewApplicationOnDarwinInstallsMenuBar(t *testing.T) {
	application, err := newApplication(test.NewApp(), testConfig("darwin"), logger.Nop{}, defaultBuilderFactory)
	require.NoError(t, err)

	mainMenu := application.window.MainMenu()
	require.NotNil(t, mainMenu)
	assert.Len(t, mainMenu.Items, 3)
	assert.Equal(t, "native-top-level", application.strategy.Name())
}

func TestNewApplicationOnOtherPlatformsSkipsMenu(t *testing.T) {
	for _, platform := range []string{"linux", "windows", "android"} {
		t.Run(platform, func(t *testing.T) {
			application, err := newApplication(test.NewApp(), testConfig(platform), logger.Nop{}, defaultBuilderFactory)
			require.NoError(t, err)

			assert.Nil(t, application.window.MainMenu())
			assert.Equal(t, "noop", application.strategy.Name())
		})
	}
}

type failingBuilder struct{}

var errNativeMenu = errors.New("native menu allocation failed")

func (failingBuilder) BeginSubmenu(string) error { return errNativeMenu }
func (failingBuilder) AddItem(*menu.Item) error  { return errNativeMenu }
func (failingBuilder) EndSubmenu() error         { return errNativeMenu }
func (failingBuilder) Install() error            { return errNativeMenu }

func TestNewApplicationFailsWhenMenuSetupFails(t *testing.T) {
	factory := func(fyne.Window, menu.ActivateFunc) menu.Builder {
		return failingBuilder{}
	}

	application, err := newApplication(test.NewApp(), testConfig("darwin"), logger.Nop{}, factory)
	require.Error(t, err)
	assert.ErrorIs(t, err, errNativeMenu)
	assert.Nil(t, application)
}

func TestNewApplicationBuilderFailureIgnoredWithoutNativeMenu(t *testing.T) {
	factory := func(fyne.Window, menu.ActivateFunc) menu.Builder {
		return failingBuilder{}
	}

	// The no-op strategy never touches the builder, so construction succeeds.
	application, err := newApplication(test.NewApp(), testConfig("linux"), logger.Nop{}, factory)
	require.NoError(t, err)
	assert.NotNil(t, application)
}

func TestApplicationRegistersGreetCommand(t *testing.T) {
	application, err := newApplication(test.NewApp(), testConfig("linux"), logger.Nop{}, defaultBuilderFactory)
	require.NoError(t, err)

	result, err := application.Commands().Invoke("greet", "World")
	require.NoError(t, err)
	assert.Equal(t, "Hello, World! You've been greeted from Rust!", result)
}

func TestMenuActivationReachesMainWindowBus(t *testing.T) {
	application, err := newApplication(test.NewApp(), testConfig("darwin"), logger.Nop{}, defaultBuilderFactory)
	require.NoError(t, err)

	var received []events.Event
	application.bus.Subscribe(menu.EventOpenSettings, func(e events.Event) {
		received = append(received, e)
	})

	application.dispatcher.Handle(menu.IDOpenSettings)
	application.dispatcher.Handle("quit")

	require.Len(t, received, 1)
	assert.Nil(t, received[0].Payload)
}

func TestLifecycleShutdownIsIdempotent(t *testing.T) {
	capture := logger.NewCapture()
	application, err := newApplication(test.NewApp(), testConfig("linux"), capture, defaultBuilderFactory)
	require.NoError(t, err)

	application.lifecycle.Shutdown()
	before := len(capture.Entries())

	application.lifecycle.Shutdown()
	assert.Equal(t, before, len(capture.Entries()))
}
