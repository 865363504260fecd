package menu

import "fmt"

// Strategy decides whether and how the application menu bar is installed for
// the current platform. Selection happens once at startup.
type Strategy interface {
	Name() string
	Install(builder Builder, bar *Bar) error
}

// StrategyFor selects the menu strategy for the reported platform. Only
// desktop platforms with a native top-level menu bar convention get the full
// bar; everywhere else default host behaviour applies.
func StrategyFor(platform string) Strategy {
	if platform == "darwin" {
		return NativeTopLevelMenu{}
	}
	return NoOpMenu{}
}

// NativeTopLevelMenu walks the descriptor through a builder and installs the
// result. The first failing step aborts the whole install.
type NativeTopLevelMenu struct{}

func (NativeTopLevelMenu) Name() string {
	return "native-top-level"
}

func (NativeTopLevelMenu) Install(builder Builder, bar *Bar) error {
	if builder == nil {
		return fmt.Errorf("install menu: nil builder")
	}
	if bar == nil {
		return fmt.Errorf("install menu: nil descriptor")
	}

	for _, submenu := range bar.Submenus {
		if err := builder.BeginSubmenu(submenu.Title); err != nil {
			return err
		}
		for _, item := range submenu.Items {
			if err := builder.AddItem(item); err != nil {
				return err
			}
		}
		if err := builder.EndSubmenu(); err != nil {
			return err
		}
	}

	return builder.Install()
}

// NoOpMenu installs nothing.
type NoOpMenu struct{}

func (NoOpMenu) Name() string {
	return "noop"
}

func (NoOpMenu) Install(Builder, *Bar) error {
	return nil
}
