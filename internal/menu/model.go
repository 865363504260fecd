package menu

// Predefined names a menu entry whose behaviour is supplied entirely by the
// host platform. These carry no application-level handler.
type Predefined string

const (
	PredefinedServices    Predefined = "services"
	PredefinedHide        Predefined = "hide"
	PredefinedHideOthers  Predefined = "hide_others"
	PredefinedShowAll     Predefined = "show_all"
	PredefinedQuit        Predefined = "quit"
	PredefinedUndo        Predefined = "undo"
	PredefinedRedo        Predefined = "redo"
	PredefinedCut         Predefined = "cut"
	PredefinedCopy        Predefined = "copy"
	PredefinedPaste       Predefined = "paste"
	PredefinedSelectAll   Predefined = "select_all"
	PredefinedMinimize    Predefined = "minimize"
	PredefinedCloseWindow Predefined = "close_window"
)

// IDOpenSettings is the identifier of the only custom menu item. It is the
// tag the activation dispatcher routes on.
const IDOpenSettings = "open_settings"

// Item is one entry of the static menu descriptor. Exactly one of Separator,
// Predefined, or the ID/Label pair describes the entry. The descriptor tree
// is immutable after construction.
type Item struct {
	ID         string
	Label      string
	Shortcut   string
	Predefined Predefined
	Separator  bool
}

// Submenu is a titled group of items.
type Submenu struct {
	Title string
	Items []*Item
}

// Bar is the full top-level menu descriptor.
type Bar struct {
	Submenus []*Submenu
}

func separator() *Item {
	return &Item{Separator: true}
}

func predefined(p Predefined) *Item {
	return &Item{Predefined: p}
}

// AppBar builds the static application menu bar: the App submenu (named after
// the application), the standard Edit submenu, and the Window submenu. The
// single Settings item instance appears in both the App and Window submenus;
// the shared identity keeps enabled state in sync between the two placements.
func AppBar(appName string) *Bar {
	settings := &Item{
		ID:       IDOpenSettings,
		Label:    "Settings…",
		Shortcut: "CmdOrCtrl+,",
	}

	appSubmenu := &Submenu{
		Title: appName,
		Items: []*Item{
			settings,
			separator(),
			predefined(PredefinedServices),
			separator(),
			predefined(PredefinedHide),
			predefined(PredefinedHideOthers),
			predefined(PredefinedShowAll),
			separator(),
			predefined(PredefinedQuit),
		},
	}

	editSubmenu := &Submenu{
		Title: "Edit",
		Items: []*Item{
			predefined(PredefinedUndo),
			predefined(PredefinedRedo),
			separator(),
			predefined(PredefinedCut),
			predefined(PredefinedCopy),
			predefined(PredefinedPaste),
			predefined(PredefinedSelectAll),
		},
	}

	windowSubmenu := &Submenu{
		Title: "Window",
		Items: []*Item{
			predefined(PredefinedMinimize),
			separator(),
			settings,
			separator(),
			predefined(PredefinedCloseWindow),
		},
	}

	return &Bar{
		Submenus: []*Submenu{appSubmenu, editSubmenu, windowSubmenu},
	}
}
