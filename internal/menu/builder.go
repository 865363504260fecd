package menu

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Builder receives the descriptor walk step by step and materialises native
// menus. Every step can fail; the first error aborts the install with no
// partial menu left behind.
type Builder interface {
	BeginSubmenu(title string) error
	AddItem(item *Item) error
	EndSubmenu() error
	Install() error
}

// ActivateFunc is called with an item identifier when a custom menu entry is
// activated.
type ActivateFunc func(id string)

// FyneBuilder materialises the descriptor as the window's main menu.
type FyneBuilder struct {
	window     fyne.Window
	onActivate ActivateFunc

	menus   []*fyne.Menu
	title   string
	items   []*fyne.MenuItem
	pending bool
}

func NewFyneBuilder(window fyne.Window, onActivate ActivateFunc) *FyneBuilder {
	return &FyneBuilder{
		window:     window,
		onActivate: onActivate,
	}
}

func (b *FyneBuilder) BeginSubmenu(title string) error {
	if b.pending {
		return fmt.Errorf("begin submenu %q: submenu %q still open", title, b.title)
	}
	if title == "" {
		return fmt.Errorf("begin submenu: empty title")
	}

	b.title = title
	b.items = nil
	b.pending = true
	return nil
}

func (b *FyneBuilder) AddItem(item *Item) error {
	if !b.pending {
		return fmt.Errorf("add item: no open submenu")
	}
	if item == nil {
		return fmt.Errorf("add item: nil item")
	}

	built, err := b.buildItem(item)
	if err != nil {
		return err
	}
	b.items = append(b.items, built)
	return nil
}

func (b *FyneBuilder) EndSubmenu() error {
	if !b.pending {
		return fmt.Errorf("end submenu: no open submenu")
	}

	b.menus = append(b.menus, fyne.NewMenu(b.title, b.items...))
	b.title = ""
	b.items = nil
	b.pending = false
	return nil
}

func (b *FyneBuilder) Install() error {
	if b.pending {
		return fmt.Errorf("install menu: submenu %q still open", b.title)
	}
	if len(b.menus) == 0 {
		return fmt.Errorf("install menu: no submenus built")
	}
	if b.window == nil {
		return fmt.Errorf("install menu: no window")
	}

	b.window.SetMainMenu(fyne.NewMainMenu(b.menus...))
	return nil
}

func (b *FyneBuilder) buildItem(item *Item) (*fyne.MenuItem, error) {
	if item.Separator {
		return fyne.NewMenuItemSeparator(), nil
	}

	if item.Predefined != "" {
		return b.buildPredefined(item.Predefined)
	}

	if item.ID == "" || item.Label == "" {
		return nil, fmt.Errorf("build item: custom entries need id and label")
	}

	id := item.ID
	built := fyne.NewMenuItem(item.Label, func() {
		if b.onActivate != nil {
			b.onActivate(id)
		}
	})

	if item.Shortcut != "" {
		shortcut, err := parseShortcut(item.Shortcut)
		if err != nil {
			return nil, fmt.Errorf("build item %q: %w", id, err)
		}
		built.Shortcut = shortcut
	}

	return built, nil
}

var predefinedLabels = map[Predefined]string{
	PredefinedServices:    "Services",
	PredefinedHide:        "Hide",
	PredefinedHideOthers:  "Hide Others",
	PredefinedShowAll:     "Show All",
	PredefinedQuit:        "Quit",
	PredefinedUndo:        "Undo",
	PredefinedRedo:        "Redo",
	PredefinedCut:         "Cut",
	PredefinedCopy:        "Copy",
	PredefinedPaste:       "Paste",
	PredefinedSelectAll:   "Select All",
	PredefinedMinimize:    "Minimize",
	PredefinedCloseWindow: "Close Window",
}

// buildPredefined creates an entry whose behaviour belongs to the host. Only
// quit carries an application-visible marker; everything else is handled
// natively and never reaches the dispatcher.
func (b *FyneBuilder) buildPredefined(p Predefined) (*fyne.MenuItem, error) {
	label, ok := predefinedLabels[p]
	if !ok {
		return nil, fmt.Errorf("build item: unknown predefined entry %q", p)
	}

	built := fyne.NewMenuItem(label, nil)
	if p == PredefinedQuit {
		built.IsQuit = true
	}
	return built, nil
}

// parseShortcut maps accelerator strings of the form "CmdOrCtrl+<key>" onto
// keyboard shortcuts, using the platform-default modifier.
func parseShortcut(raw string) (fyne.Shortcut, error) {
	parts := strings.Split(raw, "+")
	if len(parts) != 2 {
		return nil, fmt.Errorf("parse shortcut %q: want modifier+key", raw)
	}

	var modifier fyne.KeyModifier
	switch parts[0] {
	case "CmdOrCtrl":
		modifier = fyne.KeyModifierShortcutDefault
	case "Shift":
		modifier = fyne.KeyModifierShift
	case "Alt":
		modifier = fyne.KeyModifierAlt
	default:
		return nil, fmt.Errorf("parse shortcut %q: unknown modifier %q", raw, parts[0])
	}

	key, err := parseKey(parts[1])
	if err != nil {
		return nil, fmt.Errorf("parse shortcut %q: %w", raw, err)
	}

	return &desktop.CustomShortcut{KeyName: key, Modifier: modifier}, nil
}

func parseKey(raw string) (fyne.KeyName, error) {
	switch {
	case raw == ",":
		return fyne.KeyComma, nil
	case raw == ".":
		return fyne.KeyPeriod, nil
	case len(raw) == 1 && raw[0] >= 'A' && raw[0] <= 'Z':
		return fyne.KeyName(raw), nil
	case len(raw) == 1 && raw[0] >= '0' && raw[0] <= '9':
		return fyne.KeyName(raw), nil
	default:
		return "", fmt.Errorf("unknown key %q", raw)
	}
}
