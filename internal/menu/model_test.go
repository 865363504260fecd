package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppBarStructure(t *testing.T) {
	bar := AppBar("Deskshell")

	require.Len(t, bar.Submenus, 3)
	assert.Equal(t, "Deskshell", bar.Submenus[0].Title)
	assert.Equal(t, "Edit", bar.Submenus[1].Title)
	assert.Equal(t, "Window", bar.Submenus[2].Title)
}

func TestAppBarSettingsItemSharedBetweenSubmenus(t *testing.T) {
	bar := AppBar("Deskshell")

	var placements []*Item
	for _, submenu := range bar.Submenus {
		for _, item := range submenu.Items {
			if item.ID == IDOpenSettings {
				placements = append(placements, item)
			}
		}
	}

	require.Len(t, placements, 2)
	assert.Same(t, placements[0], placements[1])
	assert.Equal(t, "Settings…", placements[0].Label)
	assert.Equal(t, "CmdOrCtrl+,", placements[0].Shortcut)
}

func TestAppBarSettingsIsOnlyCustomItem(t *testing.T) {
	bar := AppBar("Deskshell")

	for _, submenu := range bar.Submenus {
		for _, item := range submenu.Items {
			if item.Separator || item.Predefined != "" {
				continue
			}
			assert.Equal(t, IDOpenSettings, item.ID)
		}
	}
}

func TestAppBarPredefinedCoverage(t *testing.T) {
	bar := AppBar("Deskshell")

	seen := map[Predefined]bool{}
	for _, submenu := range bar.Submenus {
		for _, item := range submenu.Items {
			if item.Predefined != "" {
				seen[item.Predefined] = true
			}
		}
	}

	expected := []Predefined{
		PredefinedServices, PredefinedHide, PredefinedHideOthers, PredefinedShowAll,
		PredefinedQuit, PredefinedUndo, PredefinedRedo, PredefinedCut, PredefinedCopy,
		PredefinedPaste, PredefinedSelectAll, PredefinedMinimize, PredefinedCloseWindow,
	}
	for _, p := range expected {
		assert.True(t, seen[p], "missing predefined entry %q", p)
	}
}
