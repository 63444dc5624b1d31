package tui

import (
	"testing"

	"github.com/saldodev/finza/internal/tui/components"
)

func TestTabAtXMatchesTabWidths(t *testing.T) {
	n := len(components.Tabs)
	for active := 0; active < n; active++ {
		a := App{activeTab: active}
		pos := 1 // leading space before the first tab

		for i := 0; i < n; i++ {
			w := tabWidthForTest(i, active)
			x := pos + w/2 // midpoint inside this tab
			if got := a.tabAtX(x); got != i {
				t.Fatalf("active=%d x=%d -> tab=%d, want %d", active, x, got, i)
			}
			pos += w
			if i < n-1 {
				pos += 2 // separator
			}
		}
	}
}

// tabWidthForTest restates the tab width rules independently of
// components.TabVisualWidth so a renderer change breaks the hitboxes
// loudly here.
func tabWidthForTest(tabIdx, activeIdx int) int {
	tab := components.Tabs[tabIdx]

	if tabIdx == activeIdx {
		return len(tab.Name)
	}
	if tab.KeyPos >= 0 {
		return len(tab.Name) + 2 // brackets around the in-name letter
	}
	return len(tab.Name) + 3 // trailing [k]
}
