package ui

import (
	"fmt"

	"github.com/rivo/tview"
)

// Menu displays keyboard shortcut hints in columns.
type Menu struct {
	*tview.TextView
	theme *Theme
	rows  int
}

// NewMenu creates a new menu hint bar that lays hints out in rows-high columns.
func NewMenu(theme *Theme, rows int) *Menu {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignLeft)
	tv.SetBackgroundColor(theme.BgColor)
	tv.SetBorderPadding(0, 0, 2, 0)

	if rows < 1 {
		rows = 1
	}
	return &Menu{
		TextView: tv,
		theme:    theme,
		rows:     rows,
	}
}

// Update renders menu hints column-major, rows hints per column.
func (m *Menu) Update(hints []MenuHint) {
	m.Clear()

	keyColor := ColorName(m.theme.MenuKeyColor)
	numColor := ColorName(m.theme.NumericKeyColor)

	lines := make([]string, m.rows)
	for i, h := range hints {
		kc := keyColor
		if h.Numeric {
			kc = numColor
		}
		cell := fmt.Sprintf("[%s::b]<%s>[-:-:-] %-12s", kc, h.Key, h.Description)
		lines[i%m.rows] += cell
	}
	for _, l := range lines {
		_, _ = fmt.Fprintln(m, l)
	}
}
