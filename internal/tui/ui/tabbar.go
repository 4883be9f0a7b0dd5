package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rivo/uniseg"
)

// TabItem is one button in the tab bar.
type TabItem struct {
	Key     string
	Label   string
	Active  bool
	Premium bool
}

type tabSpan struct {
	start, end int
}

// TabBar shows the top-level tabs with the active one highlighted.
// A left click on a button reports its index to the select callback.
type TabBar struct {
	*tview.TextView
	theme    *Theme
	spans    []tabSpan
	onSelect func(index int)
}

// NewTabBar creates a new tab bar.
func NewTabBar(theme *Theme) *TabBar {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)
	tv.SetBackgroundColor(theme.BgColor)

	tb := &TabBar{
		TextView: tv,
		theme:    theme,
	}
	tv.SetMouseCapture(tb.handleMouse)
	return tb
}

// SetOnSelect sets the callback fired when a tab button is clicked.
func (tb *TabBar) SetOnSelect(fn func(index int)) {
	tb.onSelect = fn
}

// Update renders the tab buttons.
func (tb *TabBar) Update(items []TabItem) {
	tb.Clear()
	tb.spans = tb.spans[:0]

	col := 0
	for i, it := range items {
		fg, bg := tb.theme.TabInactiveFg, tb.theme.TabInactiveBg
		attr := ""
		if it.Premium {
			fg = tb.theme.PremiumColor
		}
		if it.Active {
			fg, bg, attr = tb.theme.TabActiveFg, tb.theme.TabActiveBg, "b"
			if it.Premium {
				bg = tb.theme.PremiumColor
			}
		}
		if i > 0 {
			_, _ = fmt.Fprint(tb, " ")
			col++
		}
		button := " " + it.Key + " " + it.Label + " "
		_, _ = fmt.Fprintf(tb, "[%s:%s:%s]%s[-:-:-]",
			ColorName(fg), ColorName(bg), attr, tview.Escape(button))

		w := uniseg.StringWidth(button)
		tb.spans = append(tb.spans, tabSpan{start: col, end: col + w})
		col += w
	}
}

// TabAt returns the index of the button covering column col, counted from
// the left edge of the bar's content.
func (tb *TabBar) TabAt(col int) (int, bool) {
	for i, s := range tb.spans {
		if col >= s.start && col < s.end {
			return i, true
		}
	}
	return 0, false
}

func (tb *TabBar) handleMouse(action tview.MouseAction, event *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
	if action != tview.MouseLeftClick || event == nil {
		return action, event
	}
	x, y := event.Position()
	if !tb.InRect(x, y) {
		return action, event
	}
	left, _, _, _ := tb.GetInnerRect()
	if i, ok := tb.TabAt(x - left); ok && tb.onSelect != nil {
		tb.onSelect(i)
		return action, nil
	}
	return action, event
}
