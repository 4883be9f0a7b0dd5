package ui

import (
	"fmt"

	"github.com/rivo/tview"
)

// HeaderData holds the title row content.
type HeaderData struct {
	Title   string
	Level   int
	Premium bool
}

// Header shows the app title and the level/premium badges.
type Header struct {
	*tview.TextView
	theme *Theme
}

// NewHeader creates a new header panel.
func NewHeader(theme *Theme) *Header {
	tv := tview.NewTextView().
		SetDynamicColors(true)
	tv.SetBackgroundColor(theme.BgColor)
	tv.SetBorderPadding(1, 0, 1, 1)

	return &Header{
		TextView: tv,
		theme:    theme,
	}
}

// Update renders the header.
func (h *Header) Update(data HeaderData) {
	h.Clear()

	title := ColorName(h.theme.TitleColor)
	badge := ColorName(h.theme.BadgeColor)

	_, _ = fmt.Fprintf(h, "[%s::b]%s[-:-:-]\n\n", title, data.Title)
	if data.Premium {
		_, _ = fmt.Fprintf(h, "[black:%s:b] 👑 PREMIUM [-:-:-] ", ColorName(h.theme.PremiumColor))
	}
	_, _ = fmt.Fprintf(h, "[black:%s:b] 🔥 %d LVL [-:-:-]", badge, data.Level)
}
