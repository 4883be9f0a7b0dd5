package views

import (
	"fmt"
	"strings"

	"github.com/matheus3301/gamechat/internal/tui/ui"
	"github.com/rivo/tview"
	"github.com/rivo/uniseg"
)

const helpKeyColumn = 18

// HelpSection is one titled block of the help overlay.
type HelpSection struct {
	Title string
	Hints []ui.MenuHint
}

// HelpView displays key binding reference.
type HelpView struct {
	*tview.TextView
	theme *ui.Theme
}

// NewHelpView creates a new help view.
func NewHelpView(theme *ui.Theme) *HelpView {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true)
	tv.SetBorder(true)
	tv.SetBorderColor(theme.BorderColor)
	tv.SetBackgroundColor(theme.BgColor)
	tv.SetTextColor(theme.FgColor)
	tv.SetTitle(" Help ")
	tv.SetTitleColor(theme.TitleColor)

	return &HelpView{
		TextView: tv,
		theme:    theme,
	}
}

// Name implements Component.
func (hv *HelpView) Name() string { return "Help" }

// Hints implements Component.
func (hv *HelpView) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "Esc", Description: "Back"},
	}
}

// Update replaces the help text. Empty sections are skipped.
func (hv *HelpView) Update(sections []HelpSection) {
	hv.Clear()
	kc := ui.ColorName(hv.theme.MenuKeyColor)

	for _, s := range sections {
		if len(s.Hints) == 0 {
			continue
		}
		_, _ = fmt.Fprintf(hv, "\n  [::b]%s[-:-:-]\n\n", tview.Escape(s.Title))
		for _, h := range s.Hints {
			pad := max(helpKeyColumn-uniseg.StringWidth(h.Key), 1)
			_, _ = fmt.Fprintf(hv, "  [%s]%s[-:-:-]%s%s\n",
				kc, tview.Escape(h.Key), strings.Repeat(" ", pad), tview.Escape(h.Description))
		}
	}
	hv.ScrollToBeginning()
}

// Text returns the help text without color tags.
func (hv *HelpView) Text() string {
	return hv.GetText(true)
}
