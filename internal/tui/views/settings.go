package views

import (
	"fmt"

	"github.com/matheus3301/gamechat/internal/tui/model"
	"github.com/matheus3301/gamechat/internal/tui/ui"
	"github.com/rivo/tview"
)

// SettingsView lists the static settings rows. Nothing here is editable.
type SettingsView struct {
	*tview.TextView
	theme *ui.Theme
}

// NewSettingsView creates the settings tab.
func NewSettingsView(theme *ui.Theme) *SettingsView {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true)
	tv.SetBorder(true)
	tv.SetBorderColor(theme.BorderColor)
	tv.SetBackgroundColor(theme.BgColor)
	tv.SetTextColor(theme.FgColor)
	tv.SetTitle(" ⚙ Настройки ")
	tv.SetTitleColor(theme.TitleColor)

	return &SettingsView{TextView: tv, theme: theme}
}

// Name implements Component.
func (sv *SettingsView) Name() string { return "Settings" }

// Hints implements Component.
func (sv *SettingsView) Hints() []ui.MenuHint {
	return nil
}

// Update redraws the settings sections.
func (sv *SettingsView) Update(p model.SettingsPanel) {
	sv.Clear()

	title := ui.ColorName(sv.theme.TitleColor)
	value := ui.ColorName(sv.theme.CounterColor)
	accent := ui.ColorName(sv.theme.AccentColor)

	for _, sec := range p.Sections {
		_, _ = fmt.Fprintf(sv, "\n  [%s::b]%s[-:-:-]\n", title, tview.Escape(sec.Title))
		for _, row := range sec.Rows {
			vc := value
			if row.Accent {
				vc = accent
			}
			_, _ = fmt.Fprintf(sv, "    %-28s [%s]%s[-]\n", tview.Escape(row.Label), vc, tview.Escape(row.Value))
		}
	}
	_, _ = fmt.Fprintf(sv, "\n  [black:%s:b] %s [-:-:-]\n", accent, tview.Escape(p.SaveButton))
}
