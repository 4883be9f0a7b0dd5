package views

import (
	"fmt"
	"strings"

	"github.com/matheus3301/gamechat/internal/tui/model"
	"github.com/matheus3301/gamechat/internal/tui/ui"
	"github.com/rivo/tview"
)

const (
	xpBarWidth          = 40
	achievementBarWidth = 20
)

// ProfileView shows the player card, stats and achievements.
type ProfileView struct {
	*tview.TextView
	theme *ui.Theme
}

// NewProfileView creates the profile tab.
func NewProfileView(theme *ui.Theme) *ProfileView {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWordWrap(true)
	tv.SetBorder(true)
	tv.SetBorderColor(theme.BorderColor)
	tv.SetBackgroundColor(theme.BgColor)
	tv.SetTextColor(theme.FgColor)
	tv.SetTitle(" Профиль ")
	tv.SetTitleColor(theme.TitleColor)

	return &ProfileView{TextView: tv, theme: theme}
}

// Name implements Component.
func (pv *ProfileView) Name() string { return "Profile" }

// Hints implements Component.
func (pv *ProfileView) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "j/k", Description: "Scroll"},
	}
}

// Update redraws the profile.
func (pv *ProfileView) Update(p model.ProfilePanel) {
	pv.Clear()

	accent := ui.ColorName(pv.theme.AccentColor)
	muted := ui.ColorName(pv.theme.MutedColor)
	gold := ui.ColorName(pv.theme.PremiumColor)
	title := ui.ColorName(pv.theme.TitleColor)

	name := fmt.Sprintf("[::b]%s[-:-:-]", clean(p.Nickname))
	if p.Crown {
		name += fmt.Sprintf(" [%s]👑[-]", gold)
	}
	_, _ = fmt.Fprintf(pv, "\n  %s  %s  [%s]Уровень %d[-]\n", clean(p.Avatar), name, accent, p.Level)
	_, _ = fmt.Fprintf(pv, "  [%s]%s[-]\n\n", muted, clean(p.Subtitle))
	_, _ = fmt.Fprintf(pv, "  %s  [%s::b]%s[-:-:-]\n", p.XPCaption, title, p.XPLabel)
	_, _ = fmt.Fprintf(pv, "  [%s]%s[-] %d%%\n\n", accent, ui.ProgressBar(p.XPPercent, xpBarWidth), p.XPPercent)

	stats := make([]string, len(p.Stats))
	for i, s := range p.Stats {
		stats[i] = fmt.Sprintf("[%s::b]%s[-:-:-] [%s]%s[-]", accent, tview.Escape(s.Value), muted, tview.Escape(s.Label))
	}
	_, _ = fmt.Fprintf(pv, "  %s\n\n", strings.Join(stats, "    "))

	_, _ = fmt.Fprintf(pv, "  [%s::b]🏆 Достижения[-:-:-]\n", title)
	for _, a := range p.Achievements {
		titleColor := muted
		if a.Unlocked {
			titleColor = gold
		}
		_, _ = fmt.Fprintf(pv, "\n  %s [%s::b]%s[-:-:-]\n", clean(a.Icon), titleColor, clean(a.Title))
		_, _ = fmt.Fprintf(pv, "     [%s]%s[-]\n", muted, clean(a.Description))
		switch {
		case a.Badge != "":
			_, _ = fmt.Fprintf(pv, "     [black:%s:b] %s [-:-:-]\n", gold, tview.Escape(a.Badge))
		case a.ShowProgress:
			_, _ = fmt.Fprintf(pv, "     [%s]%s[-] %d%%\n", accent, ui.ProgressBar(a.Progress, achievementBarWidth), a.Progress)
		}
	}
	pv.ScrollToBeginning()
}
