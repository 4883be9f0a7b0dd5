package views

import (
	"fmt"

	"github.com/matheus3301/gamechat/internal/tui/model"
	"github.com/matheus3301/gamechat/internal/tui/ui"
	"github.com/rivo/tview"
)

// ContactsView shows friend cards with presence and level.
type ContactsView struct {
	*tview.TextView
	theme *ui.Theme
}

// NewContactsView creates the contacts tab.
func NewContactsView(theme *ui.Theme) *ContactsView {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true)
	tv.SetBorder(true)
	tv.SetBorderColor(theme.BorderColor)
	tv.SetBackgroundColor(theme.BgColor)
	tv.SetTextColor(theme.FgColor)
	tv.SetTitle(" Контакты ")
	tv.SetTitleColor(theme.TitleColor)

	return &ContactsView{TextView: tv, theme: theme}
}

// Name implements Component.
func (cv *ContactsView) Name() string { return "Contacts" }

// Hints implements Component.
func (cv *ContactsView) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "j/k", Description: "Scroll"},
	}
}

// Update redraws the cards.
func (cv *ContactsView) Update(p model.ContactsPanel) {
	cv.Clear()

	online := ui.ColorName(cv.theme.OnlineColor)
	offline := ui.ColorName(cv.theme.OfflineColor)
	accent := ui.ColorName(cv.theme.AccentColor)
	muted := ui.ColorName(cv.theme.MutedColor)

	for _, c := range p.Cards {
		dot := offline
		if c.Online {
			dot = online
		}
		_, _ = fmt.Fprintf(cv, "\n  %s [%s]●[-] [::b]%s[-:-:-]  [black:%s] %d [-:-]\n",
			clean(c.Avatar), dot, clean(c.Name), accent, c.Level)
		_, _ = fmt.Fprintf(cv, "       [%s]%s[-]\n", muted, clean(c.Status))
	}

	if len(p.Cards) != p.Total {
		cv.SetTitle(fmt.Sprintf(" Контакты (%d/%d) ", len(p.Cards), p.Total))
	} else {
		cv.SetTitle(fmt.Sprintf(" Контакты (%d) ", p.Total))
	}
	cv.ScrollToBeginning()
}
