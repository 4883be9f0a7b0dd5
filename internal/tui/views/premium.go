package views

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/matheus3301/gamechat/internal/tui/model"
	"github.com/matheus3301/gamechat/internal/tui/ui"
	"github.com/rivo/tview"
)

// PremiumView is the upsell tab: the offer with an upgrade button while on
// the free plan, a welcome card afterwards.
type PremiumView struct {
	*tview.Flex
	theme     *ui.Theme
	body      *tview.TextView
	button    *tview.Button
	onUpgrade func()
	offered   bool
}

// NewPremiumView creates the premium tab.
func NewPremiumView(theme *ui.Theme) *PremiumView {
	body := tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWordWrap(true)
	body.SetBackgroundColor(theme.BgColor)
	body.SetTextColor(theme.FgColor)

	button := tview.NewButton(model.UpgradeLabel)
	button.SetStyle(tcell.StyleDefault.
		Foreground(tcell.ColorBlack).
		Background(theme.PremiumColor))
	button.SetActivatedStyle(tcell.StyleDefault.
		Foreground(tcell.ColorBlack).
		Background(theme.BadgeColor).
		Bold(true))

	flex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(body, 0, 1, false).
		AddItem(button, 1, 0, true)
	flex.SetBorder(true)
	flex.SetBorderColor(theme.PremiumColor)
	flex.SetBackgroundColor(theme.BgColor)
	flex.SetTitle(" 👑 Premium ")
	flex.SetTitleColor(theme.PremiumColor)

	pv := &PremiumView{
		Flex:   flex,
		theme:  theme,
		body:   body,
		button: button,
	}
	button.SetSelectedFunc(func() {
		if pv.offered && pv.onUpgrade != nil {
			pv.onUpgrade()
		}
	})
	return pv
}

// Name implements Component.
func (pv *PremiumView) Name() string { return "Premium" }

// Hints implements Component.
func (pv *PremiumView) Hints() []ui.MenuHint {
	if !pv.offered {
		return nil
	}
	return []ui.MenuHint{
		{Key: "u", Description: "Upgrade"},
	}
}

// SetOnUpgrade sets the callback fired by the upgrade button.
func (pv *PremiumView) SetOnUpgrade(fn func()) {
	pv.onUpgrade = fn
}

// Button returns the upgrade button.
func (pv *PremiumView) Button() *tview.Button { return pv.button }

// Update redraws the panel.
func (pv *PremiumView) Update(p model.PremiumPanel) {
	pv.body.Clear()

	gold := ui.ColorName(pv.theme.PremiumColor)
	muted := ui.ColorName(pv.theme.MutedColor)

	_, _ = fmt.Fprintf(pv.body, "\n[%s::b]👑 %s[-:-:-]\n", gold, p.HeroTitle)
	_, _ = fmt.Fprintf(pv.body, "[%s]%s[-]\n\n", muted, p.HeroTagline)

	switch {
	case p.Offer != nil:
		pv.offered = true
		o := p.Offer
		_, _ = fmt.Fprintf(pv.body, "[%s::b]%s[-:-:-][%s]%s[-]\n", gold, tview.Escape(o.Price), muted, tview.Escape(o.Period))
		_, _ = fmt.Fprintf(pv.body, "[%s]%s[-]\n", muted, tview.Escape(o.YearlyNote))
		for _, perk := range o.Perks {
			_, _ = fmt.Fprintf(pv.body, "\n%s [::b]%s[-:-:-]\n   [%s]%s[-]\n",
				clean(perk.Icon), tview.Escape(perk.Title), muted, tview.Escape(perk.Description))
		}
		pv.button.SetLabel(o.Action)
		pv.ResizeItem(pv.button, 1, 0)
	case p.Welcome != nil:
		pv.offered = false
		w := p.Welcome
		_, _ = fmt.Fprintf(pv.body, "🎉\n[%s::b]%s[-:-:-]\n%s\n\n", gold, w.Title, w.Text)
		for _, tile := range w.Tiles {
			_, _ = fmt.Fprintf(pv.body, "  %s [::b]%s[-:-:-]", clean(tile.Icon), tile.Caption)
		}
		_, _ = fmt.Fprintln(pv.body)
		pv.ResizeItem(pv.button, 0, 0)
	}
	pv.body.ScrollToBeginning()
}

// Text returns the panel body without color tags.
func (pv *PremiumView) Text() string {
	return pv.body.GetText(true)
}
