package views

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/matheus3301/gamechat/internal/tui/model"
	"github.com/matheus3301/gamechat/internal/tui/ui"
	"github.com/rivo/tview"
)

// ChatsView is the chats tab: the chat list on the left, the transcript and
// an inert composer on the right.
type ChatsView struct {
	*tview.Flex
	theme      *ui.Theme
	list       *tview.Table
	transcript *tview.TextView
	composer   *tview.TextView
	items      []model.ChatItem
	onSelect   func(id int)
	clicked    bool
}

// NewChatsView creates the chats tab.
func NewChatsView(theme *ui.Theme) *ChatsView {
	list := tview.NewTable().
		SetSelectable(true, false).
		SetBorders(false)
	list.SetBorder(true)
	list.SetBorderColor(theme.BorderColor)
	list.SetBackgroundColor(theme.BgColor)
	list.SetSelectedStyle(tcell.StyleDefault.
		Foreground(theme.TableCursorFg).
		Background(theme.TableCursorBg))
	list.SetTitle(" Чаты ")
	list.SetTitleColor(theme.TitleColor)

	transcript := tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWordWrap(true)
	transcript.SetBorder(true)
	transcript.SetBorderColor(theme.BorderColor)
	transcript.SetBackgroundColor(theme.BgColor)
	transcript.SetTextColor(theme.FgColor)
	transcript.SetTitleColor(theme.TitleColor)

	composer := tview.NewTextView().
		SetDynamicColors(true)
	composer.SetBorder(true)
	composer.SetBorderColor(theme.BorderColor)
	composer.SetBackgroundColor(theme.BgColor)
	composer.SetTextColor(theme.MutedColor)

	right := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(transcript, 0, 1, false).
		AddItem(composer, 3, 0, false)

	flex := tview.NewFlex().
		AddItem(list, 0, 1, true).
		AddItem(right, 0, 2, false)

	cv := &ChatsView{
		Flex:       flex,
		theme:      theme,
		list:       list,
		transcript: transcript,
		composer:   composer,
	}

	list.SetSelectedFunc(func(row, _ int) {
		cv.fire(row)
	})
	list.SetSelectionChangedFunc(func(row, _ int) {
		if cv.clicked {
			cv.clicked = false
			cv.fire(row)
		}
	})
	list.SetMouseCapture(func(action tview.MouseAction, event *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
		if action == tview.MouseLeftClick && list.InRect(event.Position()) {
			cv.clicked = true
		}
		return action, event
	})
	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		cv.clicked = false
		return event
	})

	return cv
}

// Name implements Component.
func (cv *ChatsView) Name() string { return "Chats" }

// Hints implements Component.
func (cv *ChatsView) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "Enter", Description: "Open"},
		{Key: "j/k", Description: "Move"},
	}
}

// List returns the focusable chat table.
func (cv *ChatsView) List() *tview.Table { return cv.list }

// SetOnSelect sets the callback fired when a chat row is chosen.
func (cv *ChatsView) SetOnSelect(fn func(id int)) {
	cv.onSelect = fn
}

func (cv *ChatsView) fire(row int) {
	id, ok := cv.chatAt(row)
	if !ok || cv.onSelect == nil {
		return
	}
	cv.onSelect(id)
}

func (cv *ChatsView) chatAt(row int) (int, bool) {
	if row < 0 || row >= len(cv.items) {
		return 0, false
	}
	return cv.items[row].ID, true
}

// Update redraws the list and the transcript.
func (cv *ChatsView) Update(p model.ChatsPanel) {
	cv.items = p.Items
	cv.renderList(p)
	cv.renderTranscript(p.Transcript)
}

func (cv *ChatsView) renderList(p model.ChatsPanel) {
	row, _ := cv.list.GetSelection()
	cv.list.Clear()

	for i, it := range p.Items {
		fg, bg := cv.theme.FgColor, cv.theme.BgColor
		marker := "  "
		if it.Selected {
			fg, bg = cv.theme.SelectedFg, cv.theme.SelectedBg
			marker = "▶ "
		}

		cells := []*tview.TableCell{
			tview.NewTableCell(marker + clean(it.Avatar)),
			tview.NewTableCell(fmt.Sprintf("%s [%s]%d[-]", clean(it.Name), ui.ColorName(cv.theme.AccentColor), it.Level)).SetExpansion(1),
			tview.NewTableCell(clean(it.LastMessage)).SetExpansion(2).SetMaxWidth(28).SetTextColor(cv.theme.MutedColor),
			tview.NewTableCell(it.Time).SetAlign(tview.AlignRight).SetTextColor(cv.theme.MutedColor),
			tview.NewTableCell(badge(it.UnreadBadge)).SetAlign(tview.AlignRight).SetTextColor(cv.theme.BadgeColor),
		}
		for col, c := range cells {
			if col < 2 {
				c.SetTextColor(fg)
			}
			c.SetBackgroundColor(bg)
			cv.list.SetCell(i, col, c)
		}
	}

	if len(p.Items) != p.Total {
		cv.list.SetTitle(fmt.Sprintf(" Чаты (%d/%d) ", len(p.Items), p.Total))
	} else {
		cv.list.SetTitle(fmt.Sprintf(" Чаты (%d) ", p.Total))
	}
	if row >= len(p.Items) {
		row = max(0, len(p.Items)-1)
	}
	cv.list.Select(row, 0)
}

func (cv *ChatsView) renderTranscript(tr model.Transcript) {
	cv.transcript.Clear()
	cv.transcript.SetTitle(fmt.Sprintf(" %s %s · %s ", clean(tr.Avatar), clean(tr.Title), tr.Subtitle))

	mine := ui.ColorName(cv.theme.MineColor)
	sender := ui.ColorName(cv.theme.AccentColor)
	muted := ui.ColorName(cv.theme.MutedColor)
	for _, b := range tr.Bubbles {
		if b.Mine {
			_, _ = fmt.Fprintf(cv.transcript, "[%s]%s[-]  [%s]%s[-]\n\n",
				mine, clean(b.Text), muted, b.Time)
			continue
		}
		if b.ShowSender {
			_, _ = fmt.Fprintf(cv.transcript, "[%s::b]%s[-:-:-]\n", sender, clean(b.Sender))
		}
		_, _ = fmt.Fprintf(cv.transcript, "%s  [%s]%s[-]\n\n", clean(b.Text), muted, b.Time)
	}

	cv.composer.Clear()
	_, _ = fmt.Fprintf(cv.composer, " %s", tview.Escape(tr.Placeholder))
}

// TranscriptText returns the transcript without color tags.
func (cv *ChatsView) TranscriptText() string {
	return cv.transcript.GetText(true)
}

// ComposerText returns the composer placeholder without color tags.
func (cv *ChatsView) ComposerText() string {
	return cv.composer.GetText(true)
}

func badge(s string) string {
	if s == "" {
		return ""
	}
	return "(" + s + ")"
}
