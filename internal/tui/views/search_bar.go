package views

import (
	"github.com/gdamore/tcell/v2"
	"github.com/matheus3301/gamechat/internal/tui/model"
	"github.com/matheus3301/gamechat/internal/tui/ui"
	"github.com/rivo/tview"
)

// SearchBar is the search box under the tab bar.
type SearchBar struct {
	*tview.InputField
	theme    *ui.Theme
	onChange func(text string)
	onDone   func()
}

// NewSearchBar creates the search box.
func NewSearchBar(theme *ui.Theme) *SearchBar {
	input := tview.NewInputField().
		SetLabel(" 🔍 ").
		SetFieldWidth(0)
	input.SetBorder(true)
	input.SetBorderColor(theme.BorderColor)
	input.SetBackgroundColor(theme.BgColor)
	input.SetFieldBackgroundColor(theme.BgColor)
	input.SetFieldTextColor(theme.FgColor)
	input.SetLabelColor(theme.MenuKeyColor)
	input.SetPlaceholderTextColor(theme.MutedColor)
	input.SetTitleColor(theme.MutedColor)
	input.SetTitleAlign(tview.AlignRight)

	sb := &SearchBar{InputField: input, theme: theme}

	input.SetChangedFunc(func(text string) {
		if sb.onChange != nil {
			sb.onChange(text)
		}
	})
	input.SetDoneFunc(func(key tcell.Key) {
		if sb.onDone != nil {
			sb.onDone()
		}
	})
	return sb
}

// SetOnChange sets the callback fired on every edit.
func (sb *SearchBar) SetOnChange(fn func(text string)) {
	sb.onChange = fn
}

// SetOnDone sets the callback fired on Enter or Esc.
func (sb *SearchBar) SetOnDone(fn func()) {
	sb.onDone = fn
}

// Update syncs the box with the rendered search state.
func (sb *SearchBar) Update(s model.Search) {
	sb.SetPlaceholder(s.Placeholder)
	if sb.GetText() != s.Query {
		sb.SetText(s.Query)
	}
	switch {
	case s.Query == "":
		sb.SetTitle("")
	case s.Applied:
		sb.SetTitle(" filtered ")
	default:
		sb.SetTitle(" not applied ")
	}
}
