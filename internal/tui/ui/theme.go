package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Theme holds color constants for the TUI.
type Theme struct {
	BgColor           tcell.Color
	FgColor           tcell.Color
	MutedColor        tcell.Color
	BorderColor       tcell.Color
	BorderFocusColor  tcell.Color
	TableHeaderFg     tcell.Color
	TableCursorFg     tcell.Color
	TableCursorBg     tcell.Color
	SelectedFg        tcell.Color
	SelectedBg        tcell.Color
	TabActiveFg       tcell.Color
	TabActiveBg       tcell.Color
	TabInactiveFg     tcell.Color
	TabInactiveBg     tcell.Color
	MenuKeyColor      tcell.Color
	NumericKeyColor   tcell.Color
	TitleColor        tcell.Color
	CounterColor      tcell.Color
	AccentColor       tcell.Color
	BadgeColor        tcell.Color
	PremiumColor      tcell.Color
	OnlineColor       tcell.Color
	OfflineColor      tcell.Color
	MineColor         tcell.Color
	FlashInfoColor    tcell.Color
	FlashWarnColor    tcell.Color
	FlashErrColor     tcell.Color
	PromptBorderColor tcell.Color
}

// DefaultTheme returns a dark theme with purple/cyan gaming accents.
func DefaultTheme() *Theme {
	return &Theme{
		BgColor:           tcell.ColorBlack,
		FgColor:           tcell.ColorWhiteSmoke,
		MutedColor:        tcell.ColorGray,
		BorderColor:       tcell.ColorMediumPurple,
		BorderFocusColor:  tcell.ColorViolet,
		TableHeaderFg:     tcell.ColorWhite,
		TableCursorFg:     tcell.ColorBlack,
		TableCursorBg:     tcell.ColorAqua,
		SelectedFg:        tcell.ColorWhite,
		SelectedBg:        tcell.ColorRebeccaPurple,
		TabActiveFg:       tcell.ColorBlack,
		TabActiveBg:       tcell.ColorMediumPurple,
		TabInactiveFg:     tcell.ColorMediumPurple,
		TabInactiveBg:     tcell.ColorBlack,
		MenuKeyColor:      tcell.ColorDodgerBlue,
		NumericKeyColor:   tcell.ColorFuchsia,
		TitleColor:        tcell.ColorFuchsia,
		CounterColor:      tcell.ColorPapayaWhip,
		AccentColor:       tcell.ColorAqua,
		BadgeColor:        tcell.ColorHotPink,
		PremiumColor:      tcell.ColorGold,
		OnlineColor:       tcell.ColorLimeGreen,
		OfflineColor:      tcell.ColorGray,
		MineColor:         tcell.ColorMediumPurple,
		FlashInfoColor:    tcell.ColorNavajoWhite,
		FlashWarnColor:    tcell.ColorOrange,
		FlashErrColor:     tcell.ColorOrangeRed,
		PromptBorderColor: tcell.ColorDodgerBlue,
	}
}

// ColorName returns a tview-compatible color tag value for c.
func ColorName(c tcell.Color) string {
	for name, val := range tcell.ColorNames {
		if val == c {
			return name
		}
	}
	return colorHex(c)
}

func colorHex(c tcell.Color) string {
	return fmt.Sprintf("#%06x", c.Hex())
}
