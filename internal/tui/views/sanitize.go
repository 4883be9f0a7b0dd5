package views

import (
	"strings"
	"unicode"

	"github.com/rivo/tview"
)

// glyphModifiers lists the codepoints that only alter the previous glyph.
// tcell measures them as separate cells, so an avatar such as "❄️"
// (U+2744 U+FE0F) would push the rest of its table row one column right.
var glyphModifiers = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x200D, Hi: 0x200D, Stride: 1}, // zero width joiner
		{Lo: 0xFE00, Hi: 0xFE0F, Stride: 1}, // variation selectors
	},
	R32: []unicode.Range32{
		{Lo: 0x1F3FB, Hi: 0x1F3FF, Stride: 1}, // skin tones
		{Lo: 0xE0100, Hi: 0xE01EF, Stride: 1}, // variation selectors supplement
	},
}

// sanitizeForTerminal drops glyph modifiers so every avatar and icon
// keeps the width tcell reports for its base rune.
func sanitizeForTerminal(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.Is(glyphModifiers, r) {
			return -1
		}
		return r
	}, s)
}

// clean prepares dataset text for a dynamic-color view.
func clean(s string) string {
	return tview.Escape(sanitizeForTerminal(s))
}
