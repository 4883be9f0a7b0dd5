package ui

import "strings"

// ProgressBar renders percent (clamped to 0-100) as a bar of width cells.
func ProgressBar(percent, width int) string {
	if width <= 0 {
		return ""
	}
	percent = max(0, min(100, percent))
	filled := percent * width / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
