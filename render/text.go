package render

import (
	"github.com/mattn/go-runewidth"
)

const ellipsis = "…"

func runeWidth(r rune) int { return runewidth.RuneWidth(r) }

// TextWidth is the display width of s in cells
func TextWidth(s string) int { return runewidth.StringWidth(s) }

// Fit truncates s to at most width cells, marking the cut with an ellipsis
func Fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width == 1 {
		return runewidth.Truncate(s, 1, "")
	}
	return runewidth.Truncate(s, width, ellipsis)
}

// PadRight pads s with spaces to width cells after fitting it
func PadRight(s string, width int) string {
	return runewidth.FillRight(Fit(s, width), width)
}
