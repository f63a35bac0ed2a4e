// Package textutil provides unicode-aware text helpers for laying out
// terminal output.
package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// TruncateEllipsis is appended when text is cut.
const TruncateEllipsis = "…"

// VisualWidth returns the number of terminal columns s occupies. s must not
// contain escape sequences; use lipgloss.Width for styled text.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate cuts s to at most maxWidth columns, ending in an ellipsis when
// anything was removed. Wide runes are never split.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisualWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, TruncateEllipsis)
}

// PadRightVisual pads s with spaces to exactly targetWidth columns,
// truncating when it is wider.
func PadRightVisual(s string, targetWidth int) string {
	if VisualWidth(s) >= targetWidth {
		return Truncate(s, targetWidth)
	}
	return runewidth.FillRight(s, targetWidth)
}

// FitLines returns s with exactly n lines: extra lines are dropped and
// missing ones are appended empty.
func FitLines(s string, n int) string {
	if n <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > n {
		lines = lines[:n]
	}
	for len(lines) < n {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
