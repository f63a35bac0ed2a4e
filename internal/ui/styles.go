package ui

import (
	"github.com/charmbracelet/lipgloss"

	"folio/internal/content"
	"folio/internal/widget"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - for selected items, borders
	ColorDanger    = "196" // Red - for errors in the status line
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
	ColorDim       = "243" // Darker gray - for very dim text
	ColorWarning   = "208" // Orange - for code and metrics
)

// Styles contains shared style definitions used across sections.
var Styles = struct {
	Title   lipgloss.Style // Bold accent color - for the hero name
	Section lipgloss.Style // Section headings
	Nav     lipgloss.Style // Inactive header entries
	NavOn   lipgloss.Style // Active header entry
	Header  lipgloss.Style // Header bar with bottom border

	Selected lipgloss.Style // Selected project
	Muted    lipgloss.Style // Dimmed text
	Normal   lipgloss.Style // Normal text
	Hint     lipgloss.Style // Help/hint text
	Status   lipgloss.Style // Status line
	Error    lipgloss.Style // Status line on failure
	Empty    lipgloss.Style // Empty state text
	Tag      lipgloss.Style // Technology chips
	Metric   lipgloss.Style // Project metrics
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Section: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)).
		MarginBottom(1),
	Nav: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Padding(0, 1),
	NavOn: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Bold(true).
		Underline(true).
		Padding(0, 1),
	Header: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color(ColorDim)),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Tag: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Background(lipgloss.Color("237")).
		Padding(0, 1),
	Metric: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWarning)),
}

// widgetStyles returns the widget palette matched to the page theme.
func widgetStyles() widget.Styles {
	st := widget.DefaultStyles()
	st.Title = Styles.Title
	st.Hint = Styles.Hint
	return st
}

// markdownStyles returns the project description palette.
func markdownStyles() content.MarkdownStyles {
	st := content.DefaultMarkdownStyles()
	st.Hint = Styles.Hint
	return st
}
