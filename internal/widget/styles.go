package widget

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles widgets render with. Hosts usually start
// from DefaultStyles and override a few fields.
type Styles struct {
	Text      lipgloss.Style
	Cursor    lipgloss.Style
	Caption   lipgloss.Style
	Frame     lipgloss.Style
	Control   lipgloss.Style
	DotActive lipgloss.Style
	Dot       lipgloss.Style
	Backdrop  lipgloss.Style
	Box       lipgloss.Style
	Title     lipgloss.Style
	Hint      lipgloss.Style
}

// DefaultStyles returns the palette shared with the ui package.
func DefaultStyles() Styles {
	return Styles{
		Text:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Cursor: lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Blink(true),
		Caption: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236")).
			Padding(0, 1),
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(1, 2),
		Control:   lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true),
		DotActive: lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Dot:       lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		Backdrop:  lipgloss.NewStyle().Background(lipgloss.Color("233")),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("205")).
			Padding(1, 2),
		Title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86")),
		Hint:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}
