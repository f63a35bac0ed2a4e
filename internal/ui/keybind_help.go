package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// RenderKeybindHelp produces the transient help view shown after SPC.
// Displays SPC-prefixed bindings in a compact bar format, filtered by mode.
// When keyHandler is in leader mode with a buffer (e.g. "SPC g"), shows next-level hints.
func RenderKeybindHelp(keyHandler *KeyHandler, mode AppMode) string {
	if keyHandler == nil {
		return ""
	}
	currentSeq := ""
	if len(keyHandler.Buffer) > 0 {
		currentSeq = strings.Join(keyHandler.Buffer, " ")
	}
	hints := keyHandler.Registry.LeaderHints(currentSeq, mode)
	if len(hints) == 0 {
		return ""
	}

	bindings := hintBindings(hints)
	bindings = append(bindings, key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	))

	prefix := "SPC"
	if currentSeq != "" {
		prefix = currentSeq
	}
	return helpBox(Styles.Hint.Render(prefix) + " " + helpModel(0).ShortHelpView(bindings))
}

// RenderKeyHelp renders the single-key bindings for mode, wrapped to width,
// as shown by the "?" toggle.
func RenderKeyHelp(reg *KeybindRegistry, mode AppMode, width int) string {
	if reg == nil {
		return ""
	}
	hints := reg.KeyHints(mode)
	if len(hints) == 0 {
		return ""
	}
	bindings := hintBindings(hints)
	// Four bindings per column keeps the box short on narrow terminals.
	var groups [][]key.Binding
	for len(bindings) > 0 {
		n := min(4, len(bindings))
		groups = append(groups, bindings[:n])
		bindings = bindings[n:]
	}
	return helpBox(helpModel(width - 4).FullHelpView(groups))
}

// hintBindings converts hints to key.Binding values sorted by key.
func hintBindings(hints map[string]string) []key.Binding {
	keys := make([]string, 0, len(hints))
	for k := range hints {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	bindings := make([]key.Binding, 0, len(keys))
	for _, k := range keys {
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(k),
			key.WithHelp(k, hints[k]),
		))
	}
	return bindings
}

func helpModel(width int) help.Model {
	m := help.New()
	m.Width = width
	m.ShowAll = true
	m.Styles.ShortKey = Styles.Selected
	m.Styles.ShortDesc = Styles.Hint
	m.Styles.ShortSeparator = Styles.Hint
	m.Styles.FullKey = Styles.Selected
	m.Styles.FullDesc = Styles.Hint
	m.Styles.FullSeparator = Styles.Hint
	return m
}

func helpBox(s string) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1).
		Render(s)
}
