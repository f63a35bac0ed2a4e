package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/internal/widget"
)

func TestLayout_ExtentsTileThePage(t *testing.T) {
	a, _, _ := newTestApp(t)

	next := 0
	for _, s := range Sections {
		e, ok := a.Tracker.Extent(s.Name)
		require.True(t, ok, s.Name)
		assert.Equal(t, next, e.Top, s.Name)
		assert.Positive(t, e.Height, s.Name)
		next = e.Top + e.Height
	}
	last, _ := a.Tracker.Extent("contact")
	assert.GreaterOrEqual(t, a.Page.TotalLineCount(), last.Top+a.Page.Height,
		"the last section can reach the top of the page")
}

func TestLayout_RemeasuresOnResize(t *testing.T) {
	a, _, _ := newTestApp(t)
	wide, _ := a.Tracker.Extent("projects")

	send(a, tea.WindowSizeMsg{Width: 40, Height: 30})
	narrow, _ := a.Tracker.Extent("projects")
	assert.Greater(t, narrow.Top, wide.Top, "narrower text wraps onto more lines")
}

func TestLayout_HeroHeightIsStableWhileRevealing(t *testing.T) {
	a, _, _ := newTestApp(t)
	before, _ := a.Tracker.Extent("hero")
	require.Zero(t, a.Revealer.Cursor())

	cmd := a.Revealer.Start()
	for cmd != nil {
		cmd = a.Revealer.Update(cmd())
	}
	require.True(t, a.Revealer.Done())
	a.layout()

	after, _ := a.Tracker.Extent("hero")
	assert.Equal(t, before, after)
	assert.Contains(t, stripANSI(a.Page.View()), "Mira Castell")
}

func TestSection_IsMemoized(t *testing.T) {
	a, _, _ := newTestApp(t)
	before := a.renders.ItemCount()

	a.layout()
	assert.Equal(t, before, a.renders.ItemCount(), "same width and state hits the cache")

	press(t, a, "]")
	assert.Equal(t, before+1, a.renders.ItemCount(), "only the gallery is re-rendered")
}

func TestRender_HeaderHighlightsActive(t *testing.T) {
	a, _, _ := newTestApp(t)
	deliver(t, a, send(a, ScrollToSectionMsg{Name: "skills"}))

	header := a.renderHeader()
	assert.Equal(t, headerHeight, lipgloss.Height(header))
	assert.Contains(t, header, Styles.NavOn.Render("Skills"))
	assert.Contains(t, header, Styles.Nav.Render("Home"))
}

func TestRender_FillsTerminal(t *testing.T) {
	a, _, _ := newTestApp(t)
	assert.Equal(t, 30, lipgloss.Height(a.render()))

	press(t, a, "?")
	assert.Equal(t, 30, lipgloss.Height(a.render()), "help replaces page lines")
}

func TestRender_LightboxTakesOverScreen(t *testing.T) {
	a, _, _ := newTestApp(t)
	send(a, widget.OpenMediaMsg{Set: widget.ImageSet("Shots", "/shots/one.png")})

	out := a.render()
	assert.Equal(t, a.Modal.View(), out)
	assert.Contains(t, stripANSI(out), "one.png")
}

func TestRenderProjects_SelectedShowsDetails(t *testing.T) {
	a, _, _ := newTestApp(t)
	p := a.Portfolio.Projects[0]

	out := stripANSI(a.renderProjects(a.contentWidth()))
	assert.Contains(t, out, "▸ "+p.Title)
	assert.Contains(t, out, "v: demo video")
	for _, tech := range p.Technologies {
		assert.Contains(t, out, tech)
	}

	a.selectProject(1)
	out = stripANSI(a.renderProjects(a.contentWidth()))
	assert.NotContains(t, out, "v: demo video")
	assert.Contains(t, out, "▸ "+a.Portfolio.Projects[1].Title)
}

func TestRenderContact_ListsLeaderKeys(t *testing.T) {
	a, _, _ := newTestApp(t)
	out := stripANSI(a.renderContact(a.contentWidth()))
	for _, k := range []string{"SPC c g", "SPC c l", "SPC c m", "SPC c p", "SPC c d"} {
		assert.Contains(t, out, k)
	}
}

func TestTelLink(t *testing.T) {
	assert.Equal(t, "tel:+34600000000", telLink("+34 600 000 000"))
	assert.Equal(t, "", telLink(""))
	assert.Equal(t, "mailto:a@b.c", mailtoLink("a@b.c"))
}

func TestOpenerCommand(t *testing.T) {
	name, args := openerCommand("darwin")
	assert.Equal(t, "open", name)
	assert.Empty(t, args)
	name, _ = openerCommand("linux")
	assert.Equal(t, "xdg-open", name)
	assert.ErrorIs(t, SystemOpener{}.Open(""), ErrNoLink)
}

func stripANSI(s string) string {
	return ansi.Strip(s)
}
