package ui

import (
	"errors"
	"path"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/internal/trace"
	"folio/internal/widget"
)

type recordingOpener struct {
	refs []string
	err  error
}

func (o *recordingOpener) Open(ref string) error {
	o.refs = append(o.refs, ref)
	return o.err
}

type eventLog struct {
	events []trace.Event
}

func (l *eventLog) Record(ev trace.Event) {
	l.events = append(l.events, ev)
}

func (l *eventLog) types() []trace.EventType {
	out := make([]trace.EventType, len(l.events))
	for i, ev := range l.events {
		out[i] = ev.Type
	}
	return out
}

func newTestApp(t *testing.T) (*appModelAdapter, *recordingOpener, *eventLog) {
	t.Helper()
	return newTestAppWith(t, Options{RevealDelay: time.Millisecond})
}

func newTestAppWith(t *testing.T, opts Options) (*appModelAdapter, *recordingOpener, *eventLog) {
	t.Helper()
	opener := &recordingOpener{}
	events := &eventLog{}
	opts.Opener = opener
	opts.Recorder = events
	m, err := NewAppModel(opts)
	require.NoError(t, err)
	a := &appModelAdapter{AppModel: m}
	send(a, tea.WindowSizeMsg{Width: 100, Height: 30})
	return a, opener, events
}

func send(a *appModelAdapter, msg tea.Msg) tea.Cmd {
	_, cmd := a.Update(msg)
	return cmd
}

// press sends a key and, when a binding answered with a message, delivers
// that message too. It returns the follow-up command.
func press(t *testing.T, a *appModelAdapter, k string) tea.Cmd {
	t.Helper()
	cmd := send(a, keyMsg(k))
	if cmd == nil {
		return nil
	}
	return send(a, cmd())
}

// deliver runs cmd, which must produce a message immediately, and sends it.
func deliver(t *testing.T, a *appModelAdapter, cmd tea.Cmd) tea.Cmd {
	t.Helper()
	require.NotNil(t, cmd)
	return send(a, cmd())
}

func TestNewAppModel_Defaults(t *testing.T) {
	a, _, _ := newTestApp(t)
	assert.Equal(t, ModeBrowse, a.Mode)
	assert.Equal(t, "hero", a.Active())
	assert.Equal(t, 4, a.Carousel.Len())
	assert.Equal(t, 100, a.Page.Width)
	assert.Equal(t, 30-headerHeight-footerHeight, a.Page.Height)
	assert.False(t, a.Modal.IsOpen())
}

func TestApp_ScrollToSectionChangesActive(t *testing.T) {
	a, _, events := newTestApp(t)

	deliver(t, a, send(a, ScrollToSectionMsg{Name: "projects"}))
	assert.Equal(t, "projects", a.Active())
	e, ok := a.Tracker.Extent("projects")
	require.True(t, ok)
	assert.Equal(t, e.Top, a.Page.YOffset)

	require.Len(t, events.events, 1)
	assert.Equal(t, trace.EventSectionChange, events.events[0].Type)
	assert.Equal(t, map[string]string{"from": "hero", "to": "projects"}, events.events[0].Attributes)
}

func TestApp_LeaderJumpToSection(t *testing.T) {
	a, _, _ := newTestApp(t)

	assert.Nil(t, send(a, keyMsg(" ")))
	assert.Nil(t, send(a, keyMsg("g")))
	assert.True(t, a.KeyHandler.LeaderWaiting)
	assert.Contains(t, a.render(), "SPC g")

	deliver(t, a, press(t, a, "c"))
	assert.Equal(t, "contact", a.Active())
	assert.False(t, a.KeyHandler.LeaderWaiting)
}

func TestApp_TabStepsWhileTrackerIsThrottled(t *testing.T) {
	a, _, _ := newTestAppWith(t, Options{RevealDelay: time.Millisecond, ScrollThrottle: time.Hour})

	// The flush never runs, so the active section stays stale.
	press(t, a, "tab")
	press(t, a, "tab")
	assert.Equal(t, "hero", a.Active())
	about, _ := a.Tracker.Extent("about")
	assert.Equal(t, about.Top, a.Page.YOffset)
}

func TestApp_TabStepsThroughSections(t *testing.T) {
	a, _, _ := newTestApp(t)

	for _, want := range []string{"gallery", "about", "experience"} {
		deliver(t, a, press(t, a, "tab"))
		assert.Equal(t, want, a.Active())
	}
	deliver(t, a, press(t, a, "shift+tab"))
	assert.Equal(t, "about", a.Active())

	deliver(t, a, press(t, a, "G"))
	assert.Equal(t, "contact", a.Active())
	deliver(t, a, press(t, a, "g"))
	assert.Equal(t, "hero", a.Active())
	assert.Equal(t, 0, a.Page.YOffset)
}

func TestApp_CarouselKeys(t *testing.T) {
	a, _, events := newTestApp(t)

	press(t, a, "]")
	assert.Equal(t, 1, a.Carousel.Index())
	press(t, a, "[")
	press(t, a, "[")
	assert.Equal(t, 3, a.Carousel.Index())
	press(t, a, "3")
	assert.Equal(t, 2, a.Carousel.Index())
	press(t, a, "9")
	assert.Equal(t, 2, a.Carousel.Index(), "out of range jump is ignored")

	assert.Equal(t, []trace.EventType{
		trace.EventCarouselMove, trace.EventCarouselMove, trace.EventCarouselMove, trace.EventCarouselMove,
	}, events.types())
}

func TestApp_GalleryEnterOpensModalOnCurrentPhoto(t *testing.T) {
	a, _, events := newTestApp(t)
	deliver(t, a, send(a, ScrollToSectionMsg{Name: "gallery"}))
	press(t, a, "]")
	press(t, a, "]")

	open := press(t, a, "enter")
	deliver(t, a, open)
	require.True(t, a.Modal.IsOpen())
	assert.Equal(t, ModeLightbox, a.Mode)
	assert.Equal(t, 2, a.Modal.Index())
	assert.Equal(t, a.Portfolio.Photos[2].Src, a.Modal.Current())

	// Lightbox keys go to the modal, not the page bindings.
	send(a, keyMsg("l"))
	assert.Equal(t, 3, a.Modal.Index())
	assert.Equal(t, 2, a.Carousel.Index())

	deliver(t, a, send(a, keyMsg("esc")))
	assert.False(t, a.Modal.IsOpen())
	assert.Equal(t, ModeBrowse, a.Mode)
	assert.Contains(t, events.types(), trace.EventModalOpen)
	assert.Contains(t, events.types(), trace.EventModalClose)
}

// screenCell returns the screen cell where text first appears in the page.
func screenCell(t *testing.T, a *appModelAdapter, text string) (int, int) {
	t.Helper()
	for y, l := range strings.Split(stripANSI(a.Page.View()), "\n") {
		if i := strings.Index(l, text); i >= 0 {
			return ansi.StringWidth(l[:i]), y + headerHeight
		}
	}
	t.Fatalf("%q not on screen", text)
	return 0, 0
}

func leftClick(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestApp_ClickingSlideOpensModal(t *testing.T) {
	a, _, _ := newTestApp(t)
	deliver(t, a, send(a, ScrollToSectionMsg{Name: "gallery"}))
	press(t, a, "]")

	src := a.Portfolio.Photos[1].Src
	deliver(t, a, send(a, leftClick(screenCell(t, a, path.Base(src)))))
	require.True(t, a.Modal.IsOpen())
	assert.Equal(t, 1, a.Modal.Index())
	assert.Equal(t, src, a.Modal.Current())
}

func TestApp_ClickingCarouselControls(t *testing.T) {
	a, _, events := newTestApp(t)
	deliver(t, a, send(a, ScrollToSectionMsg{Name: "gallery"}))

	send(a, leftClick(screenCell(t, a, "›")))
	assert.Equal(t, 1, a.Carousel.Index())
	send(a, leftClick(screenCell(t, a, "‹")))
	send(a, leftClick(screenCell(t, a, "‹")))
	assert.Equal(t, 3, a.Carousel.Index())

	// The first hollow dot is photo 0 while photo 3 is shown.
	send(a, leftClick(screenCell(t, a, "○")))
	assert.Equal(t, 0, a.Carousel.Index())
	assert.False(t, a.Modal.IsOpen())
	assert.Contains(t, events.types(), trace.EventCarouselMove)

	send(a, leftClick(0, 0))
	assert.Equal(t, 0, a.Carousel.Index(), "header row is not part of the page")
}

func TestApp_ExperiencePhotos(t *testing.T) {
	a, _, _ := newTestApp(t)
	deliver(t, a, send(a, ScrollToSectionMsg{Name: "experience"}))
	require.Equal(t, "experience", a.Active())

	press(t, a, "n")
	assert.Equal(t, 0, a.job, "single entry wraps onto itself")
	assert.Equal(t, 0, a.project, "n selects jobs while experience is active")

	deliver(t, a, press(t, a, "enter"))
	require.True(t, a.Modal.IsOpen())
	e := a.Portfolio.Experience[0]
	assert.Equal(t, e.Company, a.Modal.Set().Label)
	assert.Equal(t, e.Images, a.Modal.Set().Images)
}

func TestApp_ExperienceWithoutPhotos(t *testing.T) {
	a, _, _ := newTestApp(t)
	a.Portfolio.Experience[0].Images = nil
	deliver(t, a, send(a, ScrollToSectionMsg{Name: "experience"}))

	assert.Nil(t, press(t, a, "enter"))
	assert.False(t, a.Modal.IsOpen())
	assert.Contains(t, a.Status(), "has no photos")
}

func TestApp_BackdropClickClosesModal(t *testing.T) {
	a, _, _ := newTestApp(t)
	send(a, widget.OpenMediaMsg{Set: widget.ImageSet("Shots", "/a.png", "/b.png")})
	require.True(t, a.Modal.IsOpen())

	r := a.Modal.ContentRect()
	inside := tea.MouseMsg{X: r.X + 1, Y: r.Y + 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	assert.Nil(t, send(a, inside))
	assert.True(t, a.Modal.IsOpen())

	outside := tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	deliver(t, a, send(a, outside))
	assert.False(t, a.Modal.IsOpen())
}

func TestApp_ProjectSelectionAndMedia(t *testing.T) {
	a, _, _ := newTestApp(t)

	deliver(t, a, press(t, a, "v"))
	require.True(t, a.Modal.IsOpen())
	assert.True(t, a.Modal.Set().IsVideo())
	assert.True(t, a.Modal.Playing())
	deliver(t, a, send(a, keyMsg("esc")))

	press(t, a, "n")
	assert.Equal(t, 1, a.project)
	assert.Nil(t, press(t, a, "v"), "project without a video opens nothing")
	assert.False(t, a.Modal.IsOpen())
	assert.Contains(t, a.Status(), "has no demo video")

	deliver(t, a, press(t, a, "i"))
	require.True(t, a.Modal.IsOpen())
	p := a.Portfolio.Projects[1]
	assert.Equal(t, append([]string{p.Image}, p.DemoImages...), a.Modal.Set().Images, "cover first")
	deliver(t, a, send(a, keyMsg("esc")))

	press(t, a, "p")
	press(t, a, "p")
	assert.Equal(t, len(a.Portfolio.Projects)-1, a.project, "selection wraps")
}

func TestApp_ContactLinksGoThroughOpener(t *testing.T) {
	a, opener, events := newTestApp(t)

	send(a, keyMsg(" "))
	send(a, keyMsg("c"))
	deliver(t, a, press(t, a, "g"))
	require.Equal(t, []string{a.Portfolio.Profile.Links.GitHub}, opener.refs)
	assert.Equal(t, "opened "+a.Portfolio.Profile.Links.GitHub, a.Status())
	assert.Equal(t, trace.EventLinkOpen, events.events[len(events.events)-1].Type)

	send(a, keyMsg(" "))
	send(a, keyMsg("c"))
	deliver(t, a, press(t, a, "m"))
	assert.Equal(t, "mailto:"+a.Portfolio.Profile.Links.Email, opener.refs[1])
}

func TestApp_LinkFailureSurfacesInStatus(t *testing.T) {
	a, opener, _ := newTestApp(t)
	opener.err = errors.New("no handler")

	deliver(t, a, press(t, a, "o"))
	assert.Contains(t, a.Status(), "no handler")
	assert.True(t, a.statusErr)
	assert.Contains(t, a.render(), "no handler")
}

func TestApp_QuitStopsWidgets(t *testing.T) {
	a, _, _ := newTestApp(t)
	a.Carousel.Start()
	require.True(t, a.Carousel.Running())

	cmd := press(t, a, "q")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.False(t, a.Carousel.Running())
	assert.Nil(t, a.Tracker.Scroll(200), "tracker is detached")
}

func TestApp_CtrlCQuitsFromLightbox(t *testing.T) {
	a, _, _ := newTestApp(t)
	send(a, widget.OpenMediaMsg{Set: widget.ImageSet("Shots", "/a.png")})

	// q belongs to the lightbox while it is open.
	deliver(t, a, send(a, keyMsg("q")))
	assert.False(t, a.Modal.IsOpen())

	send(a, widget.OpenMediaMsg{Set: widget.ImageSet("Shots", "/a.png")})
	quit := deliver(t, a, send(a, keyMsg("ctrl+c")))
	require.NotNil(t, quit)
	assert.IsType(t, tea.QuitMsg{}, quit())
	assert.False(t, a.Modal.IsOpen())
}

func TestApp_HelpToggle(t *testing.T) {
	a, _, _ := newTestApp(t)
	press(t, a, "?")
	assert.True(t, a.showHelp)
	assert.Contains(t, a.render(), "Next photo")
	press(t, a, "?")
	assert.False(t, a.showHelp)
}
