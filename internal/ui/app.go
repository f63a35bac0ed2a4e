package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/patrickmn/go-cache"

	"folio/internal/content"
	"folio/internal/trace"
	"folio/internal/widget"
)

// Section is one page section. Key is its letter under SPC g.
type Section struct {
	Name  string
	Label string
	Key   string
}

// Sections in page order.
var Sections = []Section{
	{Name: "hero", Label: "Home", Key: "h"},
	{Name: "gallery", Label: "Gallery", Key: "g"},
	{Name: "about", Label: "About", Key: "a"},
	{Name: "experience", Label: "Experience", Key: "e"},
	{Name: "skills", Label: "Skills", Key: "s"},
	{Name: "projects", Label: "Projects", Key: "p"},
	{Name: "contact", Label: "Contact", Key: "c"},
}

func sectionNames() []string {
	names := make([]string, len(Sections))
	for i, s := range Sections {
		names[i] = s.Name
	}
	return names
}

func sectionIndex(name string) int {
	for i, s := range Sections {
		if s.Name == name {
			return i
		}
	}
	return -1
}

// EventRecorder receives interaction events. *trace.Recorder implements it.
type EventRecorder interface {
	Record(trace.Event)
}

// Options configures NewAppModel. Zero durations take the widget defaults.
type Options struct {
	Portfolio        *content.Portfolio
	RevealDelay      time.Duration
	CarouselInterval time.Duration
	ScrollThrottle   time.Duration
	Lookahead        int
	Opener           LinkOpener
	Recorder         EventRecorder
}

const (
	headerHeight = 2 // nav line plus its bottom border
	footerHeight = 1 // status line
)

// AppModel is the root model: a scrolling page of sections plus the lightbox.
type AppModel struct {
	Mode       AppMode
	KeyHandler *KeyHandler
	Portfolio  *content.Portfolio

	Revealer *widget.Revealer
	Carousel *widget.Carousel
	Modal    *widget.Modal
	Tracker  *widget.Tracker
	Page     viewport.Model

	Opener   LinkOpener
	Recorder EventRecorder

	active    string // section shown as current in the header
	project   int    // selected project
	job       int    // selected experience entry
	showHelp  bool
	status    string
	statusErr bool
	width     int
	height    int
	mounted   bool
	renders   *cache.Cache
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return tea.Batch(a.Revealer.Start(), a.Carousel.Start())
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return a, a.handleResize(msg)
	case QuitMsg:
		a.teardown()
		return a, tea.Quit
	case widget.OpenMediaMsg:
		a.handleOpenMedia(msg)
		return a, nil
	case widget.CloseMediaMsg:
		a.handleCloseMedia()
		return a, nil
	case widget.SectionChangedMsg:
		a.handleSectionChanged(msg)
		return a, nil
	case widget.OpenLinkMsg:
		return a, a.openLink(msg.URL)
	case linkOpenedMsg:
		a.handleLinkOpened(msg)
		return a, nil
	case ScrollToSectionMsg:
		return a, a.scrollToSection(msg.Name)
	case StepSectionMsg:
		return a, a.stepSection(msg.Delta)
	case ScrollEdgeMsg:
		return a, a.scrollToEdge(msg.Bottom)
	case CarouselStepMsg:
		return a, a.stepCarousel(msg.Delta)
	case CarouselJumpMsg:
		return a, a.jumpCarousel(msg.Index)
	case SelectItemMsg:
		a.selectItem(msg.Delta)
		return a, nil
	case OpenProjectMediaMsg:
		return a, a.openProjectMedia(msg.Video)
	case OpenProjectRepoMsg:
		return a, a.openLink(a.selectedProject().GitHubURL)
	case ActivateMsg:
		return a, a.activate()
	case ToggleHelpMsg:
		a.showHelp = !a.showHelp
		return a, nil
	case tea.KeyMsg:
		return a, a.handleKey(msg)
	case tea.MouseMsg:
		return a, a.handleMouse(msg)
	}
	return a, a.handleTick(msg)
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	return a.render()
}

// NewAppModel creates the root application model. A nil Portfolio uses the
// built-in sample content.
func NewAppModel(opts Options) (*AppModel, error) {
	p := opts.Portfolio
	if p == nil {
		var err error
		if p, err = content.Default(); err != nil {
			return nil, fmt.Errorf("default content: %w", err)
		}
	}
	if opts.RevealDelay <= 0 {
		opts.RevealDelay = widget.DefaultRevealDelay
	}
	if opts.Opener == nil {
		opts.Opener = SystemOpener{}
	}

	revealer := widget.NewRevealer(p.Profile.Tagline, opts.RevealDelay)
	revealer.Styles = widgetStyles()
	carousel := widget.NewCarousel(p.CarouselPhotos(), opts.CarouselInterval)
	carousel.Styles = widgetStyles()
	modal := widget.NewModal()
	modal.Styles = widgetStyles()
	tracker := widget.NewTracker(sectionNames(), opts.Lookahead)
	tracker.Throttle = opts.ScrollThrottle

	page := viewport.New(0, 0)
	// Space is the leader key; h/l would only scroll sideways.
	page.KeyMap.PageDown = key.NewBinding(key.WithKeys("pgdown", "f"))
	page.KeyMap.Left.SetEnabled(false)
	page.KeyMap.Right.SetEnabled(false)

	a := &AppModel{
		Mode:      ModeBrowse,
		Portfolio: p,
		Revealer:  revealer,
		Carousel:  carousel,
		Modal:     modal,
		Tracker:   tracker,
		Page:      page,
		Opener:    opts.Opener,
		Recorder:  opts.Recorder,
		active:    tracker.Active(),
		renders:   cache.New(10*time.Minute, 10*time.Minute),
	}
	a.KeyHandler = NewKeyHandler(a.bindKeys())
	return a, nil
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Active returns the section the header shows as current.
func (m *AppModel) Active() string {
	return m.active
}

// Status returns the status line message, if any.
func (m *AppModel) Status() string {
	return m.status
}

func msgCmd(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// bindKeys registers every page binding. Lightbox keys are handled by the
// modal itself.
func (m *AppModel) bindKeys() *KeybindRegistry {
	reg := NewKeybindRegistry()
	browse := []AppMode{ModeBrowse}
	quit := msgCmd(QuitMsg{})

	reg.BindWithDesc("q", quit, "Quit")
	reg.BindWithDesc("ctrl+c", quit, "Quit")
	reg.BindWithDesc("SPC q", quit, "Quit")
	reg.BindWithDescForMode("?", msgCmd(ToggleHelpMsg{}), "Toggle help", browse)

	reg.BindWithDescForMode("tab", msgCmd(StepSectionMsg{Delta: 1}), "Next section", browse)
	reg.BindWithDescForMode("shift+tab", msgCmd(StepSectionMsg{Delta: -1}), "Previous section", browse)
	reg.BindWithDescForMode("g", msgCmd(ScrollEdgeMsg{}), "Top", browse)
	reg.BindWithDescForMode("G", msgCmd(ScrollEdgeMsg{Bottom: true}), "Bottom", browse)
	for _, s := range Sections {
		reg.BindWithDescForMode("SPC g "+s.Key, msgCmd(ScrollToSectionMsg{Name: s.Name}), s.Label, browse)
	}

	reg.BindWithDescForMode("[", msgCmd(CarouselStepMsg{Delta: -1}), "Previous photo", browse)
	reg.BindWithDescForMode("]", msgCmd(CarouselStepMsg{Delta: 1}), "Next photo", browse)
	for i := 1; i <= 9; i++ {
		desc := ""
		if i == 1 {
			desc = "Photo 1-9"
		}
		reg.BindWithDescForMode(fmt.Sprint(i), msgCmd(CarouselJumpMsg{Index: i - 1}), desc, browse)
	}
	reg.BindWithDescForMode("enter", msgCmd(ActivateMsg{}), "Open", browse)

	reg.BindWithDescForMode("n", msgCmd(SelectItemMsg{Delta: 1}), "Next project or job", browse)
	reg.BindWithDescForMode("p", msgCmd(SelectItemMsg{Delta: -1}), "Previous project or job", browse)
	reg.BindWithDescForMode("i", msgCmd(OpenProjectMediaMsg{}), "Project images", browse)
	reg.BindWithDescForMode("v", msgCmd(OpenProjectMediaMsg{Video: true}), "Project video", browse)
	reg.BindWithDescForMode("o", msgCmd(OpenProjectRepoMsg{}), "Project repo", browse)

	prof := m.Portfolio.Profile
	contact := []struct {
		key, ref, desc string
	}{
		{"g", prof.Links.GitHub, "GitHub"},
		{"l", prof.Links.LinkedIn, "LinkedIn"},
		{"m", mailtoLink(prof.Links.Email), "Mail"},
		{"p", telLink(prof.Links.Phone), "Phone"},
		{"d", prof.CV, "CV"},
	}
	for _, c := range contact {
		if c.ref == "" {
			continue
		}
		reg.BindWithDescForMode("SPC c "+c.key, msgCmd(widget.OpenLinkMsg{URL: c.ref}), c.desc, browse)
	}
	return reg
}
