package ui

import (
	"fmt"
	"log"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/content"
	"folio/internal/trace"
	"folio/internal/widget"
)

func (m *AppModel) record(t trace.EventType, attrs map[string]string) {
	if m.Recorder == nil {
		return
	}
	m.Recorder.Record(trace.NewEvent(t, attrs))
}

func (m *AppModel) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
}

func (m *AppModel) handleResize(msg tea.WindowSizeMsg) tea.Cmd {
	m.width, m.height = msg.Width, msg.Height
	m.Modal.SetSize(msg.Width, msg.Height)
	m.Page.Width = msg.Width
	m.Page.Height = max(1, msg.Height-headerHeight-footerHeight)
	m.Carousel.Width = min(max(msg.Width-8, 24), 72)
	m.layout()
	if !m.mounted {
		m.mounted = true
		return m.Tracker.Mount(m.Page.YOffset)
	}
	return m.Tracker.Scroll(m.Page.YOffset)
}

// handleTick routes widget timer messages. Each widget ignores ticks that
// are not its own.
func (m *AppModel) handleTick(msg tea.Msg) tea.Cmd {
	cursor, photo := m.Revealer.Cursor(), m.Carousel.Index()
	cmds := []tea.Cmd{
		m.Revealer.Update(msg),
		m.Carousel.Update(msg),
		m.Tracker.Update(msg),
	}
	if m.Revealer.Cursor() != cursor || m.Carousel.Index() != photo {
		m.layout()
	}
	return tea.Batch(cmds...)
}

func (m *AppModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.Modal.IsOpen() {
		if msg.String() == "ctrl+c" {
			return msgCmd(QuitMsg{})
		}
		return m.Modal.Update(msg)
	}
	if m.KeyHandler != nil {
		if consumed, cmd := m.KeyHandler.Handle(msg); consumed {
			return cmd
		}
	}
	if msg.String() == "esc" && m.showHelp {
		m.showHelp = false
		return nil
	}
	return m.scrollPage(msg)
}

func (m *AppModel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.Modal.IsOpen() {
		return m.Modal.Update(msg)
	}
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		if cmd, ok := m.clickPage(msg.X, msg.Y); ok {
			return cmd
		}
	}
	return m.scrollPage(msg)
}

// clickPage handles a left press at screen cell (x, y). Screen row y shows
// page line YOffset+y-headerHeight.
func (m *AppModel) clickPage(x, y int) (tea.Cmd, bool) {
	if y < headerHeight || y >= headerHeight+m.Page.Height {
		return nil, false
	}
	line := m.Page.YOffset + y - headerHeight
	for _, s := range Sections {
		e, ok := m.Tracker.Extent(s.Name)
		if !ok || !e.Contains(line) {
			continue
		}
		if s.Name == "gallery" {
			return m.clickCarousel(x-sectionPadX, line-e.Top-bodyTop(s))
		}
		return nil, false
	}
	return nil, false
}

func (m *AppModel) clickCarousel(x, y int) (tea.Cmd, bool) {
	hit, i := m.Carousel.HitTest(x, y)
	switch hit {
	case widget.HitPrev:
		return m.stepCarousel(-1), true
	case widget.HitNext:
		return m.stepCarousel(1), true
	case widget.HitSlide:
		return m.Carousel.OpenCurrent(), true
	case widget.HitDot:
		return m.jumpCarousel(i), true
	}
	return nil, false
}

// scrollPage lets the viewport handle msg and reports the new offset to the
// tracker.
func (m *AppModel) scrollPage(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.Page, cmd = m.Page.Update(msg)
	return tea.Batch(cmd, m.Tracker.Scroll(m.Page.YOffset))
}

func (m *AppModel) handleOpenMedia(msg widget.OpenMediaMsg) {
	m.Modal.Open(msg.Set, msg.Index)
	if !m.Modal.IsOpen() {
		return
	}
	m.Mode = ModeLightbox
	m.KeyHandler.LeaderWaiting = false
	m.KeyHandler.Buffer = nil
	m.record(trace.EventModalOpen, map[string]string{
		"label": msg.Set.Label,
		"index": strconv.Itoa(m.Modal.Index()),
	})
}

func (m *AppModel) handleCloseMedia() {
	if !m.Modal.IsOpen() {
		return
	}
	label := m.Modal.Set().Label
	m.Modal.Close()
	m.Mode = ModeBrowse
	m.record(trace.EventModalClose, map[string]string{"label": label})
}

func (m *AppModel) handleSectionChanged(msg widget.SectionChangedMsg) {
	if msg.To == m.active {
		return
	}
	m.active = msg.To
	m.record(trace.EventSectionChange, map[string]string{"from": msg.From, "to": msg.To})
}

func (m *AppModel) scrollToSection(name string) tea.Cmd {
	e, ok := m.Tracker.Extent(name)
	if !ok {
		return nil
	}
	m.Page.SetYOffset(e.Top)
	return m.Tracker.Scroll(m.Page.YOffset)
}

// stepSection moves relative to the section at the current offset. The
// tracker's active section can lag behind while its throttle is pending.
func (m *AppModel) stepSection(delta int) tea.Cmd {
	cur, ok := m.Tracker.At(m.Page.YOffset)
	if !ok {
		cur = m.active
	}
	i := sectionIndex(cur)
	if i < 0 {
		i = 0
	}
	i = min(max(i+delta, 0), len(Sections)-1)
	return m.scrollToSection(Sections[i].Name)
}

func (m *AppModel) scrollToEdge(bottom bool) tea.Cmd {
	if bottom {
		m.Page.GotoBottom()
	} else {
		m.Page.GotoTop()
	}
	return m.Tracker.Scroll(m.Page.YOffset)
}

func (m *AppModel) stepCarousel(delta int) tea.Cmd {
	var cmd tea.Cmd
	if delta < 0 {
		cmd = m.Carousel.Prev()
	} else {
		cmd = m.Carousel.Next()
	}
	m.afterCarouselMove()
	return cmd
}

func (m *AppModel) jumpCarousel(i int) tea.Cmd {
	if i < 0 || i >= m.Carousel.Len() {
		return nil
	}
	cmd := m.Carousel.JumpTo(i)
	m.afterCarouselMove()
	return cmd
}

func (m *AppModel) afterCarouselMove() {
	if m.Carousel.Len() == 0 {
		return
	}
	m.record(trace.EventCarouselMove, map[string]string{"carousel.index": strconv.Itoa(m.Carousel.Index())})
	m.layout()
}

func (m *AppModel) selectedProject() content.Project {
	if len(m.Portfolio.Projects) == 0 {
		return content.Project{}
	}
	return m.Portfolio.Projects[m.project]
}

func cycle(i, delta, n int) int {
	return ((i+delta)%n + n) % n
}

func (m *AppModel) selectItem(delta int) {
	if m.active == "experience" {
		m.selectJob(delta)
		return
	}
	m.selectProject(delta)
}

func (m *AppModel) selectProject(delta int) {
	n := len(m.Portfolio.Projects)
	if n == 0 {
		return
	}
	m.project = cycle(m.project, delta, n)
	m.layout()
}

func (m *AppModel) selectJob(delta int) {
	n := len(m.Portfolio.Experience)
	if n == 0 {
		return
	}
	m.job = cycle(m.job, delta, n)
	m.layout()
}

func (m *AppModel) openJobMedia() tea.Cmd {
	if len(m.Portfolio.Experience) == 0 {
		return nil
	}
	e := m.Portfolio.Experience[m.job]
	set, ok := e.ImageSet()
	if !ok {
		m.setStatus(e.Company+" has no photos", false)
		return nil
	}
	return msgCmd(widget.OpenMediaMsg{Set: set})
}

func (m *AppModel) openProjectMedia(video bool) tea.Cmd {
	p := m.selectedProject()
	var (
		set  widget.MediaSet
		ok   bool
		what = "images"
	)
	if video {
		set, ok = p.VideoSet()
		what = "demo video"
	} else {
		set, ok = p.ImageSet()
	}
	if !ok {
		m.setStatus(fmt.Sprintf("%s has no %s", p.Title, what), false)
		return nil
	}
	return msgCmd(widget.OpenMediaMsg{Set: set})
}

// activate opens the media behind the active section's current selection.
func (m *AppModel) activate() tea.Cmd {
	switch m.active {
	case "gallery":
		return m.Carousel.OpenCurrent()
	case "experience":
		return m.openJobMedia()
	case "projects":
		sets := m.selectedProject().MediaSets()
		if len(sets) == 0 {
			return nil
		}
		return msgCmd(widget.OpenMediaMsg{Set: sets[0]})
	}
	return nil
}

func (m *AppModel) openLink(ref string) tea.Cmd {
	if ref == "" {
		m.setStatus(ErrNoLink.Error(), true)
		return nil
	}
	opener := m.Opener
	return func() tea.Msg {
		return linkOpenedMsg{URL: ref, Err: opener.Open(ref)}
	}
}

func (m *AppModel) handleLinkOpened(msg linkOpenedMsg) {
	if msg.Err != nil {
		log.Printf("open link %s: %v", msg.URL, msg.Err)
		m.setStatus(fmt.Sprintf("could not open %s: %v", msg.URL, msg.Err), true)
		return
	}
	m.setStatus("opened "+msg.URL, false)
	m.record(trace.EventLinkOpen, map[string]string{"url": msg.URL})
}

// teardown stops every widget timer and detaches the tracker.
func (m *AppModel) teardown() {
	m.Revealer.Stop()
	m.Carousel.Stop()
	m.Tracker.Stop()
	m.Modal.Close()
	m.Mode = ModeBrowse
	m.renders.Flush()
}
