package widget

import (
	"fmt"
	"path"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Rect is a screen rectangle in cells.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Modal is the full-screen lightbox. It renders nothing while closed.
//
// The host owns whether the modal is open: close requests (esc, the close
// control, a click on the backdrop) are emitted as CloseMediaMsg and the
// host answers by calling Close.
type Modal struct {
	Styles Styles

	set     MediaSet
	index   int
	open    bool
	playing bool
	width   int
	height  int
}

// NewModal returns a closed modal.
func NewModal() *Modal {
	return &Modal{Styles: DefaultStyles()}
}

// Open shows set starting at index (taken modulo the set length). An empty
// set leaves the modal closed.
func (m *Modal) Open(set MediaSet, index int) {
	if set.Empty() {
		m.Close()
		return
	}
	m.set = set
	m.index = wrap(index, set.Len())
	m.open = true
	m.playing = set.IsVideo()
}

// Close hides the modal and forgets its set.
func (m *Modal) Close() {
	m.open = false
	m.playing = false
	m.set = MediaSet{}
	m.index = 0
}

// IsOpen reports whether the modal is showing.
func (m *Modal) IsOpen() bool {
	return m.open
}

// Set returns the media set on display.
func (m *Modal) Set() MediaSet {
	return m.set
}

// Index returns the current image index.
func (m *Modal) Index() int {
	return m.index
}

// Playing reports whether the video is playing.
func (m *Modal) Playing() bool {
	return m.playing
}

// Current returns the reference on display, or "" when closed.
func (m *Modal) Current() string {
	if !m.open {
		return ""
	}
	if m.set.IsVideo() {
		return m.set.Video
	}
	return m.set.Images[wrap(m.index, len(m.set.Images))]
}

// Next moves to the following image, wrapping to the first.
func (m *Modal) Next() {
	if !m.open || m.set.IsVideo() {
		return
	}
	n := len(m.set.Images)
	m.index = wrap(m.index+1, n)
}

// Prev moves to the preceding image, wrapping to the last.
func (m *Modal) Prev() {
	if !m.open || m.set.IsVideo() {
		return
	}
	n := len(m.set.Images)
	m.index = wrap(m.index-1+n, n)
}

// SetSize sets the overlay size, normally the whole terminal.
func (m *Modal) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles keys and mouse clicks while open.
func (m *Modal) Update(msg tea.Msg) tea.Cmd {
	if !m.open {
		return nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q", "x":
			return closeCmd
		case "right", "l", "n":
			m.Next()
		case "left", "h", "p":
			m.Prev()
		case " ", "enter":
			if m.set.IsVideo() {
				m.playing = !m.playing
			}
		case "o":
			ref := m.Current()
			return func() tea.Msg { return OpenLinkMsg{URL: ref} }
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			return m.Click(msg.X, msg.Y)
		}
	}
	return nil
}

// Click handles a left click at screen cell (x, y). Clicks on the content box
// are consumed; clicks on the backdrop close the modal.
func (m *Modal) Click(x, y int) tea.Cmd {
	if !m.open || m.width <= 0 || m.height <= 0 {
		return nil
	}
	if m.ContentRect().Contains(x, y) {
		return nil
	}
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return nil
	}
	return closeCmd
}

// ContentRect returns where the content box sits inside the overlay.
func (m *Modal) ContentRect() Rect {
	box := m.box()
	w, h := lipgloss.Width(box), lipgloss.Height(box)
	return Rect{
		X: max(0, (m.width-w)/2),
		Y: max(0, (m.height-h)/2),
		W: w,
		H: h,
	}
}

// View renders the overlay at the full modal size.
func (m *Modal) View() string {
	if !m.open {
		return ""
	}
	box := m.box()
	if m.width <= 0 || m.height <= 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box,
		lipgloss.WithWhitespaceBackground(m.Styles.Backdrop.GetBackground()))
}

func (m *Modal) box() string {
	contentWidth := min(max(m.width*3/4, 30), 96)

	var b strings.Builder
	title := m.set.Label
	if title == "" {
		title = "Media"
	}
	if m.set.IsVideo() {
		b.WriteString(m.Styles.Title.Render(title + " demo"))
		b.WriteString("\n\n")
		state := "▶ playing"
		if !m.playing {
			state = "⏸ paused"
		}
		b.WriteString(m.Styles.Frame.Width(contentWidth).Render(
			lipgloss.JoinVertical(lipgloss.Center, state, "", m.Styles.Hint.Render(m.set.Video))))
		b.WriteString("\n")
		b.WriteString(m.Styles.Hint.Render("space: play/pause  o: open in player  esc: close"))
		return m.Styles.Box.Render(b.String())
	}

	n := len(m.set.Images)
	ref := m.Current()
	b.WriteString(m.Styles.Title.Render(fmt.Sprintf("%s %d", title, m.index+1)))
	b.WriteString(m.Styles.Hint.Render(fmt.Sprintf("  %d/%d", m.index+1, n)))
	b.WriteString("\n\n")
	frame := lipgloss.JoinVertical(lipgloss.Center, "▣", "", path.Base(ref))
	row := lipgloss.JoinHorizontal(lipgloss.Center,
		m.Styles.Control.Render("‹ "),
		m.Styles.Frame.Width(contentWidth).Align(lipgloss.Center).Render(frame),
		m.Styles.Control.Render(" ›"),
	)
	b.WriteString(row)
	b.WriteString("\n")
	b.WriteString(m.Styles.Hint.Render("←/h: prev  →/l: next  o: open  esc: close"))
	return m.Styles.Box.Render(b.String())
}

func closeCmd() tea.Msg {
	return CloseMediaMsg{}
}
