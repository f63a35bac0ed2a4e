package widget

import (
	"path"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DefaultCarouselInterval is how long a photo stays up without interaction.
const DefaultCarouselInterval = 15 * time.Second

// Photo is one carousel slide.
type Photo struct {
	Src     string
	Alt     string
	Caption string
}

// Carousel is an auto-advancing photo slider.
//
// Every manual move (Next, Prev, JumpTo) rearms the auto-advance timer, so the
// next automatic move is always a full Interval after the last interaction.
type Carousel struct {
	Styles   Styles
	Interval time.Duration
	Width    int

	photos  []Photo
	index   int
	running bool
	sched   Schedule
}

// NewCarousel returns a stopped carousel on the first photo.
func NewCarousel(photos []Photo, interval time.Duration) *Carousel {
	if interval <= 0 {
		interval = DefaultCarouselInterval
	}
	return &Carousel{
		Styles:   DefaultStyles(),
		Interval: interval,
		photos:   append([]Photo(nil), photos...),
		sched:    NewSchedule(),
	}
}

// Start enables auto-advance.
func (c *Carousel) Start() tea.Cmd {
	c.running = true
	return c.rearm()
}

// Stop disables auto-advance and drops the pending tick.
func (c *Carousel) Stop() {
	c.running = false
	c.sched.Stop()
}

// Running reports whether auto-advance is enabled.
func (c *Carousel) Running() bool {
	return c.running
}

// Len returns the number of photos.
func (c *Carousel) Len() int {
	return len(c.photos)
}

// Index returns the current photo index.
func (c *Carousel) Index() int {
	return c.index
}

// Current returns the photo on display.
func (c *Carousel) Current() (Photo, bool) {
	if len(c.photos) == 0 {
		return Photo{}, false
	}
	return c.photos[c.index], true
}

// Next shows the following photo, wrapping to the first.
func (c *Carousel) Next() tea.Cmd {
	if len(c.photos) == 0 {
		return nil
	}
	c.index = wrap(c.index+1, len(c.photos))
	return c.rearm()
}

// Prev shows the preceding photo, wrapping to the last.
func (c *Carousel) Prev() tea.Cmd {
	n := len(c.photos)
	if n == 0 {
		return nil
	}
	c.index = wrap(c.index-1+n, n)
	return c.rearm()
}

// JumpTo shows photo i. Out of range indexes are ignored.
func (c *Carousel) JumpTo(i int) tea.Cmd {
	if i < 0 || i >= len(c.photos) {
		return nil
	}
	c.index = i
	return c.rearm()
}

// OpenCurrent asks the host to open every photo in the lightbox, starting at
// the one on display, so both widgets walk the same order.
func (c *Carousel) OpenCurrent() tea.Cmd {
	if len(c.photos) == 0 {
		return nil
	}
	srcs := make([]string, len(c.photos))
	for i, p := range c.photos {
		srcs[i] = p.Src
	}
	msg := OpenMediaMsg{Set: ImageSet(c.photos[c.index].Alt, srcs...), Index: c.index}
	return func() tea.Msg { return msg }
}

// Update advances on the carousel's own tick and rearms.
func (c *Carousel) Update(msg tea.Msg) tea.Cmd {
	if !c.sched.Fire(msg) {
		return nil
	}
	if len(c.photos) == 0 {
		return nil
	}
	c.index = wrap(c.index+1, len(c.photos))
	return c.rearm()
}

func (c *Carousel) rearm() tea.Cmd {
	if !c.running || len(c.photos) == 0 {
		return nil
	}
	return c.sched.Restart(c.Interval)
}

// View renders the current slide, its caption, the controls and the dots.
func (c *Carousel) View() string {
	if len(c.photos) == 0 {
		return c.Styles.Hint.Render("No photos yet.")
	}
	prev, slide, next := c.parts()
	row := lipgloss.JoinHorizontal(lipgloss.Center, prev, slide, next)

	dots := make([]string, len(c.photos))
	for i := range c.photos {
		if i == c.index {
			dots[i] = c.Styles.DotActive.Render("●")
		} else {
			dots[i] = c.Styles.Dot.Render("○")
		}
	}
	indicator := lipgloss.PlaceHorizontal(lipgloss.Width(row), lipgloss.Center, strings.Join(dots, " "))
	return lipgloss.JoinVertical(lipgloss.Left, row, indicator)
}

// parts renders the three columns of the slide row.
func (c *Carousel) parts() (prev, slide, next string) {
	p := c.photos[c.index]
	width := c.Width
	if width <= 0 {
		width = 48
	}
	inner := max(width-8, 12)

	art := lipgloss.JoinVertical(lipgloss.Center, "", "▣", "", c.Styles.Hint.Render(path.Base(p.Src)), "")
	caption := p.Caption
	if caption == "" {
		caption = p.Alt
	}
	slide = lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.PlaceHorizontal(inner, lipgloss.Center, art),
		c.Styles.Caption.Width(inner).Render(caption),
	)
	return c.Styles.Control.Render("‹ "), c.Styles.Frame.Padding(0).Render(slide), c.Styles.Control.Render(" ›")
}

// CarouselHit names the part of the carousel under a cell.
type CarouselHit int

const (
	HitNone CarouselHit = iota
	HitPrev
	HitSlide
	HitNext
	HitDot
)

// HitTest maps the cell (x, y), relative to the top-left corner of View, to
// the control under it. For HitDot the photo index is returned as well.
func (c *Carousel) HitTest(x, y int) (CarouselHit, int) {
	if len(c.photos) == 0 || x < 0 || y < 0 {
		return HitNone, 0
	}
	prev, slide, next := c.parts()
	left, mid := lipgloss.Width(prev), lipgloss.Width(slide)
	rowW := left + mid + lipgloss.Width(next)
	rowH := lipgloss.Height(slide)

	switch {
	case y < rowH:
		switch {
		case x < left:
			return HitPrev, 0
		case x < left+mid:
			return HitSlide, c.index
		case x < rowW:
			return HitNext, 0
		}
	case y == rowH:
		// Dots are one cell apart and centred under the row.
		dotsW := 2*len(c.photos) - 1
		i := x - (rowW-dotsW)/2
		if i >= 0 && i < dotsW && i%2 == 0 {
			return HitDot, i / 2
		}
	}
	return HitNone, 0
}
