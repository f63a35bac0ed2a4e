package widget

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultRevealDelay is the per-character delay of the hero tagline.
const DefaultRevealDelay = 30 * time.Millisecond

// Revealer types out a fixed string one rune per tick.
type Revealer struct {
	Styles Styles
	// CursorGlyph trails the revealed prefix. Empty disables it.
	CursorGlyph string

	text   []rune
	delay  time.Duration
	cursor int
	sched  Schedule
}

// NewRevealer returns an idle revealer. Call Start to begin.
func NewRevealer(text string, delay time.Duration) *Revealer {
	return &Revealer{
		Styles:      DefaultStyles(),
		CursorGlyph: "|",
		text:        []rune(text),
		delay:       delay,
		sched:       NewSchedule(),
	}
}

// Start rewinds to an empty prefix and schedules the first rune. An empty
// text is complete immediately and schedules nothing.
func (r *Revealer) Start() tea.Cmd {
	r.cursor = 0
	return r.next()
}

// Reset replaces the text and delay and starts over. Ticks armed for the
// previous text are dropped.
func (r *Revealer) Reset(text string, delay time.Duration) tea.Cmd {
	r.text = []rune(text)
	r.delay = delay
	return r.Start()
}

// Stop drops any pending tick. The shown prefix is kept.
func (r *Revealer) Stop() {
	r.sched.Stop()
}

// Update advances by one rune on the revealer's own tick.
func (r *Revealer) Update(msg tea.Msg) tea.Cmd {
	if !r.sched.Fire(msg) {
		return nil
	}
	if r.cursor < len(r.text) {
		r.cursor++
	}
	return r.next()
}

func (r *Revealer) next() tea.Cmd {
	if r.cursor >= len(r.text) {
		r.sched.Stop()
		return nil
	}
	return r.sched.Restart(r.delay)
}

// Shown returns the revealed prefix.
func (r *Revealer) Shown() string {
	return string(r.text[:r.cursor])
}

// Text returns the full target text.
func (r *Revealer) Text() string {
	return string(r.text)
}

// Cursor returns the number of revealed runes.
func (r *Revealer) Cursor() int {
	return r.cursor
}

// Done reports whether the whole text is shown.
func (r *Revealer) Done() bool {
	return r.cursor >= len(r.text)
}

// View renders the prefix followed by the cursor glyph.
func (r *Revealer) View() string {
	out := r.Styles.Text.Render(r.Shown())
	if r.CursorGlyph != "" {
		out += r.Styles.Cursor.Render(r.CursorGlyph)
	}
	return out
}
