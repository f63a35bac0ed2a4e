package widget

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var lastID atomic.Int64

func nextID() int {
	return int(lastID.Add(1))
}

// tickMsg is delivered when a Schedule fires. ID identifies the owning
// schedule and Tag the generation it was armed in.
type tickMsg struct {
	ID  int
	Tag int
	At  time.Time
}

// Schedule is a restartable one-shot timer owned by a single widget.
//
// Bubble Tea commands cannot be withdrawn once returned, so a Schedule never
// cancels the underlying tea.Tick. Instead Restart and Stop bump the
// generation tag and Fire rejects any tick that was armed under an older tag.
// Because Update runs on the program's event loop, cancel-then-rearm is a
// single step and at most one tick per schedule is ever live.
type Schedule struct {
	id     int
	tag    int
	active bool
}

// NewSchedule returns an idle schedule with a process-unique id.
func NewSchedule() Schedule {
	return Schedule{id: nextID()}
}

// Restart invalidates any pending tick and arms a new one after d.
func (s *Schedule) Restart(d time.Duration) tea.Cmd {
	s.tag++
	s.active = true
	id, tag := s.id, s.tag
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg{ID: id, Tag: tag, At: t}
	})
}

// Stop invalidates any pending tick.
func (s *Schedule) Stop() {
	s.tag++
	s.active = false
}

// Active reports whether a tick is armed.
func (s *Schedule) Active() bool {
	return s.active
}

// Fire reports whether msg is the live tick of this schedule. A live tick is
// consumed: the schedule goes idle until the next Restart.
func (s *Schedule) Fire(msg tea.Msg) bool {
	t, ok := msg.(tickMsg)
	if !ok || !s.active || t.ID != s.id || t.Tag != s.tag {
		return false
	}
	s.active = false
	return true
}
