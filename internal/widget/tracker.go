package widget

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Extent is the vertical span of a section in page coordinates: [Top, Top+Height).
type Extent struct {
	Top    int
	Height int
}

// Contains reports whether pos falls inside the extent.
func (e Extent) Contains(pos int) bool {
	return pos >= e.Top && pos < e.Top+e.Height
}

// Tracker decides which named section of a scrolling page is active.
//
// Sections are checked in registration order and the first one whose extent
// contains scroll+Lookahead wins. Sections without geometry are skipped. When
// nothing matches the previous answer is kept.
type Tracker struct {
	// Lookahead is added to the scroll offset before matching, so a section
	// becomes active slightly before its first line reaches the top.
	Lookahead int
	// Throttle coalesces bursts of Scroll calls into one observation per
	// window. Zero observes on every call.
	Throttle time.Duration

	names   []string
	extents map[string]Extent
	active  string
	latest  int
	sched   Schedule
	stopped bool
}

// NewTracker registers names in order. The first name is active until an
// observation says otherwise.
func NewTracker(names []string, lookahead int) *Tracker {
	t := &Tracker{
		Lookahead: lookahead,
		names:     append([]string(nil), names...),
		extents:   make(map[string]Extent, len(names)),
		sched:     NewSchedule(),
	}
	if len(names) > 0 {
		t.active = names[0]
	}
	return t
}

// Names returns the registered section names in order.
func (t *Tracker) Names() []string {
	return append([]string(nil), t.names...)
}

// Measure records the geometry of a registered section.
func (t *Tracker) Measure(name string, e Extent) {
	t.extents[name] = e
}

// Extent returns the recorded geometry of name, if any.
func (t *Tracker) Extent(name string) (Extent, bool) {
	e, ok := t.extents[name]
	return e, ok
}

// Forget drops all geometry, e.g. before a relayout.
func (t *Tracker) Forget() {
	clear(t.extents)
}

// Active returns the active section name.
func (t *Tracker) Active() string {
	return t.active
}

// At returns the section that would be active at scroll, without changing
// the tracker state.
func (t *Tracker) At(scroll int) (string, bool) {
	pos := scroll + t.Lookahead
	for _, name := range t.names {
		if e, ok := t.extents[name]; ok && e.Contains(pos) {
			return name, true
		}
	}
	return "", false
}

// Observe runs the selection for scroll and reports the active section and
// whether it changed.
func (t *Tracker) Observe(scroll int) (string, bool) {
	name, ok := t.At(scroll)
	if !ok || name == t.active {
		return t.active, false
	}
	t.active = name
	return name, true
}

// Mount performs the initial observation at offset.
func (t *Tracker) Mount(offset int) tea.Cmd {
	t.stopped = false
	t.latest = offset
	return t.observe()
}

// Scroll reports a new scroll offset. Without a throttle it observes at once;
// otherwise the first call in a window arms a flush and later calls only
// update the offset the flush will use.
func (t *Tracker) Scroll(offset int) tea.Cmd {
	if t.stopped {
		return nil
	}
	t.latest = offset
	if t.Throttle <= 0 {
		return t.observe()
	}
	if t.sched.Active() {
		return nil
	}
	return t.sched.Restart(t.Throttle)
}

// Update handles the throttle flush.
func (t *Tracker) Update(msg tea.Msg) tea.Cmd {
	if t.stopped || !t.sched.Fire(msg) {
		return nil
	}
	return t.observe()
}

// Stop detaches the tracker from scroll events.
func (t *Tracker) Stop() {
	t.stopped = true
	t.sched.Stop()
}

func (t *Tracker) observe() tea.Cmd {
	from := t.active
	to, changed := t.Observe(t.latest)
	if !changed {
		return nil
	}
	return func() tea.Msg {
		return SectionChangedMsg{From: from, To: to}
	}
}
