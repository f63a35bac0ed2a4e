package trace

import "time"

// EventType identifies what happened during a browsing session.
type EventType string

const (
	EventSectionChange EventType = "section_change" // Scroll-spy picked a new section
	EventModalOpen     EventType = "modal_open"     // Lightbox opened
	EventModalClose    EventType = "modal_close"    // Lightbox closed
	EventCarouselMove  EventType = "carousel_move"  // Manual carousel navigation
	EventLinkOpen      EventType = "link_open"      // External link handed to the opener
)

// Event is one recorded interaction.
type Event struct {
	Type       EventType
	Timestamp  time.Time
	Attributes map[string]string
}

// NewEvent stamps an event with the current time.
func NewEvent(t EventType, attrs map[string]string) Event {
	return Event{Type: t, Timestamp: time.Now(), Attributes: attrs}
}
