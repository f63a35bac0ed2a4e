package trace

import (
	"testing"
	"time"
)

func TestNewEvent_StampsTime(t *testing.T) {
	before := time.Now()
	ev := NewEvent(EventCarouselMove, map[string]string{"carousel.index": "2"})
	if ev.Type != EventCarouselMove {
		t.Errorf("Type = %q, want %q", ev.Type, EventCarouselMove)
	}
	if ev.Timestamp.Before(before) {
		t.Errorf("Timestamp %v is before %v", ev.Timestamp, before)
	}
	if ev.Attributes["carousel.index"] != "2" {
		t.Errorf("Attributes = %v", ev.Attributes)
	}
}
