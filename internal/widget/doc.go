// Package widget holds the interactive pieces of the portfolio page: the
// typewriter Revealer, the scroll-spy Tracker, the lightbox Modal and the
// photo Carousel.
//
// Widgets never talk to each other. They report upward with messages
// (OpenMediaMsg, CloseMediaMsg, SectionChangedMsg, OpenLinkMsg) and the host
// model decides what changes. Timers are Schedules; a widget that is stopped
// ignores every tick it armed before.
package widget
