// Package ui is the portfolio page: a Bubble Tea host that lays the
// sections out in a scrolling viewport and wires the widgets to it.
//
// The host owns the two pieces of shared state, the open lightbox and the
// active section. Widgets never touch them directly; they emit messages
// (widget.OpenMediaMsg, widget.CloseMediaMsg, widget.SectionChangedMsg,
// widget.OpenLinkMsg) and AppModel applies them.
package ui
