package widget

// OpenMediaMsg asks the host to open the lightbox on Set at Index.
type OpenMediaMsg struct {
	Set   MediaSet
	Index int
}

// CloseMediaMsg asks the host to close the lightbox.
type CloseMediaMsg struct{}

// SectionChangedMsg is emitted by the Tracker when the active section changes.
type SectionChangedMsg struct {
	From string
	To   string
}

// OpenLinkMsg asks the host to open an external reference (URL, mailto:, tel:).
type OpenLinkMsg struct {
	URL string
}
