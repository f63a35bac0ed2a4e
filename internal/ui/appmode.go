package ui

// AppMode represents the top-level application mode.
type AppMode int

const (
	ModeBrowse AppMode = iota
	ModeLightbox
)

func (m AppMode) String() string {
	switch m {
	case ModeBrowse:
		return "Browse"
	case ModeLightbox:
		return "Lightbox"
	default:
		return "Unknown"
	}
}
