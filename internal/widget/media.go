package widget

// MediaSet is what the lightbox shows in one session: an ordered run of
// images, or a single video. Images win if both are set.
type MediaSet struct {
	Label  string
	Images []string
	Video  string
}

// ImageSet builds an image MediaSet.
func ImageSet(label string, images ...string) MediaSet {
	return MediaSet{Label: label, Images: images}
}

// VideoSet builds a single-video MediaSet.
func VideoSet(label, src string) MediaSet {
	return MediaSet{Label: label, Video: src}
}

// IsVideo reports whether the set plays a video instead of showing images.
func (s MediaSet) IsVideo() bool {
	return len(s.Images) == 0 && s.Video != ""
}

// Empty reports whether the set has nothing to show.
func (s MediaSet) Empty() bool {
	return len(s.Images) == 0 && s.Video == ""
}

// Len returns the number of navigable entries (1 for a video).
func (s MediaSet) Len() int {
	if s.IsVideo() {
		return 1
	}
	return len(s.Images)
}

// wrap maps i onto [0, n). Returns 0 when n <= 0.
func wrap(i, n int) int {
	if n <= 0 {
		return 0
	}
	return ((i % n) + n) % n
}
