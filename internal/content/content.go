// Package content defines the portfolio fixtures (profile, photos, skills,
// experience, projects) and loads them from YAML.
package content

import "folio/internal/widget"

// Portfolio is everything the page shows.
type Portfolio struct {
	Meta       Meta            `yaml:"meta"`
	Profile    Profile         `yaml:"profile"`
	Photos     []Photo         `yaml:"photos"`
	Skills     []SkillCategory `yaml:"skills"`
	Experience []Experience    `yaml:"experience"`
	Projects   []Project       `yaml:"projects"`
}

// Meta is the page-level metadata.
type Meta struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	URL         string `yaml:"url"`
}

// Profile is the hero, about and contact data.
type Profile struct {
	Name     string `yaml:"name"`
	Initials string `yaml:"initials,omitempty"`
	Role     string `yaml:"role"`
	Tagline  string `yaml:"tagline"`
	Location string `yaml:"location"`
	Photo    string `yaml:"photo"`
	About    string `yaml:"about"`
	Links    Links  `yaml:"links"`
	// CV is a static asset reference; it is linked, never generated.
	CV string `yaml:"cv"`
}

// Links are the external contact references.
type Links struct {
	GitHub   string `yaml:"github"`
	LinkedIn string `yaml:"linkedin"`
	Email    string `yaml:"email"`
	Phone    string `yaml:"phone"`
}

// Photo is a personal photo for the gallery carousel.
type Photo struct {
	Src     string `yaml:"src"`
	Alt     string `yaml:"alt"`
	Caption string `yaml:"caption"`
}

// SkillCategory groups skills under a heading.
type SkillCategory struct {
	Title  string  `yaml:"title"`
	Skills []Skill `yaml:"skills"`
}

// Skill is one named skill.
type Skill struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// Experience is one work history entry.
type Experience struct {
	Company          string   `yaml:"company"`
	Position         string   `yaml:"position"`
	Period           string   `yaml:"period"`
	Location         string   `yaml:"location"`
	Logo             string   `yaml:"logo,omitempty"`
	Images           []string `yaml:"images,omitempty"`
	Responsibilities []string `yaml:"responsibilities"`
}

// Project is one showcased project.
type Project struct {
	Title       string   `yaml:"title"`
	Date        string   `yaml:"date"`
	Image       string   `yaml:"image,omitempty"`
	DemoImages  []string `yaml:"demo_images,omitempty"`
	DemoVideo   string   `yaml:"demo_video,omitempty"`
	GitHubURL   string   `yaml:"github_url,omitempty"`
	Description string   `yaml:"description"`
	// DetailedDescription is Markdown.
	DetailedDescription string            `yaml:"detailed_description,omitempty"`
	Technologies        []string          `yaml:"technologies"`
	Highlights          []string          `yaml:"highlights,omitempty"`
	Metrics             map[string]string `yaml:"metrics,omitempty"`
}

// ImageSet returns the project's screenshots for the lightbox: the cover
// image followed by the demo images.
func (p Project) ImageSet() (widget.MediaSet, bool) {
	var images []string
	if p.Image != "" {
		images = append(images, p.Image)
	}
	images = append(images, p.DemoImages...)
	if len(images) == 0 {
		return widget.MediaSet{}, false
	}
	return widget.ImageSet(p.Title, images...), true
}

// VideoSet returns the demo video for the lightbox, if the project has one.
func (p Project) VideoSet() (widget.MediaSet, bool) {
	if p.DemoVideo == "" {
		return widget.MediaSet{}, false
	}
	return widget.VideoSet(p.Title, p.DemoVideo), true
}

// MediaSets returns every lightbox set the project has: images first, then
// the video.
func (p Project) MediaSets() []widget.MediaSet {
	var sets []widget.MediaSet
	if set, ok := p.ImageSet(); ok {
		sets = append(sets, set)
	}
	if set, ok := p.VideoSet(); ok {
		sets = append(sets, set)
	}
	return sets
}

// ImageSet returns the company photos for the lightbox, if there are any.
func (e Experience) ImageSet() (widget.MediaSet, bool) {
	if len(e.Images) == 0 {
		return widget.MediaSet{}, false
	}
	return widget.ImageSet(e.Company, e.Images...), true
}

// CarouselPhotos converts the gallery photos for the carousel widget.
func (p *Portfolio) CarouselPhotos() []widget.Photo {
	out := make([]widget.Photo, len(p.Photos))
	for i, ph := range p.Photos {
		out[i] = widget.Photo{Src: ph.Src, Alt: ph.Alt, Caption: ph.Caption}
	}
	return out
}

// InitialsOrDefault returns Profile.Initials, or the first letter of each word of the name.
func (p Profile) InitialsOrDefault() string {
	if p.Initials != "" {
		return p.Initials
	}
	var out []rune
	start := true
	for _, r := range p.Name {
		if r == ' ' {
			start = true
			continue
		}
		if start {
			out = append(out, r)
			start = false
		}
	}
	return string(out)
}
