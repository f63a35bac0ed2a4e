package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultPortfolio []byte

// Authoring errors reported by Validate.
var (
	ErrNoName        = errors.New("profile name is required")
	ErrNoPhotos      = errors.New("gallery needs at least one photo")
	ErrEmptyPhotoSrc = errors.New("photo has no src")
	ErrNoTitle       = errors.New("project title is required")
	ErrEmptyMediaRef = errors.New("empty media reference")
)

// Default returns the embedded sample portfolio.
func Default() (*Portfolio, error) {
	return Parse(defaultPortfolio)
}

// Load reads a portfolio from a YAML file. An empty path loads the embedded
// sample.
func Load(path string) (*Portfolio, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading content %s: %w", path, err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("content %s: %w", path, err)
	}
	return p, nil
}

// Parse decodes YAML content. Unknown keys are rejected so typos surface.
func Parse(data []byte) (*Portfolio, error) {
	var p Portfolio
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("parsing content: %w", err)
	}
	return &p, nil
}

// Marshal encodes the portfolio back to YAML.
func (p *Portfolio) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshalling content: %w", err)
	}
	return data, nil
}

// Validate reports content authoring mistakes the page cannot render
// sensibly. All problems are joined into one error.
func (p *Portfolio) Validate() error {
	var errs []error
	if strings.TrimSpace(p.Profile.Name) == "" {
		errs = append(errs, ErrNoName)
	}
	if len(p.Photos) == 0 {
		errs = append(errs, ErrNoPhotos)
	}
	for i, ph := range p.Photos {
		if ph.Src == "" {
			errs = append(errs, fmt.Errorf("photos[%d]: %w", i, ErrEmptyPhotoSrc))
		}
	}
	for i, pr := range p.Projects {
		if strings.TrimSpace(pr.Title) == "" {
			errs = append(errs, fmt.Errorf("projects[%d]: %w", i, ErrNoTitle))
		}
		for j, img := range pr.DemoImages {
			if img == "" {
				errs = append(errs, fmt.Errorf("projects[%d].demo_images[%d]: %w", i, j, ErrEmptyMediaRef))
			}
		}
	}
	for i, ex := range p.Experience {
		for j, img := range ex.Images {
			if img == "" {
				errs = append(errs, fmt.Errorf("experience[%d].images[%d]: %w", i, j, ErrEmptyMediaRef))
			}
		}
	}
	return errors.Join(errs...)
}
