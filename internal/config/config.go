// Package config loads folio settings: defaults, then an optional YAML file,
// then a .env file, then FOLIO_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"folio/internal/widget"
)

// EnvPrefix prefixes every environment override. Nested keys use a double
// underscore: FOLIO_TRACE__ENDPOINT -> trace.endpoint.
const EnvPrefix = "FOLIO_"

// Config is the full folio configuration, corresponding to folio.yml.
type Config struct {
	// Content is the portfolio YAML file. Empty uses the built-in sample.
	Content          string        `yaml:"content" koanf:"content"`
	RevealDelay      time.Duration `yaml:"reveal_delay" koanf:"reveal_delay"`
	CarouselInterval time.Duration `yaml:"carousel_interval" koanf:"carousel_interval"`
	// Lookahead is in lines, added to the scroll offset by the section tracker.
	Lookahead      int           `yaml:"lookahead" koanf:"lookahead"`
	ScrollThrottle time.Duration `yaml:"scroll_throttle" koanf:"scroll_throttle"`
	// LogFile receives debug logs. Empty discards them.
	LogFile string      `yaml:"log_file" koanf:"log_file"`
	Trace   TraceConfig `yaml:"trace" koanf:"trace"`
}

// TraceConfig controls OTLP span export.
type TraceConfig struct {
	Endpoint    string `yaml:"endpoint" koanf:"endpoint"`
	ServiceName string `yaml:"service_name" koanf:"service_name"`
	Insecure    bool   `yaml:"insecure" koanf:"insecure"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		RevealDelay:      widget.DefaultRevealDelay,
		CarouselInterval: widget.DefaultCarouselInterval,
		Lookahead:        2,
		ScrollThrottle:   16 * time.Millisecond,
		Trace: TraceConfig{
			ServiceName: "folio",
			Insecure:    true,
		},
	}
}

// Load reads configuration from path (skipped when missing), loads envFile
// into the process environment when present, then overlays FOLIO_* variables.
func Load(path, envFile string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if envFile != "" {
		// Existing variables win over the file.
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	return cfg, nil
}

func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.RevealDelay < 0 {
		return fmt.Errorf("reveal_delay must be non-negative")
	}
	if c.CarouselInterval <= 0 {
		return fmt.Errorf("carousel_interval must be positive")
	}
	if c.Lookahead < 0 {
		return fmt.Errorf("lookahead must be non-negative")
	}
	if c.ScrollThrottle < 0 {
		return fmt.Errorf("scroll_throttle must be non-negative")
	}
	if c.Trace.Endpoint != "" && c.Trace.ServiceName == "" {
		return fmt.Errorf("trace.service_name is required when trace.endpoint is set")
	}
	return nil
}
