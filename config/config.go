// Package config loads icon generation settings from YAML.
//
// Every field has a default, so an absent or empty file reproduces the
// stock SolarVeyo icon set: the simple design at eight sizes written to
// public/.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/solarveyo/iconkit"
)

// Font fallback modes.
const (
	FallbackBitmap   = "bitmap"
	FallbackEmbedded = "embedded"
)

// Config is the complete generator configuration.
type Config struct {
	OutputDir   string      `yaml:"output_dir"`
	Design      string      `yaml:"design"`
	Sizes       []int       `yaml:"sizes"`
	CreateDir   bool        `yaml:"create_dir"`
	Fonts       Fonts       `yaml:"fonts"`
	Derivatives Derivatives `yaml:"derivatives"`
	SVG         SVG         `yaml:"svg"`
}

// Fonts selects the scalable fonts labels are drawn with.
//
// Explicit file paths win over family lookup. When neither yields a font
// the Fallback face is used: the built-in bitmap face, or the embedded Go
// fonts.
type Fonts struct {
	Family     string `yaml:"family"`
	BoldFamily string `yaml:"bold_family"` // empty means Family
	Regular    string `yaml:"regular"`
	Bold       string `yaml:"bold"`
	Fallback   string `yaml:"fallback"`
	CacheDir   string `yaml:"cache_dir"`
}

// Asset names a derived file and its square size.
type Asset struct {
	Name string `yaml:"name"`
	Size int    `yaml:"size"`
}

// Derivatives configures the files resized from the source icon.
type Derivatives struct {
	SourceSize int   `yaml:"source_size"`
	TouchIcon  Asset `yaml:"touch_icon"`
	Favicon    Asset `yaml:"favicon"`
}

// SVG configures the svg design.
type SVG struct {
	Path       string        `yaml:"path"` // empty selects the built-in mark
	Background iconkit.Color `yaml:"background"`
}

// Default returns the stock configuration.
func Default() *Config {
	return &Config{
		OutputDir: "public",
		Design:    "simple",
		Sizes:     []int{72, 96, 128, 144, 152, 192, 384, 512},
		Fonts: Fonts{
			Family:   "Arial",
			Fallback: FallbackBitmap,
		},
		Derivatives: Derivatives{
			SourceSize: 512,
			TouchIcon:  Asset{Name: "apple-touch-icon.png", Size: 180},
			Favicon:    Asset{Name: "favicon.ico", Size: 32},
		},
		SVG: SVG{Background: iconkit.White},
	}
}

// Load reads a YAML file over the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Write encodes the configuration as YAML.
func (c *Config) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}
	return enc.Close()
}

// BoldFamilyOrDefault returns the family used for bold labels.
func (f Fonts) BoldFamilyOrDefault() string {
	if f.BoldFamily != "" {
		return f.BoldFamily
	}
	return f.Family
}

// HasSize reports whether size is one of the configured icon sizes.
func (c *Config) HasSize(size int) bool {
	for _, s := range c.Sizes {
		if s == size {
			return true
		}
	}
	return false
}
