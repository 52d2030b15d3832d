package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation problem.
var ErrInvalid = errors.New("config: invalid")

// MaxSize bounds icon and derivative sizes.
const MaxSize = 4096

// Validate reports every problem in the configuration at once.
func (c *Config) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.OutputDir == "" {
		add("output_dir is required")
	}
	if c.Design == "" {
		add("design is required")
	}

	if len(c.Sizes) == 0 {
		add("sizes must not be empty")
	}
	seen := make(map[int]bool, len(c.Sizes))
	for _, s := range c.Sizes {
		if s <= 0 || s > MaxSize {
			add("size %d out of range 1..%d", s, MaxSize)
		}
		if seen[s] {
			add("size %d listed twice", s)
		}
		seen[s] = true
	}

	switch c.Fonts.Fallback {
	case FallbackBitmap, FallbackEmbedded:
	default:
		add("fonts.fallback %q must be %q or %q", c.Fonts.Fallback, FallbackBitmap, FallbackEmbedded)
	}

	if c.Derivatives.SourceSize <= 0 {
		add("derivatives.source_size must be positive")
	}
	for _, d := range []struct {
		key string
		a   Asset
	}{
		{"touch_icon", c.Derivatives.TouchIcon},
		{"favicon", c.Derivatives.Favicon},
	} {
		key, a := d.key, d.a
		if a.Name == "" {
			add("derivatives.%s.name is required", key)
		}
		if a.Size <= 0 || a.Size > MaxSize {
			add("derivatives.%s.size %d out of range 1..%d", key, a.Size, MaxSize)
		}
	}

	return errors.Join(errs...)
}
