package text

import "golang.org/x/image/font"

// FaceOption configures Face creation.
type FaceOption func(*faceConfig)

// faceConfig holds configuration for Face.
type faceConfig struct {
	dpi     float64
	hinting font.Hinting
}

// defaultFaceConfig returns the default face configuration.
// At 72 DPI the face size in points equals its size in pixels.
func defaultFaceConfig() faceConfig {
	return faceConfig{
		dpi:     72,
		hinting: font.HintingFull,
	}
}

// WithDPI sets the resolution used to convert points to pixels.
func WithDPI(dpi float64) FaceOption {
	return func(c *faceConfig) {
		if dpi > 0 {
			c.dpi = dpi
		}
	}
}

// WithHinting sets the glyph hinting mode.
func WithHinting(h font.Hinting) FaceOption {
	return func(c *faceConfig) {
		c.hinting = h
	}
}
