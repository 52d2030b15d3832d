package iconkit

import "github.com/nfnt/resize"

// Resize returns a new canvas scaled to width x height with Lanczos3
// resampling. The source canvas is not modified.
func Resize(c *Canvas, width, height int) *Canvas {
	if width <= 0 || height <= 0 {
		return NewCanvas(0, 0, Transparent)
	}
	if width == c.Width() && height == c.Height() {
		return c.Clone()
	}
	Logger().Debug("resize", "from", c.Width(), "to", width, "filter", "lanczos3")
	return FromImage(resize.Resize(uint(width), uint(height), c.img, resize.Lanczos3))
}
