package iconkit

import "math"

// SoftenCorners approximates rounded corners by recoloring the pixels of
// each radius x radius corner square that fall outside a quarter circle
// centered at (radius, radius).
//
// The distance test for the three mirrored corners uses the mirrored pixel
// coordinate against that same top-left center, so in practice only the
// top-left corner is rounded and the other three squares are filled solid.
// Pixels are overwritten with col, not blended. A radius of zero or less
// leaves the canvas untouched.
func (c *Canvas) SoftenCorners(radius int, col Color) {
	if radius <= 0 {
		return
	}
	w, h := c.Width(), c.Height()
	r := float64(radius)

	for x := 0; x < radius; x++ {
		for y := 0; y < radius; y++ {
			// top left
			if dist(x-radius, y-radius) > r {
				c.SetPixel(x, y, col)
			}
			// top right
			if dist(w-x-1-radius, y-radius) > r {
				c.SetPixel(w-x-1, y, col)
			}
			// bottom left
			if dist(x-radius, h-y-1-radius) > r {
				c.SetPixel(x, h-y-1, col)
			}
			// bottom right
			if dist(w-x-1-radius, h-y-1-radius) > r {
				c.SetPixel(w-x-1, h-y-1, col)
			}
		}
	}
}

func dist(dx, dy int) float64 {
	return math.Sqrt(float64(dx*dx + dy*dy))
}
