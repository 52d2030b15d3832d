package iconkit

import (
	"image"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// FillRect fills the rectangle with corners (x0, y0) and (x1, y1).
// Both corners are inclusive, so FillRect(0, 0, 0, 0, c) paints one pixel.
func (c *Canvas) FillRect(x0, y0, x1, y1 int, col Color) {
	r := inclusiveRect(x0, y0, x1, y1).Intersect(c.img.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c.SetPixel(x, y, col)
		}
	}
}

// StrokeRect draws a rectangle outline of the given width inside the
// inclusive box (x0, y0)-(x1, y1).
func (c *Canvas) StrokeRect(x0, y0, x1, y1, width int, col Color) {
	if width <= 0 {
		return
	}
	r := inclusiveRect(x0, y0, x1, y1)
	for i := 0; i < width; i++ {
		top, bottom := r.Min.Y+i, r.Max.Y-1-i
		left, right := r.Min.X+i, r.Max.X-1-i
		if top > bottom || left > right {
			return
		}
		c.Line(left, top, right, top, col)
		c.Line(left, bottom, right, bottom, col)
		c.Line(left, top, left, bottom, col)
		c.Line(right, top, right, bottom, col)
	}
}

// Rectangle fills the inclusive box and then outlines it, the combined
// fill-and-outline form used by the panel in the logo design.
func (c *Canvas) Rectangle(x0, y0, x1, y1 int, fill, outline Color, width int) {
	c.FillRect(x0, y0, x1, y1, fill)
	c.StrokeRect(x0, y0, x1, y1, width, outline)
}

// Line draws a one pixel wide line between two integer points.
// Endpoints are inclusive and pixels outside the canvas are clipped.
func (c *Canvas) Line(x0, y0, x1, y1 int, col Color) {
	switch {
	case y0 == y1:
		if x0 > x1 {
			x0, x1 = x1, x0
		}
		for x := x0; x <= x1; x++ {
			c.SetPixel(x, y0, col)
		}
		return
	case x0 == x1:
		if y0 > y1 {
			y0, y1 = y1, y0
		}
		for y := y0; y <= y1; y++ {
			c.SetPixel(x0, y, col)
		}
		return
	}

	// Bresenham for everything else.
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		c.SetPixel(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// StrokeLine draws an antialiased line with butt caps between two
// floating point positions. Widths below one pixel are drawn at one pixel.
func (c *Canvas) StrokeLine(x0, y0, x1, y1, width float64, col Color) {
	if width < 1 {
		width = 1
	}
	w, h := c.Width(), c.Height()
	scanner := rasterx.NewScannerGV(w, h, c.img, c.img.Rect)
	stroker := rasterx.NewStroker(w, h, scanner)
	stroker.SetStroke(fixed.Int26_6(width*64), 4<<6, rasterx.ButtCap, nil, rasterx.FlatGap, rasterx.MiterClip)
	stroker.Start(toFixed(x0, y0))
	stroker.Line(toFixed(x1, y1))
	stroker.Stop(false)
	stroker.SetColor(col.NRGBA())
	stroker.Draw()
}

// FillEllipse fills the ellipse inscribed in the inclusive box
// (x0, y0)-(x1, y1). A pixel is painted when its center lies inside.
func (c *Canvas) FillEllipse(x0, y0, x1, y1 int, col Color) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	cx := float64(x0+x1+1) / 2
	cy := float64(y0+y1+1) / 2
	rx := float64(x1-x0+1) / 2
	ry := float64(y1-y0+1) / 2

	r := inclusiveRect(x0, y0, x1, y1).Intersect(c.img.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		ny := (float64(y) + 0.5 - cy) / ry
		for x := r.Min.X; x < r.Max.X; x++ {
			nx := (float64(x) + 0.5 - cx) / rx
			if nx*nx+ny*ny <= 1 {
				c.SetPixel(x, y, col)
			}
		}
	}
}

// FillCircle fills the circle of radius r centered at (cx, cy) using the
// bounding box [cx-r, cy-r, cx+r, cy+r].
func (c *Canvas) FillCircle(cx, cy, r int, col Color) {
	if r < 0 {
		return
	}
	c.FillEllipse(cx-r, cy-r, cx+r, cy+r, col)
}

// inclusiveRect converts inclusive corners into a half-open rectangle.
func inclusiveRect(x0, y0, x1, y1 int) image.Rectangle {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	return image.Rect(x0, y0, x1+1, y1+1)
}

func toFixed(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
