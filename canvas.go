package iconkit

import (
	"image"
	"image/color"
	"image/draw"
)

// Canvas is a fixed-size grid of non-premultiplied RGBA pixels.
//
// A Canvas is created filled with a background color, mutated in place by
// the drawing primitives, encoded and then discarded. It implements
// draw.Image so text and vector rasterizers can paint directly into it.
type Canvas struct {
	img *image.NRGBA
}

// Compile-time check that Canvas can be used as a drawing target.
var _ draw.Image = (*Canvas)(nil)

// NewCanvas creates a width x height canvas filled with bg.
func NewCanvas(width, height int, bg Color) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	c := &Canvas{img: image.NewNRGBA(image.Rect(0, 0, width, height))}
	c.Clear(bg)
	return c
}

// FromImage copies any image into a new canvas.
func FromImage(img image.Image) *Canvas {
	b := img.Bounds()
	c := &Canvas{img: image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))}
	draw.Draw(c.img, c.img.Bounds(), img, b.Min, draw.Src)
	return c
}

// Width returns the width of the canvas.
func (c *Canvas) Width() int {
	return c.img.Rect.Dx()
}

// Height returns the height of the canvas.
func (c *Canvas) Height() int {
	return c.img.Rect.Dy()
}

// Image returns the backing image. Writes to it are visible on the canvas.
func (c *Canvas) Image() *image.NRGBA {
	return c.img
}

// SetPixel sets the color of a single pixel.
// Out-of-bounds coordinates are ignored.
func (c *Canvas) SetPixel(x, y int, col Color) {
	if !(image.Point{X: x, Y: y}).In(c.img.Rect) {
		return
	}
	i := c.img.PixOffset(x, y)
	p := c.img.Pix[i : i+4 : i+4]
	p[0] = col.R
	p[1] = col.G
	p[2] = col.B
	p[3] = col.A
}

// GetPixel returns the color of a single pixel.
// Out-of-bounds coordinates return Transparent.
func (c *Canvas) GetPixel(x, y int) Color {
	if !(image.Point{X: x, Y: y}).In(c.img.Rect) {
		return Transparent
	}
	i := c.img.PixOffset(x, y)
	p := c.img.Pix[i : i+4 : i+4]
	return Color{R: p[0], G: p[1], B: p[2], A: p[3]}
}

// Clear fills the entire canvas with a color.
func (c *Canvas) Clear(col Color) {
	pix := c.img.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i+0] = col.R
		pix[i+1] = col.G
		pix[i+2] = col.B
		pix[i+3] = col.A
	}
}

// Clone returns a deep copy of the canvas.
func (c *Canvas) Clone() *Canvas {
	img := image.NewNRGBA(c.img.Rect)
	copy(img.Pix, c.img.Pix)
	return &Canvas{img: img}
}

// Opaque reports whether every pixel has full alpha.
func (c *Canvas) Opaque() bool {
	return c.img.Opaque()
}

// At implements the image.Image interface.
func (c *Canvas) At(x, y int) color.Color {
	return c.img.NRGBAAt(x, y)
}

// Set implements the draw.Image interface.
func (c *Canvas) Set(x, y int, col color.Color) {
	c.img.Set(x, y, col)
}

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return c.img.Rect
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model {
	return color.NRGBAModel
}
