package text

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"
)

// Face is a font at one pixel size.
//
// Positions passed to Draw and rectangles returned by Bounds share the same
// origin: x is the left edge of the first advance and y is the top of the
// ascent, so a label drawn at (0, 0) sits entirely below y = 0.
//
// A Face is not safe for concurrent use.
type Face struct {
	face     font.Face
	size     float64
	scalable bool
	name     string
}

// Size returns the face size in pixels.
func (f *Face) Size() float64 {
	return f.size
}

// Scalable reports whether the face comes from an outline font.
// The bitmap fallback face is not scalable.
func (f *Face) Scalable() bool {
	return f.scalable
}

// Name returns the family name of the underlying font.
func (f *Face) Name() string {
	return f.name
}

// Metrics returns the face metrics rounded up to whole pixels.
func (f *Face) Metrics() Metrics {
	m := f.face.Metrics()
	return Metrics{
		Ascent:    m.Ascent.Ceil(),
		Descent:   m.Descent.Ceil(),
		Height:    m.Height.Ceil(),
		CapHeight: m.CapHeight.Ceil(),
	}
}

// Bounds returns the ink bounding box of s relative to the draw origin.
// An empty string has an empty rectangle.
func (f *Face) Bounds(s string) image.Rectangle {
	s = norm.NFC.String(s)
	if s == "" {
		return image.Rectangle{}
	}
	b, _ := font.BoundString(f.face, s)
	if b.Empty() {
		return image.Rectangle{}
	}
	asc := f.face.Metrics().Ascent.Ceil()
	return image.Rect(
		b.Min.X.Floor(), b.Min.Y.Floor()+asc,
		b.Max.X.Ceil(), b.Max.Y.Ceil()+asc,
	)
}

// Advance returns the horizontal advance of s in whole pixels.
func (f *Face) Advance(s string) int {
	return font.MeasureString(f.face, norm.NFC.String(s)).Ceil()
}

// Draw paints s into dst with its origin at (x, y).
func (f *Face) Draw(dst draw.Image, x, y int, s string, c color.Color) {
	asc := f.face.Metrics().Ascent.Ceil()
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: f.face,
		Dot:  fixed.P(x, y+asc),
	}
	d.DrawString(norm.NFC.String(s))
}

// Close releases the underlying face.
func (f *Face) Close() error {
	if f.face == nil {
		return nil
	}
	return f.face.Close()
}
