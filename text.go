package iconkit

import (
	"image"

	"github.com/solarveyo/iconkit/text"
)

// Span is a piece of a label drawn in one color.
type Span struct {
	Text  string
	Color Color
}

// MeasureRun returns the ink bounding box of spans drawn side by side,
// relative to the origin of the first span.
//
// Each span starts at the previous span's origin plus the previous span's
// ink width, so "Solar" + "Veyo" renders as one word with two colors.
func MeasureRun(face *text.Face, spans ...Span) image.Rectangle {
	var ink image.Rectangle
	x := 0
	for _, sp := range spans {
		b := face.Bounds(sp.Text)
		if !b.Empty() {
			ink = ink.Union(b.Add(image.Pt(x, 0)))
		}
		x += b.Dx()
	}
	return ink
}

// DrawRun draws spans with the first span's origin at (x, y).
func (c *Canvas) DrawRun(face *text.Face, x, y int, spans ...Span) {
	for _, sp := range spans {
		face.Draw(c.img, x, y, sp.Text, sp.Color.NRGBA())
		x += face.Bounds(sp.Text).Dx()
	}
}

// DrawText draws a single-color label with its origin at (x, y).
func (c *Canvas) DrawText(face *text.Face, x, y int, s string, col Color) {
	c.DrawRun(face, x, y, Span{Text: s, Color: col})
}

// PlaceRun draws spans so that their ink box starts at (inkX, inkY) and
// returns the ink box in canvas coordinates.
func (c *Canvas) PlaceRun(face *text.Face, inkX, inkY int, spans ...Span) image.Rectangle {
	ink := MeasureRun(face, spans...)
	ox, oy := inkX-ink.Min.X, inkY-ink.Min.Y
	c.DrawRun(face, ox, oy, spans...)
	return ink.Add(image.Pt(ox, oy))
}

// CenterRunX draws spans horizontally centered on the canvas with their ink
// top at inkY. Left and right margins differ by at most one pixel.
func (c *Canvas) CenterRunX(face *text.Face, inkY int, spans ...Span) image.Rectangle {
	ink := MeasureRun(face, spans...)
	return c.PlaceRun(face, Center(c.Width(), ink.Dx()), inkY, spans...)
}

// Center returns the offset that centers an extent of length inner inside
// outer, rounding down.
func Center(outer, inner int) int {
	return floorDiv(outer-inner, 2)
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
