package design

import (
	"image"

	"github.com/solarveyo/iconkit"
	"github.com/solarveyo/iconkit/text"
)

// label is a run of spans positioned by its ink box.
type label struct {
	name  string
	face  *text.Face
	spans []iconkit.Span
	box   image.Rectangle
}

// centered positions spans horizontally centered on a size-wide canvas with
// the ink top at inkY.
func centered(name string, size int, face *text.Face, inkY int, spans ...iconkit.Span) label {
	ink := iconkit.MeasureRun(face, spans...)
	x := iconkit.Center(size, ink.Dx())
	return label{
		name:  name,
		face:  face,
		spans: spans,
		box:   image.Rect(x, inkY, x+ink.Dx(), inkY+ink.Dy()),
	}
}

func (l label) draw(c *iconkit.Canvas) {
	c.PlaceRun(l.face, l.box.Min.X, l.box.Min.Y, l.spans...)
}

func drawLabels(c *iconkit.Canvas, labels []label) {
	for _, l := range labels {
		l.draw(c)
	}
}

// find returns the label with the given name.
func find(labels []label, name string) (label, bool) {
	for _, l := range labels {
		if l.name == name {
			return l, true
		}
	}
	return label{}, false
}

// scale returns int(size * f), truncating like an integer conversion of the
// floating point product.
func scale(size int, f float64) int {
	return int(float64(size) * f)
}
