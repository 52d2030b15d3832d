package design

import (
	"github.com/solarveyo/iconkit"
	"github.com/solarveyo/iconkit/text"
)

// SV draws a yellow sun disc on a blue field with a white "SV" monogram
// centered on top. It produces no derivatives.
type SV struct{}

func (SV) Name() string        { return "sv" }
func (SV) Description() string { return "blue field, yellow sun disc, centered SV monogram" }
func (SV) Derivatives() bool   { return false }

func (d SV) Render(size int, fonts *text.Set) (*iconkit.Canvas, error) {
	c := iconkit.NewCanvas(size, size, Blue)
	c.FillCircle(size/2, size/2, size/4, Sun)
	drawLabels(c, d.labels(size, fonts))
	return c, nil
}

func (SV) labels(size int, fonts *text.Set) []label {
	face := fonts.Face(size/5, false)
	spans := []iconkit.Span{{Text: "SV", Color: iconkit.White}}
	ink := iconkit.MeasureRun(face, spans...)
	return []label{centered("monogram", size, face, iconkit.Center(size, ink.Dy()), spans...)}
}
