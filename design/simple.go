package design

import (
	"github.com/solarveyo/iconkit"
	"github.com/solarveyo/iconkit/text"
)

var simpleGradient = iconkit.LinearGradient{From: Blue, To: DeepBlue}

const (
	// wordmarkScadaMin is the smallest size with the SCADA subtitle in the
	// simple and white designs.
	wordmarkScadaMin = 144

	// cornerMin is the smallest size that gets softened corners.
	cornerMin = 192
)

// Simple draws the centered two-color wordmark on a blue gradient.
type Simple struct{}

func (Simple) Name() string        { return "simple" }
func (Simple) Description() string { return "blue gradient with the centered SolarVeyo wordmark" }
func (Simple) Derivatives() bool   { return true }

func (d Simple) Render(size int, fonts *text.Set) (*iconkit.Canvas, error) {
	c := iconkit.NewCanvas(size, size, Blue)
	c.FillVertical(simpleGradient)
	drawLabels(c, d.labels(size, fonts))
	if size >= cornerMin {
		c.SoftenCorners(size/16, iconkit.RGB(13, 71, 161))
	}
	return c, nil
}

func (Simple) labels(size int, fonts *text.Set) []label {
	fontSize := size / 5
	return stackWordmark(size, fonts.Face(fontSize, false), fonts.Face(fontSize/3, false),
		wordmark(iconkit.White, Sun), LightBlue)
}

// stackWordmark centers the wordmark vertically, or the wordmark plus the
// SCADA subtitle below it once size reaches wordmarkScadaMin.
func stackWordmark(size int, main, small *text.Face, spans []iconkit.Span, scadaColor iconkit.Color) []label {
	run := iconkit.MeasureRun(main, spans...)
	scada := iconkit.Span{Text: "SCADA", Color: scadaColor}
	gap := size / 20

	if size < wordmarkScadaMin {
		return []label{centered("wordmark", size, main, iconkit.Center(size, run.Dy()), spans...)}
	}

	sub := iconkit.MeasureRun(small, scada)
	startY := iconkit.Center(size, run.Dy()+gap+sub.Dy())
	return []label{
		centered("wordmark", size, main, startY, spans...),
		centered("scada", size, small, startY+run.Dy()+gap, scada),
	}
}
