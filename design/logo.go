package design

import (
	"math"

	"github.com/solarveyo/iconkit"
	"github.com/solarveyo/iconkit/text"
)

// Logo colors.
var (
	logoGradient = iconkit.LinearGradient{From: iconkit.Hex("#1947a1"), To: iconkit.Hex("#1f47a1")}
	panelFill    = iconkit.Hex("#37474f")
	panelEdge    = iconkit.Hex("#263238")
	panelGrid    = iconkit.Hex("#546e7a")
)

const (
	gridCols = 4
	gridRows = 3

	// logoScadaMin is the smallest size that carries the SCADA subtitle.
	logoScadaMin = 192
)

// Logo draws a solar panel under a rayed sun with the two-color wordmark
// below.
type Logo struct{}

func (Logo) Name() string { return "logo" }
func (Logo) Description() string {
	return "gradient, solar panel with grid, rayed sun, SolarVeyo wordmark"
}
func (Logo) Derivatives() bool { return true }

func (d Logo) Render(size int, fonts *text.Set) (*iconkit.Canvas, error) {
	c := iconkit.NewCanvas(size, size, Blue)
	c.FillVertical(logoGradient)

	// Panel with a 4x3 cell grid.
	pw, ph := scale(size, 0.6), scale(size, 0.35)
	px, py := (size-pw)/2, scale(size, 0.35)
	c.Rectangle(px, py, px+pw, py+ph, panelFill, panelEdge, 1)
	for i := 1; i < gridCols; i++ {
		x := px + pw*i/gridCols
		c.Line(x, py, x, py+ph, panelGrid)
	}
	for i := 1; i < gridRows; i++ {
		y := py + ph*i/gridRows
		c.Line(px, y, px+pw, y, panelGrid)
	}

	// Sun and rays.
	r := size / 10
	sx, sy := size/2, scale(size, 0.2)
	c.FillCircle(sx, sy, r, Sun)
	width := float64(max(1, size/100))
	for angle := 0; angle < 360; angle += 45 {
		rad := float64(angle) * math.Pi / 180
		cos, sin := math.Cos(rad), math.Sin(rad)
		c.StrokeLine(
			float64(sx)+cos*float64(r+5), float64(sy)+sin*float64(r+5),
			float64(sx)+cos*float64(r+10), float64(sy)+sin*float64(r+10),
			width, Sun,
		)
	}

	drawLabels(c, d.labels(size, fonts))
	return c, nil
}

func (Logo) labels(size int, fonts *text.Set) []label {
	fontSize := size / 8
	textY := scale(size, 0.75)

	labels := []label{
		centered("wordmark", size, fonts.Face(fontSize, false), textY, wordmark(iconkit.White, Sun)...),
	}
	if size >= logoScadaMin {
		small := fonts.Face(fontSize/2, false)
		labels = append(labels, centered("scada", size, small, textY+fontSize+2,
			iconkit.Span{Text: "SCADA", Color: LightBlue}))
	}
	return labels
}
