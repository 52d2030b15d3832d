package design

import (
	"github.com/solarveyo/iconkit"
	"github.com/solarveyo/iconkit/text"
)

var (
	whiteFrame = iconkit.Hex("#f0f0f0")
	whiteGrey  = iconkit.Hex("#666666")
)

// whiteTaglineMin is the smallest size carrying "Monitoring System".
const whiteTaglineMin = 384

// White draws a bold black and blue wordmark on a white field.
type White struct{}

func (White) Name() string { return "white" }
func (White) Description() string {
	return "white field with a bold black and blue SolarVeyo wordmark"
}
func (White) Derivatives() bool { return true }

func (d White) Render(size int, fonts *text.Set) (*iconkit.Canvas, error) {
	c := iconkit.NewCanvas(size, size, iconkit.White)
	c.StrokeRect(0, 0, size-1, size-1, 1, whiteFrame)
	drawLabels(c, d.labels(size, fonts))
	if size >= cornerMin {
		c.SoftenCorners(size/32, iconkit.RGB(250, 250, 250))
	}
	return c, nil
}

func (White) labels(size int, fonts *text.Set) []label {
	fontSize := size / 5
	labels := stackWordmark(size, fonts.Face(fontSize, true), fonts.Face(fontSize/3, true),
		wordmark(iconkit.Black, Blue), iconkit.Black)

	if size >= whiteTaglineMin {
		if scada, ok := find(labels, "scada"); ok {
			tiny := fonts.Face(fontSize/5, false)
			labels = append(labels, centered("tagline", size, tiny, scada.box.Max.Y+size/30,
				iconkit.Span{Text: "Monitoring System", Color: whiteGrey}))
		}
	}
	return labels
}
