package design

import (
	"github.com/solarveyo/iconkit"
	"github.com/solarveyo/iconkit/text"
)

// Design draws an application icon.
type Design interface {
	// Name returns the registry name.
	Name() string

	// Description returns a one-line summary for listings.
	Description() string

	// Derivatives reports whether the apple-touch-icon and favicon are
	// produced from this design's largest icon.
	Derivatives() bool

	// Render draws the icon at size x size pixels using fonts from the set.
	// A nil set draws every label with the bitmap face.
	Render(size int, fonts *text.Set) (*iconkit.Canvas, error)
}

// Palette shared by the wordmark designs.
var (
	Blue      = iconkit.Hex("#1976d2")
	DeepBlue  = iconkit.Hex("#0d47a1")
	Sun       = iconkit.Hex("#FFC107")
	LightBlue = iconkit.Hex("#b3e5fc")
)

// wordmark returns the two-color "SolarVeyo" run.
func wordmark(solar, veyo iconkit.Color) []iconkit.Span {
	return []iconkit.Span{
		{Text: "Solar", Color: solar},
		{Text: "Veyo", Color: veyo},
	}
}
