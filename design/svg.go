package design

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/solarveyo/iconkit"
	"github.com/solarveyo/iconkit/text"
)

//go:embed assets/solarveyo.svg
var markSVG []byte

// ErrNoViewBox is returned for SVG documents without a usable size.
var ErrNoViewBox = errors.New("design: svg has no viewBox or size")

// SVG rasterizes a vector mark at every size over a solid background.
// Only the SVG subset understood by oksvg is drawn; text elements are
// ignored.
type SVG struct {
	data       []byte
	background iconkit.Color
}

// NewSVG creates an SVG design from document bytes.
func NewSVG(data []byte, background iconkit.Color) (*SVG, error) {
	if _, err := parseSVG(data); err != nil {
		return nil, err
	}
	return &SVG{data: data, background: background}, nil
}

// LoadSVG reads an SVG design from a file.
func LoadSVG(path string, background iconkit.Color) (*SVG, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from configuration
	if err != nil {
		return nil, fmt.Errorf("design: reading svg: %w", err)
	}
	d, err := NewSVG(data, background)
	if err != nil {
		return nil, fmt.Errorf("design: %s: %w", path, err)
	}
	return d, nil
}

// NewMark returns the built-in SolarVeyo mark over background.
func NewMark(background iconkit.Color) *SVG {
	return &SVG{data: markSVG, background: background}
}

// DefaultSVG returns the built-in SolarVeyo mark on white.
func DefaultSVG() *SVG {
	return NewMark(iconkit.White)
}

func (*SVG) Name() string        { return "svg" }
func (*SVG) Description() string { return "vector SolarVeyo mark rasterized at every size" }
func (*SVG) Derivatives() bool   { return true }

// Render parses the document again for every size, since targeting an icon
// rewrites its transform.
func (d *SVG) Render(size int, _ *text.Set) (*iconkit.Canvas, error) {
	icon, err := parseSVG(d.data)
	if err != nil {
		return nil, err
	}

	c := iconkit.NewCanvas(size, size, d.background)
	icon.SetTarget(0, 0, float64(size), float64(size))
	scanner := rasterx.NewScannerGV(size, size, c.Image(), c.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)
	return c, nil
}

func parseSVG(data []byte) (*oksvg.SvgIcon, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("design: parsing svg: %w", err)
	}
	if icon.ViewBox.W <= 0 || icon.ViewBox.H <= 0 {
		return nil, ErrNoViewBox
	}
	return icon, nil
}
