// Package iconkit draws application icons on small raster canvases.
//
// # Overview
//
// A Canvas is a fixed-size grid of non-premultiplied RGBA pixels. Designs
// fill it with a background or a LinearGradient, add shapes and text, and
// then encode it as PNG or ICO. The drawing operations mirror a classic
// immediate-mode image API: rectangles and ellipses take inclusive corner
// coordinates, and lines are one pixel wide unless stroked.
//
// # Quick Start
//
//	import "github.com/solarveyo/iconkit"
//
//	c := iconkit.NewCanvas(192, 192, iconkit.Hex("#1976d2"))
//	c.FillCircle(96, 96, 48, iconkit.Hex("#FFC107"))
//	c.CenterRunX(face, 80, iconkit.Span{Text: "SV", Color: iconkit.White})
//	c.SoftenCorners(12, iconkit.RGB(13, 71, 161))
//
//	if err := c.SavePNG("icon-192x192.png"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Text
//
// Labels are drawn with faces from the text sub-package. Runs of colored
// spans are measured by their ink bounding box and centered on it, so the
// left and right margins of a centered label differ by at most one pixel.
//
// # Derived assets
//
// Resize scales a finished canvas with Lanczos3 resampling. The favicon
// and touch icon are produced this way from the largest icon rather than
// redrawn.
//
// # Logging
//
// iconkit is silent by default. SetLogger installs a *slog.Logger that is
// shared by every sub-package.
//
// # Architecture
//
//	iconkit (root)   canvas, colors, shapes, text runs, resize, encoding
//	iconkit/text     font sources, faces, system font lookup, fallback
//	iconkit/design   the icon designs and their registry
//	iconkit/config   YAML configuration
//	iconkit/generate the per-size pipeline and output verification
package iconkit
