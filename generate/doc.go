// Package generate runs the icon pipeline: render every configured size,
// write icon-{size}x{size}.png files, then derive the touch icon and
// favicon from the largest icon.
//
// Basic usage:
//
//	cfg := config.Default()
//	g, err := generate.New(cfg)
//	if err != nil {
//	    return err
//	}
//	report, err := g.Run(ctx)
//
// Verify checks an existing output directory against a configuration.
package generate
