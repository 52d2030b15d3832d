package generate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/solarveyo/iconkit"
	"github.com/solarveyo/iconkit/config"
	"github.com/solarveyo/iconkit/design"
	"github.com/solarveyo/iconkit/text"
)

// IconName returns the file name of the icon for a size.
func IconName(size int) string {
	return fmt.Sprintf("icon-%dx%d.png", size, size)
}

// Option configures a Generator.
type Option func(*Generator)

// WithOutput sets where progress lines are printed. The default is
// os.Stdout; nil silences them.
func WithOutput(w io.Writer) Option {
	return func(g *Generator) {
		if w == nil {
			w = io.Discard
		}
		g.out = w
	}
}

// WithFonts uses a prepared font set instead of resolving cfg.Fonts.
func WithFonts(fonts *text.Set) Option {
	return func(g *Generator) {
		g.fonts = fonts
	}
}

// WithDesign overrides the design named in the configuration.
func WithDesign(d design.Design) Option {
	return func(g *Generator) {
		g.design = d
	}
}

// Generator renders and writes one icon set.
type Generator struct {
	cfg    *config.Config
	design design.Design
	fonts  *text.Set
	out    io.Writer
}

// New creates a Generator for a validated configuration.
func New(cfg *config.Config, opts ...Option) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Generator{cfg: cfg, out: os.Stdout}
	for _, opt := range opts {
		opt(g)
	}

	if g.design == nil {
		d, err := LoadDesign(cfg)
		if err != nil {
			return nil, err
		}
		g.design = d
	}
	if g.fonts == nil {
		g.fonts = ResolveFonts(cfg.Fonts)
	}
	return g, nil
}

// LoadDesign returns the configured design. The svg design picks up its
// document and background from cfg.SVG.
func LoadDesign(cfg *config.Config) (design.Design, error) {
	if cfg.Design == "svg" {
		if cfg.SVG.Path != "" {
			return design.LoadSVG(cfg.SVG.Path, cfg.SVG.Background)
		}
		return design.NewMark(cfg.SVG.Background), nil
	}
	return design.Lookup(cfg.Design)
}

// Design returns the design being rendered.
func (g *Generator) Design() design.Design {
	return g.design
}

// Close releases cached font faces.
func (g *Generator) Close() error {
	return g.fonts.Close()
}

// Run renders every configured size in order and writes the files.
// The context is checked between sizes.
func (g *Generator) Run(ctx context.Context) (*Report, error) {
	log := iconkit.Logger()
	dir := g.cfg.OutputDir
	if err := prepareDir(dir, g.cfg.CreateDir); err != nil {
		return nil, err
	}

	report := &Report{Design: g.design.Name()}
	var source *iconkit.Canvas

	for _, size := range g.cfg.Sizes {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		start := time.Now()
		c, err := g.design.Render(size, g.fonts)
		if err != nil {
			return report, fmt.Errorf("generate: rendering %dx%d: %w", size, size, err)
		}
		f, err := g.write(c, IconName(size))
		if err != nil {
			return report, err
		}
		report.add(f)
		log.Debug("icon rendered", "design", g.design.Name(), "size", size, "elapsed", time.Since(start))

		if size == g.cfg.Derivatives.SourceSize {
			source = c
		}
	}

	if g.design.Derivatives() {
		if source == nil {
			log.Warn("source size not generated, skipping derivatives",
				"source_size", g.cfg.Derivatives.SourceSize)
		} else {
			for _, a := range []config.Asset{g.cfg.Derivatives.TouchIcon, g.cfg.Derivatives.Favicon} {
				if err := ctx.Err(); err != nil {
					return report, err
				}
				f, err := g.write(iconkit.Resize(source, a.Size, a.Size), a.Name)
				if err != nil {
					return report, err
				}
				report.add(f)
			}
		}
	}

	fmt.Fprintf(g.out, "\nAll %s icons created successfully!\n", g.design.Name())
	log.Info("icon set written", "dir", dir, "files", len(report.Files), "bytes", report.Bytes())
	return report, nil
}

// write saves c under name, picking the container from the extension.
func (g *Generator) write(c *iconkit.Canvas, name string) (File, error) {
	path := filepath.Join(g.cfg.OutputDir, name)

	var err error
	if isICO(name) {
		err = c.SaveICO(path)
	} else {
		err = c.SavePNG(path)
	}
	if err != nil {
		return File{}, fmt.Errorf("generate: writing %s: %w", name, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return File{}, fmt.Errorf("generate: %w", err)
	}
	fmt.Fprintf(g.out, "Created %s\n", name)
	iconkit.Logger().Info("file written", "path", path, "bytes", info.Size())
	return File{Name: name, Path: path, Size: c.Width(), Bytes: info.Size()}, nil
}

func prepareDir(dir string, create bool) error {
	if create {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("generate: creating output directory: %w", err)
		}
		return nil
	}
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("generate: output directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("generate: output directory %s: %w", dir, errNotDir)
	}
	return nil
}

var errNotDir = errors.New("not a directory")

func isICO(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".ico")
}
