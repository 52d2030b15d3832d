package generate

import (
	"errors"
	"fmt"
	"image"
	_ "image/png" // register PNG for image.DecodeConfig
	"io"
	"os"
	"path/filepath"

	"github.com/h2non/filetype"
	ico "github.com/sergeymakinen/go-ico"

	"github.com/solarveyo/iconkit/config"
)

// ErrMismatch is wrapped by every verification problem.
var ErrMismatch = errors.New("generate: output mismatch")

// sniffLen is how much of a file the type matchers need.
const sniffLen = 262

// Verify checks that dir holds exactly the files cfg would produce: each
// exists, has the expected container type and decodes to the expected
// dimensions. An empty dir means cfg.OutputDir. All problems are reported
// together.
func Verify(dir string, cfg *config.Config) (*Report, error) {
	if dir == "" {
		dir = cfg.OutputDir
	}
	d, err := LoadDesign(cfg)
	if err != nil {
		return nil, err
	}

	want := make([]config.Asset, 0, len(cfg.Sizes)+2)
	for _, s := range cfg.Sizes {
		want = append(want, config.Asset{Name: IconName(s), Size: s})
	}
	if d.Derivatives() && cfg.HasSize(cfg.Derivatives.SourceSize) {
		want = append(want, cfg.Derivatives.TouchIcon, cfg.Derivatives.Favicon)
	}

	report := &Report{Design: d.Name()}
	var errs []error
	for _, a := range want {
		f, err := verifyFile(filepath.Join(dir, a.Name), a)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		report.add(f)
	}
	return report, errors.Join(errs...)
}

func verifyFile(path string, want config.Asset) (File, error) {
	fh, err := os.Open(path) //nolint:gosec // path is built from configuration
	if err != nil {
		return File{}, fmt.Errorf("%w: %w", ErrMismatch, err)
	}
	defer fh.Close()

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(fh, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		return File{}, fmt.Errorf("%w: %s: %w", ErrMismatch, want.Name, err)
	}
	kind, err := filetype.Match(head[:n])
	if err != nil {
		return File{}, fmt.Errorf("%w: %s: %w", ErrMismatch, want.Name, err)
	}

	wantExt := "png"
	if isICO(want.Name) {
		wantExt = "ico"
	}
	if kind.Extension != wantExt {
		return File{}, fmt.Errorf("%w: %s: content is %q, want %q", ErrMismatch, want.Name, kind.Extension, wantExt)
	}

	if _, err := fh.Seek(0, io.SeekStart); err != nil {
		return File{}, fmt.Errorf("%w: %s: %w", ErrMismatch, want.Name, err)
	}
	var cfg image.Config
	if wantExt == "ico" {
		cfg, err = ico.DecodeConfig(fh)
	} else {
		cfg, _, err = image.DecodeConfig(fh)
	}
	if err != nil {
		return File{}, fmt.Errorf("%w: %s: %w", ErrMismatch, want.Name, err)
	}
	if cfg.Width != want.Size || cfg.Height != want.Size {
		return File{}, fmt.Errorf("%w: %s is %dx%d, want %dx%d",
			ErrMismatch, want.Name, cfg.Width, cfg.Height, want.Size, want.Size)
	}

	info, err := fh.Stat()
	if err != nil {
		return File{}, fmt.Errorf("%w: %w", ErrMismatch, err)
	}
	return File{Name: want.Name, Path: path, Size: want.Size, Bytes: info.Size()}, nil
}
