package iconkit

import (
	"bufio"
	"fmt"
	"image/png"
	"io"
	"os"

	ico "github.com/sergeymakinen/go-ico"
)

// EncodePNG writes the canvas as PNG. Fully opaque canvases are stored as
// 8-bit RGB, others as 8-bit RGBA.
func (c *Canvas) EncodePNG(w io.Writer) error {
	enc := png.Encoder{CompressionLevel: png.DefaultCompression}
	return enc.Encode(w, c.img)
}

// EncodeICO writes the canvas as a single-image ICO container.
func (c *Canvas) EncodeICO(w io.Writer) error {
	return ico.Encode(w, c.img)
}

// SavePNG saves the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	return saveFile(path, c.EncodePNG)
}

// SaveICO saves the canvas to an ICO file.
func (c *Canvas) SaveICO(path string) error {
	return saveFile(path, c.EncodeICO)
}

// saveFile creates path and streams encode into it. The parent directory
// must already exist.
func saveFile(path string, encode func(io.Writer) error) (err error) {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	bw := bufio.NewWriter(f)
	if err := encode(bw); err != nil {
		return fmt.Errorf("iconkit: encoding %s: %w", path, err)
	}
	return bw.Flush()
}
