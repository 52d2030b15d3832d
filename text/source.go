package text

import (
	"fmt"
	"os"

	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// FontSource represents a loaded font file.
// One FontSource can create multiple Face instances at different sizes.
type FontSource struct {
	font *opentype.Font
	name string
	path string
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
func NewFontSource(data []byte) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	return newSource(f, ""), nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string) (*FontSource, error) {
	return NewFontSourceFromCollection(path, 0)
}

// NewFontSourceFromCollection loads face number index from a font file.
// Plain TTF/OTF files only have index 0; TTC collections may hold more.
func NewFontSourceFromCollection(path string, index int) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	coll, err := opentype.ParseCollection(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font %s: %w", path, err)
	}
	if index < 0 || index >= coll.NumFonts() {
		return nil, fmt.Errorf("text: font index %d out of range in %s (%d fonts)", index, path, coll.NumFonts())
	}
	f, err := coll.Font(index)
	if err != nil {
		return nil, fmt.Errorf("text: failed to load font %d from %s: %w", index, path, err)
	}
	return newSource(f, path), nil
}

func newSource(f *opentype.Font, path string) *FontSource {
	s := &FontSource{font: f, path: path}
	s.name = extractFontName(f)
	return s
}

// Face creates a Face at the specified size in pixels.
func (s *FontSource) Face(size float64, opts ...FaceOption) (*Face, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}

	config := defaultFaceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	f, err := opentype.NewFace(s.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     config.dpi,
		Hinting: config.hinting,
	})
	if err != nil {
		return nil, fmt.Errorf("text: failed to create face for %s: %w", s.name, err)
	}

	return &Face{
		face:     f,
		size:     size,
		scalable: true,
		name:     s.name,
	}, nil
}

// Name returns the font name.
func (s *FontSource) Name() string {
	return s.name
}

// Path returns the file the font was loaded from, or "" for in-memory data.
func (s *FontSource) Path() string {
	return s.path
}

// extractFontName extracts the font family name from the parsed font.
func extractFontName(f *opentype.Font) string {
	if name, err := f.Name(nil, sfnt.NameIDFamily); err == nil && name != "" {
		return name
	}
	if name, err := f.Name(nil, sfnt.NameIDFull); err == nil && name != "" {
		return name
	}
	return "Unknown Font"
}
