package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrFontNotFound is returned when no installed font matches a family.
	ErrFontNotFound = errors.New("text: font not found")

	// ErrInvalidSize is returned when a face is requested at a size <= 0.
	ErrInvalidSize = errors.New("text: face size must be positive")
)
