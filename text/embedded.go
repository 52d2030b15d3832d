package text

import (
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Embedded returns the Go font compiled into the binary.
// It gives byte-identical output on every machine, unlike system fonts.
func Embedded(bold bool) *FontSource {
	data := goregular.TTF
	if bold {
		data = gobold.TTF
	}
	s, err := NewFontSource(data)
	if err != nil {
		// The embedded TTF data is known to be valid.
		panic(err)
	}
	return s
}
