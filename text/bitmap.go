package text

import "golang.org/x/image/font/basicfont"

// bitmapSize is the pixel height of the built-in bitmap font.
const bitmapSize = 13

// Bitmap returns the built-in fixed-size 7x13 bitmap face.
// It ignores the requested size and never fails, which makes it the last
// resort when no outline font is available.
func Bitmap() *Face {
	return &Face{
		face:     basicfont.Face7x13,
		size:     bitmapSize,
		scalable: false,
		name:     "basicfont 7x13",
	}
}
