package iconkit

import "testing"

func TestSoftenCorners_TopLeftRounded(t *testing.T) {
	edge := RGB(13, 71, 161)
	c := NewCanvas(64, 64, White)
	c.SoftenCorners(8, edge)

	if c.GetPixel(0, 0) != edge {
		t.Error("top-left corner pixel not recolored")
	}
	// (7,7) is at distance sqrt(2) from the center (8,8).
	if c.GetPixel(7, 7) != White {
		t.Error("pixel inside the quarter circle recolored")
	}
	if c.GetPixel(8, 0) != White || c.GetPixel(0, 8) != White {
		t.Error("pixels outside the corner square recolored")
	}
}

func TestSoftenCorners_MirroredSquaresFilled(t *testing.T) {
	edge := RGB(250, 250, 250)
	c := NewCanvas(64, 64, Black)
	c.SoftenCorners(6, edge)

	squares := []struct{ x0, y0 int }{{58, 0}, {0, 58}, {58, 58}}
	for _, sq := range squares {
		for y := sq.y0; y < sq.y0+6; y++ {
			for x := sq.x0; x < sq.x0+6; x++ {
				if c.GetPixel(x, y) != edge {
					t.Fatalf("pixel (%d,%d) in a mirrored corner not recolored", x, y)
				}
			}
		}
	}
	if c.GetPixel(57, 0) != Black || c.GetPixel(58, 6) != Black {
		t.Error("pixels next to the corner square recolored")
	}
}

func TestSoftenCorners_ZeroRadius(t *testing.T) {
	c := NewCanvas(8, 8, White)
	c.SoftenCorners(0, Black)
	c.SoftenCorners(-3, Black)
	if countColor(c, Black) != 0 {
		t.Error("non-positive radius modified the canvas")
	}
}
