package iconkit

import (
	"image"
	"testing"

	"github.com/solarveyo/iconkit/text"
)

func testFace(t *testing.T, size float64) *text.Face {
	t.Helper()
	f, err := text.Embedded(false).Face(size)
	if err != nil {
		t.Fatalf("Face(%v) error = %v", size, err)
	}
	t.Cleanup(func() { _ = f.Close() })
	return f
}

// inkBox returns the bounding box of pixels that differ from bg.
func inkBox(c *Canvas, bg Color) image.Rectangle {
	var r image.Rectangle
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			if c.GetPixel(x, y) != bg {
				r = r.Union(image.Rect(x, y, x+1, y+1))
			}
		}
	}
	return r
}

func TestCenter(t *testing.T) {
	tests := []struct {
		outer, inner, want int
	}{
		{100, 20, 40},
		{100, 21, 39},
		{10, 10, 0},
		{10, 13, -2},
	}
	for _, tt := range tests {
		if got := Center(tt.outer, tt.inner); got != tt.want {
			t.Errorf("Center(%d, %d) = %d, want %d", tt.outer, tt.inner, got, tt.want)
		}
	}
}

func TestMeasureRun_SpansAbut(t *testing.T) {
	face := testFace(t, 40)
	solar := face.Bounds("Solar")
	veyo := face.Bounds("Veyo")

	run := MeasureRun(face, Span{Text: "Solar"}, Span{Text: "Veyo"})
	if run.Min.X != solar.Min.X {
		t.Errorf("run starts at %d, want %d", run.Min.X, solar.Min.X)
	}
	if want := solar.Dx() + veyo.Max.X; run.Max.X != want {
		t.Errorf("run ends at %d, want %d", run.Max.X, want)
	}
}

func TestMeasureRun_Empty(t *testing.T) {
	face := testFace(t, 20)
	if r := MeasureRun(face); !r.Empty() {
		t.Errorf("MeasureRun() = %v, want empty", r)
	}
	if r := MeasureRun(face, Span{Text: ""}); !r.Empty() {
		t.Errorf("MeasureRun(\"\") = %v, want empty", r)
	}
}

func TestCenterRunX(t *testing.T) {
	for _, width := range []int{96, 192, 513} {
		c := NewCanvas(width, 100, White)
		face := testFace(t, 24)

		box := c.CenterRunX(face, 30,
			Span{Text: "Solar", Color: Black},
			Span{Text: "Veyo", Color: Hex("#1976d2")},
		)

		left, right := box.Min.X, width-box.Max.X
		if d := left - right; d < -1 || d > 1 {
			t.Errorf("width %d: margins %d/%d differ by more than one pixel", width, left, right)
		}
		if box.Min.Y != 30 {
			t.Errorf("width %d: ink top = %d, want 30", width, box.Min.Y)
		}
		if ink := inkBox(c, White); !ink.In(box.Inset(-1)) {
			t.Errorf("width %d: painted %v outside reported box %v", width, ink, box)
		}
	}
}

func TestDrawText_Bitmap(t *testing.T) {
	c := NewCanvas(60, 20, Black)
	face := text.Bitmap()
	c.DrawText(face, 2, 2, "SV", White)
	if inkBox(c, Black).Empty() {
		t.Error("bitmap text painted nothing")
	}
}
