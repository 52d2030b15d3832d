package iconkit

import "testing"

func TestLinearGradient_ColorAt(t *testing.T) {
	g := LinearGradient{From: RGB(25, 118, 210), To: RGB(13, 71, 161)}

	tests := []struct {
		i, n int
		want Color
	}{
		{0, 72, RGB(25, 118, 210)},
		// 25 - 12*36/72 = 19, 118 - 47*36/72 = 94.5, 210 - 49*36/72 = 185.5
		{36, 72, RGB(19, 94, 185)},
		// 25 - 12*71/72 = 13.17
		{71, 72, RGB(13, 71, 161)},
	}
	for _, tt := range tests {
		if got := g.ColorAt(tt.i, tt.n); got != tt.want {
			t.Errorf("ColorAt(%d, %d) = %v, want %v", tt.i, tt.n, got, tt.want)
		}
	}
}

func TestLinearGradient_Truncates(t *testing.T) {
	// Rising from 25 to 31 across 512 rows, row 511 is 25 + 6*511/512 = 30.99.
	g := LinearGradient{From: Hex("#1947a1"), To: Hex("#1f47a1")}
	if got := g.ColorAt(511, 512).R; got != 30 {
		t.Errorf("last row red = %d, want 30", got)
	}
	if got := g.ColorAt(256, 512).R; got != 28 {
		t.Errorf("middle row red = %d, want 28", got)
	}
}

func TestLinearGradient_ZeroRows(t *testing.T) {
	g := LinearGradient{From: Black, To: White}
	if got := g.ColorAt(5, 0); got != Black {
		t.Errorf("ColorAt with n=0 = %v, want From", got)
	}
}

func TestFillVertical(t *testing.T) {
	g := LinearGradient{From: RGB(0, 0, 0), To: RGB(100, 100, 100)}
	c := NewCanvas(3, 10, White)
	c.FillVertical(g)
	for y := 0; y < 10; y++ {
		want := g.ColorAt(y, 10)
		for x := 0; x < 3; x++ {
			if got := c.GetPixel(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}
