package iconkit

// LinearGradient is a per-row color transition between two colors.
//
// Row i of n gets, for every channel, trunc(from + (to-from)*i/n). The
// truncation mirrors integer conversion of the interpolated value, so the
// last row (i = n-1) never quite reaches To.
//
// Example:
//
//	g := iconkit.LinearGradient{From: iconkit.Hex("#1976d2"), To: iconkit.Hex("#0d47a1")}
//	canvas.FillVertical(g)
type LinearGradient struct {
	From Color
	To   Color
}

// ColorAt returns the color of row i in a gradient spanning n rows.
// A non-positive n returns From.
func (g LinearGradient) ColorAt(i, n int) Color {
	if n <= 0 {
		return g.From
	}
	return Color{
		R: lerpChannel(g.From.R, g.To.R, i, n),
		G: lerpChannel(g.From.G, g.To.G, i, n),
		B: lerpChannel(g.From.B, g.To.B, i, n),
		A: lerpChannel(g.From.A, g.To.A, i, n),
	}
}

// lerpChannel evaluates from + delta*i/n in floating point and truncates.
func lerpChannel(from, to uint8, i, n int) uint8 {
	delta := int(to) - int(from)
	v := float64(from) + float64(delta*i)/float64(n)
	return uint8(clamp255(int(v)))
}

// FillVertical paints the canvas one row at a time from top to bottom.
func (c *Canvas) FillVertical(g LinearGradient) {
	h := c.Height()
	for y := 0; y < h; y++ {
		c.Line(0, y, c.Width(), y, g.ColorAt(y, h))
	}
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x int) int {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}
