package text

// Metrics holds face metrics in whole pixels.
type Metrics struct {
	// Ascent is the distance from the top of the line to the baseline.
	Ascent int

	// Descent is the distance from the baseline to the bottom of the line (positive).
	Descent int

	// Height is the recommended distance between two baselines.
	Height int

	// CapHeight is the height of uppercase letters, when the font reports it.
	CapHeight int
}
