package text

// Metrics holds font metrics at a face's size, in pixels.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the font.
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the
	// font, positive below the baseline.
	Descent float64

	// LineGap is the recommended gap between lines.
	LineGap float64

	// XHeight is the height of lowercase letters (like 'x').
	XHeight float64

	// CapHeight is the height of uppercase letters.
	CapHeight float64
}

// LineHeight returns ascent + descent + line gap, the distance between
// the baselines of consecutive lines.
func (m Metrics) LineHeight() float64 {
	return m.Ascent + m.Descent + m.LineGap
}

// VerticalAdvance returns ascent + descent, the advance of one glyph in a
// top-to-bottom run when the font carries no vertical metrics.
func (m Metrics) VerticalAdvance() float64 {
	return m.Ascent + m.Descent
}
