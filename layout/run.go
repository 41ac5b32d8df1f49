package layout

import (
	"image"

	"golang.org/x/image/math/fixed"
)

// GlyphID is an opaque glyph index, meaningful only to the rasterizer that
// produced the run's outlines.
type GlyphID uint32

// GlyphPlacement is one shaped glyph: its id and the advance and offset
// vectors in 26.6 fixed point pixels, font space (y up).
type GlyphPlacement struct {
	GID GlyphID

	XAdvance, YAdvance fixed.Int26_6
	XOffset, YOffset   fixed.Int26_6

	// Cluster is the index of the first rune of the glyph's cluster in the
	// shaped text. Diagnostic only.
	Cluster int
}

// GlyphRun is the output of shaping one string. It is immutable once built
// and owned by the caller for one measure and paint cycle.
type GlyphRun struct {
	Glyphs    []GlyphPlacement
	Direction Direction
}

// Len returns the number of glyphs in the run.
func (r GlyphRun) Len() int {
	return len(r.Glyphs)
}

// Advance returns the summed advances in whole pixels, font space (y up),
// each glyph truncated separately the way the pen moves. It ignores
// offsets and ink, so it is only a crude extent; use Engine.Measure for
// placement.
func (r GlyphRun) Advance() image.Point {
	var p image.Point
	for _, g := range r.Glyphs {
		p.X += Pixels(g.XAdvance)
		p.Y += Pixels(g.YAdvance)
	}
	return p
}
