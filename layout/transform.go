package layout

import (
	"image"

	"golang.org/x/image/math/fixed"

	"github.com/gogpu/fbtext/raster"
)

// The functions in this file are the only place font space (y up, 26.6
// fixed point) meets framebuffer space (y down, whole pixels). The measure
// and paint passes both go through them.

// Pixels converts a 26.6 value to whole pixels, truncating toward zero.
func Pixels(v fixed.Int26_6) int {
	return int(v / 64)
}

// GlyphOrigin returns where a glyph's baseline origin lands in the
// framebuffer when the pen is at pen. The vertical offset flips sign.
func GlyphOrigin(pen image.Point, g GlyphPlacement) image.Point {
	return image.Point{
		X: pen.X + Pixels(g.XOffset),
		Y: pen.Y - Pixels(g.YOffset),
	}
}

// Advance returns the pen position after g. The vertical advance flips
// sign: a top-to-bottom run has negative font-space y advances and moves
// the pen down the framebuffer.
func Advance(pen image.Point, g GlyphPlacement) image.Point {
	return image.Point{
		X: pen.X + Pixels(g.XAdvance),
		Y: pen.Y - Pixels(g.YAdvance),
	}
}

// SpanToFramebuffer translates a glyph-local span to the framebuffer for a
// glyph whose origin is at origin.
func SpanToFramebuffer(origin image.Point, s raster.Span) raster.Span {
	s.X += origin.X
	s.Y = origin.Y - s.Y
	return s
}
