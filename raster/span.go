// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

// Span is one run of constant coverage on one scanline.
//
// Rasterizers emit spans in glyph-local coordinates: X grows right and Y
// grows up from the baseline. Y names the top edge of the pixel row, so
// the row just above the baseline is Y = 1 and the one just below it is
// Y = 0. Sinks receive spans already translated to framebuffer
// coordinates.
type Span struct {
	Y        int
	X        int
	Len      int
	Coverage uint8
}

// End returns the first x past the span.
func (s Span) End() int {
	return s.X + s.Len
}

// Sink consumes spans and pen positions of one pass over a glyph run.
//
// The interface is sealed: Accumulator and Compositor are the only
// implementations.
type Sink interface {
	// Span receives a span at scanline y covering [x, x+length).
	Span(y, x, length int, coverage uint8)

	// Pen receives every pen position the run passes through, including
	// the run origin and the terminal position.
	Pen(x, y int)

	sink()
}

// Orientation tells which axis a run advances along.
type Orientation uint8

const (
	// Horizontal runs advance along x (LTR and RTL scripts).
	Horizontal Orientation = iota
	// Vertical runs advance along y (TTB scripts).
	Vertical
)

// String returns the orientation name.
func (o Orientation) String() string {
	if o == Vertical {
		return "Vertical"
	}
	return "Horizontal"
}
