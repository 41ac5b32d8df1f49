package raster

import (
	"image"
	"math"
)

var _ Sink = (*Accumulator)(nil)

// Accumulator is the measure sink. It records the extents touched by
// spans and pen positions, and writes no pixels.
//
// An Accumulator measures exactly one run; construct a fresh one per run.
type Accumulator struct {
	minX, maxX int
	minY, maxY int

	// inked is set by the first span; pens alone never produce ink.
	inked bool

	// pen is the last pen position received.
	pen    image.Point
	hasPen bool
}

// NewAccumulator returns an Accumulator with inverted (empty) extents.
func NewAccumulator() *Accumulator {
	return &Accumulator{
		minX: math.MaxInt,
		maxX: math.MinInt,
		minY: math.MaxInt,
		maxY: math.MinInt,
	}
}

// Span implements Sink. The x extent is exclusive (x+length), the y
// extent inclusive.
func (a *Accumulator) Span(y, x, length int, _ uint8) {
	if length <= 0 {
		return
	}
	a.inked = true
	a.minX = min(a.minX, x)
	a.maxX = max(a.maxX, x+length)
	a.minY = min(a.minY, y)
	a.maxY = max(a.maxY, y)
}

// Pen implements Sink.
func (a *Accumulator) Pen(x, y int) {
	a.minX = min(a.minX, x)
	a.maxX = max(a.maxX, x)
	a.minY = min(a.minY, y)
	a.maxY = max(a.maxY, y)
	a.pen = image.Pt(x, y)
	a.hasPen = true
}

func (*Accumulator) sink() {}

// Inked reports whether any span was received.
func (a *Accumulator) Inked() bool {
	return a.inked
}

// Box returns the accumulated box for a run that started at origin.
//
// Without any span the box degenerates to a zero-area box at the last
// pen position (the origin when no pen was seen either): whitespace-only
// and empty runs have no ink to justify.
func (a *Accumulator) Box(origin image.Point) BoundingBox {
	if !a.inked {
		p := origin
		if a.hasPen {
			p = a.pen
		}
		return BoundingBox{MinX: p.X, MaxX: p.X, MinY: p.Y, MaxY: p.Y, Origin: origin}
	}
	return BoundingBox{MinX: a.minX, MaxX: a.maxX, MinY: a.minY, MaxY: a.maxY, Origin: origin}
}

// BoundingBox is the measured extent of a run in framebuffer coordinates,
// together with the run origin it was measured from.
//
// MaxX is exclusive of ink, MaxY inclusive: a span on row MaxY ending at
// MaxX is the bottom-right-most ink a box can hold.
type BoundingBox struct {
	MinX, MaxX int
	MinY, MaxY int

	// Origin is the pen origin of the measured run.
	Origin image.Point
}

// Width returns MaxX - MinX.
func (b BoundingBox) Width() int {
	return b.MaxX - b.MinX
}

// Height returns MaxY - MinY.
func (b BoundingBox) Height() int {
	return b.MaxY - b.MinY
}

// Empty reports a box without ink. Callers treat it as "no visible
// ink", not as an error.
//
// Every span widens an inked box by at least one column, so only the
// degenerate box has zero width. MaxY is inclusive: a zero Height is one
// row of ink and does not make the box empty.
func (b BoundingBox) Empty() bool {
	return b.Width() == 0
}

// BaselineOffset returns the perpendicular distance from the run origin
// to the box's top-left corner.
//
// Horizontal runs: the ink height above the baseline (font-space max y).
// Vertical runs: the horizontal offset of the left edge from the origin.
func (b BoundingBox) BaselineOffset(o Orientation) int {
	if o == Vertical {
		return b.MinX - b.Origin.X
	}
	return b.Origin.Y - b.MinY
}

// BaselineShift returns the distance along the baseline from the run
// origin to the box's top-left corner.
//
// Horizontal runs: the offset of the left edge from the origin.
// Vertical runs: the ink height above the origin (font-space max y).
func (b BoundingBox) BaselineShift(o Orientation) int {
	if o == Vertical {
		return b.Origin.Y - b.MinY
	}
	return b.MinX - b.Origin.X
}

// TopLeft returns the top-left corner derived from the origin and the
// baseline fields. It always equals (MinX, MinY).
func (b BoundingBox) TopLeft(o Orientation) image.Point {
	if o == Vertical {
		return image.Pt(b.Origin.X+b.BaselineOffset(o), b.Origin.Y-b.BaselineShift(o))
	}
	return image.Pt(b.Origin.X+b.BaselineShift(o), b.Origin.Y-b.BaselineOffset(o))
}

// Translate moves the box and its origin by (dx, dy).
func (b BoundingBox) Translate(dx, dy int) BoundingBox {
	return BoundingBox{
		MinX:   b.MinX + dx,
		MaxX:   b.MaxX + dx,
		MinY:   b.MinY + dy,
		MaxY:   b.MaxY + dy,
		Origin: b.Origin.Add(image.Pt(dx, dy)),
	}
}

// Contains reports whether pixel (x, y) lies in [MinX, MaxX] x [MinY, MaxY].
func (b BoundingBox) Contains(x, y int) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

// Rect returns the pixels the box covers as a half-open image.Rectangle.
func (b BoundingBox) Rect() image.Rectangle {
	return image.Rect(b.MinX, b.MinY, b.MaxX, b.MaxY+1)
}
