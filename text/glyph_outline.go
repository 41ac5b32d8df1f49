package text

import (
	"fmt"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"

	"github.com/gogpu/fbtext/layout"
)

// OutlinePoint is a point of a glyph outline in pixels, y up from the
// baseline.
type OutlinePoint struct {
	X, Y float32
}

// OutlineSegment represents a segment of a glyph outline.
type OutlineSegment struct {
	// Op is the segment operation type.
	Op OutlineOp

	// Points contains the control and end points for this segment.
	// - MoveTo: Points[0] is the target point
	// - LineTo: Points[0] is the target point
	// - QuadTo: Points[0] is control, Points[1] is target
	// - CubicTo: Points[0], Points[1] are controls, Points[2] is target
	Points [3]OutlinePoint
}

// OutlineOp is the type of path operation.
type OutlineOp uint8

const (
	// OutlineOpMoveTo moves to a new point without drawing.
	OutlineOpMoveTo OutlineOp = iota

	// OutlineOpLineTo draws a line to the target point.
	OutlineOpLineTo

	// OutlineOpQuadTo draws a quadratic bezier curve.
	OutlineOpQuadTo

	// OutlineOpCubicTo draws a cubic bezier curve.
	OutlineOpCubicTo
)

// String returns a string representation of the operation.
func (op OutlineOp) String() string {
	switch op {
	case OutlineOpMoveTo:
		return "MoveTo"
	case OutlineOpLineTo:
		return "LineTo"
	case OutlineOpQuadTo:
		return "QuadTo"
	case OutlineOpCubicTo:
		return "CubicTo"
	default:
		return unknownStr
	}
}

// points returns how many of Points the operation uses.
func (op OutlineOp) points() int {
	switch op {
	case OutlineOpQuadTo:
		return 2
	case OutlineOpCubicTo:
		return 3
	default:
		return 1
	}
}

// end returns the point the segment finishes at.
func (s OutlineSegment) end() OutlinePoint {
	return s.Points[s.Op.points()-1]
}

// GlyphOutline is the vector outline of one glyph at a face's size. Its
// contours are closed by the rasterizer backend if the font leaves them
// open.
type GlyphOutline struct {
	// Segments is the list of path segments that make up the outline.
	Segments []OutlineSegment

	// Bounds covers every point of the outline, control points
	// included, so it also covers the curves.
	Bounds Rect

	// GID is the glyph ID this outline represents.
	GID layout.GlyphID
}

// IsEmpty returns true if the outline has no segments.
func (o *GlyphOutline) IsEmpty() bool {
	return o == nil || len(o.Segments) == 0
}

// computeBounds sets Bounds from the segments.
func (o *GlyphOutline) computeBounds() {
	var b Rect
	first := true
	for _, seg := range o.Segments {
		for _, p := range seg.Points[:seg.Op.points()] {
			b = b.union(float64(p.X), float64(p.Y), first)
			first = false
		}
	}
	o.Bounds = b
}

// outlineFromGlyphData converts go-text glyph data in font units to an
// outline in pixels. go-text outlines are already y up.
func outlineFromGlyphData(gid layout.GlyphID, data font.GlyphData, scale float32) (*GlyphOutline, error) {
	switch g := data.(type) {
	case font.GlyphOutline:
		o := &GlyphOutline{GID: gid, Segments: make([]OutlineSegment, 0, len(g.Segments))}
		for _, seg := range g.Segments {
			var out OutlineSegment
			switch seg.Op {
			case opentype.SegmentOpMoveTo:
				out.Op = OutlineOpMoveTo
			case opentype.SegmentOpLineTo:
				out.Op = OutlineOpLineTo
			case opentype.SegmentOpQuadTo:
				out.Op = OutlineOpQuadTo
			case opentype.SegmentOpCubeTo:
				out.Op = OutlineOpCubicTo
			}
			for i := range out.Op.points() {
				out.Points[i] = OutlinePoint{X: seg.Args[i].X * scale, Y: seg.Args[i].Y * scale}
			}
			o.Segments = append(o.Segments, out)
		}
		o.computeBounds()
		return o, nil
	case font.GlyphBitmap:
		return nil, fmt.Errorf("%w: bitmap glyph", layout.ErrNotOutline)
	case font.GlyphSVG:
		return nil, fmt.Errorf("%w: SVG glyph", layout.ErrNotOutline)
	case nil:
		return nil, layout.ErrInvalidGlyph
	default:
		return nil, fmt.Errorf("%w: %T", layout.ErrNotOutline, data)
	}
}
