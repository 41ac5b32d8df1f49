package text

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// Rect is an axis-aligned rectangle in pixels, y up.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.MaxX - r.MinX
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.MaxY - r.MinY
}

// Empty reports whether the rectangle is empty.
func (r Rect) Empty() bool {
	return r.MinX >= r.MaxX || r.MinY >= r.MaxY
}

// union returns the smallest rectangle containing r and the point (x, y).
// The zero Rect is treated as no rectangle at all when first is true.
func (r Rect) union(x, y float64, first bool) Rect {
	if first {
		return Rect{MinX: x, MinY: y, MaxX: x, MaxY: y}
	}
	return Rect{
		MinX: min(r.MinX, x),
		MinY: min(r.MinY, y),
		MaxX: max(r.MaxX, x),
		MaxY: max(r.MaxY, y),
	}
}
