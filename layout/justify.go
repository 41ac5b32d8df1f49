package layout

import (
	"image"

	"github.com/gogpu/fbtext/raster"
)

// Margins are the horizontal insets of a line slot, in pixels.
type Margins struct {
	Left, Right int
}

// DefaultMargins are 20 px on both sides.
var DefaultMargins = Margins{Left: 20, Right: 20}

// Anchor returns the starting pen x of a run measured as box, relative to
// the left edge of a slot destWidth pixels wide. The run's direction picks
// the justification.
//
// Only the box width is used, so box may be measured at any origin.
func Anchor(dir Direction, box raster.BoundingBox, destWidth int, m Margins) int {
	switch dir.Justification() {
	case JustifyRight:
		return destWidth - box.Width() - m.Right
	case JustifyCenter:
		return destWidth/2 - box.Width()/2
	default:
		return m.Left
	}
}

// Origin returns the pen origin that places the run inside slot. The
// slot's top edge is the line baseline; its width is the destination
// width handed to Anchor.
func Origin(dir Direction, box raster.BoundingBox, slot image.Rectangle, m Margins) image.Point {
	return image.Pt(slot.Min.X+Anchor(dir, box, slot.Dx(), m), slot.Min.Y)
}
