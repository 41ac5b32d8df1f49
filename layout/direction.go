package layout

import (
	"strings"

	"github.com/gogpu/fbtext/raster"
)

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// Direction specifies the direction a run advances in.
type Direction int

const (
	// DirectionLTR is left-to-right text (English, Russian, etc.)
	DirectionLTR Direction = iota
	// DirectionRTL is right-to-left text (Arabic, Hebrew)
	DirectionRTL
	// DirectionTTB is top-to-bottom text (traditional Chinese, Japanese)
	DirectionTTB
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionLTR:
		return "LTR"
	case DirectionRTL:
		return "RTL"
	case DirectionTTB:
		return "TTB"
	default:
		return unknownStr
	}
}

// IsVertical returns true if the direction advances along y.
func (d Direction) IsVertical() bool {
	return d == DirectionTTB
}

// Orientation returns the axis the direction advances along.
func (d Direction) Orientation() raster.Orientation {
	if d.IsVertical() {
		return raster.Vertical
	}
	return raster.Horizontal
}

// ParseDirection maps "ltr", "rtl" or "ttb" (any case) to a Direction.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(s) {
	case "ltr":
		return DirectionLTR, true
	case "rtl":
		return DirectionRTL, true
	case "ttb":
		return DirectionTTB, true
	}
	return DirectionLTR, false
}

// Justification is where a run is placed inside its line slot.
type Justification int

const (
	// JustifyLeft places the run at the left margin.
	JustifyLeft Justification = iota
	// JustifyRight places the run against the right margin.
	JustifyRight
	// JustifyCenter centers the run in the slot.
	JustifyCenter
)

// String returns the string representation of the justification.
func (j Justification) String() string {
	switch j {
	case JustifyLeft:
		return "Left"
	case JustifyRight:
		return "Right"
	case JustifyCenter:
		return "Center"
	default:
		return unknownStr
	}
}

// justifications is keyed by direction. Any script is justified by the
// direction it is shaped in.
var justifications = map[Direction]Justification{
	DirectionLTR: JustifyLeft,
	DirectionRTL: JustifyRight,
	DirectionTTB: JustifyCenter,
}

// Justification returns the justification used for runs in direction d.
// Unknown directions are left-justified.
func (d Direction) Justification() Justification {
	if j, ok := justifications[d]; ok {
		return j
	}
	return JustifyLeft
}
