package raster

import (
	"encoding/binary"
	"image"
	"strings"

	"github.com/gogpu/fbtext/framebuffer"
)

// Policy selects how a Compositor combines coverage with existing pixels.
// It is chosen per deployment, not per span.
type Policy uint8

const (
	// Accumulate ORs the packed coverage into the destination pixel.
	// Overlapping glyphs (cursive joins, marks) never darken each other.
	// This is the default.
	Accumulate Policy = iota

	// Overwrite stores the packed coverage without reading the
	// destination. Suitable for write-only mapped buffers; overlapping
	// glyphs leave dark seams.
	Overwrite
)

// String returns the policy name.
func (p Policy) String() string {
	switch p {
	case Accumulate:
		return "Accumulate"
	case Overwrite:
		return "Overwrite"
	default:
		return unknownStr
	}
}

// ParsePolicy maps a policy name, case-insensitive, to a Policy. The
// short forms "rw" and "wo" name Accumulate and Overwrite.
func ParsePolicy(s string) (Policy, bool) {
	switch strings.ToLower(s) {
	case "accumulate", "rw":
		return Accumulate, true
	case "overwrite", "wo":
		return Overwrite, true
	}
	return Accumulate, false
}

const unknownStr = "Unknown"

var _ Sink = (*Compositor)(nil)

// Compositor is the paint sink. It writes spans into a framebuffer.View.
//
// Every write is bounds checked against the view: a scanline above the
// first or below the last row is skipped, and a span whose end address
// would pass the last pixel byte of the buffer is dropped whole. A span
// that crosses the left or right edge of the view is truncated to the
// visible columns instead of dropped, on every row including the last,
// so glyphs at the edges keep their visible ink. It never wraps into the
// next row. No byte outside the view is ever touched. Clipped counts
// every span that lost pixels.
type Compositor struct {
	view   framebuffer.View
	policy Policy

	limit   int
	clipped int
}

// NewCompositor returns a Compositor painting into v. The view is used for
// the lifetime of the Compositor only; build a new one per frame.
func NewCompositor(v framebuffer.View, p Policy) *Compositor {
	return &Compositor{view: v, policy: p, limit: v.Limit()}
}

// Policy returns the composite policy.
func (c *Compositor) Policy() Policy {
	return c.policy
}

// Clipped returns the number of spans dropped or cut by bounds checks.
func (c *Compositor) Clipped() int {
	return c.clipped
}

// Span implements Sink. The pixel value is coverage/2 in each of R, G, B.
func (c *Compositor) Span(y, x, length int, coverage uint8) {
	if length <= 0 {
		return
	}
	v := c.view
	if y < 0 || y >= v.Height {
		c.clipped++
		return
	}
	x0, x1, ok := clipRow(x, length, v.Width)
	if !ok {
		c.clipped++
		return
	}
	if x1-x0 != length {
		c.clipped++
	}

	row := y * v.Pitch
	start := row + x0*framebuffer.BytesPerPixel
	end := row + x1*framebuffer.BytesPerPixel
	if start < 0 || end > c.limit {
		c.clipped++
		return
	}

	px := v.Channels.Gray(coverage / 2)
	pix := v.Pix[start:end]
	switch c.policy {
	case Overwrite:
		for i := 0; i < len(pix); i += framebuffer.BytesPerPixel {
			binary.LittleEndian.PutUint32(pix[i:], px)
		}
	default:
		for i := 0; i < len(pix); i += framebuffer.BytesPerPixel {
			binary.LittleEndian.PutUint32(pix[i:], binary.LittleEndian.Uint32(pix[i:])|px)
		}
	}
}

// Pen implements Sink. Pen positions carry no ink.
func (*Compositor) Pen(int, int) {}

func (*Compositor) sink() {}

// Frame paints the one pixel outline of r with the given coverage, for
// decoration boxes around measured runs.
func (c *Compositor) Frame(r image.Rectangle, coverage uint8) {
	r = r.Canon()
	if r.Empty() {
		return
	}
	c.Span(r.Min.Y, r.Min.X, r.Dx(), coverage)
	if r.Dy() > 1 {
		c.Span(r.Max.Y-1, r.Min.X, r.Dx(), coverage)
	}
	for y := r.Min.Y + 1; y < r.Max.Y-1; y++ {
		c.Span(y, r.Min.X, 1, coverage)
		if r.Dx() > 1 {
			c.Span(y, r.Max.X-1, 1, coverage)
		}
	}
}

// clipRow cuts [x, x+length) to [0, width) without overflowing for any
// int inputs.
func clipRow(x, length, width int) (x0, x1 int, ok bool) {
	if length <= 0 || x >= width {
		return 0, 0, false
	}
	if x < 0 {
		if x <= -length {
			return 0, 0, false
		}
		length += x
		x = 0
	}
	if length > width-x {
		length = width - x
	}
	return x, x + length, true
}
