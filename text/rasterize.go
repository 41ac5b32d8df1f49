package text

import (
	"image"
	"image/draw"
	"math"
	"strings"

	ftraster "github.com/golang/freetype/raster"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/fbtext/layout"
	"github.com/gogpu/fbtext/raster"
)

// Backend fills glyph outlines into coverage spans.
//
// Fill calls emit for every span of o in glyph-local coordinates (see
// raster.Span) and returns when the outline is done. Spans with zero
// coverage are not emitted. Backends keep scratch buffers between calls
// and are not safe for concurrent use.
type Backend interface {
	Fill(o *GlyphOutline, emit func(raster.Span))
}

// BackendKind names a Backend implementation.
type BackendKind int

const (
	// BackendSpan is the scanline rasterizer of github.com/golang/freetype,
	// which produces spans directly. This is the default.
	BackendSpan BackendKind = iota

	// BackendMask rasterizes into an alpha mask with
	// golang.org/x/image/vector and run-length encodes its rows.
	BackendMask
)

// String returns the string representation of the backend kind.
func (k BackendKind) String() string {
	switch k {
	case BackendSpan:
		return "freetype"
	case BackendMask:
		return "vector"
	default:
		return unknownStr
	}
}

// ParseBackend maps "freetype" (or "span") and "vector" (or "mask") to a
// BackendKind.
func ParseBackend(s string) (BackendKind, bool) {
	switch strings.ToLower(s) {
	case "freetype", "span":
		return BackendSpan, true
	case "vector", "mask":
		return BackendMask, true
	}
	return BackendSpan, false
}

// NewBackend returns a new backend of kind k. Unknown kinds get the span
// backend.
func NewBackend(k BackendKind) Backend {
	if k == BackendMask {
		return NewMaskBackend()
	}
	return NewSpanBackend()
}

// pixelBox is the integer pixel area an outline is rasterized in. Raster
// row r holds the pixels whose top edge is at font-space y = top - r.
type pixelBox struct {
	left, top int
	w, h      int
}

func boxOf(o *GlyphOutline) (pixelBox, bool) {
	b := o.Bounds
	left := int(math.Floor(b.MinX))
	top := int(math.Ceil(b.MaxY))
	w := int(math.Ceil(b.MaxX)) - left
	h := top - int(math.Floor(b.MinY))
	return pixelBox{left: left, top: top, w: w, h: h}, w > 0 && h > 0
}

// toRaster converts an outline point to raster coordinates, y down.
func (p pixelBox) toRaster(pt OutlinePoint) (x, y float64) {
	return float64(pt.X) - float64(p.left), float64(p.top) - float64(pt.Y)
}

// span converts a raster row span to a glyph-local span.
func (p pixelBox) span(row, x0, x1 int, coverage uint8) raster.Span {
	return raster.Span{Y: p.top - row, X: p.left + x0, Len: x1 - x0, Coverage: coverage}
}

// SpanBackend is a Backend on the freetype scanline rasterizer.
type SpanBackend struct {
	r *ftraster.Rasterizer
}

// NewSpanBackend returns a SpanBackend.
func NewSpanBackend() *SpanBackend {
	r := ftraster.NewRasterizer(0, 0)
	r.UseNonZeroWinding = true
	return &SpanBackend{r: r}
}

// Fill implements Backend.
func (b *SpanBackend) Fill(o *GlyphOutline, emit func(raster.Span)) {
	if o.IsEmpty() {
		return
	}
	box, ok := boxOf(o)
	if !ok {
		return
	}
	r := b.r
	r.SetBounds(box.w, box.h)
	r.Clear()

	fix := func(pt OutlinePoint) fixed.Point26_6 {
		x, y := box.toRaster(pt)
		return fixed.Point26_6{
			X: fixed.Int26_6(math.Round(x * 64)),
			Y: fixed.Int26_6(math.Round(y * 64)),
		}
	}

	// Contours are closed explicitly; the rasterizer does not.
	var start, pen fixed.Point26_6
	open := false
	for _, seg := range o.Segments {
		switch seg.Op {
		case OutlineOpMoveTo:
			if open && pen != start {
				r.Add1(start)
			}
			start = fix(seg.Points[0])
			pen = start
			open = true
			r.Start(start)
			continue
		case OutlineOpLineTo:
			r.Add1(fix(seg.Points[0]))
		case OutlineOpQuadTo:
			r.Add2(fix(seg.Points[0]), fix(seg.Points[1]))
		case OutlineOpCubicTo:
			r.Add3(fix(seg.Points[0]), fix(seg.Points[1]), fix(seg.Points[2]))
		}
		pen = fix(seg.end())
	}
	if open && pen != start {
		r.Add1(start)
	}

	r.Rasterize(ftraster.PainterFunc(func(ss []ftraster.Span, _ bool) {
		for _, s := range ss {
			c := uint8(s.Alpha >> 8) //nolint:gosec // Alpha is at most 0xffff
			if c == 0 || s.X1 <= s.X0 {
				continue
			}
			emit(box.span(s.Y, s.X0, s.X1, c))
		}
	}))
}

// MaskBackend is a Backend on golang.org/x/image/vector. It rasterizes
// into an alpha mask and emits each row as runs of equal coverage.
type MaskBackend struct {
	z    *vector.Rasterizer
	mask *image.Alpha
}

// NewMaskBackend returns a MaskBackend.
func NewMaskBackend() *MaskBackend {
	return &MaskBackend{z: vector.NewRasterizer(0, 0)}
}

// Fill implements Backend.
func (b *MaskBackend) Fill(o *GlyphOutline, emit func(raster.Span)) {
	if o.IsEmpty() {
		return
	}
	box, ok := boxOf(o)
	if !ok {
		return
	}
	z := b.z
	z.Reset(box.w, box.h)
	z.DrawOp = draw.Src

	pt := func(p OutlinePoint) (float32, float32) {
		x, y := box.toRaster(p)
		return float32(x), float32(y)
	}
	open := false
	for _, seg := range o.Segments {
		switch seg.Op {
		case OutlineOpMoveTo:
			if open {
				z.ClosePath()
			}
			z.MoveTo(pt(seg.Points[0]))
			open = true
		case OutlineOpLineTo:
			z.LineTo(pt(seg.Points[0]))
		case OutlineOpQuadTo:
			cx, cy := pt(seg.Points[0])
			tx, ty := pt(seg.Points[1])
			z.QuadTo(cx, cy, tx, ty)
		case OutlineOpCubicTo:
			c1x, c1y := pt(seg.Points[0])
			c2x, c2y := pt(seg.Points[1])
			tx, ty := pt(seg.Points[2])
			z.CubeTo(c1x, c1y, c2x, c2y, tx, ty)
		}
	}
	if open {
		z.ClosePath()
	}

	mask := b.alpha(box.w, box.h)
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	for row := 0; row < box.h; row++ {
		line := mask.Pix[row*mask.Stride : row*mask.Stride+box.w]
		for x0 := 0; x0 < len(line); {
			a := line[x0]
			x1 := x0 + 1
			for x1 < len(line) && line[x1] == a {
				x1++
			}
			if a != 0 {
				emit(box.span(row, x0, x1, a))
			}
			x0 = x1
		}
	}
}

// alpha returns a cleared w x h mask, reusing the previous buffer when it
// is large enough.
func (b *MaskBackend) alpha(w, h int) *image.Alpha {
	if b.mask == nil || cap(b.mask.Pix) < w*h {
		b.mask = image.NewAlpha(image.Rect(0, 0, w, h))
		return b.mask
	}
	b.mask.Pix = b.mask.Pix[:w*h]
	clear(b.mask.Pix)
	b.mask.Stride = w
	b.mask.Rect = image.Rect(0, 0, w, h)
	return b.mask
}

var _ layout.GlyphRasterizer = (*Rasterizer)(nil)

// Rasterizer renders glyphs of one face through a Backend. It is the
// layout.GlyphRasterizer for real fonts.
type Rasterizer struct {
	face    Face
	backend Backend
}

// NewRasterizer returns a Rasterizer for face. A nil backend selects the
// span backend.
func NewRasterizer(face Face, backend Backend) *Rasterizer {
	if backend == nil {
		backend = NewSpanBackend()
	}
	return &Rasterizer{face: face, backend: backend}
}

// RasterizeGlyph implements layout.GlyphRasterizer. Without a face every
// glyph fails with ErrNilFace.
func (r *Rasterizer) RasterizeGlyph(gid layout.GlyphID, emit func(raster.Span)) error {
	if r.face == nil {
		return &layout.GlyphLookupError{GID: gid, Err: ErrNilFace}
	}
	o, err := r.face.Outline(gid)
	if err != nil {
		return &layout.GlyphLookupError{GID: gid, Err: err}
	}
	r.backend.Fill(o, emit)
	return nil
}
