package text

import (
	"errors"
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/fbtext/layout"
)

// ximageParser implements FontParser using golang.org/x/image/font/opentype.
type ximageParser struct{}

// Parse implements FontParser.Parse.
func (p *ximageParser) Parse(data []byte) (ParsedFont, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	return &ximageParsedFont{font: f}, nil
}

// ximageParsedFont implements ParsedFont using sfnt.Font. sfnt.Font is
// safe for concurrent use as long as every call gets its own Buffer.
type ximageParsedFont struct {
	font *sfnt.Font
}

// Name implements ParsedFont.Name.
func (f *ximageParsedFont) Name() string {
	if name, err := f.font.Name(nil, sfnt.NameIDFamily); err == nil {
		return name
	}
	return ""
}

// FullName implements ParsedFont.FullName.
func (f *ximageParsedFont) FullName() string {
	if name, err := f.font.Name(nil, sfnt.NameIDFull); err == nil {
		return name
	}
	return ""
}

// NumGlyphs implements ParsedFont.NumGlyphs.
func (f *ximageParsedFont) NumGlyphs() int {
	return f.font.NumGlyphs()
}

// UnitsPerEm implements ParsedFont.UnitsPerEm.
func (f *ximageParsedFont) UnitsPerEm() int {
	return int(f.font.UnitsPerEm())
}

// GlyphIndex implements ParsedFont.GlyphIndex.
func (f *ximageParsedFont) GlyphIndex(r rune) layout.GlyphID {
	idx, err := f.font.GlyphIndex(nil, r)
	if err != nil {
		return 0
	}
	return layout.GlyphID(idx)
}

// GlyphAdvance implements ParsedFont.GlyphAdvance.
func (f *ximageParsedFont) GlyphAdvance(gid layout.GlyphID, ppem float64) fixed.Int26_6 {
	var buf sfnt.Buffer
	adv, err := f.font.GlyphAdvance(&buf, sfnt.GlyphIndex(gid), toFixed(ppem), font.HintingNone) //nolint:gosec // gid checked by sfnt
	if err != nil {
		return 0
	}
	return adv
}

// Kern implements ParsedFont.Kern.
func (f *ximageParsedFont) Kern(left, right layout.GlyphID, ppem float64) fixed.Int26_6 {
	var buf sfnt.Buffer
	k, err := f.font.Kern(&buf, sfnt.GlyphIndex(left), sfnt.GlyphIndex(right), toFixed(ppem), font.HintingNone) //nolint:gosec // gids checked by sfnt
	if err != nil {
		return 0
	}
	return k
}

// Metrics implements ParsedFont.Metrics.
func (f *ximageParsedFont) Metrics(ppem float64) FontMetrics {
	var buf sfnt.Buffer
	m, err := f.font.Metrics(&buf, toFixed(ppem), font.HintingNone)
	if err != nil {
		return FontMetrics{}
	}
	return FontMetrics{
		Ascent:    fixedToFloat64(m.Ascent),
		Descent:   fixedToFloat64(m.Descent),
		LineGap:   fixedToFloat64(m.Height - m.Ascent - m.Descent),
		XHeight:   fixedToFloat64(m.XHeight),
		CapHeight: fixedToFloat64(m.CapHeight),
	}
}

// GlyphOutline implements ParsedFont.GlyphOutline. sfnt hands out
// segments in pixels with y down; they are flipped to y up here.
func (f *ximageParsedFont) GlyphOutline(gid layout.GlyphID, ppem float64) (*GlyphOutline, error) {
	if int(gid) >= f.font.NumGlyphs() {
		return nil, layout.ErrInvalidGlyph
	}
	var buf sfnt.Buffer
	segs, err := f.font.LoadGlyph(&buf, sfnt.GlyphIndex(gid), toFixed(ppem), nil) //nolint:gosec // range checked above
	switch {
	case errors.Is(err, sfnt.ErrNotFound):
		return nil, fmt.Errorf("%w: %w", layout.ErrInvalidGlyph, err)
	case errors.Is(err, sfnt.ErrColoredGlyph):
		return nil, fmt.Errorf("%w: %w", layout.ErrNotOutline, err)
	case err != nil:
		return nil, fmt.Errorf("text: load glyph %d: %w", gid, err)
	}

	o := &GlyphOutline{GID: gid, Segments: make([]OutlineSegment, 0, len(segs))}
	for _, seg := range segs {
		var out OutlineSegment
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			out.Op = OutlineOpMoveTo
		case sfnt.SegmentOpLineTo:
			out.Op = OutlineOpLineTo
		case sfnt.SegmentOpQuadTo:
			out.Op = OutlineOpQuadTo
		case sfnt.SegmentOpCubeTo:
			out.Op = OutlineOpCubicTo
		}
		for i := range out.Op.points() {
			out.Points[i] = OutlinePoint{
				X: float32(seg.Args[i].X) / 64,
				Y: -float32(seg.Args[i].Y) / 64,
			}
		}
		o.Segments = append(o.Segments, out)
	}
	o.computeBounds()
	return o, nil
}

// toFixed converts a pixel size to fixed.Int26_6.
func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat64 converts fixed.Int26_6 to float64.
func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}
