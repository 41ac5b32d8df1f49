package text

import (
	"slices"

	"golang.org/x/image/math/fixed"

	"github.com/gogpu/fbtext/layout"
)

// BuiltinShaper provides text shaping using golang.org/x/image/font/sfnt.
// It maps runes to glyphs one by one and applies pair kerning, which is
// enough for Latin, Cyrillic, Greek and CJK text.
//
// It does no contextual shaping: Arabic comes out in isolated forms and
// without marks positioning. Use GoTextShaper for such scripts.
//
// Direction handling is mechanical:
//   - RTL runs are emitted in reverse rune order, so they read right to
//     left when painted left to right.
//   - TTB runs advance down by ascent + descent per glyph, each glyph
//     centered on the pen's x and hung below the pen by its ascent.
//
// BuiltinShaper is stateless and safe for concurrent use.
type BuiltinShaper struct{}

// Shape implements the Shaper interface.
func (s *BuiltinShaper) Shape(text string, face Face) (layout.GlyphRun, error) {
	if face == nil {
		return layout.GlyphRun{}, ErrNilFace
	}
	run := layout.GlyphRun{Direction: face.Direction()}
	if text == "" {
		return run, nil
	}

	parsed := face.Source().Parsed()
	size := face.Size()
	dir := face.Direction()

	var ascent, lineAdvance fixed.Int26_6
	if dir.IsVertical() {
		m := face.Metrics()
		ascent = toFixed(m.Ascent)
		lineAdvance = toFixed(m.VerticalAdvance())
	}

	runes := []rune(text)
	run.Glyphs = make([]layout.GlyphPlacement, 0, len(runes))

	var prev layout.GlyphID
	for cluster, r := range runes {
		gid := parsed.GlyphIndex(r)
		adv := parsed.GlyphAdvance(gid, size)

		g := layout.GlyphPlacement{GID: gid, Cluster: cluster}
		if dir.IsVertical() {
			g.YAdvance = -lineAdvance
			g.XOffset = -adv / 2
			g.YOffset = -ascent
		} else {
			g.XAdvance = adv
			if cluster > 0 {
				// Kerning adjusts the advance of the previous glyph.
				run.Glyphs[cluster-1].XAdvance += parsed.Kern(prev, gid, size)
			}
		}
		run.Glyphs = append(run.Glyphs, g)
		prev = gid
	}

	if dir == layout.DirectionRTL {
		slices.Reverse(run.Glyphs)
	}
	return run, nil
}
