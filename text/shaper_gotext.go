package text

import (
	"log/slog"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	gtlanguage "github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/text/language"

	"github.com/gogpu/fbtext/layout"
)

// GoTextShaper provides HarfBuzz-level text shaping using go-text/typesetting.
// It supports advanced OpenType features including:
//   - Ligature substitution (fi, fl, ffi, etc.)
//   - Kerning pairs (AV, To, etc.)
//   - Contextual forms (Arabic joining)
//   - Vertical layout for top-to-bottom runs
//
// GoTextShaper is safe for concurrent use. Parsed fonts are cached by their
// FontSource; a lightweight font.Face is created per Shape() call because
// font.Face is NOT safe for concurrent use. The HarfbuzzShaper instances are
// pooled via sync.Pool since they also are not concurrent-safe.
type GoTextShaper struct {
	// shaperPool pools HarfbuzzShaper instances for concurrent use.
	shaperPool sync.Pool
}

// NewGoTextShaper creates a new GoTextShaper backed by go-text/typesetting's
// HarfBuzz implementation.
func NewGoTextShaper() *GoTextShaper {
	return &GoTextShaper{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
	}
}

// Shape implements the Shaper interface. The glyphs come back in visual
// order: an RTL run starts with its leftmost glyph.
func (s *GoTextShaper) Shape(text string, face Face) (layout.GlyphRun, error) {
	if face == nil {
		return layout.GlyphRun{}, ErrNilFace
	}
	run := layout.GlyphRun{Direction: face.Direction()}
	if text == "" {
		return run, nil
	}

	goTextFont, err := face.Source().goTextFont()
	if err != nil {
		return run, err
	}

	runes := []rune(text)
	script := face.Script()
	if script == 0 {
		script = detectScript(runes)
	}

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: mapDirection(face.Direction()),
		Face:      font.NewFace(goTextFont),
		Size:      toFixed(face.Size()),
		Script:    script,
		Language:  mapLanguage(face.Language()),
	}

	hbShaper := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hbShaper.Shape(input)
	s.shaperPool.Put(hbShaper)

	run.Glyphs = make([]layout.GlyphPlacement, len(output.Glyphs))
	for i, g := range output.Glyphs {
		run.Glyphs[i] = layout.GlyphPlacement{
			GID:      layout.GlyphID(g.GlyphID),
			XAdvance: g.XAdvance,
			YAdvance: g.YAdvance,
			XOffset:  g.XOffset,
			YOffset:  g.YOffset,
			Cluster:  g.ClusterIndex,
		}
	}

	slogger().Debug("text: shaped",
		slog.String("direction", run.Direction.String()),
		slog.Any("script", script),
		slog.Int("runes", len(runes)),
		slog.Int("glyphs", len(run.Glyphs)))
	return run, nil
}

// mapDirection converts a layout.Direction to go-text's di.Direction.
func mapDirection(d layout.Direction) di.Direction {
	switch d {
	case layout.DirectionRTL:
		return di.DirectionRTL
	case layout.DirectionTTB:
		return di.DirectionTTB
	default:
		return di.DirectionLTR
	}
}

// mapLanguage converts a BCP 47 tag to a go-text language by its string
// form. go-text languages are lower-case BCP 47 strings.
func mapLanguage(tag language.Tag) gtlanguage.Language {
	return gtlanguage.NewLanguage(tag.String())
}

// detectScript inspects the runes and returns the script of the first
// letter with a real script. Common characters (digits, punctuation) and
// combining marks are skipped.
func detectScript(runes []rune) gtlanguage.Script {
	for _, r := range runes {
		sc := gtlanguage.LookupScript(r)
		if sc != gtlanguage.Common && sc != gtlanguage.Inherited && sc != gtlanguage.Unknown {
			return sc
		}
	}
	return gtlanguage.Latin
}
