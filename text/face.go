package text

import (
	gtlanguage "github.com/go-text/typesetting/language"
	"golang.org/x/text/language"

	"github.com/gogpu/fbtext/layout"
)

// Face represents a font face at a specific size, with the direction,
// language and script its text is shaped in.
// This is a lightweight object that can be created from a FontSource.
// Face is safe for concurrent use.
type Face interface {
	// Metrics returns the font metrics at this face's size.
	Metrics() Metrics

	// Direction returns the run direction for this face.
	Direction() layout.Direction

	// Language returns the language text is shaped for.
	Language() language.Tag

	// Script returns the fixed script, or 0 to detect it from the text.
	Script() gtlanguage.Script

	// Source returns the FontSource this face was created from.
	Source() *FontSource

	// Size returns the size of this face in pixels per em.
	Size() float64

	// Outline returns the glyph's outline at this face's size, in pixels
	// with y up. Glyphs that cannot be drawn as outlines return an error
	// wrapping layout.ErrInvalidGlyph or layout.ErrNotOutline.
	Outline(gid layout.GlyphID) (*GlyphOutline, error)

	// private prevents external implementation
	private()
}

// sourceFace is the internal implementation of Face.
type sourceFace struct {
	source *FontSource
	size   float64
	config faceConfig

	// cache is nil when disabled.
	cache *outlineCache
}

// Metrics implements Face.Metrics.
func (f *sourceFace) Metrics() Metrics {
	m := f.source.Parsed().Metrics(f.size)
	return Metrics(m)
}

// Direction implements Face.Direction.
func (f *sourceFace) Direction() layout.Direction {
	return f.config.direction
}

// Language implements Face.Language.
func (f *sourceFace) Language() language.Tag {
	return f.config.language
}

// Script implements Face.Script.
func (f *sourceFace) Script() gtlanguage.Script {
	return f.config.script
}

// Source implements Face.Source.
func (f *sourceFace) Source() *FontSource {
	return f.source
}

// Size implements Face.Size.
func (f *sourceFace) Size() float64 {
	return f.size
}

// Outline implements Face.Outline.
func (f *sourceFace) Outline(gid layout.GlyphID) (*GlyphOutline, error) {
	if f.source.isClosed() {
		return nil, ErrSourceClosed
	}
	if f.cache == nil {
		return f.loadOutline(gid)
	}
	r := f.cache.GetOrCreate(gid, func() outlineResult {
		o, err := f.loadOutline(gid)
		return outlineResult{outline: o, err: err}
	})
	return r.outline, r.err
}

func (f *sourceFace) loadOutline(gid layout.GlyphID) (*GlyphOutline, error) {
	s := f.source
	if int(gid) >= s.NumGlyphs() {
		return nil, layout.ErrInvalidGlyph
	}

	if s.OutlineSource() == OutlinesSFNT {
		return s.Parsed().GlyphOutline(gid, f.size)
	}

	data, upem, err := s.glyphData(gid)
	if err != nil {
		return nil, err
	}
	if upem <= 0 {
		return nil, ErrUnsupportedFontType
	}
	return outlineFromGlyphData(gid, data, float32(f.size)/float32(upem))
}

// private implements the Face interface.
func (f *sourceFace) private() {}
