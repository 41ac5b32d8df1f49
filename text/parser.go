package text

import (
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/fbtext/layout"
)

// FontParser is an interface for font parsing backends.
// This abstraction allows swapping the font parsing library.
//
// The default implementation uses golang.org/x/image/font/opentype.
type FontParser interface {
	// Parse parses font data (TTF or OTF) and returns a ParsedFont.
	Parse(data []byte) (ParsedFont, error)
}

// ParsedFont represents a parsed font file. Sizes are in pixels per em.
//
// Implementations must be safe for concurrent use.
type ParsedFont interface {
	// Name returns the font family name, or "" if not available.
	Name() string

	// FullName returns the full font name, or "" if not available.
	FullName() string

	// NumGlyphs returns the number of glyphs in the font.
	NumGlyphs() int

	// UnitsPerEm returns the units per em for the font.
	UnitsPerEm() int

	// GlyphIndex returns the glyph index for a rune, 0 if not found.
	GlyphIndex(r rune) layout.GlyphID

	// GlyphAdvance returns the horizontal advance of a glyph.
	GlyphAdvance(gid layout.GlyphID, ppem float64) fixed.Int26_6

	// Kern returns the kerning adjustment between two glyphs, 0 if the
	// font has none.
	Kern(left, right layout.GlyphID, ppem float64) fixed.Int26_6

	// Metrics returns the font metrics at the given size.
	Metrics(ppem float64) FontMetrics

	// GlyphOutline returns the outline of a glyph in pixels, y up.
	GlyphOutline(gid layout.GlyphID, ppem float64) (*GlyphOutline, error)
}

// FontMetrics holds font-level metrics at a specific size.
type FontMetrics struct {
	// Ascent is the distance from the baseline to the top of the font.
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the
	// font, positive below the baseline.
	Descent float64

	// LineGap is the recommended line gap between lines.
	LineGap float64

	// XHeight is the height of lowercase letters (like 'x').
	XHeight float64

	// CapHeight is the height of uppercase letters.
	CapHeight float64
}

// parserRegistry holds registered font parsers.
var parserRegistry = map[string]FontParser{
	defaultParserName: &ximageParser{},
}

// defaultParserName is the name of the default parser.
const defaultParserName = "ximage"

// RegisterParser registers a custom font parser.
func RegisterParser(name string, parser FontParser) {
	parserRegistry[name] = parser
}

// getParser returns the parser by name, or the default if not found.
func getParser(name string) FontParser {
	if p, ok := parserRegistry[name]; ok {
		return p
	}
	return parserRegistry[defaultParserName]
}
