package layout

import (
	"errors"
	"fmt"
)

// Sentinel errors for glyph lookup failures.
var (
	// ErrInvalidGlyph is returned for a glyph id the font does not have.
	ErrInvalidGlyph = errors.New("layout: invalid glyph id")

	// ErrNotOutline is returned for glyphs stored in a non-outline format
	// (bitmap strikes, SVG documents, color layers).
	ErrNotOutline = errors.New("layout: glyph has no outline")
)

// GlyphLookupError reports a glyph that could not be rasterized. The
// engine skips such glyphs but still applies their advance.
type GlyphLookupError struct {
	GID GlyphID
	Err error
}

func (e *GlyphLookupError) Error() string {
	return fmt.Sprintf("layout: glyph %d: %v", e.GID, e.Err)
}

// Unwrap returns the underlying error.
func (e *GlyphLookupError) Unwrap() error {
	return e.Err
}
