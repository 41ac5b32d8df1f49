package text

import (
	"sync"

	"github.com/gogpu/fbtext/layout"
)

// Shaper converts text to a shaped glyph run.
// Implementations provide different levels of text shaping support:
//   - GoTextShaper: HarfBuzz shaping through go-text/typesetting (default)
//   - BuiltinShaper: advances and kerning from golang.org/x/image/font/sfnt
//     for scripts that need no contextual shaping
type Shaper interface {
	// Shape converts text into a glyph run using the given face. The
	// size, direction, language and script come from the face.
	Shape(text string, face Face) (layout.GlyphRun, error)
}

var (
	shaperMu     sync.RWMutex
	globalShaper Shaper = NewGoTextShaper()
)

// SetShaper sets the global shaper used by Shape().
// Pass nil to reset to the default GoTextShaper.
func SetShaper(s Shaper) {
	shaperMu.Lock()
	defer shaperMu.Unlock()
	if s == nil {
		s = NewGoTextShaper()
	}
	globalShaper = s
}

// GetShaper returns the current global shaper.
func GetShaper() Shaper {
	shaperMu.RLock()
	defer shaperMu.RUnlock()
	return globalShaper
}

// Shape is a convenience function that uses the global shaper.
func Shape(text string, face Face) (layout.GlyphRun, error) {
	return GetShaper().Shape(text, face)
}
