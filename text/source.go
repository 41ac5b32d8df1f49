package text

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	"github.com/go-text/typesetting/font"

	"github.com/gogpu/fbtext/layout"
)

// FontSource represents a loaded font file.
// One FontSource can create multiple Face instances at different sizes.
// FontSource is heavyweight and should be shared across the application.
//
// FontSource is safe for concurrent use.
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr is used for copy protection (Ebitengine pattern).
	// It must point to the FontSource itself.
	addr *FontSource

	data   []byte
	parsed ParsedFont
	name   string
	config sourceConfig

	// mu protects the go-text font and face below, and data on Close.
	mu sync.Mutex

	// gtFont is parsed on first use. font.Font is read-only and safe for
	// concurrent use; gtFace is not and is only used under mu.
	gtFont *font.Font
	gtFace *font.Face
	gtErr  error
	closed bool
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	parsed, err := getParser(config.parserName).Parse(data)
	if err != nil {
		return nil, err
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	s := &FontSource{
		data:   dataCopy,
		parsed: parsed,
		config: config,
	}
	s.addr = s
	s.name = extractFontName(parsed)

	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}

	return NewFontSource(data, opts...)
}

// Face creates a Face at the specified size in pixels per em.
// Panics if s is nil (e.g. when NewFontSourceFromFile error was ignored).
func (s *FontSource) Face(size float64, opts ...FaceOption) Face {
	if s == nil {
		panic("text: FontSource is nil, did you check the error from NewFontSourceFromFile?")
	}
	s.copyCheck()

	config := defaultFaceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	f := &sourceFace{
		source: s,
		size:   size,
		config: config,
	}
	if s.config.cacheLimit >= 0 {
		f.cache = NewCache[layout.GlyphID, outlineResult](s.config.cacheLimit)
	}
	return f
}

// Name returns the font name.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// Parsed returns the parsed font.
func (s *FontSource) Parsed() ParsedFont {
	s.copyCheck()
	return s.parsed
}

// NumGlyphs returns the number of glyphs in the font.
func (s *FontSource) NumGlyphs() int {
	return s.Parsed().NumGlyphs()
}

// UnitsPerEm returns the font's design units per em.
func (s *FontSource) UnitsPerEm() int {
	return s.Parsed().UnitsPerEm()
}

// OutlineSource returns where faces of this source read outlines from.
func (s *FontSource) OutlineSource() OutlineSource {
	return s.config.outlines
}

// Close releases the font data. Faces created from this source report
// ErrSourceClosed from then on.
func (s *FontSource) Close() error {
	s.copyCheck()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = nil
	s.gtFont = nil
	s.gtFace = nil
	s.gtErr = ErrSourceClosed
	s.closed = true
	return nil
}

// isClosed reports whether Close was called.
func (s *FontSource) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// goTextFont returns the go-text font, parsing it on first use.
func (s *FontSource) goTextFont() (*font.Font, error) {
	s.copyCheck()

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loadGoTextLocked(); err != nil {
		return nil, err
	}
	return s.gtFont, nil
}

// glyphData looks up a glyph through go-text and returns it together
// with the font's units per em.
func (s *FontSource) glyphData(gid layout.GlyphID) (font.GlyphData, int, error) {
	s.copyCheck()

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loadGoTextLocked(); err != nil {
		return nil, 0, err
	}
	if s.gtFace == nil {
		s.gtFace = font.NewFace(s.gtFont)
	}
	return s.gtFace.GlyphData(font.GID(gid)), int(s.gtFace.Upem()), nil
}

func (s *FontSource) loadGoTextLocked() error {
	if s.gtFont != nil || s.gtErr != nil {
		return s.gtErr
	}
	// ParseTTF returns a *Face which embeds the thread-safe *Font.
	face, err := font.ParseTTF(bytes.NewReader(s.data))
	if err != nil {
		s.gtErr = fmt.Errorf("text: go-text parse: %w", err)
		return s.gtErr
	}
	s.gtFont = face.Font
	return nil
}

// copyCheck panics if FontSource was copied by value.
// This is the Ebitengine pattern for preventing accidental copies.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}

// extractFontName extracts the font family name from the parsed font.
func extractFontName(parsed ParsedFont) string {
	if name := parsed.Name(); name != "" {
		return name
	}
	if fullName := parsed.FullName(); fullName != "" {
		return fullName
	}
	return "Unknown Font"
}
