package text

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	gtlanguage "github.com/go-text/typesetting/language"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/language"

	"github.com/gogpu/fbtext/layout"
)

// testSource returns a FontSource over Go Regular, which has Latin,
// Cyrillic and Greek glyphs and a kerning table.
func testSource(t *testing.T, opts ...SourceOption) *FontSource {
	t.Helper()

	source, err := NewFontSource(goregular.TTF, opts...)
	if err != nil {
		t.Fatalf("NewFontSource: %v", err)
	}
	t.Cleanup(func() {
		_ = source.Close()
	})
	return source
}

func TestNewFontSource(t *testing.T) {
	source := testSource(t)

	if got := source.Name(); got != "Go" {
		t.Errorf("Name() = %q, want %q", got, "Go")
	}
	if source.NumGlyphs() == 0 {
		t.Error("NumGlyphs() = 0")
	}
	if source.UnitsPerEm() <= 0 {
		t.Errorf("UnitsPerEm() = %d, want > 0", source.UnitsPerEm())
	}
	if source.OutlineSource() != OutlinesGoText {
		t.Errorf("OutlineSource() = %v, want %v", source.OutlineSource(), OutlinesGoText)
	}
}

func TestNewFontSourceErrors(t *testing.T) {
	if _, err := NewFontSource(nil); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("NewFontSource(nil) error = %v, want ErrEmptyFontData", err)
	}
	if _, err := NewFontSource([]byte{}); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("NewFontSource(empty) error = %v, want ErrEmptyFontData", err)
	}
	if _, err := NewFontSource([]byte("not a font file")); err == nil {
		t.Error("NewFontSource(garbage) error = nil")
	}
}

func TestNewFontSourceFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goregular.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o600); err != nil {
		t.Fatal(err)
	}

	source, err := NewFontSourceFromFile(path)
	if err != nil {
		t.Fatalf("NewFontSourceFromFile: %v", err)
	}
	defer func() {
		_ = source.Close()
	}()

	if _, err := NewFontSourceFromFile(filepath.Join(t.TempDir(), "missing.ttf")); err == nil {
		t.Error("NewFontSourceFromFile(missing) error = nil")
	}
}

func TestFontSourceDataIsCopied(t *testing.T) {
	data := append([]byte(nil), goregular.TTF...)
	source, err := NewFontSource(data)
	if err != nil {
		t.Fatal(err)
	}
	clear(data)

	face := source.Face(20)
	if _, err := face.Outline(face.Source().Parsed().GlyphIndex('H')); err != nil {
		t.Errorf("Outline after caller reused data: %v", err)
	}
}

func TestFontSourceCopyProtection(t *testing.T) {
	source := testSource(t)

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic when copying FontSource")
		}
	}()

	testCopy(source)
}

// testCopy copies the fields of source into a new FontSource by hand,
// leaving addr pointing at the original.
func testCopy(source *FontSource) {
	var dup FontSource
	dup.addr = source.addr
	dup.data = source.data
	dup.parsed = source.parsed
	dup.name = source.name
	dup.config = source.config
	_ = dup.Name() // Trigger copyCheck
}

func TestFontSourceClose(t *testing.T) {
	source, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	face := source.Face(16)

	if err := source.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
	if source.data != nil {
		t.Error("data not released by Close()")
	}
	if _, err := face.Outline(1); !errors.Is(err, ErrSourceClosed) {
		t.Errorf("Outline after Close() error = %v, want ErrSourceClosed", err)
	}
	if _, err := NewGoTextShaper().Shape("a", face); !errors.Is(err, ErrSourceClosed) {
		t.Errorf("Shape after Close() error = %v, want ErrSourceClosed", err)
	}
}

func TestNewFontSourceWithOptions(t *testing.T) {
	source := testSource(t,
		WithCacheLimit(1024),
		WithParser("no-such-parser"),
		WithOutlineSource(OutlinesSFNT),
	)

	if source.config.cacheLimit != 1024 {
		t.Errorf("cacheLimit = %d, want 1024", source.config.cacheLimit)
	}
	if source.OutlineSource() != OutlinesSFNT {
		t.Errorf("OutlineSource() = %v, want %v", source.OutlineSource(), OutlinesSFNT)
	}
	// Unknown parsers fall back to the default one.
	if _, ok := source.Parsed().(*ximageParsedFont); !ok {
		t.Errorf("Parsed() = %T, want *ximageParsedFont", source.Parsed())
	}
}

type countingParser struct {
	calls int
}

func (p *countingParser) Parse(data []byte) (ParsedFont, error) {
	p.calls++
	return (&ximageParser{}).Parse(data)
}

func TestRegisterParser(t *testing.T) {
	p := &countingParser{}
	RegisterParser("counting", p)
	t.Cleanup(func() { delete(parserRegistry, "counting") })

	testSource(t, WithParser("counting"))
	if p.calls != 1 {
		t.Errorf("registered parser called %d times, want 1", p.calls)
	}
}

func TestFaceWithOptions(t *testing.T) {
	source := testSource(t)

	face := source.Face(24,
		WithDirection(layout.DirectionRTL),
		WithLanguage(language.Arabic),
		WithScript(gtlanguage.Arabic),
	)

	if face.Direction() != layout.DirectionRTL {
		t.Errorf("Direction() = %v, want RTL", face.Direction())
	}
	if face.Language() != language.Arabic {
		t.Errorf("Language() = %v, want ar", face.Language())
	}
	if face.Script() != gtlanguage.Arabic {
		t.Errorf("Script() = %v, want Arabic", face.Script())
	}
	if face.Size() != 24 || face.Source() != source {
		t.Error("Size() or Source() not kept")
	}

	def := source.Face(24)
	if def.Direction() != layout.DirectionLTR || def.Language() != language.English || def.Script() != 0 {
		t.Errorf("default face = %v %v %v, want LTR en 0", def.Direction(), def.Language(), def.Script())
	}
}
