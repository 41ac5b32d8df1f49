package layout

import (
	"bytes"
	"fmt"
	"image"
	"log/slog"
	"strings"
	"testing"

	"golang.org/x/image/math/fixed"

	"github.com/gogpu/fbtext/framebuffer"
	"github.com/gogpu/fbtext/raster"
)

// scripted is a GlyphRasterizer emitting fixed spans per glyph.
type scripted struct {
	spans map[GlyphID][]raster.Span
	errs  map[GlyphID]error
	calls int
}

func (s *scripted) RasterizeGlyph(gid GlyphID, emit func(raster.Span)) error {
	s.calls++
	if err, ok := s.errs[gid]; ok {
		return err
	}
	for _, sp := range s.spans[gid] {
		emit(sp)
	}
	return nil
}

// glyphA is five pixels wide at ten pixels above the baseline and three
// pixels wide on the row just above the baseline.
var glyphA = []raster.Span{
	{Y: 10, X: 0, Len: 5, Coverage: 255},
	{Y: 1, X: 1, Len: 3, Coverage: 128},
}

func px(n int) fixed.Int26_6 { return fixed.I(n) }

func newScripted() *scripted {
	return &scripted{
		spans: map[GlyphID][]raster.Span{1: glyphA},
		errs:  map[GlyphID]error{},
	}
}

func ltrRun(gids ...GlyphID) GlyphRun {
	run := GlyphRun{Direction: DirectionLTR}
	for _, gid := range gids {
		run.Glyphs = append(run.Glyphs, GlyphPlacement{GID: gid, XAdvance: px(8)})
	}
	return run
}

func litPixels(v framebuffer.View) []image.Point {
	var pts []image.Point
	for y := 0; y < v.Height; y++ {
		for x := 0; x < v.Width; x++ {
			if v.Pixel(x, y) != 0 {
				pts = append(pts, image.Pt(x, y))
			}
		}
	}
	return pts
}

func TestEngine_MeasureLTR(t *testing.T) {
	e := NewEngine(newScripted())
	box := e.Measure(ltrRun(1, 1), image.Point{})

	want := raster.BoundingBox{MinX: 0, MaxX: 16, MinY: -10, MaxY: 0}
	if box != want {
		t.Fatalf("Measure() = %+v, want %+v", box, want)
	}
	if got := box.BaselineOffset(raster.Horizontal); got != 10 {
		t.Errorf("BaselineOffset = %d, want 10", got)
	}
	if got := box.BaselineShift(raster.Horizontal); got != 0 {
		t.Errorf("BaselineShift = %d, want 0", got)
	}
}

func TestEngine_PaintInsideMeasuredBox(t *testing.T) {
	for _, dir := range []Direction{DirectionLTR, DirectionRTL, DirectionTTB} {
		t.Run(dir.String(), func(t *testing.T) {
			e := NewEngine(newScripted())
			run := ltrRun(1, 1)
			run.Direction = dir

			box := e.Measure(run, image.Point{})
			v := framebuffer.NewRGB32(60, 30)
			slot := image.Rect(0, 20, 60, 30)
			origin := Origin(dir, box, slot, Margins{Left: 2, Right: 2})

			walk := e.Paint(run, origin, raster.NewCompositor(v, raster.Accumulate))
			placed := box.Translate(origin.X, origin.Y)

			lit := litPixels(v)
			if len(lit) != 16 {
				t.Errorf("painted %d pixels, want 16", len(lit))
			}
			for _, p := range lit {
				if !placed.Contains(p.X, p.Y) {
					t.Errorf("pixel %v outside placed box %+v", p, placed)
				}
			}
			if walk.End != origin.Add(image.Pt(16, 0)) {
				t.Errorf("walk.End = %v, want %v", walk.End, origin.Add(image.Pt(16, 0)))
			}
		})
	}
}

func TestEngine_MeasureIsOriginIndependent(t *testing.T) {
	e := NewEngine(newScripted())
	run := ltrRun(1, 0, 1)
	run.Glyphs[1].YOffset = px(3)
	run.Glyphs[2].XOffset = -px(1) - 32

	at0 := e.Measure(run, image.Point{})
	at := e.Measure(run, image.Pt(100, -7))
	if got := at0.Translate(100, -7); got != at {
		t.Errorf("Measure at (100, -7) = %+v, want %+v", at, got)
	}
}

func TestEngine_EmptyRun(t *testing.T) {
	r := newScripted()
	e := NewEngine(r)
	origin := image.Pt(10, 40)

	box := e.Measure(GlyphRun{}, origin)
	if box.Width() != 0 || box.Height() != 0 || box.TopLeft(raster.Horizontal) != origin {
		t.Errorf("Measure(empty) = %+v, want zero box at %v", box, origin)
	}

	v := framebuffer.NewRGB32(20, 50)
	walk := e.Paint(GlyphRun{}, origin, raster.NewCompositor(v, raster.Overwrite))
	if n := len(litPixels(v)); n != 0 {
		t.Errorf("Paint(empty) lit %d pixels", n)
	}
	if walk.End != origin || walk.Glyphs != 0 {
		t.Errorf("Paint(empty) walk = %+v", walk)
	}
	if r.calls != 0 {
		t.Errorf("rasterizer called %d times for empty run", r.calls)
	}
}

func TestEngine_WhitespaceRun(t *testing.T) {
	e := NewEngine(newScripted())
	box := e.Measure(ltrRun(0, 0, 0), image.Pt(5, 50))

	if !box.Empty() {
		t.Errorf("whitespace box %+v is not empty", box)
	}
	if got, want := box.TopLeft(raster.Horizontal), image.Pt(29, 50); got != want {
		t.Errorf("whitespace box at %v, want terminal pen %v", got, want)
	}
}

func TestEngine_TrailingAdvanceCounts(t *testing.T) {
	e := NewEngine(newScripted())
	box := e.Measure(ltrRun(1, 0, 0), image.Point{})
	if box.Width() != 24 {
		t.Errorf("Width() = %d, want 24 including trailing advances", box.Width())
	}
}

func TestEngine_LookupFailureSkipsButAdvances(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})))
	t.Cleanup(func() { SetLogger(nil) })

	r := newScripted()
	r.errs[7] = fmt.Errorf("bitmap strike: %w", ErrNotOutline)
	r.errs[9] = &GlyphLookupError{GID: 9, Err: ErrInvalidGlyph}
	e := NewEngine(r)

	run := ltrRun(7, 9, 1)
	v := framebuffer.NewRGB32(40, 20)
	walk := e.Paint(run, image.Pt(0, 15), raster.NewCompositor(v, raster.Accumulate))

	if walk.Skipped != 2 || walk.Glyphs != 3 {
		t.Errorf("walk = %+v, want 3 glyphs, 2 skipped", walk)
	}
	// The third glyph starts after both skipped advances.
	if v.Pixel(16, 5) == 0 || v.Pixel(15, 5) != 0 {
		t.Error("glyph after skipped glyphs not painted at x = 16")
	}
	logs := buf.String()
	if !strings.Contains(logs, "gid=7") || !strings.Contains(logs, "gid=9") {
		t.Errorf("warnings missing skipped glyph ids:\n%s", logs)
	}
}

func TestEngine_TopToBottom(t *testing.T) {
	e := NewEngine(newScripted())
	run := GlyphRun{Direction: DirectionTTB}
	for range 2 {
		run.Glyphs = append(run.Glyphs, GlyphPlacement{
			GID:      1,
			YAdvance: -px(20),
			XOffset:  -px(2),
			YOffset:  -px(12),
		})
	}

	origin := image.Pt(30, 10)
	box := e.Measure(run, origin)

	// Each glyph's top row lands 2 px below its pen position.
	want := raster.BoundingBox{MinX: 28, MaxX: 33, MinY: 10, MaxY: 50, Origin: origin}
	if box != want {
		t.Errorf("Measure() = %+v, want %+v", box, want)
	}
	if got := box.BaselineOffset(raster.Vertical); got != -2 {
		t.Errorf("BaselineOffset(Vertical) = %d, want -2", got)
	}
	walk := e.Layout(run, origin, raster.NewAccumulator())
	if walk.End != image.Pt(30, 50) {
		t.Errorf("walk.End = %v, want (30, 50)", walk.End)
	}
}

func TestEngine_ResizeBetweenFrames(t *testing.T) {
	e := NewEngine(newScripted())
	run := ltrRun(1, 1, 1)

	frames := []framebuffer.View{
		framebuffer.NewRGB32(64, 32),
		framebuffer.NewRGB32(12, 6),
		framebuffer.NewRGB32(64, 32),
	}
	var first, last []image.Point
	for i, v := range frames {
		box := e.Measure(run, image.Point{})
		if box.Width() != 24 || box.Height() != 10 {
			t.Fatalf("frame %d: box %dx%d, want 24x10", i, box.Width(), box.Height())
		}
		origin := Origin(run.Direction, box, image.Rect(0, 12, v.Width, v.Height), DefaultMargins)
		e.Paint(run, origin, raster.NewCompositor(v, raster.Overwrite))
		switch i {
		case 0:
			first = litPixels(v)
		case 2:
			last = litPixels(v)
		}
	}
	if len(first) == 0 || fmt.Sprint(first) != fmt.Sprint(last) {
		t.Errorf("frames 0 and 2 differ after a resize in between")
	}
}

func TestEngine_NilRasterizer(t *testing.T) {
	box := NewEngine(nil).Measure(ltrRun(1, 1), image.Point{})
	if !box.Empty() || box.MinX != 16 {
		t.Errorf("Measure() without rasterizer = %+v, want empty box at x = 16", box)
	}
}
