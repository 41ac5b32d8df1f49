package layout

import (
	"errors"
	"image"
	"log/slog"

	"github.com/gogpu/fbtext/raster"
)

// GlyphRasterizer turns one glyph into coverage spans.
//
// RasterizeGlyph calls emit for every span of the glyph, in glyph-local
// coordinates (see raster.Span), before returning. A glyph with an empty
// outline emits nothing and returns nil. A glyph that cannot be rendered
// as an outline returns an error wrapping ErrInvalidGlyph or ErrNotOutline.
type GlyphRasterizer interface {
	RasterizeGlyph(gid GlyphID, emit func(raster.Span)) error
}

// Walk summarizes one pass over a run.
type Walk struct {
	// End is the terminal pen position.
	End image.Point

	// Glyphs is the number of glyphs walked.
	Glyphs int

	// Skipped counts glyphs whose rasterization failed. Their advance was
	// still applied.
	Skipped int
}

// Engine walks shaped runs. It holds no per-run state: the pen and every
// sink are created per call, so one Engine serves any number of frames and
// views.
type Engine struct {
	rasterizer GlyphRasterizer
}

// NewEngine returns an Engine using r for glyph coverage. A nil r produces
// no ink; runs are then measured by pen positions alone.
func NewEngine(r GlyphRasterizer) *Engine {
	return &Engine{rasterizer: r}
}

// Layout walks run from origin, feeding sink with every pen position and
// with each glyph's spans translated to the framebuffer.
//
// For each glyph the pen position is reported, the glyph is rasterized at
// GlyphOrigin(pen, glyph), and the pen moves by Advance. The terminal pen
// position is reported last. Glyph lookup failures are logged and skipped.
func (e *Engine) Layout(run GlyphRun, origin image.Point, sink raster.Sink) Walk {
	w := Walk{End: origin}
	pen := origin
	sink.Pen(pen.X, pen.Y)

	for _, g := range run.Glyphs {
		w.Glyphs++
		if err := e.rasterize(g, pen, sink); err != nil {
			w.Skipped++
			slogger().Warn("layout: glyph skipped",
				slog.Uint64("gid", uint64(g.GID)),
				slog.Int("cluster", g.Cluster),
				slog.String("err", err.Error()))
		}
		pen = Advance(pen, g)
		sink.Pen(pen.X, pen.Y)
	}

	w.End = pen
	return w
}

func (e *Engine) rasterize(g GlyphPlacement, pen image.Point, sink raster.Sink) error {
	if e.rasterizer == nil {
		return nil
	}
	o := GlyphOrigin(pen, g)
	err := e.rasterizer.RasterizeGlyph(g.GID, func(s raster.Span) {
		s = SpanToFramebuffer(o, s)
		sink.Span(s.Y, s.X, s.Len, s.Coverage)
	})
	if err == nil {
		return nil
	}
	var lookup *GlyphLookupError
	if errors.As(err, &lookup) {
		return err
	}
	return &GlyphLookupError{GID: g.GID, Err: err}
}

// Measure runs the measure pass: it walks run from origin into a fresh
// Accumulator and returns the box. No pixel is written.
func (e *Engine) Measure(run GlyphRun, origin image.Point) raster.BoundingBox {
	acc := raster.NewAccumulator()
	e.Layout(run, origin, acc)
	box := acc.Box(origin)

	slogger().Debug("layout: measured run",
		slog.String("direction", run.Direction.String()),
		slog.Int("glyphs", run.Len()),
		slog.Int("width", box.Width()),
		slog.Int("height", box.Height()))
	return box
}

// Paint runs the paint pass into c.
func (e *Engine) Paint(run GlyphRun, origin image.Point, c *raster.Compositor) Walk {
	return e.Layout(run, origin, c)
}
