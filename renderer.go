package fbtext

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/gogpu/fbtext/framebuffer"
	"github.com/gogpu/fbtext/layout"
	"github.com/gogpu/fbtext/raster"
	"github.com/gogpu/fbtext/text"
)

// decorationInset is how far the decoration frame sits outside the ink.
const decorationInset = 2

// Renderer draws shaped runs into framebuffer views.
//
// A Renderer keeps no per-frame state: every call builds its rasterizer
// and compositor from scratch, so the same Renderer can serve views of
// any size and is safe for concurrent use on distinct views.
type Renderer struct {
	opts options
}

// New creates a Renderer.
func New(opts ...Option) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Renderer{opts: o}
}

// Placement describes where a run was drawn.
type Placement struct {
	// Origin is the pen origin the run was painted from.
	Origin image.Point

	// Box is the measured ink box at Origin, in framebuffer coordinates.
	Box raster.BoundingBox

	// Walk is the result of the paint pass.
	Walk layout.Walk

	// Advance is the run's summed advance, a crude extent next to Box.
	Advance image.Point

	// Clipped counts the spans cut or dropped at the view edges.
	Clipped int
}

// Slot returns the line slot of line i: the full view width with its top
// edge on the line's baseline.
func (r *Renderer) Slot(v framebuffer.View, i int) image.Rectangle {
	y := r.opts.top + i*r.opts.step
	return image.Rectangle{Min: image.Pt(0, y), Max: image.Pt(v.Width, y+r.opts.step)}
}

// DrawRun draws an already shaped run into slot of v.
//
// The run is measured at the zero origin, anchored in the slot by its
// direction's justification and painted from the anchored origin. Glyphs
// of face that cannot be rasterized are skipped; spans outside v are
// clipped. A nil face skips every glyph, leaving only the pen walk.
func (r *Renderer) DrawRun(v framebuffer.View, slot image.Rectangle, run layout.GlyphRun, face text.Face) Placement {
	engine := layout.NewEngine(text.NewRasterizer(face, text.NewBackend(r.opts.backend)))

	box := engine.Measure(run, image.Point{})
	origin := layout.Origin(run.Direction, box, slot, r.opts.margins)

	c := raster.NewCompositor(v, r.opts.policy)
	walk := engine.Paint(run, origin, c)
	p := Placement{
		Origin:  origin,
		Box:     box.Translate(origin.X, origin.Y),
		Walk:    walk,
		Advance: run.Advance(),
		Clipped: c.Clipped(),
	}

	if r.opts.decorate && !p.Box.Empty() {
		c.Frame(p.Box.Rect().Inset(-decorationInset), 0xff)
	}

	Logger().Debug("fbtext: drew run",
		slog.String("direction", run.Direction.String()),
		slog.Int("glyphs", walk.Glyphs),
		slog.Int("skipped", walk.Skipped),
		slog.Any("origin", origin),
		slog.Any("box", p.Box.Rect()),
		slog.Int("clipped", p.Clipped))
	return p
}

// DrawString shapes s with face and draws it into slot of v.
func (r *Renderer) DrawString(v framebuffer.View, slot image.Rectangle, s string, face text.Face) (Placement, error) {
	run, err := r.shape(s, face)
	if err != nil {
		return Placement{}, err
	}
	return r.DrawRun(v, slot, run, face), nil
}

// Line is one line of DrawLines.
type Line struct {
	Text string
	Face text.Face
}

// DrawLines draws lines on successive baselines, the first at the
// configured top and each next one a step below. It stops at the first
// line that fails to shape.
func (r *Renderer) DrawLines(v framebuffer.View, lines []Line) ([]Placement, error) {
	placements := make([]Placement, 0, len(lines))
	for i, line := range lines {
		p, err := r.DrawString(v, r.Slot(v, i), line.Text, line.Face)
		if err != nil {
			return placements, fmt.Errorf("fbtext: line %d: %w", i, err)
		}
		placements = append(placements, p)
	}
	return placements, nil
}

func (r *Renderer) shape(s string, face text.Face) (layout.GlyphRun, error) {
	if r.opts.shaper != nil {
		return r.opts.shaper.Shape(s, face)
	}
	return text.Shape(s, face)
}
