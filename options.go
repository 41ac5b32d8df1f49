package fbtext

import (
	"github.com/gogpu/fbtext/layout"
	"github.com/gogpu/fbtext/raster"
	"github.com/gogpu/fbtext/text"
)

// Option configures a Renderer during creation.
//
// Example:
//
//	// Defaults: accumulate, 20 px margins, freetype spans, HarfBuzz shaping
//	r := fbtext.New()
//
//	// Write-only surface with the x/image/vector backend
//	r := fbtext.New(fbtext.WithPolicy(raster.Overwrite),
//	    fbtext.WithBackend(text.BackendMask))
type Option func(*options)

// options holds the Renderer configuration.
type options struct {
	policy   raster.Policy
	margins  layout.Margins
	backend  text.BackendKind
	shaper   text.Shaper
	top      int
	step     int
	decorate bool
}

// defaultOptions returns the default renderer options.
func defaultOptions() options {
	return options{
		policy:  raster.Accumulate,
		margins: layout.DefaultMargins,
		backend: text.BackendSpan,
		shaper:  nil, // Resolved to text.GetShaper() on each call
		top:     50,
		step:    75,
	}
}

// WithPolicy sets how painted coverage combines with the framebuffer.
func WithPolicy(p raster.Policy) Option {
	return func(o *options) {
		o.policy = p
	}
}

// WithMargins sets the horizontal insets of each line slot.
func WithMargins(m layout.Margins) Option {
	return func(o *options) {
		o.margins = m
	}
}

// WithBackend selects the glyph rasterizer backend.
func WithBackend(k text.BackendKind) Option {
	return func(o *options) {
		o.backend = k
	}
}

// WithShaper sets the shaper used by DrawString and DrawLines. By default
// the global text shaper is used.
func WithShaper(s text.Shaper) Option {
	return func(o *options) {
		o.shaper = s
	}
}

// WithLineLayout sets the baseline of the first line and the distance
// between the baselines of DrawLines.
func WithLineLayout(top, step int) Option {
	return func(o *options) {
		o.top = top
		o.step = step
	}
}

// WithDecoration draws a one pixel frame around the ink of every run.
func WithDecoration(on bool) Option {
	return func(o *options) {
		o.decorate = on
	}
}
