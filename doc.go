// Package fbtext draws shaped text runs into raw 32-bit framebuffers.
//
// # Overview
//
// fbtext takes a string, shapes it into a glyph run, measures the run's
// ink, places it on a line according to the run's direction and paints
// the glyph coverage straight into a pixel buffer someone else owns: a
// window surface, a mapped device buffer or a plain byte slice.
//
// # Quick Start
//
//	source, err := text.NewFontSource(goregular.TTF)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer source.Close()
//
//	view := framebuffer.NewRGB32(800, 200)
//	r := fbtext.New()
//	_, err = r.DrawLines(view, []fbtext.Line{
//	    {Text: "Ленивый рыжий кот", Face: source.Face(50)},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	view.SavePNG("output.png")
//
// # Architecture
//
// The module is organized into:
//   - framebuffer: View, a descriptor of a borrowed pixel buffer
//   - raster: spans, the measuring Accumulator and the painting Compositor
//   - layout: glyph runs, the pen walk (Engine) and justification
//   - text: fonts, shaping and glyph rasterization
//
// # Coordinate System
//
// Framebuffer coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Glyph outlines, advances and offsets are font space, y up; the layout
// package converts between the two.
//
// # Justification
//
// Left-to-right runs start at the left margin, right-to-left runs end at
// the right margin and top-to-bottom columns are centered.
package fbtext
