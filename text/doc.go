// Package text provides the font side of fbtext: shaping strings into
// layout.GlyphRun values and rasterizing their glyphs into spans.
//
// The pipeline follows a separation of concerns:
//
//   - FontSource: Heavyweight, shared font resource (parses TTF/OTF files)
//   - Face: Lightweight font instance at a specific size, direction,
//     language and script
//   - Shaper: GoTextShaper (HarfBuzz via go-text/typesetting) or
//     BuiltinShaper (golang.org/x/image/font/sfnt)
//   - Rasterizer: the layout.GlyphRasterizer for a Face, drawing outlines
//     through a Backend (freetype spans or an x/image/vector mask)
//
// # Example usage
//
//	source, err := text.NewFontSourceFromFile("DejaVuSerif.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer source.Close()
//
//	face := source.Face(50, text.WithDirection(layout.DirectionRTL),
//	    text.WithLanguage(language.Arabic))
//	run, err := text.Shape("كسول الزنجبيل القط", face)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	engine := layout.NewEngine(text.NewRasterizer(face, nil))
//	box := engine.Measure(run, image.Point{})
//
// # Pluggable Parser Backend
//
// Font parsing for names, metrics and the builtin shaper goes through the
// FontParser interface. By default golang.org/x/image/font/opentype is
// used; custom parsers can be registered:
//
//	text.RegisterParser("myparser", myCustomParser)
//	source, err := text.NewFontSource(data, text.WithParser("myparser"))
package text
