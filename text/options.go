package text

import (
	gtlanguage "github.com/go-text/typesetting/language"
	"golang.org/x/text/language"

	"github.com/gogpu/fbtext/layout"
)

// OutlineSource selects where a face reads glyph outlines from.
type OutlineSource int

const (
	// OutlinesGoText reads outlines through go-text/typesetting. Bitmap
	// and SVG glyphs are reported as not being outlines.
	OutlinesGoText OutlineSource = iota

	// OutlinesSFNT reads outlines through golang.org/x/image/font/sfnt.
	// Colored glyphs are reported as not being outlines.
	OutlinesSFNT
)

// String returns the string representation of the outline source.
func (s OutlineSource) String() string {
	switch s {
	case OutlinesGoText:
		return "go-text"
	case OutlinesSFNT:
		return "sfnt"
	default:
		return unknownStr
	}
}

// SourceOption configures FontSource creation.
type SourceOption func(*sourceConfig)

// sourceConfig holds configuration for FontSource.
type sourceConfig struct {
	cacheLimit int
	parserName string
	outlines   OutlineSource
}

// defaultSourceConfig returns the default source configuration.
func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		cacheLimit: 512,
		parserName: defaultParserName,
		outlines:   OutlinesGoText,
	}
}

// WithCacheLimit sets the maximum number of glyph outlines each face
// keeps. A value of 0 disables the cache limit; a negative value disables
// the cache.
func WithCacheLimit(n int) SourceOption {
	return func(c *sourceConfig) {
		c.cacheLimit = n
	}
}

// WithParser specifies the font parser backend.
// The default is "ximage" which uses golang.org/x/image/font/opentype.
//
// Custom parsers can be registered with RegisterParser.
func WithParser(name string) SourceOption {
	return func(c *sourceConfig) {
		c.parserName = name
	}
}

// WithOutlineSource selects the glyph outline reader for faces of the
// source.
func WithOutlineSource(s OutlineSource) SourceOption {
	return func(c *sourceConfig) {
		c.outlines = s
	}
}

// FaceOption configures Face creation.
type FaceOption func(*faceConfig)

// faceConfig holds configuration for Face.
type faceConfig struct {
	direction layout.Direction
	language  language.Tag
	script    gtlanguage.Script
}

// defaultFaceConfig returns the default face configuration.
func defaultFaceConfig() faceConfig {
	return faceConfig{
		direction: layout.DirectionLTR,
		language:  language.English,
	}
}

// WithDirection sets the run direction for the face.
func WithDirection(d layout.Direction) FaceOption {
	return func(c *faceConfig) {
		c.direction = d
	}
}

// WithLanguage sets the language for the face (e.g. language.Arabic).
func WithLanguage(tag language.Tag) FaceOption {
	return func(c *faceConfig) {
		c.language = tag
	}
}

// WithScript fixes the script for the face. By default the script is
// detected from the first letter of each shaped string.
func WithScript(s gtlanguage.Script) FaceOption {
	return func(c *faceConfig) {
		c.script = s
	}
}
