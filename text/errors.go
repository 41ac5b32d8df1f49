package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrNilFace is returned by shapers given a nil face.
	ErrNilFace = errors.New("text: nil face")

	// ErrSourceClosed is returned when a closed FontSource is used.
	ErrSourceClosed = errors.New("text: font source closed")
)

// ErrUnsupportedFontType is returned when the font type is not supported.
var ErrUnsupportedFontType = &FontError{Reason: "unsupported font type for outline extraction"}

// FontError represents a font-related error.
type FontError struct {
	Reason string
}

func (e *FontError) Error() string {
	return "text: " + e.Reason
}
