package text

import (
	"golang.org/x/text/unicode/bidi"

	"github.com/gogpu/fbtext/layout"
)

// GuessDirection returns the horizontal direction of the first strong
// character of text: RTL for Hebrew and Arabic letters, LTR otherwise.
// Top-to-bottom is a layout choice and never guessed.
func GuessDirection(text string) layout.Direction {
	for _, r := range text {
		props, _ := bidi.LookupRune(r)
		switch props.Class() {
		case bidi.L:
			return layout.DirectionLTR
		case bidi.R, bidi.AL:
			return layout.DirectionRTL
		}
	}
	return layout.DirectionLTR
}
