// Package framebuffer describes raw 32-bit pixel buffers owned by someone
// else (a window surface, a mapped device buffer, a test slice).
//
// A View never allocates or frees the memory it points to, and nothing in
// this module keeps a View across frames: a resized surface is simply
// described by a new View.
package framebuffer

import (
	"encoding/binary"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
)

// BytesPerPixel is the only pixel size supported. Pixels are 32-bit words
// stored little-endian, channels located by Channels shifts.
const BytesPerPixel = 4

// Sentinel errors returned by NewView.
var (
	// ErrBadSize is returned for negative dimensions.
	ErrBadSize = errors.New("framebuffer: negative width or height")

	// ErrBadPitch is returned when a row does not fit into its pitch.
	ErrBadPitch = errors.New("framebuffer: pitch smaller than a row of pixels")

	// ErrShortBuffer is returned when the pixel slice cannot hold every row.
	ErrShortBuffer = errors.New("framebuffer: pixel buffer too small for dimensions")
)

// Channels holds the bit shift of each 8-bit channel inside a 32-bit pixel.
type Channels struct {
	R, G, B, A uint
}

// XRGB8888 is the layout of a default 32bpp SDL surface: 0x00RRGGBB.
var XRGB8888 = Channels{R: 16, G: 8, B: 0, A: 24}

// Gray packs v into the R, G and B channels. Alpha is left zero.
func (c Channels) Gray(v uint8) uint32 {
	p := uint32(v)
	return p<<c.R | p<<c.G | p<<c.B
}

// Unpack extracts the color stored in pixel p. The result is always opaque;
// the alpha channel of the buffer is not interpreted.
func (c Channels) Unpack(p uint32) color.RGBA {
	return color.RGBA{
		R: uint8(p >> c.R), //nolint:gosec // masked by conversion
		G: uint8(p >> c.G), //nolint:gosec // masked by conversion
		B: uint8(p >> c.B), //nolint:gosec // masked by conversion
		A: 0xff,
	}
}

// View is a descriptor of a raw pixel buffer.
type View struct {
	// Pix holds the pixels. It is not owned by the View.
	Pix []byte

	// Pitch is the distance in bytes between the starts of two rows.
	Pitch int

	// Width and Height are the visible dimensions in pixels.
	Width, Height int

	// Channels locates R, G, B and A inside each pixel.
	Channels Channels
}

// NewView validates the dimensions against pix and returns a View over it.
func NewView(pix []byte, width, height, pitch int, ch Channels) (View, error) {
	if width < 0 || height < 0 {
		return View{}, ErrBadSize
	}
	if pitch < width*BytesPerPixel {
		return View{}, ErrBadPitch
	}
	if height > 0 && len(pix) < (height-1)*pitch+width*BytesPerPixel {
		return View{}, ErrShortBuffer
	}
	return View{Pix: pix, Pitch: pitch, Width: width, Height: height, Channels: ch}, nil
}

// NewRGB32 allocates a tightly packed XRGB8888 buffer and returns a View
// over it. Intended for callers that have no surface of their own.
func NewRGB32(width, height int) View {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	pitch := width * BytesPerPixel
	return View{
		Pix:      make([]byte, pitch*height),
		Pitch:    pitch,
		Width:    width,
		Height:   height,
		Channels: XRGB8888,
	}
}

// Bounds returns the visible pixel rectangle.
func (v View) Bounds() image.Rectangle {
	return image.Rect(0, 0, v.Width, v.Height)
}

// Limit returns the byte offset one past the last addressable pixel byte.
// No write may reach this offset.
func (v View) Limit() int {
	if v.Height <= 0 {
		return 0
	}
	limit := v.Pitch * v.Height
	if limit > len(v.Pix) {
		limit = len(v.Pix)
	}
	return limit
}

// Pixel returns the packed pixel at (x, y), or 0 outside the view.
func (v View) Pixel(x, y int) uint32 {
	if x < 0 || x >= v.Width || y < 0 || y >= v.Height {
		return 0
	}
	i := y*v.Pitch + x*BytesPerPixel
	if i+BytesPerPixel > len(v.Pix) {
		return 0
	}
	return binary.LittleEndian.Uint32(v.Pix[i:])
}

// Clear zeroes every visible row. Padding bytes beyond Width are left alone.
func (v View) Clear() {
	row := v.Width * BytesPerPixel
	for y := 0; y < v.Height; y++ {
		off := y * v.Pitch
		if off+row > len(v.Pix) {
			return
		}
		clear(v.Pix[off : off+row])
	}
}

// ToRGBA converts the view to an image.RGBA using its channel layout.
func (v View) ToRGBA() *image.RGBA {
	img := image.NewRGBA(v.Bounds())
	for y := 0; y < v.Height; y++ {
		for x := 0; x < v.Width; x++ {
			img.SetRGBA(x, y, v.Channels.Unpack(v.Pixel(x, y)))
		}
	}
	return img
}

// SavePNG writes the view to a PNG file.
func (v View) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, v.ToRGBA())
}
