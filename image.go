package bpx

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by constructors and operations.
var (
	ErrInvalidDimensions = errors.New("invalid image dimensions")
	ErrUnsupportedFormat = errors.New("unsupported pixel format")
	ErrShortBuffer       = errors.New("pixel buffer too short")
	ErrTooFewStops       = errors.New("color ramp needs at least two stops")
)

// Image is a pixel buffer in one of the supported encodings. Handles are
// pointers; duplication is explicit via Clone. Methods mutate in place
// unless documented otherwise and are not safe for concurrent writes.
type Image struct {
	pix      []byte
	w, h     int
	format   PixelFormat
	borrowed bool
}

// Mapper transforms a single pixel. It receives the pixel coordinates and
// the current color and returns the color to store.
type Mapper func(x, y int, c Color) Color

// New allocates an image and fills every pixel with the given color through
// the format encoder.
func New(w, h int, format PixelFormat, fill Color) (*Image, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("new image %dx%d: %w", w, h, ErrInvalidDimensions)
	}
	img := newUnfilled(w, h, format)
	for i := 0; i < w*h; i++ {
		img.SetUnsafe(i, fill)
	}
	return img, nil
}

// newUnfilled allocates the buffer without touching its contents.
func newUnfilled(w, h int, format PixelFormat) *Image {
	return &Image{
		pix:    make([]byte, w*h*format.Size()),
		w:      w,
		h:      h,
		format: format,
	}
}

// FromPixels wraps an existing pixel buffer. With copyPix the data is
// deep-copied into an owned buffer; otherwise the image borrows the caller's
// slice and writes through to it.
func FromPixels(pix []byte, w, h int, format PixelFormat, copyPix bool) (*Image, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("image from pixels %dx%d: %w", w, h, ErrInvalidDimensions)
	}
	need := w * h * format.Size()
	if len(pix) < need {
		return nil, fmt.Errorf("image from pixels: have %d bytes, need %d: %w", len(pix), need, ErrShortBuffer)
	}
	img := &Image{w: w, h: h, format: format}
	if copyPix {
		img.pix = make([]byte, need)
		copy(img.pix, pix)
	} else {
		img.pix = pix[:need]
		img.borrowed = true
	}
	return img, nil
}

// Width returns the image width in pixels.
func (p *Image) Width() int { return p.w }

// Height returns the image height in pixels.
func (p *Image) Height() int { return p.h }

// Dimensions returns the width and height in pixels.
func (p *Image) Dimensions() (w, h int) { return p.w, p.h }

// Size returns the total number of pixels.
func (p *Image) Size() int { return p.w * p.h }

// Pitch returns the number of bytes per row.
func (p *Image) Pitch() int { return p.w * p.format.Size() }

// DataSize returns the total buffer length in bytes.
func (p *Image) DataSize() int { return p.h * p.Pitch() }

// Format returns the pixel encoding.
func (p *Image) Format() PixelFormat { return p.format }

// Pix returns the backing pixel buffer. Mutating it mutates the image.
func (p *Image) Pix() []byte { return p.pix }

// Borrowed reports whether the buffer is owned by the caller of FromPixels.
func (p *Image) Borrowed() bool { return p.borrowed }

// Get returns the pixel at (x, y), or Blank when the coordinates are out of
// range.
func (p *Image) Get(x, y int) Color {
	if x < 0 || y < 0 || x >= p.w || y >= p.h {
		return Blank
	}
	return p.GetUnsafe(y*p.w + x)
}

// Set stores the color at (x, y). Out-of-range coordinates are ignored.
func (p *Image) Set(x, y int, c Color) {
	if x < 0 || y < 0 || x >= p.w || y >= p.h {
		return
	}
	p.SetUnsafe(y*p.w+x, c)
}

// GetUnsafeXY reads the pixel at (x, y) without bounds checks.
func (p *Image) GetUnsafeXY(x, y int) Color {
	return p.GetUnsafe(y*p.w + x)
}

// SetUnsafeXY stores the color at (x, y) without bounds checks.
func (p *Image) SetUnsafeXY(x, y int, c Color) {
	p.SetUnsafe(y*p.w+x, c)
}

// Clone returns a deep copy with an owned buffer.
func (p *Image) Clone() *Image {
	out := &Image{
		pix:    make([]byte, len(p.pix)),
		w:      p.w,
		h:      p.h,
		format: p.format,
	}
	copy(out.pix, p.pix)
	return out
}
