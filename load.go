package bpx

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"

	// Decoders registered with the standard image registry.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "github.com/jbuchbinder/gopnm"
	_ "github.com/mdouchement/hdr/codec/rgbe"
	_ "github.com/oov/psd"
	_ "golang.org/x/image/bmp"
)

// Load decodes an image file into a pixel buffer. The storage format
// follows the decoded channel count: 1 -> L_U8, 2 -> LA_U8, 3 -> RGB_U8 and
// 4 -> RGBA_U8. TGA is selected by file extension; every other format is
// sniffed by the image registry. With flipVertically the rows are reversed
// after decoding.
func Load(path string, flipVertically bool) (*Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("load image %s: %w", path, err)
	}
	defer f.Close()

	var img image.Image
	if strings.EqualFold(filepath.Ext(path), ".tga") {
		img, err = tga.Decode(f)
	} else {
		img, _, err = image.Decode(f)
	}
	if err != nil {
		return nil, fmt.Errorf("load image %s: %w", path, err)
	}

	out, err := FromImage(img)
	if err != nil {
		return nil, fmt.Errorf("load image %s: %w", path, err)
	}

	if flipVertically {
		out.FlipVertical()
	}

	return out, nil
}

// FromImage converts a decoded standard-library image into a pixel buffer,
// picking the storage format from the source channel count.
func FromImage(img image.Image) (*Image, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("image %dx%d: %w", w, h, ErrInvalidDimensions)
	}

	channels := channelCount(img)

	var format PixelFormat
	switch channels {
	case 1:
		format = FormatLU8
	case 2:
		format = FormatLAU8
	case 3:
		format = FormatRGBU8
	case 4:
		format = FormatRGBAU8
	default:
		return nil, fmt.Errorf("unsupported number of channels (%d): %w", channels, ErrUnsupportedFormat)
	}

	out := newUnfilled(w, h, format)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			out.SetUnsafeXY(x, y, Color{c.R, c.G, c.B, c.A})
		}
	}

	return out, nil
}

// channelCount maps the decoded color model to the number of meaningful
// channels.
func channelCount(img image.Image) int {
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return 1
	case *image.YCbCr, *image.CMYK:
		return 3
	default:
		return 4
	}
}
