package bpx

import "fmt"

// PixelFormat identifies the in-memory encoding of a pixel. Multi-byte
// samples are stored little-endian.
type PixelFormat int

const (
	FormatLU8 PixelFormat = iota
	FormatLF16
	FormatLF32
	FormatLAU8
	FormatLAF16
	FormatLAF32
	FormatRGB565
	FormatBGR565
	FormatRGBU8
	FormatBGRU8
	FormatRGBF16
	FormatBGRF16
	FormatRGBF32
	FormatBGRF32
	FormatRGBA5551
	FormatBGRA5551
	FormatRGBA4444
	FormatBGRA4444
	FormatRGBAU8
	FormatBGRAU8
	FormatRGBAF16
	FormatBGRAF16
	FormatRGBAF32
	FormatBGRAF32
)

// Size returns the number of bytes one pixel occupies.
func (f PixelFormat) Size() int {
	switch f {
	case FormatLU8:
		return 1
	case FormatLF16, FormatLAU8, FormatRGB565, FormatBGR565,
		FormatRGBA5551, FormatBGRA5551, FormatRGBA4444, FormatBGRA4444:
		return 2
	case FormatRGBU8, FormatBGRU8:
		return 3
	case FormatLF32, FormatLAF16, FormatRGBAU8, FormatBGRAU8:
		return 4
	case FormatRGBF16, FormatBGRF16:
		return 6
	case FormatLAF32, FormatRGBAF16, FormatBGRAF16:
		return 8
	case FormatRGBF32, FormatBGRF32:
		return 12
	case FormatRGBAF32, FormatBGRAF32:
		return 16
	}
	panic(fmt.Sprintf("bpx: unknown pixel format %d", int(f)))
}

// Components returns the number of channels the format stores.
func (f PixelFormat) Components() int {
	switch f {
	case FormatLU8, FormatLF16, FormatLF32:
		return 1
	case FormatLAU8, FormatLAF16, FormatLAF32:
		return 2
	case FormatRGB565, FormatBGR565, FormatRGBU8, FormatBGRU8,
		FormatRGBF16, FormatBGRF16, FormatRGBF32, FormatBGRF32:
		return 3
	case FormatRGBA5551, FormatBGRA5551, FormatRGBA4444, FormatBGRA4444,
		FormatRGBAU8, FormatBGRAU8, FormatRGBAF16, FormatBGRAF16,
		FormatRGBAF32, FormatBGRAF32:
		return 4
	}
	panic(fmt.Sprintf("bpx: unknown pixel format %d", int(f)))
}

var formatNames = map[PixelFormat]string{
	FormatLU8:      "L_U8",
	FormatLF16:     "L_F16",
	FormatLF32:     "L_F32",
	FormatLAU8:     "LA_U8",
	FormatLAF16:    "LA_F16",
	FormatLAF32:    "LA_F32",
	FormatRGB565:   "RGB_565",
	FormatBGR565:   "BGR_565",
	FormatRGBU8:    "RGB_U8",
	FormatBGRU8:    "BGR_U8",
	FormatRGBF16:   "RGB_F16",
	FormatBGRF16:   "BGR_F16",
	FormatRGBF32:   "RGB_F32",
	FormatBGRF32:   "BGR_F32",
	FormatRGBA5551: "RGBA_5551",
	FormatBGRA5551: "BGRA_5551",
	FormatRGBA4444: "RGBA_4444",
	FormatBGRA4444: "BGRA_4444",
	FormatRGBAU8:   "RGBA_U8",
	FormatBGRAU8:   "BGRA_U8",
	FormatRGBAF16:  "RGBA_F16",
	FormatBGRAF16:  "BGRA_F16",
	FormatRGBAF32:  "RGBA_F32",
	FormatBGRAF32:  "BGRA_F32",
}

// String returns the canonical format name, e.g. "RGBA_U8".
func (f PixelFormat) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("PixelFormat(%d)", int(f))
}

// ParseFormat resolves a canonical format name as returned by String.
func ParseFormat(name string) (PixelFormat, error) {
	for f, n := range formatNames {
		if n == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown pixel format %q", name)
}
