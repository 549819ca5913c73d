package bpx

import "math"

// Color is an 8-bit RGBA color. The zero value is fully transparent black.
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque color from 8-bit components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA returns a color from 8-bit components.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// FromUint32 unpacks a 32-bit color laid out as r | g<<8 | b<<16 | a<<24.
func FromUint32(c uint32) Color {
	return Color{
		R: uint8(c),
		G: uint8(c >> 8),
		B: uint8(c >> 16),
		A: uint8(c >> 24),
	}
}

// FromFloats returns a color from normalized components in [0, 1].
func FromFloats(r, g, b, a float64) Color {
	return Color{
		R: uint8(clamp01f(r) * 255),
		G: uint8(clamp01f(g) * 255),
		B: uint8(clamp01f(b) * 255),
		A: uint8(clamp01f(a) * 255),
	}
}

// FromGray returns a grayscale color from normalized gray and alpha in [0, 1].
func FromGray(gray, alpha float64) Color {
	g := uint8(clamp01f(gray) * 255)
	return Color{R: g, G: g, B: g, A: uint8(clamp01f(alpha) * 255)}
}

// FromHSV converts hue (degrees, [0, 360)), saturation, value and alpha
// (all in [0, 1]) to a color.
func FromHSV(hue, saturation, value, alpha float64) Color {
	c := value * saturation
	x := c * (1 - math.Abs(math.Mod(hue/60, 2)-1))
	m := value - c

	var r, g, b float64
	switch {
	case hue >= 0 && hue < 60:
		r, g, b = c, x, 0
	case hue >= 60 && hue < 120:
		r, g, b = x, c, 0
	case hue >= 120 && hue < 180:
		r, g, b = 0, c, x
	case hue >= 180 && hue < 240:
		r, g, b = 0, x, c
	case hue >= 240 && hue < 300:
		r, g, b = x, 0, c
	case hue >= 300 && hue < 360:
		r, g, b = c, 0, x
	}

	return Color{
		R: uint8((r + m) * 255),
		G: uint8((g + m) * 255),
		B: uint8((b + m) * 255),
		A: uint8(alpha * 255),
	}
}

// Uint32 packs the color as r | g<<8 | b<<16 | a<<24.
func (c Color) Uint32() uint32 {
	return uint32(c.R) | uint32(c.G)<<8 | uint32(c.B)<<16 | uint32(c.A)<<24
}

// ToHSV returns hue in degrees [0, 360), saturation and value in [0, 1].
func (c Color) ToHSV() (h, s, v float64) {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	cmax := math.Max(r, math.Max(g, b))
	cmin := math.Min(r, math.Min(g, b))
	delta := cmax - cmin

	switch {
	case delta == 0:
		h = 0
	case cmax == r:
		h = 60 * math.Mod((g-b)/delta, 6)
	case cmax == g:
		h = 60 * ((b-r)/delta + 2)
	default:
		h = 60 * ((r-b)/delta + 4)
	}
	if h < 0 {
		h += 360
	}

	if cmax != 0 {
		s = delta / cmax
	}
	v = cmax

	return h, s, v
}

// Add returns the per-channel sum, saturating at 255.
func (c Color) Add(other Color) Color {
	return Color{
		R: addU8(c.R, other.R),
		G: addU8(c.G, other.G),
		B: addU8(c.B, other.B),
		A: addU8(c.A, other.A),
	}
}

// Sub returns the per-channel difference, saturating at 0.
func (c Color) Sub(other Color) Color {
	return Color{
		R: subU8(c.R, other.R),
		G: subU8(c.G, other.G),
		B: subU8(c.B, other.B),
		A: subU8(c.A, other.A),
	}
}

// Mul returns the per-channel product scaled back by 255.
func (c Color) Mul(other Color) Color {
	return Color{
		R: uint8(int(c.R) * int(other.R) / 255),
		G: uint8(int(c.G) * int(other.G) / 255),
		B: uint8(int(c.B) * int(other.B) / 255),
		A: uint8(int(c.A) * int(other.A) / 255),
	}
}

// Scale multiplies every channel by value, clamping to [0, 255].
func (c Color) Scale(value float64) Color {
	return Color{
		R: scaleU8(c.R, value),
		G: scaleU8(c.G, value),
		B: scaleU8(c.B, value),
		A: scaleU8(c.A, value),
	}
}

// Div divides every channel by value, clamping to [0, 255].
func (c Color) Div(value float64) Color {
	return c.Scale(1 / value)
}

func addU8(a, b uint8) uint8 {
	v := int(a) + int(b)
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func subU8(a, b uint8) uint8 {
	v := int(a) - int(b)
	if v < 0 {
		return 0
	}
	return uint8(v)
}

func scaleU8(c uint8, value float64) uint8 {
	v := float64(c) * value
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func clamp01f(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Default palette.
var (
	White      = Color{255, 255, 255, 255}
	Black      = Color{0, 0, 0, 255}
	Blank      = Color{0, 0, 0, 0}
	LightGray  = Color{211, 211, 211, 255}
	Silver     = Color{192, 192, 192, 255}
	Gray       = Color{127, 127, 127, 255}
	DarkGray   = Color{80, 80, 80, 255}
	Yellow     = Color{255, 255, 0, 255}
	Gold       = Color{255, 215, 0, 255}
	Orange     = Color{255, 165, 0, 255}
	Pink       = Color{255, 105, 180, 255}
	Red        = Color{255, 0, 0, 255}
	Maroon     = Color{128, 0, 0, 255}
	Green      = Color{0, 255, 0, 255}
	DarkGreen  = Color{0, 100, 0, 255}
	SkyBlue    = Color{135, 206, 235, 255}
	Blue       = Color{0, 0, 255, 255}
	DarkBlue   = Color{0, 0, 100, 255}
	Purple     = Color{127, 0, 127, 255}
	Violet     = Color{238, 130, 238, 255}
	DarkPurple = Color{79, 0, 79, 255}
	Beige      = Color{255, 198, 153, 255}
	Brown      = Color{139, 69, 19, 255}
	DarkBrown  = Color{92, 64, 51, 255}
	Magenta    = Color{255, 0, 255, 255}
	Cyan       = Color{0, 255, 255, 255}
)
