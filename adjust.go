package bpx

// Saturation replaces the saturation component of the color in HSV space.
// factor is clamped to [0, 1]; alpha is preserved.
func Saturation(c Color, factor float64) Color {
	h, _, v := c.ToHSV()
	out := FromHSV(h, clamp01f(factor), v, 1)
	out.A = c.A
	return out
}

// Brightness scales the color toward black for negative factors and toward
// white for positive ones. factor is clamped to [-1, 1]; alpha is preserved.
func Brightness(c Color, factor float64) Color {
	factor = clampF(factor, -1, 1)
	rf := float64(c.R)
	gf := float64(c.G)
	bf := float64(c.B)
	if factor < 0 {
		factor = 1 + factor
		rf *= factor
		gf *= factor
		bf *= factor
	} else {
		rf = (255-rf)*factor + rf
		gf = (255-gf)*factor + gf
		bf = (255-bf)*factor + bf
	}
	return Color{R: uint8(rf), G: uint8(gf), B: uint8(bf), A: c.A}
}

// Contrast scales the channel values around the mid-point 0.5 by the squared
// factor (1+f)^2. factor is clamped to [-1, 1]; -1 yields uniform gray, 0
// leaves the color unchanged. Alpha is preserved.
func Contrast(c Color, factor float64) Color {
	factor = clampF(factor, -1, 1)
	factor = (1 + factor) * (1 + factor)

	adj := func(ch uint8) uint8 {
		v := float64(ch) / 255
		v = (v-0.5)*factor + 0.5
		return uint8(clamp01f(v) * 255)
	}

	return Color{R: adj(c.R), G: adj(c.G), B: adj(c.B), A: c.A}
}

// Invert returns the complementary color, keeping alpha.
func Invert(c Color) Color {
	return Color{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B, A: c.A}
}

// WithAlpha replaces the alpha channel with a normalized value in [0, 1].
func WithAlpha(c Color, alpha float64) Color {
	return Color{R: c.R, G: c.G, B: c.B, A: uint8(clamp01f(alpha) * 255)}
}

// Grayscale averages the RGB channels, keeping alpha.
func Grayscale(c Color) Color {
	gray := GrayValue(c)
	return Color{R: gray, G: gray, B: gray, A: c.A}
}

// GrayValue returns the mean of the RGB channels.
func GrayValue(c Color) uint8 {
	return uint8((int(c.R) + int(c.G) + int(c.B)) / 3)
}

// Luminance applies the ITU-R 601 luma to the RGB channels, keeping alpha.
func Luminance(c Color) Color {
	lum := LumaValue(c)
	return Color{R: lum, G: lum, B: lum, A: c.A}
}

// LumaValue returns 0.299*R + 0.587*G + 0.114*B, truncated.
func LumaValue(c Color) uint8 {
	return uint8(0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B))
}

// Lerp linearly interpolates every channel, including alpha. t is not
// clamped; 0 returns a and 1 returns b.
func Lerp(a, b Color, t float64) Color {
	return Color{
		R: uint8(float64(a.R) + t*(float64(b.R)-float64(a.R))),
		G: uint8(float64(a.G) + t*(float64(b.G)-float64(a.G))),
		B: uint8(float64(a.B) + t*(float64(b.B)-float64(a.B))),
		A: uint8(float64(a.A) + t*(float64(b.A)-float64(a.A))),
	}
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
