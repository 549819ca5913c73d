package bpx

import (
	"encoding/binary"
	"math"
)

// GetUnsafe decodes the pixel at the given pixel offset without bounds
// checks. Formats without an alpha field decode with alpha 255; luminance
// formats replicate the stored intensity across RGB.
func (p *Image) GetUnsafe(offset int) Color {
	switch p.format {

	case FormatLU8:
		gray := p.pix[offset]
		return Color{gray, gray, gray, 255}

	case FormatLF16:
		gray := u8FromFloat(halfToFloat(getU16(p.pix, 2*offset)))
		return Color{gray, gray, gray, 255}

	case FormatLF32:
		gray := u8FromFloat(getF32(p.pix, 4*offset))
		return Color{gray, gray, gray, 255}

	case FormatLAU8:
		px := p.pix[2*offset:]
		return Color{px[0], px[0], px[0], px[1]}

	case FormatLAF16:
		gray := u8FromFloat(halfToFloat(getU16(p.pix, 4*offset)))
		alpha := u8FromFloat(halfToFloat(getU16(p.pix, 4*offset+2)))
		return Color{gray, gray, gray, alpha}

	case FormatLAF32:
		gray := u8FromFloat(getF32(p.pix, 8*offset))
		alpha := u8FromFloat(getF32(p.pix, 8*offset+4))
		return Color{gray, gray, gray, alpha}

	case FormatRGB565:
		px := getU16(p.pix, 2*offset)
		return Color{expand5(px >> 11), expand6(px >> 5 & 0x3F), expand5(px & 0x1F), 255}

	case FormatBGR565:
		px := getU16(p.pix, 2*offset)
		return Color{expand5(px & 0x1F), expand6(px >> 5 & 0x3F), expand5(px >> 11), 255}

	case FormatRGBU8:
		px := p.pix[3*offset:]
		return Color{px[0], px[1], px[2], 255}

	case FormatBGRU8:
		px := p.pix[3*offset:]
		return Color{px[2], px[1], px[0], 255}

	case FormatRGBF16:
		return Color{
			u8FromFloat(halfToFloat(getU16(p.pix, 6*offset))),
			u8FromFloat(halfToFloat(getU16(p.pix, 6*offset+2))),
			u8FromFloat(halfToFloat(getU16(p.pix, 6*offset+4))),
			255,
		}

	case FormatBGRF16:
		return Color{
			u8FromFloat(halfToFloat(getU16(p.pix, 6*offset+4))),
			u8FromFloat(halfToFloat(getU16(p.pix, 6*offset+2))),
			u8FromFloat(halfToFloat(getU16(p.pix, 6*offset))),
			255,
		}

	case FormatRGBF32:
		return Color{
			u8FromFloat(getF32(p.pix, 12*offset)),
			u8FromFloat(getF32(p.pix, 12*offset+4)),
			u8FromFloat(getF32(p.pix, 12*offset+8)),
			255,
		}

	case FormatBGRF32:
		return Color{
			u8FromFloat(getF32(p.pix, 12*offset+8)),
			u8FromFloat(getF32(p.pix, 12*offset+4)),
			u8FromFloat(getF32(p.pix, 12*offset)),
			255,
		}

	case FormatRGBA5551:
		px := getU16(p.pix, 2*offset)
		return Color{expand5(px >> 11), expand5(px >> 6 & 0x1F), expand5(px >> 1 & 0x1F), uint8(px&1) * 255}

	case FormatBGRA5551:
		px := getU16(p.pix, 2*offset)
		return Color{expand5(px >> 1 & 0x1F), expand5(px >> 6 & 0x1F), expand5(px >> 11), uint8(px&1) * 255}

	case FormatRGBA4444:
		px := getU16(p.pix, 2*offset)
		return Color{expand4(px >> 12), expand4(px >> 8 & 0xF), expand4(px >> 4 & 0xF), expand4(px & 0xF)}

	case FormatBGRA4444:
		px := getU16(p.pix, 2*offset)
		return Color{expand4(px >> 4 & 0xF), expand4(px >> 8 & 0xF), expand4(px >> 12), expand4(px & 0xF)}

	case FormatRGBAU8:
		px := p.pix[4*offset:]
		return Color{px[0], px[1], px[2], px[3]}

	case FormatBGRAU8:
		px := p.pix[4*offset:]
		return Color{px[2], px[1], px[0], px[3]}

	case FormatRGBAF16:
		return Color{
			u8FromFloat(halfToFloat(getU16(p.pix, 8*offset))),
			u8FromFloat(halfToFloat(getU16(p.pix, 8*offset+2))),
			u8FromFloat(halfToFloat(getU16(p.pix, 8*offset+4))),
			u8FromFloat(halfToFloat(getU16(p.pix, 8*offset+6))),
		}

	case FormatBGRAF16:
		return Color{
			u8FromFloat(halfToFloat(getU16(p.pix, 8*offset+4))),
			u8FromFloat(halfToFloat(getU16(p.pix, 8*offset+2))),
			u8FromFloat(halfToFloat(getU16(p.pix, 8*offset))),
			u8FromFloat(halfToFloat(getU16(p.pix, 8*offset+6))),
		}

	case FormatRGBAF32:
		return Color{
			u8FromFloat(getF32(p.pix, 16*offset)),
			u8FromFloat(getF32(p.pix, 16*offset+4)),
			u8FromFloat(getF32(p.pix, 16*offset+8)),
			u8FromFloat(getF32(p.pix, 16*offset+12)),
		}

	case FormatBGRAF32:
		return Color{
			u8FromFloat(getF32(p.pix, 16*offset+8)),
			u8FromFloat(getF32(p.pix, 16*offset+4)),
			u8FromFloat(getF32(p.pix, 16*offset)),
			u8FromFloat(getF32(p.pix, 16*offset+12)),
		}
	}

	return Color{}
}

// SetUnsafe encodes the color at the given pixel offset without bounds
// checks. Luminance formats store the ITU-R 601 luma of the color; packed
// fields round to the nearest representable value.
func (p *Image) SetUnsafe(offset int, c Color) {
	switch p.format {

	case FormatLU8:
		p.pix[offset] = LumaValue(c)

	case FormatLF16:
		putU16(p.pix, 2*offset, floatToHalf(float32(LumaValue(c))/255))

	case FormatLF32:
		putF32(p.pix, 4*offset, float32(LumaValue(c))/255)

	case FormatLAU8:
		px := p.pix[2*offset:]
		px[0] = LumaValue(c)
		px[1] = c.A

	case FormatLAF16:
		putU16(p.pix, 4*offset, floatToHalf(float32(LumaValue(c))/255))
		putU16(p.pix, 4*offset+2, floatToHalf(float32(c.A)/255))

	case FormatLAF32:
		putF32(p.pix, 8*offset, float32(LumaValue(c))/255)
		putF32(p.pix, 8*offset+4, float32(c.A)/255)

	case FormatRGB565:
		putU16(p.pix, 2*offset, pack5(c.R)<<11|pack6(c.G)<<5|pack5(c.B))

	case FormatBGR565:
		putU16(p.pix, 2*offset, pack5(c.B)<<11|pack6(c.G)<<5|pack5(c.R))

	case FormatRGBU8:
		px := p.pix[3*offset:]
		px[0], px[1], px[2] = c.R, c.G, c.B

	case FormatBGRU8:
		px := p.pix[3*offset:]
		px[0], px[1], px[2] = c.B, c.G, c.R

	case FormatRGBF16:
		putU16(p.pix, 6*offset, floatToHalf(float32(c.R)/255))
		putU16(p.pix, 6*offset+2, floatToHalf(float32(c.G)/255))
		putU16(p.pix, 6*offset+4, floatToHalf(float32(c.B)/255))

	case FormatBGRF16:
		putU16(p.pix, 6*offset, floatToHalf(float32(c.B)/255))
		putU16(p.pix, 6*offset+2, floatToHalf(float32(c.G)/255))
		putU16(p.pix, 6*offset+4, floatToHalf(float32(c.R)/255))

	case FormatRGBF32:
		putF32(p.pix, 12*offset, float32(c.R)/255)
		putF32(p.pix, 12*offset+4, float32(c.G)/255)
		putF32(p.pix, 12*offset+8, float32(c.B)/255)

	case FormatBGRF32:
		putF32(p.pix, 12*offset, float32(c.B)/255)
		putF32(p.pix, 12*offset+4, float32(c.G)/255)
		putF32(p.pix, 12*offset+8, float32(c.R)/255)

	case FormatRGBA5551:
		putU16(p.pix, 2*offset, pack5(c.R)<<11|pack5(c.G)<<6|pack5(c.B)<<1|alphaBit(c.A))

	case FormatBGRA5551:
		putU16(p.pix, 2*offset, pack5(c.B)<<11|pack5(c.G)<<6|pack5(c.R)<<1|alphaBit(c.A))

	case FormatRGBA4444:
		putU16(p.pix, 2*offset, pack4(c.R)<<12|pack4(c.G)<<8|pack4(c.B)<<4|pack4(c.A))

	case FormatBGRA4444:
		putU16(p.pix, 2*offset, pack4(c.B)<<12|pack4(c.G)<<8|pack4(c.R)<<4|pack4(c.A))

	case FormatRGBAU8:
		px := p.pix[4*offset:]
		px[0], px[1], px[2], px[3] = c.R, c.G, c.B, c.A

	case FormatBGRAU8:
		px := p.pix[4*offset:]
		px[0], px[1], px[2], px[3] = c.B, c.G, c.R, c.A

	case FormatRGBAF16:
		putU16(p.pix, 8*offset, floatToHalf(float32(c.R)/255))
		putU16(p.pix, 8*offset+2, floatToHalf(float32(c.G)/255))
		putU16(p.pix, 8*offset+4, floatToHalf(float32(c.B)/255))
		putU16(p.pix, 8*offset+6, floatToHalf(float32(c.A)/255))

	case FormatBGRAF16:
		putU16(p.pix, 8*offset, floatToHalf(float32(c.B)/255))
		putU16(p.pix, 8*offset+2, floatToHalf(float32(c.G)/255))
		putU16(p.pix, 8*offset+4, floatToHalf(float32(c.R)/255))
		putU16(p.pix, 8*offset+6, floatToHalf(float32(c.A)/255))

	case FormatRGBAF32:
		putF32(p.pix, 16*offset, float32(c.R)/255)
		putF32(p.pix, 16*offset+4, float32(c.G)/255)
		putF32(p.pix, 16*offset+8, float32(c.B)/255)
		putF32(p.pix, 16*offset+12, float32(c.A)/255)

	case FormatBGRAF32:
		putF32(p.pix, 16*offset, float32(c.B)/255)
		putF32(p.pix, 16*offset+4, float32(c.G)/255)
		putF32(p.pix, 16*offset+8, float32(c.R)/255)
		putF32(p.pix, 16*offset+12, float32(c.A)/255)
	}
}

func getU16(pix []byte, off int) uint16 {
	return binary.LittleEndian.Uint16(pix[off:])
}

func putU16(pix []byte, off int, v uint16) {
	binary.LittleEndian.PutUint16(pix[off:], v)
}

func getF32(pix []byte, off int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(pix[off:]))
}

func putF32(pix []byte, off int, v float32) {
	binary.LittleEndian.PutUint32(pix[off:], math.Float32bits(v))
}

// u8FromFloat maps a normalized sample to [0, 255] with rounding, clamping
// out-of-range values.
func u8FromFloat(v float32) uint8 {
	s := v*255 + 0.5
	if s < 0 || math.IsNaN(float64(s)) {
		return 0
	}
	if s > 255 {
		return 255
	}
	return uint8(s)
}

// Packed field helpers. The integer forms below implement
// round(v * max / 255) and round(v * 255 / max) without floating point.

func pack5(v uint8) uint16 { return uint16((int(v)*31 + 127) / 255) }
func pack6(v uint8) uint16 { return uint16((int(v)*63 + 127) / 255) }
func pack4(v uint8) uint16 { return uint16((int(v)*15 + 127) / 255) }

func expand5(v uint16) uint8 { return uint8((int(v)*255 + 15) / 31) }
func expand6(v uint16) uint8 { return uint8((int(v)*255 + 31) / 63) }
func expand4(v uint16) uint8 { return uint8(v * 17) }

func alphaBit(a uint8) uint16 {
	if a > alpha5551Threshold {
		return 1
	}
	return 0
}
