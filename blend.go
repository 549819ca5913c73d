package bpx

// BlendMode selects how a source color is combined with a destination color.
type BlendMode int

const (
	// BlendReplace discards the destination color.
	BlendReplace BlendMode = iota
	// BlendAlpha composites the source over the destination weighted by
	// the source alpha.
	BlendAlpha
	// BlendAdd adds channel values, saturating at 255.
	BlendAdd
	// BlendSub subtracts source channels from the destination, saturating at 0.
	BlendSub
	// BlendMul multiplies channel values, darkening the result.
	BlendMul
	// BlendScreen inverts, multiplies and inverts again, lightening the result.
	BlendScreen
	// BlendDarken keeps the darker of the two channel values.
	BlendDarken
	// BlendLighten keeps the lighter of the two channel values.
	BlendLighten
	// BlendDifference takes the absolute channel difference.
	BlendDifference
	// BlendExclusion is a lower-contrast variant of BlendDifference.
	BlendExclusion
	// BlendDodge brightens the destination based on the source.
	BlendDodge
	// BlendBurn darkens the destination based on the source.
	BlendBurn
)

// Blend combines dst and src according to mode. Except for BlendReplace and
// BlendAlpha the destination alpha is carried through unchanged. An unknown
// mode returns dst.
func Blend(dst, src Color, mode BlendMode) Color {
	switch mode {
	case BlendReplace:
		return src

	case BlendAlpha:
		srcAlpha := float64(src.A) / 255
		dstAlpha := float64(dst.A) / 255 * (1 - srcAlpha)
		outAlpha := srcAlpha + dstAlpha
		if outAlpha == 0 {
			return Color{}
		}
		return Color{
			R: clampU8(int((float64(src.R)*srcAlpha + float64(dst.R)*dstAlpha) / outAlpha)),
			G: clampU8(int((float64(src.G)*srcAlpha + float64(dst.G)*dstAlpha) / outAlpha)),
			B: clampU8(int((float64(src.B)*srcAlpha + float64(dst.B)*dstAlpha) / outAlpha)),
			A: clampU8(int(outAlpha * 255)),
		}

	case BlendAdd:
		return Color{
			R: clampU8(int(dst.R) + int(src.R)),
			G: clampU8(int(dst.G) + int(src.G)),
			B: clampU8(int(dst.B) + int(src.B)),
			A: dst.A,
		}

	case BlendSub:
		return Color{
			R: clampU8(int(dst.R) - int(src.R)),
			G: clampU8(int(dst.G) - int(src.G)),
			B: clampU8(int(dst.B) - int(src.B)),
			A: dst.A,
		}

	case BlendMul:
		return Color{
			R: clampU8(int(dst.R) * int(src.R) / 255),
			G: clampU8(int(dst.G) * int(src.G) / 255),
			B: clampU8(int(dst.B) * int(src.B) / 255),
			A: dst.A,
		}

	case BlendScreen:
		return Color{
			R: clampU8(255 - (255-int(dst.R))*(255-int(src.R))/255),
			G: clampU8(255 - (255-int(dst.G))*(255-int(src.G))/255),
			B: clampU8(255 - (255-int(dst.B))*(255-int(src.B))/255),
			A: dst.A,
		}

	case BlendDarken:
		return Color{
			R: minU8(dst.R, src.R),
			G: minU8(dst.G, src.G),
			B: minU8(dst.B, src.B),
			A: dst.A,
		}

	case BlendLighten:
		return Color{
			R: maxU8(dst.R, src.R),
			G: maxU8(dst.G, src.G),
			B: maxU8(dst.B, src.B),
			A: dst.A,
		}

	case BlendDifference:
		return Color{
			R: clampU8(absInt(int(dst.R) - int(src.R))),
			G: clampU8(absInt(int(dst.G) - int(src.G))),
			B: clampU8(absInt(int(dst.B) - int(src.B))),
			A: dst.A,
		}

	case BlendExclusion:
		return Color{
			R: clampU8(int(dst.R) + int(src.R) - 2*int(dst.R)*int(src.R)/255),
			G: clampU8(int(dst.G) + int(src.G) - 2*int(dst.G)*int(src.G)/255),
			B: clampU8(int(dst.B) + int(src.B) - 2*int(dst.B)*int(src.B)/255),
			A: dst.A,
		}

	case BlendDodge:
		return Color{
			R: dodgeU8(dst.R, src.R),
			G: dodgeU8(dst.G, src.G),
			B: dodgeU8(dst.B, src.B),
			A: dst.A,
		}

	case BlendBurn:
		return Color{
			R: burnU8(dst.R, src.R),
			G: burnU8(dst.G, src.G),
			B: burnU8(dst.B, src.B),
			A: dst.A,
		}
	}

	return dst
}

func dodgeU8(d, s uint8) uint8 {
	if s == 255 {
		return 255
	}
	return clampU8(int(d) * 255 / (255 - int(s)))
}

func burnU8(d, s uint8) uint8 {
	if s == 0 {
		return 0
	}
	return clampU8(255 - (255-int(d))*255/int(s))
}

func clampU8(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func minU8(a, b uint8) uint8 {
	if a < b {
		return a
	}
	return b
}

func maxU8(a, b uint8) uint8 {
	if a > b {
		return a
	}
	return b
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
