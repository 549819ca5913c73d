package bpx

import "math"

// floatToHalf converts a float32 to IEEE binary16 bits with round to
// nearest. Subnormal results flush to zero, overflow saturates to infinity
// and every NaN becomes the canonical quiet NaN.
func floatToHalf(f float32) uint16 {
	ui := math.Float32bits(f)

	s := int((ui >> 16) & 0x8000)
	em := int(ui & 0x7fffffff)

	// bias exponent and round to nearest; 112 is the relative exponent bias (127-15)
	h := (em - (112 << 23) + (1 << 12)) >> 13

	// underflow: flush to zero; 113 encodes exponent -14
	if em < (113 << 23) {
		h = 0
	}

	// overflow: infinity; 143 encodes exponent 16
	if em >= (143 << 23) {
		h = 0x7c00
	}

	if em > (255 << 23) {
		h = 0x7e00
	}

	return uint16(s | h)
}

// halfToFloat converts IEEE binary16 bits to a float32. Half denormals
// flush to zero; NaN payloads are preserved.
func halfToFloat(h uint16) float32 {
	s := uint32(h&0x8000) << 16
	em := int(h & 0x7fff)

	// bias exponent and pad mantissa with 0; 112 is the relative exponent bias (127-15)
	r := (em + (112 << 10)) << 13

	if em < (1 << 10) {
		r = 0
	}

	// infinity/NaN; applying the bias fixup a second time converts 31 to 255
	if em >= (31 << 10) {
		r += 112 << 23
	}

	return math.Float32frombits(s | uint32(r))
}
