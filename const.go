package bpx

const (
	defaultJPEGQuality = 90

	// Alpha intensities above this threshold encode as opaque in the
	// single-bit 5551 formats.
	alpha5551Threshold = 50
)
