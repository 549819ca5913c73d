package bpx

import "math"

// GenerateGradientLinear1D builds a width x 1 strip sampling the ramp at
// x/width.
func GenerateGradientLinear1D(width int, ramp *ColorRamp, format PixelFormat) (*Image, error) {
	img, err := New(width, 1, format, Blank)
	if err != nil {
		return nil, err
	}
	for x := 0; x < width; x++ {
		img.SetUnsafe(x, ramp.Get(float64(x)/float64(width)))
	}
	return img, nil
}

// GenerateGradientLinear2D builds an image sampling the ramp along the
// projection of each pixel onto the axis from (xStart, yStart) to
// (xEnd, yEnd).
func GenerateGradientLinear2D(width, height int, ramp *ColorRamp, xStart, yStart, xEnd, yEnd int, format PixelFormat) (*Image, error) {
	img, err := New(width, height, format, Blank)
	if err != nil {
		return nil, err
	}

	dx := float64(xEnd - xStart)
	dy := float64(yEnd - yStart)
	maxDistance := math.Sqrt(dx*dx + dy*dy)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			t := 0.0
			if maxDistance != 0 {
				distance := (float64(x-xStart)*dx + float64(y-yStart)*dy) / maxDistance
				t = clamp01f(distance / maxDistance)
			}
			img.SetUnsafeXY(x, y, ramp.Get(t))
		}
	}

	return img, nil
}

// GenerateGradientRadial2D builds an image sampling the ramp by the
// distance from (xStart, yStart), reaching the last stop at (xEnd, yEnd).
func GenerateGradientRadial2D(width, height int, ramp *ColorRamp, xStart, yStart, xEnd, yEnd int, format PixelFormat) (*Image, error) {
	img, err := New(width, height, format, Blank)
	if err != nil {
		return nil, err
	}

	dx := float64(xEnd - xStart)
	dy := float64(yEnd - yStart)
	maxDistance := math.Sqrt(dx*dx + dy*dy)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			t := 1.0
			if maxDistance != 0 {
				cdx := float64(x - xStart)
				cdy := float64(y - yStart)
				t = clamp01f(math.Sqrt(cdx*cdx+cdy*cdy) / maxDistance)
			}
			img.SetUnsafeXY(x, y, ramp.Get(t))
		}
	}

	return img, nil
}

// GenerateCheckerboard builds an image tiling two colors in cells of the
// given size.
func GenerateCheckerboard(width, height, cellW, cellH int, c1, c2 Color, format PixelFormat) (*Image, error) {
	if cellW <= 0 || cellH <= 0 {
		return nil, ErrInvalidDimensions
	}
	img, err := New(width, height, format, Blank)
	if err != nil {
		return nil, err
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if (x/cellW+y/cellH)%2 == 0 {
				img.SetUnsafeXY(x, y, c1)
			} else {
				img.SetUnsafeXY(x, y, c2)
			}
		}
	}

	return img, nil
}
