package bpx

import (
	"errors"
	"testing"
)

func TestGenerateGradientLinear1D(t *testing.T) {
	ramp := NewColorRamp2(Color{0, 0, 0, 255}, Color{255, 255, 255, 255})
	img, err := GenerateGradientLinear1D(8, ramp, FormatRGBAU8)
	if err != nil {
		t.Fatal(err)
	}
	if img.Width() != 8 || img.Height() != 1 {
		t.Fatalf("dims: %dx%d", img.Width(), img.Height())
	}
	if got := img.Get(0, 0); got != (Color{0, 0, 0, 255}) {
		t.Fatalf("start: got %v", got)
	}
	prev := -1
	for x := 0; x < 8; x++ {
		r := int(img.Get(x, 0).R)
		if r < prev {
			t.Fatalf("not monotonic at x=%d", x)
		}
		prev = r
	}
}

func TestGenerateGradientLinear2D(t *testing.T) {
	ramp := NewColorRamp2(Color{0, 0, 0, 255}, Color{255, 255, 255, 255})
	img, err := GenerateGradientLinear2D(8, 8, ramp, 0, 0, 7, 7, FormatRGBAU8)
	if err != nil {
		t.Fatal(err)
	}
	if got := img.Get(0, 0); got != (Color{0, 0, 0, 255}) {
		t.Fatalf("origin: got %v", got)
	}
	if a, b := img.Get(1, 1).R, img.Get(6, 6).R; a > b {
		t.Fatalf("gradient direction: %d > %d", a, b)
	}
}

func TestGenerateGradientRadial2D(t *testing.T) {
	ramp := NewColorRamp2(White, Color{0, 0, 0, 255})
	img, err := GenerateGradientRadial2D(9, 9, ramp, 4, 4, 8, 4, FormatRGBAU8)
	if err != nil {
		t.Fatal(err)
	}
	if got := img.Get(4, 4); got != White {
		t.Fatalf("center: got %v", got)
	}
	if c, e := img.Get(4, 4).R, img.Get(0, 0).R; e >= c {
		t.Fatalf("radial direction: %d >= %d", e, c)
	}
}

func TestGenerateGradientDegenerateAxis(t *testing.T) {
	ramp := NewColorRamp2(Red, Blue)

	// Coincident endpoints give a zero-length axis; the whole image takes
	// the boundary color instead of failing.
	img, err := GenerateGradientLinear2D(2, 2, ramp, 1, 1, 1, 1, FormatRGBAU8)
	if err != nil {
		t.Fatal(err)
	}
	if got := countPixels(img, Red); got != 4 {
		t.Fatalf("linear degenerate axis: got %d red pixels", got)
	}

	img, err = GenerateGradientRadial2D(2, 2, ramp, 1, 1, 1, 1, FormatRGBAU8)
	if err != nil {
		t.Fatal(err)
	}
	if got := countPixels(img, Blue); got != 4 {
		t.Fatalf("radial degenerate axis: got %d blue pixels", got)
	}
}

func TestGenerateCheckerboard(t *testing.T) {
	img, err := GenerateCheckerboard(4, 4, 2, 2, Red, Blue, FormatRGBAU8)
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		x, y int
		want Color
	}{
		{0, 0, Red},
		{1, 1, Red},
		{2, 0, Blue},
		{0, 2, Blue},
		{2, 2, Red},
		{3, 3, Red},
	}
	for _, tc := range cases {
		if got := img.Get(tc.x, tc.y); got != tc.want {
			t.Fatalf("pixel (%d,%d): got %v want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestGenerateCheckerboardValidation(t *testing.T) {
	if _, err := GenerateCheckerboard(4, 4, 0, 2, Red, Blue, FormatRGBAU8); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("zero cell width: got %v", err)
	}
	if _, err := GenerateCheckerboard(0, 4, 2, 2, Red, Blue, FormatRGBAU8); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("zero width: got %v", err)
	}
}
