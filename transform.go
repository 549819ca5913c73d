package bpx

import "fmt"

// Fill sets every pixel to the given color through the format encoder.
func (p *Image) Fill(c Color) {
	size := p.Size()
	for i := 0; i < size; i++ {
		p.SetUnsafe(i, c)
	}
}

// Map applies the mapper to every pixel in place.
func (p *Image) Map(mapper Mapper) {
	for y := 0; y < p.h; y++ {
		for x := 0; x < p.w; x++ {
			offset := y*p.w + x
			p.SetUnsafe(offset, mapper(x, y, p.GetUnsafe(offset)))
		}
	}
}

// MapRect applies the mapper to a rectangular region clamped to the canvas.
func (p *Image) MapRect(xStart, yStart, width, height int, mapper Mapper) {
	xStart = clampInt(xStart, 0, p.w)
	yStart = clampInt(yStart, 0, p.h)

	xEnd := minInt(xStart+width, p.w)
	yEnd := minInt(yStart+height, p.h)

	for y := yStart; y < yEnd; y++ {
		for x := xStart; x < xEnd; x++ {
			offset := y*p.w + x
			p.SetUnsafe(offset, mapper(x, y, p.GetUnsafe(offset)))
		}
	}
}

// AdjustSaturation applies the Saturation color adjustment to every pixel.
func (p *Image) AdjustSaturation(factor float64) {
	p.eachPixel(func(c Color) Color { return Saturation(c, factor) })
}

// AdjustBrightness applies the Brightness color adjustment to every pixel.
func (p *Image) AdjustBrightness(factor float64) {
	p.eachPixel(func(c Color) Color { return Brightness(c, factor) })
}

// AdjustContrast applies the Contrast color adjustment to every pixel.
func (p *Image) AdjustContrast(factor float64) {
	p.eachPixel(func(c Color) Color { return Contrast(c, factor) })
}

// AdjustOpacity replaces the alpha of every pixel with a normalized value.
func (p *Image) AdjustOpacity(alpha float64) {
	p.eachPixel(func(c Color) Color { return WithAlpha(c, alpha) })
}

// InvertColors inverts the RGB channels of every pixel.
func (p *Image) InvertColors() {
	p.eachPixel(Invert)
}

func (p *Image) eachPixel(fn func(Color) Color) {
	size := p.Size()
	for i := 0; i < size; i++ {
		p.SetUnsafe(i, fn(p.GetUnsafe(i)))
	}
}

// FlipHorizontal mirrors the image along its vertical axis in place.
func (p *Image) FlipHorizontal() {
	for y := 0; y < p.h; y++ {
		row := y * p.w
		for x := 0; x < p.w/2; x++ {
			left := row + x
			right := row + p.w - 1 - x
			a, b := p.GetUnsafe(left), p.GetUnsafe(right)
			p.SetUnsafe(left, b)
			p.SetUnsafe(right, a)
		}
	}
}

// FlipVertical mirrors the image along its horizontal axis in place.
func (p *Image) FlipVertical() {
	for y := 0; y < p.h/2; y++ {
		for x := 0; x < p.w; x++ {
			top := y*p.w + x
			bottom := (p.h-1-y)*p.w + x
			a, b := p.GetUnsafe(top), p.GetUnsafe(bottom)
			p.SetUnsafe(top, b)
			p.SetUnsafe(bottom, a)
		}
	}
}

// Rotate180 rotates the image by half a turn in place.
func (p *Image) Rotate180() {
	size := p.Size()
	for i := 0; i < size/2; i++ {
		j := size - 1 - i
		a, b := p.GetUnsafe(i), p.GetUnsafe(j)
		p.SetUnsafe(i, b)
		p.SetUnsafe(j, a)
	}
}

// Rotate90 rotates the image a quarter turn clockwise. Square images rotate
// in place as four-pixel cycles; other images swap in a newly owned buffer.
func (p *Image) Rotate90() {
	if p.w == p.h {
		n := p.w
		for layer := 0; layer < n/2; layer++ {
			first := layer
			last := n - 1 - layer
			for i := first; i < last; i++ {
				offset := i - first

				top := p.GetUnsafeXY(first, i)
				p.SetUnsafeXY(first, i, p.GetUnsafeXY(last-offset, first))
				p.SetUnsafeXY(last-offset, first, p.GetUnsafeXY(last, last-offset))
				p.SetUnsafeXY(last, last-offset, p.GetUnsafeXY(i, last))
				p.SetUnsafeXY(i, last, top)
			}
		}
		return
	}

	out := newUnfilled(p.h, p.w, p.format)
	for y := 0; y < p.h; y++ {
		for x := 0; x < p.w; x++ {
			out.SetUnsafe((p.w-1-x)*p.h+y, p.GetUnsafe(y*p.w+x))
		}
	}
	p.pix = out.pix
	p.w, p.h = out.w, out.h
	p.borrowed = false
}

// Convert returns a copy of the image re-encoded in the given format. Each
// pixel passes through the canonical color, so converting between formats
// of equal or wider precision is lossless.
func (p *Image) Convert(format PixelFormat) *Image {
	out := newUnfilled(p.w, p.h, format)
	size := p.Size()
	for i := 0; i < size; i++ {
		out.SetUnsafe(i, p.GetUnsafe(i))
	}
	return out
}

// ResizeCanvas returns a copy with the canvas grown or cropped to the new
// dimensions. With centered the content is offset to the middle; pixels
// outside the source stay Blank.
func (p *Image) ResizeCanvas(newW, newH int, centered bool) (*Image, error) {
	if newW <= 0 || newH <= 0 {
		return nil, fmt.Errorf("resize canvas to %dx%d: %w", newW, newH, ErrInvalidDimensions)
	}

	out, err := New(newW, newH, p.format, Blank)
	if err != nil {
		return nil, err
	}

	offsetX, offsetY := 0, 0
	if centered {
		offsetX = (newW - p.w) / 2
		offsetY = (newH - p.h) / 2
	}

	for y := 0; y < p.h; y++ {
		for x := 0; x < p.w; x++ {
			nx := x + offsetX
			ny := y + offsetY
			if nx >= 0 && nx < newW && ny >= 0 && ny < newH {
				out.SetUnsafeXY(nx, ny, p.GetUnsafeXY(x, y))
			}
		}
	}

	return out, nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
