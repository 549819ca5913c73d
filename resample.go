package bpx

import (
	"fmt"
	"image"

	"github.com/nfnt/resize"
)

// Resize returns the image scaled to the new dimensions with bilinear
// filtering. 8-bit layouts go through github.com/nfnt/resize; 32-bit float
// layouts are resampled on the raw samples, preserving out-of-range values.
// Packed and 16-bit float formats return ErrUnsupportedFormat.
func (p *Image) Resize(newW, newH int) (*Image, error) {
	if newW <= 0 || newH <= 0 {
		return nil, fmt.Errorf("resize to %dx%d: %w", newW, newH, ErrInvalidDimensions)
	}

	switch p.format {
	case FormatLU8, FormatLAU8, FormatRGBU8, FormatBGRU8, FormatRGBAU8, FormatBGRAU8:
		return p.resizeU8(newW, newH), nil
	case FormatLF32, FormatLAF32, FormatRGBF32, FormatBGRF32, FormatRGBAF32, FormatBGRAF32:
		return p.resizeF32(newW, newH), nil
	}
	return nil, fmt.Errorf("resize %s: %w", p.format, ErrUnsupportedFormat)
}

func (p *Image) resizeU8(newW, newH int) *Image {
	var src image.Image
	if p.format == FormatLU8 {
		// The L_U8 buffer already is a gray plane; filter it directly.
		src = &image.Gray{Pix: p.pix, Stride: p.w, Rect: image.Rect(0, 0, p.w, p.h)}
	} else {
		nrgba := image.NewNRGBA(image.Rect(0, 0, p.w, p.h))
		for i := 0; i < p.Size(); i++ {
			c := p.GetUnsafe(i)
			nrgba.Pix[4*i] = c.R
			nrgba.Pix[4*i+1] = c.G
			nrgba.Pix[4*i+2] = c.B
			nrgba.Pix[4*i+3] = c.A
		}
		src = nrgba
	}

	scaled := resize.Resize(uint(newW), uint(newH), src, resize.Bilinear)

	out := newUnfilled(newW, newH, p.format)
	switch scaled := scaled.(type) {
	case *image.Gray:
		for y := 0; y < newH; y++ {
			copy(out.pix[y*newW:(y+1)*newW], scaled.Pix[y*scaled.Stride:])
		}
	case *image.NRGBA:
		for i := 0; i < newW*newH; i++ {
			out.SetUnsafe(i, Color{
				scaled.Pix[4*i],
				scaled.Pix[4*i+1],
				scaled.Pix[4*i+2],
				scaled.Pix[4*i+3],
			})
		}
	default:
		for y := 0; y < newH; y++ {
			for x := 0; x < newW; x++ {
				r, g, b, a := scaled.At(x, y).RGBA()
				out.SetUnsafeXY(x, y, Color{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)})
			}
		}
	}
	return out
}

// resizeF32 bilinearly resamples each float32 channel of the interleaved
// buffer. Values outside [0, 1] pass through untouched.
func (p *Image) resizeF32(newW, newH int) *Image {
	comps := p.format.Components()
	out := newUnfilled(newW, newH, p.format)

	scaleX := float64(p.w) / float64(newW)
	scaleY := float64(p.h) / float64(newH)

	for y := 0; y < newH; y++ {
		sy := (float64(y)+0.5)*scaleY - 0.5
		y0 := int(sy)
		if sy < 0 {
			sy, y0 = 0, 0
		}
		y1 := minInt(y0+1, p.h-1)
		fy := float32(sy - float64(y0))

		for x := 0; x < newW; x++ {
			sx := (float64(x)+0.5)*scaleX - 0.5
			x0 := int(sx)
			if sx < 0 {
				sx, x0 = 0, 0
			}
			x1 := minInt(x0+1, p.w-1)
			fx := float32(sx - float64(x0))

			for ch := 0; ch < comps; ch++ {
				s00 := getF32(p.pix, 4*((y0*p.w+x0)*comps+ch))
				s10 := getF32(p.pix, 4*((y0*p.w+x1)*comps+ch))
				s01 := getF32(p.pix, 4*((y1*p.w+x0)*comps+ch))
				s11 := getF32(p.pix, 4*((y1*p.w+x1)*comps+ch))

				top := s00 + fx*(s10-s00)
				bottom := s01 + fx*(s11-s01)
				putF32(out.pix, 4*((y*newW+x)*comps+ch), top+fy*(bottom-top))
			}
		}
	}

	return out
}
