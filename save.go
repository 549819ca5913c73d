package bpx

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
)

// WritePNG encodes the image to a PNG file.
func (p *Image) WritePNG(path string) error {
	return p.writeFile(path, "png", func(f *os.File) error {
		return png.Encode(f, p.toGoImage())
	})
}

// WriteBMP encodes the image to a BMP file.
func (p *Image) WriteBMP(path string) error {
	return p.writeFile(path, "bmp", func(f *os.File) error {
		return bmp.Encode(f, p.toGoImage())
	})
}

// WriteTGA encodes the image to a TGA file.
func (p *Image) WriteTGA(path string) error {
	return p.writeFile(path, "tga", func(f *os.File) error {
		return tga.Encode(f, p.toGoImage())
	})
}

// WriteJPG encodes the image to a JPEG file. quality is clamped to
// [1, 100]; zero and negative values select the default quality of 90.
func (p *Image) WriteJPG(path string, quality int) error {
	if quality <= 0 {
		quality = defaultJPEGQuality
	}
	if quality > 100 {
		quality = 100
	}
	return p.writeFile(path, "jpg", func(f *os.File) error {
		return jpeg.Encode(f, p.toGoImage(), &jpeg.Options{Quality: quality})
	})
}

func (p *Image) writeFile(path, kind string, encode func(f *os.File) error) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("write %s %s: %w", kind, path, err)
	}
	if err := encode(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s %s: %w", kind, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write %s %s: %w", kind, path, err)
	}
	return nil
}

// toGoImage converts the buffer to a standard-library image for the
// encoders: Gray for single-channel formats, NRGBA otherwise.
func (p *Image) toGoImage() image.Image {
	if p.format.Components() == 1 {
		out := image.NewGray(image.Rect(0, 0, p.w, p.h))
		for i := 0; i < p.Size(); i++ {
			out.Pix[i] = p.GetUnsafe(i).R
		}
		return out
	}

	out := image.NewNRGBA(image.Rect(0, 0, p.w, p.h))
	for i := 0; i < p.Size(); i++ {
		c := p.GetUnsafe(i)
		out.SetNRGBA(i%p.w, i/p.w, color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A})
	}
	return out
}
