package bpx

import (
	"errors"
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func sampleImage(t *testing.T) *Image {
	t.Helper()
	img, err := New(3, 2, FormatRGBAU8, Blank)
	if err != nil {
		t.Fatal(err)
	}
	img.SetUnsafeXY(0, 0, Color{255, 0, 0, 255})
	img.SetUnsafeXY(1, 0, Color{0, 255, 0, 255})
	img.SetUnsafeXY(2, 0, Color{0, 0, 255, 255})
	img.SetUnsafeXY(0, 1, Color{10, 20, 30, 128})
	img.SetUnsafeXY(1, 1, Color{200, 100, 50, 255})
	img.SetUnsafeXY(2, 1, Color{1, 2, 3, 255})
	return img
}

func requireSamePixels(t *testing.T, got, want *Image) {
	t.Helper()
	if got.Width() != want.Width() || got.Height() != want.Height() {
		t.Fatalf("dims: got %dx%d want %dx%d", got.Width(), got.Height(), want.Width(), want.Height())
	}
	for y := 0; y < want.Height(); y++ {
		for x := 0; x < want.Width(); x++ {
			if g, w := got.Get(x, y), want.Get(x, y); g != w {
				t.Fatalf("pixel (%d,%d): got %v want %v", x, y, g, w)
			}
		}
	}
}

func TestWriteLoadPNG(t *testing.T) {
	img := sampleImage(t)
	path := filepath.Join(t.TempDir(), "out.png")

	if err := img.WritePNG(path); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path, false)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Format() != FormatRGBAU8 {
		t.Fatalf("format: got %v", loaded.Format())
	}
	requireSamePixels(t, loaded, img)
}

func TestWriteLoadBMP(t *testing.T) {
	img := sampleImage(t)
	path := filepath.Join(t.TempDir(), "out.bmp")

	if err := img.WriteBMP(path); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path, false)
	if err != nil {
		t.Fatal(err)
	}
	requireSamePixels(t, loaded, img)
}

func TestWriteLoadTGA(t *testing.T) {
	img := sampleImage(t)
	path := filepath.Join(t.TempDir(), "out.tga")

	if err := img.WriteTGA(path); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path, false)
	if err != nil {
		t.Fatal(err)
	}
	requireSamePixels(t, loaded, img)
}

func TestWriteLoadJPG(t *testing.T) {
	img, err := New(16, 16, FormatRGBAU8, Color{200, 100, 50, 255})
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "out.jpg")

	if err := img.WriteJPG(path, 95); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path, false)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Width() != 16 || loaded.Height() != 16 {
		t.Fatalf("dims: %dx%d", loaded.Width(), loaded.Height())
	}
	if loaded.Format() != FormatRGBU8 {
		t.Fatalf("format: got %v", loaded.Format())
	}
	// Lossy codec: the solid color survives within a small tolerance.
	got := loaded.Get(8, 8)
	if absInt(int(got.R)-200) > 8 || absInt(int(got.G)-100) > 8 || absInt(int(got.B)-50) > 8 {
		t.Fatalf("color drifted too far: got %v", got)
	}
}

func TestWriteLoadGrayPNG(t *testing.T) {
	img, err := New(4, 4, FormatLU8, Color{90, 90, 90, 255})
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "gray.png")

	if err := img.WritePNG(path); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path, false)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Format() != FormatLU8 {
		t.Fatalf("format: got %v", loaded.Format())
	}
	if got := loaded.Get(0, 0); got != (Color{90, 90, 90, 255}) {
		t.Fatalf("pixel: got %v", got)
	}
}

func TestLoadFlipVertically(t *testing.T) {
	img, err := New(1, 2, FormatRGBAU8, Blank)
	if err != nil {
		t.Fatal(err)
	}
	img.SetUnsafeXY(0, 0, Red)
	img.SetUnsafeXY(0, 1, Blue)
	path := filepath.Join(t.TempDir(), "flip.png")
	if err := img.WritePNG(path); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path, true)
	if err != nil {
		t.Fatal(err)
	}
	if got := loaded.Get(0, 0); got != Blue {
		t.Fatalf("top pixel after flip: got %v", got)
	}
	if got := loaded.Get(0, 1); got != Red {
		t.Fatalf("bottom pixel after flip: got %v", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.png")
	_, err := Load(path, false)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("got %v", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Fatalf("error must name the file: %v", err)
	}
}

func TestFromImageChannelMapping(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 2, 2))
	gray.Pix[0] = 77
	img, err := FromImage(gray)
	if err != nil {
		t.Fatal(err)
	}
	if img.Format() != FormatLU8 {
		t.Fatalf("gray format: got %v", img.Format())
	}
	if got := img.Get(0, 0); got != (Color{77, 77, 77, 255}) {
		t.Fatalf("gray pixel: got %v", got)
	}

	nrgba := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img, err = FromImage(nrgba)
	if err != nil {
		t.Fatal(err)
	}
	if img.Format() != FormatRGBAU8 {
		t.Fatalf("nrgba format: got %v", img.Format())
	}

	if _, err := FromImage(image.NewNRGBA(image.Rect(0, 0, 0, 0))); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("empty image: got %v", err)
	}
}

func TestWriteJPGQualityClamp(t *testing.T) {
	img, err := New(2, 2, FormatRGBAU8, Red)
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()

	if err := img.WriteJPG(filepath.Join(dir, "default.jpg"), 0); err != nil {
		t.Fatal(err)
	}
	if err := img.WriteJPG(filepath.Join(dir, "clamped.jpg"), 500); err != nil {
		t.Fatal(err)
	}
}
