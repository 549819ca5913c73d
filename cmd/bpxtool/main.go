package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	bpx "github.com/Backpack-Studio/BPX"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "info":
		if err := runInfo(os.Args[2:]); err != nil {
			fail(err)
		}
	case "convert":
		if err := runConvert(os.Args[2:]); err != nil {
			fail(err)
		}
	case "resize":
		if err := runResize(os.Args[2:]); err != nil {
			fail(err)
		}
	case "gradient":
		if err := runGradient(os.Args[2:]); err != nil {
			fail(err)
		}
	case "adjust":
		if err := runAdjust(os.Args[2:]); err != nil {
			fail(err)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: bpxtool <command> [args]")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  info     -in input.png")
	fmt.Fprintln(os.Stderr, "  convert  -in input.png -out output.jpg [-q 90] [-flip]")
	fmt.Fprintln(os.Stderr, "  resize   -in input.png -out output.png -w 640 -h 480")
	fmt.Fprintln(os.Stderr, "  gradient -out output.png -w 256 -h 256 [-radial] [-from ff0000ff] [-to 0000ffff]")
	fmt.Fprintln(os.Stderr, "  adjust   -in input.png -out output.png [-brightness 0] [-contrast 0] [-saturation 1] [-invert]")
}

func runInfo(args []string) error {
	fs := flag.NewFlagSet("info", flag.ContinueOnError)
	inPath := fs.String("in", "", "input image")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inPath == "" {
		return errors.New("missing required arguments")
	}
	img, err := bpx.Load(*inPath, false)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "%dx%d %s (%d bytes)\n", img.Width(), img.Height(), img.Format(), img.DataSize())
	return nil
}

func runConvert(args []string) error {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	inPath := fs.String("in", "", "input image")
	outPath := fs.String("out", "", "output image")
	q := fs.Int("q", 0, "JPEG quality")
	flip := fs.Bool("flip", false, "flip vertically while loading")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inPath == "" || *outPath == "" {
		return errors.New("missing required arguments")
	}
	img, err := bpx.Load(*inPath, *flip)
	if err != nil {
		return err
	}
	return save(img, *outPath, *q)
}

func runResize(args []string) error {
	fs := flag.NewFlagSet("resize", flag.ContinueOnError)
	inPath := fs.String("in", "", "input image")
	outPath := fs.String("out", "", "output image")
	width := fs.Int("w", 0, "target width")
	height := fs.Int("h", 0, "target height")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inPath == "" || *outPath == "" || *width <= 0 || *height <= 0 {
		return errors.New("missing required arguments")
	}
	img, err := bpx.Load(*inPath, false)
	if err != nil {
		return err
	}
	resized, err := img.Resize(*width, *height)
	if err != nil {
		return err
	}
	return save(resized, *outPath, 0)
}

func runGradient(args []string) error {
	fs := flag.NewFlagSet("gradient", flag.ContinueOnError)
	outPath := fs.String("out", "", "output image")
	width := fs.Int("w", 256, "width")
	height := fs.Int("h", 256, "height")
	radial := fs.Bool("radial", false, "radial instead of linear")
	from := fs.String("from", "000000ff", "start color as rgba hex")
	to := fs.String("to", "ffffffff", "end color as rgba hex")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *outPath == "" || *width <= 0 || *height <= 0 {
		return errors.New("missing required arguments")
	}

	c1, err := parseHexColor(*from)
	if err != nil {
		return err
	}
	c2, err := parseHexColor(*to)
	if err != nil {
		return err
	}
	ramp := bpx.NewColorRamp2(c1, c2)

	var img *bpx.Image
	if *radial {
		img, err = bpx.GenerateGradientRadial2D(*width, *height, ramp, *width/2, *height/2, *width/2, 0, bpx.FormatRGBAU8)
	} else {
		img, err = bpx.GenerateGradientLinear2D(*width, *height, ramp, 0, 0, *width-1, *height-1, bpx.FormatRGBAU8)
	}
	if err != nil {
		return err
	}
	return save(img, *outPath, 0)
}

func runAdjust(args []string) error {
	fs := flag.NewFlagSet("adjust", flag.ContinueOnError)
	inPath := fs.String("in", "", "input image")
	outPath := fs.String("out", "", "output image")
	brightness := fs.Float64("brightness", 0, "brightness factor in [-1, 1]")
	contrast := fs.Float64("contrast", 0, "contrast factor in [-1, 1]")
	saturation := fs.Float64("saturation", -1, "saturation in [0, 1], negative leaves unchanged")
	invert := fs.Bool("invert", false, "invert colors")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inPath == "" || *outPath == "" {
		return errors.New("missing required arguments")
	}
	img, err := bpx.Load(*inPath, false)
	if err != nil {
		return err
	}
	if *brightness != 0 {
		img.AdjustBrightness(*brightness)
	}
	if *contrast != 0 {
		img.AdjustContrast(*contrast)
	}
	if *saturation >= 0 {
		img.AdjustSaturation(*saturation)
	}
	if *invert {
		img.InvertColors()
	}
	return save(img, *outPath, 0)
}

// save picks the encoder from the output extension.
func save(img *bpx.Image, path string, quality int) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return img.WritePNG(path)
	case ".bmp":
		return img.WriteBMP(path)
	case ".tga":
		return img.WriteTGA(path)
	case ".jpg", ".jpeg":
		return img.WriteJPG(path, quality)
	}
	return fmt.Errorf("unsupported output extension %q", filepath.Ext(path))
}

func parseHexColor(s string) (bpx.Color, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) == 6 {
		s += "ff"
	}
	if len(s) != 8 {
		return bpx.Color{}, fmt.Errorf("invalid color %q, want rrggbbaa hex", s)
	}
	var r, g, b, a uint8
	if _, err := fmt.Sscanf(s, "%02x%02x%02x%02x", &r, &g, &b, &a); err != nil {
		return bpx.Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return bpx.RGBA(r, g, b, a), nil
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
