package bpx

import "math"

// Clip region codes for Cohen-Sutherland line clipping.
const (
	clipInside = 0x00
	clipLeft   = 0x01
	clipRight  = 0x02
	clipBottom = 0x04
	clipTop    = 0x08
)

func clipCode(x, y, xmin, ymin, xmax, ymax int) int {
	code := clipInside
	if x < xmin {
		code |= clipLeft
	}
	if x > xmax {
		code |= clipRight
	}
	if y < ymin {
		code |= clipTop
	}
	if y > ymax {
		code |= clipBottom
	}
	return code
}

// clipLine clips the segment against the rectangle [xmin, xmax] x [ymin, ymax]
// and reports whether any part of it remains. The slopes are taken from the
// original endpoints once, before any clipping step.
func clipLine(x1, y1, x2, y2, xmin, ymin, xmax, ymax int) (cx1, cy1, cx2, cy2 int, ok bool) {
	code1 := clipCode(x1, y1, xmin, ymin, xmax, ymax)
	code2 := clipCode(x2, y2, xmin, ymin, xmax, ymax)

	dx := x2 - x1
	dy := y2 - y1

	for {
		if code1|code2 == 0 {
			return x1, y1, x2, y2, true
		}
		if code1&code2 != 0 {
			return x1, y1, x2, y2, false
		}

		codeOut := code1
		if codeOut == 0 {
			codeOut = code2
		}
		x, y := x1, y1
		if codeOut == code2 {
			x, y = x2, y2
		}

		switch {
		case codeOut&clipLeft != 0:
			if dx != 0 {
				y += dy * (xmin - x) / dx
			}
			x = xmin
		case codeOut&clipRight != 0:
			if dx != 0 {
				y += dy * (xmax - x) / dx
			}
			x = xmax
		case codeOut&clipBottom != 0:
			if dy != 0 {
				x += dx * (ymax - y) / dy
			}
			y = ymax
		default: // clipTop
			if dy != 0 {
				x += dx * (ymin - y) / dy
			}
			y = ymin
		}

		if codeOut == code1 {
			x1, y1 = x, y
			code1 = clipCode(x1, y1, xmin, ymin, xmax, ymax)
		} else {
			x2, y2 = x, y
			code2 = clipCode(x2, y2, xmin, ymin, xmax, ymax)
		}
	}
}

// traverseLine walks the clipped segment with a 16.16 fixed-point DDA along
// the major axis and calls visit for every plotted pixel. t is the fraction
// of the traversal completed, 0 at the first pixel. The final endpoint is
// not visited.
func (p *Image) traverseLine(x1, y1, x2, y2 int, visit func(x, y, offset int, t float64)) {
	x1, y1, x2, y2, ok := clipLine(x1, y1, x2, y2, 0, 0, p.w-1, p.h-1)
	if !ok {
		return
	}

	yLonger := false
	shortLen := y2 - y1
	longLen := x2 - x1
	if absInt(shortLen) > absInt(longLen) {
		shortLen, longLen = longLen, shortLen
		yLonger = true
	}

	end := longLen
	sign := 1
	if longLen < 0 {
		longLen = -longLen
		sign = -1
	}

	dec := 0
	if longLen != 0 {
		dec = (shortLen << 16) / longLen
	}

	if yLonger {
		for i, j := 0, 0; i != end; i, j = i+sign, j+dec {
			x, y := x1+(j>>16), y1+i
			visit(x, y, y*p.w+x, frac(i, end))
		}
	} else {
		for i, j := 0, 0; i != end; i, j = i+sign, j+dec {
			x, y := x1+i, y1+(j>>16)
			visit(x, y, y*p.w+x, frac(i, end))
		}
	}
}

func frac(i, end int) float64 {
	if end == 0 {
		return 0
	}
	return float64(i) / float64(end)
}

// traverseThickLine expands a segment into parallel offset segments and
// calls drawLine for each of them, including the center one.
func traverseThickLine(x1, y1, x2, y2, thick int, drawLine func(x1, y1, x2, y2 int)) {
	dx := x2 - x1
	dy := y2 - y1

	drawLine(x1, y1, x2, y2)

	length := math.Sqrt(float64(dx*dx + dy*dy))

	if dx != 0 && absInt(dy/dx) < 1 {
		wy := int(float64(thick-1) * length / float64(2*absInt(dx)))
		for i := 1; i <= wy; i++ {
			drawLine(x1, y1-i, x2, y2-i)
			drawLine(x1, y1+i, x2, y2+i)
		}
	} else if dy != 0 {
		wx := int(float64(thick-1) * length / float64(2*absInt(dy)))
		for i := 1; i <= wx; i++ {
			drawLine(x1-i, y1, x2-i, y2)
			drawLine(x1+i, y1, x2+i, y2)
		}
	}
}

// traverseRect visits every pixel of the corner-normalized rectangle
// clamped to the canvas, bounds inclusive.
func (p *Image) traverseRect(x1, y1, x2, y2 int, visit func(x, y, offset int)) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}

	xmin := clampInt(x1, 0, p.w-1)
	ymin := clampInt(y1, 0, p.h-1)
	xmax := clampInt(x2, 0, p.w-1)
	ymax := clampInt(y2, 0, p.h-1)

	for y := ymin; y <= ymax; y++ {
		yOffset := y * p.w
		for x := xmin; x <= xmax; x++ {
			visit(x, y, yOffset+x)
		}
	}
}

// traverseCircleFill visits the filled midpoint circle as symmetric
// horizontal spans with per-pixel bounds checks.
func (p *Image) traverseCircleFill(cx, cy, radius int, visit func(x, y, offset int)) {
	x := 0
	y := radius
	d := 3 - 2*radius
	for y >= x {
		for i := cx - x; i <= cx+x; i++ {
			if i >= 0 && i < p.w {
				if cy+y >= 0 && cy+y < p.h {
					visit(i, cy+y, (cy+y)*p.w+i)
				}
				if cy-y >= 0 && cy-y < p.h {
					visit(i, cy-y, (cy-y)*p.w+i)
				}
			}
		}
		for i := cx - y; i <= cx+y; i++ {
			if i >= 0 && i < p.w {
				if cy+x >= 0 && cy+x < p.h {
					visit(i, cy+x, (cy+x)*p.w+i)
				}
				if cy-x >= 0 && cy-x < p.h {
					visit(i, cy-x, (cy-x)*p.w+i)
				}
			}
		}
		x++
		if d > 0 {
			y--
			d = d + 4*(x-y) + 10
		} else {
			d = d + 4*x + 6
		}
	}
}

// traverseCircleOutline visits the eight symmetric points of each midpoint
// circle step with per-pixel bounds checks.
func (p *Image) traverseCircleOutline(cx, cy, radius int, visit func(x, y, offset int)) {
	x := 0
	y := radius
	d := 3 - 2*radius
	for y >= x {
		px1, px2 := cx+x, cx-x
		py1, py2 := cy+y, cy-y
		px3, px4 := cx+y, cx-y
		py3, py4 := cy+x, cy-x

		plot := func(px, py int) {
			if px >= 0 && px < p.w && py >= 0 && py < p.h {
				visit(px, py, py*p.w+px)
			}
		}

		plot(px1, py1)
		plot(px1, py2)
		plot(px2, py1)
		plot(px2, py2)
		plot(px3, py3)
		plot(px3, py4)
		plot(px4, py3)
		plot(px4, py4)

		x++
		if d > 0 {
			y--
			d = d + 4*(x-y) + 10
		} else {
			d = d + 4*x + 6
		}
	}
}

// Point blends a single pixel. Out-of-range coordinates are ignored.
func (p *Image) Point(x, y int, c Color, mode BlendMode) {
	p.Set(x, y, Blend(p.Get(x, y), c, mode))
}

// Line draws a clipped segment from (x1, y1) toward (x2, y2). The final
// endpoint is left undrawn, so polylines do not double-blend shared
// vertices.
func (p *Image) Line(x1, y1, x2, y2 int, c Color, mode BlendMode) {
	p.traverseLine(x1, y1, x2, y2, func(_, _, offset int, _ float64) {
		p.SetUnsafe(offset, Blend(p.GetUnsafe(offset), c, mode))
	})
}

// LineMap draws a segment, computing each pixel with the mapper.
func (p *Image) LineMap(x1, y1, x2, y2 int, mapper Mapper) {
	p.traverseLine(x1, y1, x2, y2, func(x, y, offset int, _ float64) {
		p.SetUnsafe(offset, mapper(x, y, p.GetUnsafe(offset)))
	})
}

// LineThick draws a segment of the given thickness in pixels.
func (p *Image) LineThick(x1, y1, x2, y2, thick int, c Color, mode BlendMode) {
	traverseThickLine(x1, y1, x2, y2, thick, func(x1, y1, x2, y2 int) {
		p.Line(x1, y1, x2, y2, c, mode)
	})
}

// LineThickMap draws a thick segment, computing each pixel with the mapper.
func (p *Image) LineThickMap(x1, y1, x2, y2, thick int, mapper Mapper) {
	traverseThickLine(x1, y1, x2, y2, thick, func(x1, y1, x2, y2 int) {
		p.LineMap(x1, y1, x2, y2, mapper)
	})
}

// LineGradient draws a segment colored by the ramp, sampling it at the
// fraction of the traversal completed.
func (p *Image) LineGradient(x1, y1, x2, y2 int, ramp *ColorRamp, mode BlendMode) {
	p.traverseLine(x1, y1, x2, y2, func(_, _, offset int, t float64) {
		p.SetUnsafe(offset, Blend(p.GetUnsafe(offset), ramp.Get(t), mode))
	})
}

// LineGradientThick draws a thick segment colored by the ramp.
func (p *Image) LineGradientThick(x1, y1, x2, y2, thick int, ramp *ColorRamp, mode BlendMode) {
	traverseThickLine(x1, y1, x2, y2, thick, func(x1, y1, x2, y2 int) {
		p.LineGradient(x1, y1, x2, y2, ramp, mode)
	})
}

// Rectangle fills the axis-aligned rectangle with top-left corner (x, y).
// Negative sizes are normalized; the filled area is clamped to the canvas.
func (p *Image) Rectangle(x, y, w, h int, c Color, mode BlendMode) {
	p.traverseRect(x, y, x+w-1, y+h-1, func(_, _ int, offset int) {
		p.SetUnsafe(offset, Blend(p.GetUnsafe(offset), c, mode))
	})
}

// RectangleMap fills a rectangle, computing each pixel with the mapper.
func (p *Image) RectangleMap(x, y, w, h int, mapper Mapper) {
	p.traverseRect(x, y, x+w-1, y+h-1, func(x, y, offset int) {
		p.SetUnsafe(offset, mapper(x, y, p.GetUnsafe(offset)))
	})
}

// RectangleGradientLinear fills a rectangle with the ramp projected onto the
// axis from (sx, sy) to (ex, ey).
func (p *Image) RectangleGradientLinear(x, y, w, h, sx, sy, ex, ey int, ramp *ColorRamp, mode BlendMode) {
	dx := float64(ex - sx)
	dy := float64(ey - sy)
	lenSq := dx*dx + dy*dy

	p.traverseRect(x, y, x+w-1, y+h-1, func(px, py, offset int) {
		t := 0.0
		if lenSq != 0 {
			t = clamp01f((float64(px-sx)*dx + float64(py-sy)*dy) / lenSq)
		}
		p.SetUnsafe(offset, Blend(p.GetUnsafe(offset), ramp.Get(t), mode))
	})
}

// RectangleGradientRadial fills a rectangle with the ramp indexed by the
// distance from (sx, sy), reaching the last stop at (ex, ey).
func (p *Image) RectangleGradientRadial(x, y, w, h, sx, sy, ex, ey int, ramp *ColorRamp, mode BlendMode) {
	dx := float64(ex - sx)
	dy := float64(ey - sy)
	maxDist := math.Sqrt(dx*dx + dy*dy)

	p.traverseRect(x, y, x+w-1, y+h-1, func(px, py, offset int) {
		t := 1.0
		if maxDist != 0 {
			cdx := float64(px - sx)
			cdy := float64(py - sy)
			t = clamp01f(math.Sqrt(cdx*cdx+cdy*cdy) / maxDist)
		}
		p.SetUnsafe(offset, Blend(p.GetUnsafe(offset), ramp.Get(t), mode))
	})
}

// RectangleLines draws the one-pixel outline of a rectangle.
func (p *Image) RectangleLines(x, y, w, h int, c Color, mode BlendMode) {
	x2, y2 := x+w-1, y+h-1
	p.Line(x, y, x2, y, c, mode)
	p.Line(x2, y, x2, y2, c, mode)
	p.Line(x2, y2, x, y2, c, mode)
	p.Line(x, y2, x, y, c, mode)
}

// RectangleLinesMap draws a rectangle outline through the mapper.
func (p *Image) RectangleLinesMap(x, y, w, h int, mapper Mapper) {
	x2, y2 := x+w-1, y+h-1
	p.LineMap(x, y, x2, y, mapper)
	p.LineMap(x2, y, x2, y2, mapper)
	p.LineMap(x2, y2, x, y2, mapper)
	p.LineMap(x, y2, x, y, mapper)
}

// RectangleLinesThick draws a rectangle outline of the given thickness.
func (p *Image) RectangleLinesThick(x, y, w, h, thick int, c Color, mode BlendMode) {
	x2, y2 := x+w-1, y+h-1
	p.LineThick(x, y, x2, y, thick, c, mode)
	p.LineThick(x2, y, x2, y2, thick, c, mode)
	p.LineThick(x2, y2, x, y2, thick, c, mode)
	p.LineThick(x, y2, x, y, thick, c, mode)
}

// RectangleLinesThickMap draws a thick rectangle outline through the mapper.
func (p *Image) RectangleLinesThickMap(x, y, w, h, thick int, mapper Mapper) {
	x2, y2 := x+w-1, y+h-1
	p.LineThickMap(x, y, x2, y, thick, mapper)
	p.LineThickMap(x2, y, x2, y2, thick, mapper)
	p.LineThickMap(x2, y2, x, y2, thick, mapper)
	p.LineThickMap(x, y2, x, y, thick, mapper)
}

// Circle fills a circle centered at (cx, cy).
func (p *Image) Circle(cx, cy, radius int, c Color, mode BlendMode) {
	p.traverseCircleFill(cx, cy, radius, func(_, _ int, offset int) {
		p.SetUnsafe(offset, Blend(p.GetUnsafe(offset), c, mode))
	})
}

// CircleMap fills a circle, computing each pixel with the mapper.
func (p *Image) CircleMap(cx, cy, radius int, mapper Mapper) {
	p.traverseCircleFill(cx, cy, radius, func(x, y, offset int) {
		p.SetUnsafe(offset, mapper(x, y, p.GetUnsafe(offset)))
	})
}

// CircleGradient fills a circle with the ramp indexed by the normalized
// distance from the center.
func (p *Image) CircleGradient(cx, cy, radius int, ramp *ColorRamp, mode BlendMode) {
	p.traverseCircleFill(cx, cy, radius, func(x, y, offset int) {
		t := 0.0
		if radius != 0 {
			dx := float64(x - cx)
			dy := float64(y - cy)
			t = math.Sqrt(dx*dx+dy*dy) / float64(radius)
		}
		p.SetUnsafe(offset, Blend(p.GetUnsafe(offset), ramp.Get(t), mode))
	})
}

// CircleLines draws a one-pixel circle outline.
func (p *Image) CircleLines(cx, cy, radius int, c Color, mode BlendMode) {
	p.traverseCircleOutline(cx, cy, radius, func(_, _ int, offset int) {
		p.SetUnsafe(offset, Blend(p.GetUnsafe(offset), c, mode))
	})
}

// CircleLinesMap draws a circle outline through the mapper.
func (p *Image) CircleLinesMap(cx, cy, radius int, mapper Mapper) {
	p.traverseCircleOutline(cx, cy, radius, func(x, y, offset int) {
		p.SetUnsafe(offset, mapper(x, y, p.GetUnsafe(offset)))
	})
}

// CircleLinesThick draws a circle outline as concentric radii covering the
// requested thickness.
func (p *Image) CircleLinesThick(cx, cy, radius, thick int, c Color, mode BlendMode) {
	ht := thick / 2
	for i := -ht; i <= ht; i++ {
		p.CircleLines(cx, cy, radius+i, c, mode)
	}
}

// CircleLinesThickMap draws a thick circle outline through the mapper.
func (p *Image) CircleLinesThickMap(cx, cy, radius, thick int, mapper Mapper) {
	ht := thick / 2
	for i := -ht; i <= ht; i++ {
		p.CircleLinesMap(cx, cy, radius+i, mapper)
	}
}

// Draw blits the whole source image scaled into the destination rectangle.
func (p *Image) Draw(src *Image, x, y, w, h int, mode BlendMode) {
	p.DrawEx(src, x, y, w, h, 0, 0, src.w, src.h, mode)
}

// DrawEx blits a source rectangle into a destination rectangle with nearest
// sampling. The source rectangle is clamped against the source image and
// destination pixels falling outside the canvas are skipped.
func (p *Image) DrawEx(src *Image, xDst, yDst, wDst, hDst, xSrc, ySrc, wSrc, hSrc int, mode BlendMode) {
	xSrc = clampInt(xSrc, 0, src.w)
	ySrc = clampInt(ySrc, 0, src.h)
	wSrc = clampInt(wSrc, 0, src.w-xSrc)
	hSrc = clampInt(hSrc, 0, src.h-ySrc)

	if wDst <= 0 || hDst <= 0 || wSrc == 0 || hSrc == 0 {
		return
	}

	scaleX := float64(wSrc) / float64(wDst)
	scaleY := float64(hSrc) / float64(hDst)

	for y := 0; y < hDst; y++ {
		dstY := yDst + y
		if dstY < 0 || dstY >= p.h {
			continue
		}
		srcY := ySrc + int(float64(y)*scaleY)

		for x := 0; x < wDst; x++ {
			dstX := xDst + x
			if dstX < 0 || dstX >= p.w {
				continue
			}
			srcX := xSrc + int(float64(x)*scaleX)

			colSrc := src.GetUnsafeXY(srcX, srcY)
			colDst := p.GetUnsafeXY(dstX, dstY)
			p.SetUnsafeXY(dstX, dstY, Blend(colDst, colSrc, mode))
		}
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
