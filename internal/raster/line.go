package raster

import (
	"math"

	"softraster/internal/mathutil"
	"softraster/internal/pixel"
)

// Line is a segment between two integer endpoints, drawn with Bresenham's
// algorithm or, when Antialias is set, with Xiaolin Wu's algorithm.
//
// Anti-aliased pixels are blended against Background instead of the
// framebuffer contents, and written opaque. Lines drawn over anything but
// Background (including other anti-aliased lines) therefore do not
// composite correctly. Only the RGB channels of Background are used.
type Line struct {
	X1, Y1     int
	X2, Y2     int
	Color      pixel.Color
	Antialias  bool
	Background pixel.Color
}

// NewLine returns a Bresenham line.
func NewLine(x1, y1, x2, y2 int, c pixel.Color) *Line {
	return &Line{X1: x1, Y1: y1, X2: x2, Y2: y2, Color: c}
}

// NewAntialiasedLine returns a Wu line blended against black.
func NewAntialiasedLine(x1, y1, x2, y2 int, c pixel.Color) *Line {
	return &Line{X1: x1, Y1: y1, X2: x2, Y2: y2, Color: c, Antialias: true, Background: pixel.Black}
}

func (l *Line) Draw(fb *FrameBuffer) {
	if l.Antialias {
		l.drawWu(fb)
		return
	}
	l.drawBresenham(fb)
}

func (l *Line) Clone() Primitive {
	cp := *l
	return &cp
}

func (l *Line) drawBresenham(fb *FrameBuffer) {
	x, y := l.X1, l.Y1
	dx := abs(l.X2 - l.X1)
	dy := abs(l.Y2 - l.Y1)
	sx, sy := 1, 1
	if l.X1 > l.X2 {
		sx = -1
	}
	if l.Y1 > l.Y2 {
		sy = -1
	}
	err := dx - dy

	for {
		fb.SetPixel(x, y, l.Color)
		if x == l.X2 && y == l.Y2 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

func (l *Line) drawWu(fb *FrameBuffer) {
	x0, y0 := float64(l.X1), float64(l.Y1)
	x1, y1 := float64(l.X2), float64(l.Y2)

	steep := math.Abs(y1-y0) > math.Abs(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	dx := x1 - x0
	dy := y1 - y0
	gradient := 1.0
	if dx != 0 {
		gradient = dy / dx
	}

	// plot writes in untransposed coordinates.
	plot := func(x, y int, alpha float64) {
		if steep {
			x, y = y, x
		}
		fb.SetPixel(x, y, l.blend(alpha))
	}

	// first endpoint
	xend := math.Round(x0)
	yend := y0 + gradient*(xend-x0)
	xgap := mathutil.Rfpart(x0 + 0.5)
	xpxl1 := int(xend)
	ypxl1 := int(math.Floor(yend))
	plot(xpxl1, ypxl1, mathutil.Rfpart(yend)*xgap)
	plot(xpxl1, ypxl1+1, mathutil.Fpart(yend)*xgap)
	intery := yend + gradient

	// second endpoint
	xend = math.Round(x1)
	yend = y1 + gradient*(xend-x1)
	xgap = mathutil.Fpart(x1 + 0.5)
	xpxl2 := int(xend)
	ypxl2 := int(math.Floor(yend))
	plot(xpxl2, ypxl2, mathutil.Rfpart(yend)*xgap)
	plot(xpxl2, ypxl2+1, mathutil.Fpart(yend)*xgap)

	for x := xpxl1 + 1; x < xpxl2; x++ {
		y := int(math.Floor(intery))
		plot(x, y, mathutil.Rfpart(intery))
		plot(x, y+1, mathutil.Fpart(intery))
		intery += gradient
	}
}

// blend mixes the line colour over Background with coverage alpha.
func (l *Line) blend(alpha float64) pixel.Color {
	fg, bg := l.Color, l.Background
	mix := func(f, b uint8) uint8 {
		return pixel.Clamp8(float64(f)*alpha + float64(b)*(1-alpha))
	}
	return pixel.RGB(mix(fg.R(), bg.R()), mix(fg.G(), bg.G()), mix(fg.B(), bg.B()))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
