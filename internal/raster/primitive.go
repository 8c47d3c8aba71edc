package raster

import "softraster/internal/pixel"

// Primitive is anything that can rasterize itself into a FrameBuffer.
// Draw must not mutate the primitive; Clone returns an independent copy
// that shares only read-only resources such as textures.
type Primitive interface {
	Draw(fb *FrameBuffer)
	Clone() Primitive
}

// Point is a single pixel.
type Point struct {
	X, Y  int
	Color pixel.Color
}

// NewPoint returns a point primitive.
func NewPoint(x, y int, c pixel.Color) *Point {
	return &Point{X: x, Y: y, Color: c}
}

func (p *Point) Draw(fb *FrameBuffer) {
	fb.SetPixel(p.X, p.Y, p.Color)
}

func (p *Point) Clone() Primitive {
	cp := *p
	return &cp
}
