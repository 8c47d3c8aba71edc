// Package sprite draws textured rectangles built from two triangles.
package sprite

import (
	"softraster/internal/anim"
	"softraster/internal/raster"
	"softraster/internal/texture"
)

// DefaultSize is the width and height of a sprite created with New.
const DefaultSize = 100

// Sprite is an axis-aligned textured rectangle. The texture spans the
// rectangle once; the UV offset shifts it, which with a Repeat wrap mode
// scrolls the image across the sprite.
//
//	p0 --- p1
//	|      |
//	p2 --- p3
type Sprite struct {
	X, Y          int
	Width, Height int
	UOffset       float64
	VOffset       float64
	Texture       *texture.Texture
}

// New returns a DefaultSize sprite at the origin.
func New(tex *texture.Texture) *Sprite {
	return &Sprite{Width: DefaultSize, Height: DefaultSize, Texture: tex}
}

// SetRect sets position and size together.
func (s *Sprite) SetRect(x, y, w, h int) {
	s.X, s.Y, s.Width, s.Height = x, y, w, h
}

func (s *Sprite) SetPosition(x, y int) { s.X, s.Y = x, y }
func (s *Sprite) SetSize(w, h int)     { s.Width, s.Height = w, h }

// SetUVOffset sets the texture offset in UV units.
func (s *Sprite) SetUVOffset(u, v float64) { s.UOffset, s.VOffset = u, v }

func (s *Sprite) UVOffset() (u, v float64) { return s.UOffset, s.VOffset }

// Triangles returns the upper-left (p0 p1 p2) and lower-right (p1 p3 p2)
// halves of the sprite.
func (s *Sprite) Triangles() [2]*raster.Triangle {
	x0, y0 := s.X, s.Y
	x1, y1 := s.X+s.Width, s.Y+s.Height
	u0, v0 := s.UOffset, s.VOffset
	u1, v1 := u0+1, v0+1

	p0 := raster.Vertex{X: x0, Y: y0, U: u0, V: v0}
	p1 := raster.Vertex{X: x1, Y: y0, U: u1, V: v0}
	p2 := raster.Vertex{X: x0, Y: y1, U: u0, V: v1}
	p3 := raster.Vertex{X: x1, Y: y1, U: u1, V: v1}

	return [2]*raster.Triangle{
		raster.NewTexturedTriangle(p0, p1, p2, s.Texture),
		raster.NewTexturedTriangle(p1, p3, p2, s.Texture),
	}
}

func (s *Sprite) Draw(fb *raster.FrameBuffer) {
	for _, t := range s.Triangles() {
		t.Draw(fb)
	}
}

func (s *Sprite) Clone() raster.Primitive {
	cp := *s
	return &cp
}

// ScrollAnimation returns a looping animation that moves the UV offset of s
// by (speedU, speedV) per second, starting from the current offset. The
// caller registers it with an Animator.
func (s *Sprite) ScrollAnimation(speedU, speedV float64) *anim.UVScroll {
	u0, v0 := s.UOffset, s.VOffset
	return anim.NewUVScroll(func(u, v float64) {
		s.SetUVOffset(u0+u, v0+v)
	}, speedU, speedV)
}
