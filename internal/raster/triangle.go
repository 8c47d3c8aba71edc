package raster

import (
	"math"

	"softraster/internal/mathutil"
	"softraster/internal/pixel"
	"softraster/internal/texture"
)

// Vertex is a triangle corner: integer pixel position, colour and UV.
type Vertex struct {
	X, Y  int
	Color pixel.Color
	U, V  float64
}

func (v Vertex) pos() mathutil.Vec2i { return mathutil.Vec2i{X: v.X, Y: v.Y} }

// BarycentricCoord holds one weight per triangle vertex; inside the
// triangle the weights are non-negative and sum to 1.
type BarycentricCoord [3]float64

// Triangle fills the area spanned by three vertices. With a texture attached
// every covered pixel is sampled at the interpolated UV; otherwise it is
// painted flat (all vertex colours equal) or with interpolated colour.
//
// Pixels exactly on an edge count as inside, so triangles sharing an edge
// both draw it.
type Triangle struct {
	V       [3]Vertex
	Texture *texture.Texture
}

// NewTriangle returns a flat-coloured triangle.
func NewTriangle(x1, y1, x2, y2, x3, y3 int, c pixel.Color) *Triangle {
	return &Triangle{V: [3]Vertex{
		{X: x1, Y: y1, Color: c},
		{X: x2, Y: y2, Color: c},
		{X: x3, Y: y3, Color: c},
	}}
}

// NewShadedTriangle returns a triangle with per-vertex colours.
func NewShadedTriangle(a, b, c Vertex) *Triangle {
	return &Triangle{V: [3]Vertex{a, b, c}}
}

// NewTexturedTriangle returns a triangle sampling tex at the vertex UVs.
func NewTexturedTriangle(a, b, c Vertex, tex *texture.Texture) *Triangle {
	return &Triangle{V: [3]Vertex{a, b, c}, Texture: tex}
}

// SetTexture attaches tex with one UV per vertex.
func (t *Triangle) SetTexture(tex *texture.Texture, uv0, uv1, uv2 mathutil.Vec2f) {
	t.Texture = tex
	t.SetUV(uv0, uv1, uv2)
}

// SetUV replaces the vertex UV coordinates.
func (t *Triangle) SetUV(uv0, uv1, uv2 mathutil.Vec2f) {
	for i, uv := range [3]mathutil.Vec2f{uv0, uv1, uv2} {
		t.V[i].U, t.V[i].V = uv.X, uv.Y
	}
}

func (t *Triangle) Clone() Primitive {
	cp := *t
	return &cp
}

// Draw scans the bounding box of the vertices. The box is clipped to the
// framebuffer up front, which is equivalent to letting SetPixel drop the
// out-of-range writes.
func (t *Triangle) Draw(fb *FrameBuffer) {
	var box mathutil.BBox2i
	for _, v := range t.V {
		box.AddPoint(v.pos())
	}
	box = box.Clip(fb.Width(), fb.Height())
	if box.Empty() {
		return
	}

	flat := t.V[0].Color == t.V[1].Color && t.V[1].Color == t.V[2].Color
	area := t.doubleArea()

	for j := box.Min.Y; j <= box.Max.Y; j++ {
		for i := box.Min.X; i <= box.Max.X; i++ {
			c0, c1, c2, inside := t.edges(i, j)
			if !inside {
				continue
			}
			if area == 0 {
				fb.SetPixel(i, j, pixel.Transparent)
				continue
			}
			bc := weights(c0, c1, c2, area)
			switch {
			case t.Texture != nil:
				u, v := t.interpolateUV(bc)
				fb.SetPixel(i, j, t.Texture.Sample(u, v))
			case flat:
				fb.SetPixel(i, j, t.V[0].Color)
			default:
				fb.SetPixel(i, j, t.interpolateColor(bc))
			}
		}
	}
}

// edges returns the cross products of the pixel-to-vertex vectors taken in
// vertex order (v0,v1), (v1,v2), (v2,v0). The pixel is inside when they
// share a sign; zeros count for either sign.
func (t *Triangle) edges(x, y int) (c0, c1, c2 int, inside bool) {
	p := mathutil.Vec2i{X: x, Y: y}
	pv0 := t.V[0].pos().Sub(p)
	pv1 := t.V[1].pos().Sub(p)
	pv2 := t.V[2].pos().Sub(p)

	c0 = pv0.Cross(pv1)
	c1 = pv1.Cross(pv2)
	c2 = pv2.Cross(pv0)
	inside = (c0 >= 0 && c1 >= 0 && c2 >= 0) || (c0 <= 0 && c1 <= 0 && c2 <= 0)
	return c0, c1, c2, inside
}

// doubleArea is twice the unsigned area of the triangle.
func (t *Triangle) doubleArea() float64 {
	e1 := t.V[1].pos().Sub(t.V[0].pos())
	e2 := t.V[2].pos().Sub(t.V[0].pos())
	return math.Abs(float64(e1.Cross(e2)))
}

// Barycentric returns the weights of pixel (x, y). ok is false when the
// pixel is outside the triangle or the triangle has no area.
func (t *Triangle) Barycentric(x, y int) (bc BarycentricCoord, ok bool) {
	c0, c1, c2, inside := t.edges(x, y)
	area := t.doubleArea()
	if !inside || area == 0 {
		return bc, false
	}
	return weights(c0, c1, c2, area), true
}

// weights turns edge cross products into barycentric weights. The cross
// product over (v1,v2) spans the sub-triangle opposite v0, and so on.
func weights(c0, c1, c2 int, area float64) BarycentricCoord {
	return BarycentricCoord{
		math.Abs(float64(c1)) / area,
		math.Abs(float64(c2)) / area,
		math.Abs(float64(c0)) / area,
	}
}

func (t *Triangle) interpolateUV(bc BarycentricCoord) (u, v float64) {
	for i := range t.V {
		u += bc[i] * t.V[i].U
		v += bc[i] * t.V[i].V
	}
	return u, v
}

func (t *Triangle) interpolateColor(bc BarycentricCoord) pixel.Color {
	var r, g, b, a float64
	for i, vx := range t.V {
		r += bc[i] * float64(vx.Color.R())
		g += bc[i] * float64(vx.Color.G())
		b += bc[i] * float64(vx.Color.B())
		a += bc[i] * float64(vx.Color.A())
	}
	return pixel.RGBA(pixel.Clamp8(r), pixel.Clamp8(g), pixel.Clamp8(b), pixel.Clamp8(a))
}
