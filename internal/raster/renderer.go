// Package raster turns points, lines and triangles into pixels of an
// in-memory framebuffer.
package raster

import (
	"slices"

	"softraster/internal/pixel"
	"softraster/internal/texture"
)

// Renderer draws primitives into one FrameBuffer and optionally retains a
// list of primitives for redrawing every frame. It is not safe for
// concurrent use; hand a Snapshot to another goroutine instead.
type Renderer struct {
	fb         *FrameBuffer
	primitives []Primitive
}

// NewRenderer binds a renderer to fb.
func NewRenderer(fb *FrameBuffer) *Renderer {
	return &Renderer{fb: fb}
}

// Buffer returns the target framebuffer.
func (r *Renderer) Buffer() *FrameBuffer { return r.fb }

// Clear fills the framebuffer with c.
func (r *Renderer) Clear(c pixel.Color) { r.fb.Clear(c) }

// Draw rasterizes p immediately.
func (r *Renderer) Draw(p Primitive) {
	if p != nil {
		p.Draw(r.fb)
	}
}

func (r *Renderer) DrawPoint(x, y int, c pixel.Color) {
	r.fb.SetPixel(x, y, c)
}

func (r *Renderer) DrawLine(x1, y1, x2, y2 int, c pixel.Color) {
	NewLine(x1, y1, x2, y2, c).Draw(r.fb)
}

func (r *Renderer) DrawAntialiasedLine(x1, y1, x2, y2 int, c pixel.Color) {
	NewAntialiasedLine(x1, y1, x2, y2, c).Draw(r.fb)
}

func (r *Renderer) DrawTriangle(x1, y1, x2, y2, x3, y3 int, c pixel.Color) {
	NewTriangle(x1, y1, x2, y2, x3, y3, c).Draw(r.fb)
}

// DrawImage blits img with its top-left corner at (x, y).
func (r *Renderer) DrawImage(img *texture.Image, x, y int) {
	NewImageBlit(img, x, y).Draw(r.fb)
}

// Add appends primitives to the retained list. Nil entries are skipped.
func (r *Renderer) Add(ps ...Primitive) {
	for _, p := range ps {
		if p != nil {
			r.primitives = append(r.primitives, p)
		}
	}
}

// Remove drops every retained occurrence of p, reporting whether any was found.
func (r *Renderer) Remove(p Primitive) bool {
	n := len(r.primitives)
	r.primitives = slices.DeleteFunc(r.primitives, func(q Primitive) bool { return q == p })
	return len(r.primitives) != n
}

// ClearPrimitives empties the retained list.
func (r *Renderer) ClearPrimitives() {
	clear(r.primitives)
	r.primitives = r.primitives[:0]
}

// Primitives returns the retained list in draw order. The slice is owned
// by the renderer.
func (r *Renderer) Primitives() []Primitive { return r.primitives }

// DrawAll rasterizes the retained list in insertion order.
func (r *Renderer) DrawAll() {
	for _, p := range r.primitives {
		p.Draw(r.fb)
	}
}

// Frame clears to bg and draws the retained list.
func (r *Renderer) Frame(bg pixel.Color) {
	r.Clear(bg)
	r.DrawAll()
}

// Snapshot returns independent clones of the retained list.
func (r *Renderer) Snapshot() []Primitive {
	return CloneAll(r.primitives)
}

// CloneAll clones every primitive in ps.
func CloneAll(ps []Primitive) []Primitive {
	out := make([]Primitive, len(ps))
	for i, p := range ps {
		out[i] = p.Clone()
	}
	return out
}
