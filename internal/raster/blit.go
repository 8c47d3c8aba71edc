package raster

import "softraster/internal/texture"

// ImageBlit copies a decoded image 1:1 into the framebuffer with its
// top-left corner at (X, Y). Pixels are written as-is, without blending.
type ImageBlit struct {
	X, Y  int
	Image *texture.Image
}

// NewImageBlit returns a blit of img at (x, y).
func NewImageBlit(img *texture.Image, x, y int) *ImageBlit {
	return &ImageBlit{X: x, Y: y, Image: img}
}

// Move sets the top-left corner.
func (b *ImageBlit) Move(x, y int) {
	b.X, b.Y = x, y
}

func (b *ImageBlit) Draw(fb *FrameBuffer) {
	img := b.Image
	if !img.IsValid() {
		return
	}
	// Only the rows and columns that land inside the framebuffer.
	x0, y0 := max(b.X, 0), max(b.Y, 0)
	x1 := min(b.X+img.Width, fb.Width())
	y1 := min(b.Y+img.Height, fb.Height())
	for y := y0; y < y1; y++ {
		row := img.Pixels[(y-b.Y)*img.Width:]
		for x := x0; x < x1; x++ {
			fb.SetPixel(x, y, row[x-b.X])
		}
	}
}

func (b *ImageBlit) Clone() Primitive {
	cp := *b
	return &cp
}
