package raster

import (
	"errors"
	"fmt"
	"image"

	"softraster/internal/pixel"
)

// ErrInvalidSize is returned for a framebuffer with a non-positive dimension.
var ErrInvalidSize = errors.New("raster: framebuffer dimensions must be positive")

// FrameBuffer holds the rendering target as one flat slice for cache locality.
// Pixels are stored R, G, B, A (non-premultiplied), row-major.
type FrameBuffer struct {
	width  int
	height int
	pix    []uint8 // len = W*H*4
}

// NewFrameBuffer allocates a transparent width×height buffer.
func NewFrameBuffer(w, h int) (*FrameBuffer, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}
	return &FrameBuffer{
		width:  w,
		height: h,
		pix:    make([]uint8, w*h*4),
	}, nil
}

func (fb *FrameBuffer) Width() int  { return fb.width }
func (fb *FrameBuffer) Height() int { return fb.height }

// Stride is the number of bytes per row.
func (fb *FrameBuffer) Stride() int { return fb.width * 4 }

// Pix exposes the raw pixel bytes for presentation. Callers must not
// retain or modify the slice across draw calls.
func (fb *FrameBuffer) Pix() []uint8 { return fb.pix }

// Contains reports whether (x, y) addresses a pixel of the buffer.
func (fb *FrameBuffer) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < fb.width && y < fb.height
}

// SetPixel writes c at (x, y). Out-of-range writes are dropped.
func (fb *FrameBuffer) SetPixel(x, y int, c pixel.Color) {
	if !fb.Contains(x, y) {
		return
	}
	i := (y*fb.width + x) * 4
	c.PutBytes(fb.pix[i : i+4])
}

// GetPixel returns the colour at (x, y), or Transparent when out of range.
func (fb *FrameBuffer) GetPixel(x, y int) pixel.Color {
	if !fb.Contains(x, y) {
		return pixel.Transparent
	}
	i := (y*fb.width + x) * 4
	return pixel.FromBytes(fb.pix[i : i+4])
}

// Clear overwrites every pixel with c.
func (fb *FrameBuffer) Clear(c pixel.Color) {
	if len(fb.pix) == 0 {
		return
	}
	c.PutBytes(fb.pix[:4])
	for filled := 4; filled < len(fb.pix); filled *= 2 {
		copy(fb.pix[filled:], fb.pix[:filled])
	}
}

// Image returns an NRGBA view sharing the buffer's memory.
func (fb *FrameBuffer) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    fb.pix,
		Stride: fb.Stride(),
		Rect:   image.Rect(0, 0, fb.width, fb.height),
	}
}
