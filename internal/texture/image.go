package texture

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"softraster/internal/pixel"
)

// Image is a decoded pixel grid. It is shared read-only by every Texture
// and ImageBlit that references it; nothing in the rasterizer writes to it
// after decoding.
type Image struct {
	Width    int
	Height   int
	Channels int           // channel count of the source data (1..4)
	Pixels   []pixel.Color // row-major, len = Width*Height
}

// NewImage allocates a width×height grid filled with c.
func NewImage(width, height, channels int, c pixel.Color) *Image {
	if width < 0 || height < 0 {
		width, height = 0, 0
	}
	pix := make([]pixel.Color, width*height)
	if c != pixel.Transparent {
		for i := range pix {
			pix[i] = c
		}
	}
	return &Image{Width: width, Height: height, Channels: channels, Pixels: pix}
}

// IsValid reports whether the image holds any pixel data.
func (img *Image) IsValid() bool {
	return img != nil && img.Width > 0 && img.Height > 0 && len(img.Pixels) >= img.Width*img.Height
}

// At returns the pixel at (x, y) with coordinates clamped to the edge.
// An invalid image yields Transparent.
func (img *Image) At(x, y int) pixel.Color {
	if !img.IsValid() {
		return pixel.Transparent
	}
	x = min(max(x, 0), img.Width-1)
	y = min(max(y, 0), img.Height-1)
	return img.Pixels[y*img.Width+x]
}

// Set writes c at (x, y); out-of-range coordinates are ignored.
func (img *Image) Set(x, y int, c pixel.Color) {
	if img == nil || x < 0 || y < 0 || x >= img.Width || y >= img.Height {
		return
	}
	img.Pixels[y*img.Width+x] = c
}

// NRGBA copies the grid into a standard library image.
func (img *Image) NRGBA() *image.NRGBA {
	if !img.IsValid() {
		return image.NewNRGBA(image.Rectangle{})
	}
	dst := image.NewNRGBA(image.Rect(0, 0, img.Width, img.Height))
	for i, c := range img.Pixels {
		c.PutBytes(dst.Pix[i*4:])
	}
	return dst
}

// FromImage converts src into a grid with the requested channel count
// (0 picks one from the source colour model). Grey channel counts replicate
// luminance into R, G and B; counts without alpha force A to 255.
func FromImage(src image.Image, channels int) (*Image, error) {
	if channels < 0 || channels > 4 {
		return nil, ErrBadChannels
	}
	if channels == 0 {
		channels = autoChannels(src)
	}

	n := toNRGBA(src)
	b := n.Bounds()
	w, h := b.Dx(), b.Dy()
	out := &Image{Width: w, Height: h, Channels: channels, Pixels: make([]pixel.Color, w*h)}

	for y := 0; y < h; y++ {
		row := n.Pix[y*n.Stride:]
		for x := 0; x < w; x++ {
			p := row[x*4 : x*4+4]
			r, g, bl, a := p[0], p[1], p[2], p[3]
			switch channels {
			case 1:
				l := luma(r, g, bl)
				r, g, bl, a = l, l, l, 255
			case 2:
				l := luma(r, g, bl)
				r, g, bl = l, l, l
			case 3:
				a = 255
			}
			out.Pixels[y*w+x] = pixel.RGBA(r, g, bl, a)
		}
	}
	return out, nil
}

// luma uses the same weights as color.GrayModel.
func luma(r, g, b uint8) uint8 {
	y := (19595*uint32(r) + 38470*uint32(g) + 7471*uint32(b) + 1<<15) >> 16
	return uint8(y)
}

func autoChannels(src image.Image) int {
	switch src.(type) {
	case *image.Gray, *image.Gray16:
		return 1
	case *image.YCbCr, *image.CMYK:
		return 3
	}
	if o, ok := src.(interface{ Opaque() bool }); ok && o.Opaque() {
		return 3
	}
	return 4
}

// toNRGBA converts any image to a zero-origin NRGBA.
func toNRGBA(src image.Image) *image.NRGBA {
	b := src.Bounds()
	if n, ok := src.(*image.NRGBA); ok && b.Min == (image.Point{}) {
		return n
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	switch src.(type) {
	case *image.YCbCr, *image.Gray, *image.CMYK:
		// No alpha in the source; draw.Src yields opaque pixels.
		draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	default:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
				i := dst.PixOffset(x-b.Min.X, y-b.Min.Y)
				dst.Pix[i] = c.R
				dst.Pix[i+1] = c.G
				dst.Pix[i+2] = c.B
				dst.Pix[i+3] = c.A
			}
		}
	}
	return dst
}

// Scaled returns a copy enlarged by an integer factor, each texel becoming
// an f×f block. Factors below 2 return img itself.
func (img *Image) Scaled(f int) *Image {
	if f < 2 || !img.IsValid() {
		return img
	}
	out := &Image{Width: img.Width * f, Height: img.Height * f, Channels: img.Channels}
	out.Pixels = make([]pixel.Color, out.Width*out.Height)
	for y := 0; y < out.Height; y++ {
		src := img.Pixels[(y/f)*img.Width:]
		dst := out.Pixels[y*out.Width:]
		for x := range out.Width {
			dst[x] = src[x/f]
		}
	}
	return out
}
