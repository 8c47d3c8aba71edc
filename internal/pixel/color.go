// Package pixel defines the packed RGBA colour shared by the framebuffer,
// the texture grids and every primitive.
package pixel

import (
	"encoding/binary"
	"fmt"
	"image/color"
	"math"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is a non-premultiplied RGBA colour packed into one word:
// R in the highest byte, A in the lowest. Serialised with PutBytes the
// memory order is always R, G, B, A regardless of host byte order.
type Color uint32

// RGBA packs four channels.
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a))
}

// RGB packs an opaque colour.
func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 255)
}

func (c Color) R() uint8 { return uint8(c >> 24) }
func (c Color) G() uint8 { return uint8(c >> 16) }
func (c Color) B() uint8 { return uint8(c >> 8) }
func (c Color) A() uint8 { return uint8(c) }

// Uint32 returns the packed word.
func (c Color) Uint32() uint32 { return uint32(c) }

// WithAlpha returns c with its alpha channel replaced.
func (c Color) WithAlpha(a uint8) Color {
	return c&^0xFF | Color(a)
}

// PutBytes writes the channels into dst[0:4] as R, G, B, A.
func (c Color) PutBytes(dst []byte) {
	binary.BigEndian.PutUint32(dst, uint32(c))
}

// FromBytes reads a colour stored as R, G, B, A.
func FromBytes(src []byte) Color {
	return Color(binary.BigEndian.Uint32(src))
}

// RGBA implements color.Color with the same semantics as color.NRGBA.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}.RGBA()
}

// FromColor converts any color.Color to a packed non-premultiplied colour.
func FromColor(c color.Color) Color {
	if p, ok := c.(Color); ok {
		return p
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA(n.R, n.G, n.B, n.A)
}

// String formats the colour as #rrggbbaa.
func (c Color) String() string {
	return fmt.Sprintf("#%08x", uint32(c))
}

// Lerp blends a towards b by t, rounding each channel. t is clamped to [0,1].
func Lerp(a, b Color, t float64) Color {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return RGBA(
		lerp8(a.R(), b.R(), t),
		lerp8(a.G(), b.G(), t),
		lerp8(a.B(), b.B(), t),
		lerp8(a.A(), b.A(), t),
	)
}

func lerp8(a, b uint8, t float64) uint8 {
	return Clamp8(float64(a) + (float64(b)-float64(a))*t)
}

// Clamp8 rounds v to the nearest integer in [0,255].
func Clamp8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// ParseHex parses #rgb, #rrggbb or #rrggbbaa. The leading '#' is optional.
func ParseHex(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) == 9 {
		var r, g, b, a uint8
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x%02x", &r, &g, &b, &a); err != nil {
			return Transparent, fmt.Errorf("pixel: parse %q: %w", s, err)
		}
		return RGBA(r, g, b, a), nil
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Transparent, fmt.Errorf("pixel: parse %q: %w", s, err)
	}
	return fromColorful(c), nil
}

// HSV returns an opaque colour from hue in degrees and saturation/value in [0,1].
func HSV(h, s, v float64) Color {
	return fromColorful(colorful.Hsv(math.Mod(h, 360), s, v))
}

func fromColorful(c colorful.Color) Color {
	c = c.Clamped()
	return RGB(Clamp8(c.R*255), Clamp8(c.G*255), Clamp8(c.B*255))
}

// Named colours.
var (
	Transparent = RGBA(0, 0, 0, 0)
	Black       = RGB(0, 0, 0)
	White       = RGB(255, 255, 255)
	Red         = RGB(255, 0, 0)
	Green       = RGB(0, 255, 0)
	Blue        = RGB(0, 0, 255)
	Yellow      = RGB(255, 255, 0)
	Cyan        = RGB(0, 255, 255)
	Magenta     = RGB(255, 0, 255)
	Orange      = RGB(255, 165, 0)
	Purple      = RGB(128, 0, 128)
	Pink        = RGB(255, 192, 203)
	Lime        = RGB(0, 255, 0)
	Teal        = RGB(0, 128, 128)
	Navy        = RGB(0, 0, 128)
	Maroon      = RGB(128, 0, 0)
	Olive       = RGB(128, 128, 0)
	Silver      = RGB(192, 192, 192)
	Gray        = RGB(128, 128, 128)
)
