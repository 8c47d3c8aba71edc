// Package texture decodes image files into shared pixel grids and samples
// them with normalized UV coordinates.
package texture

import (
	"fmt"
	"math"
	"strings"

	"softraster/internal/pixel"
)

// SampleMode selects how texels are chosen for a UV coordinate.
type SampleMode uint8

const (
	// Nearest fetches the single closest texel.
	Nearest SampleMode = iota
	// Bilinear blends the four surrounding texels.
	Bilinear
)

func (m SampleMode) String() string {
	switch m {
	case Nearest:
		return "nearest"
	case Bilinear:
		return "bilinear"
	default:
		return "unknown"
	}
}

// ParseSampleMode accepts "nearest" or "bilinear" (case-insensitive).
// The empty string yields Nearest.
func ParseSampleMode(s string) (SampleMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "nearest":
		return Nearest, nil
	case "bilinear", "linear":
		return Bilinear, nil
	}
	return Nearest, fmt.Errorf("texture: unknown sample mode %q", s)
}

// WrapMode maps coordinates outside [0,1] back into range.
type WrapMode uint8

const (
	// Clamp pins coordinates to the edge.
	Clamp WrapMode = iota
	// Repeat keeps the fractional part, tiling seamlessly.
	Repeat
	// Mirror tiles back and forth, reflecting on odd periods.
	Mirror
)

func (m WrapMode) String() string {
	switch m {
	case Clamp:
		return "clamp"
	case Repeat:
		return "repeat"
	case Mirror:
		return "mirror"
	default:
		return "unknown"
	}
}

// ParseWrapMode accepts "clamp", "repeat" or "mirror". The empty string
// yields Clamp.
func ParseWrapMode(s string) (WrapMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "clamp":
		return Clamp, nil
	case "repeat":
		return Repeat, nil
	case "mirror":
		return Mirror, nil
	}
	return Clamp, fmt.Errorf("texture: unknown wrap mode %q", s)
}

// Texture samples a shared Image under a wrap and a sample policy.
// The zero value (or a nil *Texture) samples as Transparent.
type Texture struct {
	image  *Image
	sample SampleMode
	wrap   WrapMode
}

// Option configures a Texture at construction.
type Option func(*Texture)

// WithSampleMode sets the filtering policy.
func WithSampleMode(m SampleMode) Option { return func(t *Texture) { t.sample = m } }

// WithWrapMode sets the wrap policy.
func WithWrapMode(m WrapMode) Option { return func(t *Texture) { t.wrap = m } }

// New wraps img; img may be nil, in which case every sample is transparent.
// Defaults are Nearest and Clamp.
func New(img *Image, opts ...Option) *Texture {
	t := &Texture{image: img}
	for _, o := range opts {
		o(t)
	}
	return t
}

func (t *Texture) Image() *Image { return t.image }
func (t *Texture) SampleMode() SampleMode { return t.sample }
func (t *Texture) WrapMode() WrapMode { return t.wrap }
func (t *Texture) SetSampleMode(m SampleMode) { t.sample = m }
func (t *Texture) SetWrapMode(m WrapMode) { t.wrap = m }

// Valid reports whether samples can return anything but Transparent.
func (t *Texture) Valid() bool {
	return t != nil && t.image.IsValid()
}

// Sample returns the colour at normalized (u, v).
func (t *Texture) Sample(u, v float64) pixel.Color {
	if !t.Valid() {
		return pixel.Transparent
	}
	u = t.applyWrap(u)
	v = t.applyWrap(v)

	if t.sample == Bilinear {
		return t.sampleBilinear(u, v)
	}
	x := int(u*float64(t.image.Width-1) + 0.5)
	y := int(v*float64(t.image.Height-1) + 0.5)
	return t.image.At(x, y)
}

func (t *Texture) applyWrap(c float64) float64 {
	switch t.wrap {
	case Repeat:
		return c - math.Floor(c)
	case Mirror:
		f := c - math.Floor(c)
		if int64(math.Floor(c))%2 != 0 {
			f = 1 - f
		}
		return f
	default:
		return math.Max(0, math.Min(1, c))
	}
}

// sampleBilinear expects u, v already wrapped into [0,1]. Neighbours are
// clamped to the last row/column rather than wrapped across the seam.
func (t *Texture) sampleBilinear(u, v float64) pixel.Color {
	img := t.image
	px := u * float64(img.Width-1)
	py := v * float64(img.Height-1)

	x0 := int(math.Floor(px))
	y0 := int(math.Floor(py))
	x1 := min(x0+1, img.Width-1)
	y1 := min(y0+1, img.Height-1)

	fx := px - float64(x0)
	fy := py - float64(y0)

	c00 := img.At(x0, y0)
	c10 := img.At(x1, y0)
	c01 := img.At(x0, y1)
	c11 := img.At(x1, y1)

	top := pixel.Lerp(c00, c10, fx)
	bottom := pixel.Lerp(c01, c11, fx)
	return pixel.Lerp(top, bottom, fy)
}
