package mathutil

import "math"

// BBox2i is an inclusive integer bounding box. The zero value is empty.
type BBox2i struct {
	Min, Max Vec2i
	valid    bool
}

// AddPoint grows the box to contain p.
func (b *BBox2i) AddPoint(p Vec2i) {
	if !b.valid {
		b.Min, b.Max, b.valid = p, p, true
		return
	}
	b.Min.X = min(b.Min.X, p.X)
	b.Min.Y = min(b.Min.Y, p.Y)
	b.Max.X = max(b.Max.X, p.X)
	b.Max.Y = max(b.Max.Y, p.Y)
}

// Empty reports whether the box contains no pixel.
func (b BBox2i) Empty() bool {
	return !b.valid || b.Min.X > b.Max.X || b.Min.Y > b.Max.Y
}

// Clip clips b to the inclusive rectangle [0,w-1]×[0,h-1].
func (b BBox2i) Clip(w, h int) BBox2i {
	if !b.valid {
		return b
	}
	b.Min.X = max(b.Min.X, 0)
	b.Min.Y = max(b.Min.Y, 0)
	b.Max.X = min(b.Max.X, w-1)
	b.Max.Y = min(b.Max.Y, h-1)
	return b
}

// Fpart returns the fractional part of x, always in [0,1).
func Fpart(x float64) float64 {
	return x - math.Floor(x)
}

// Rfpart returns 1 - Fpart(x).
func Rfpart(x float64) float64 {
	return 1 - Fpart(x)
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
