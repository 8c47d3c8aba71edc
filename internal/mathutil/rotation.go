package mathutil

import "math"

// Rotate returns v rotated by a radians around pivot. Positive angles turn
// clockwise on screen because the y axis points down.
func (v Vec2f) Rotate(pivot Vec2f, a float64) Vec2f {
	c, s := math.Cos(a), math.Sin(a)
	d := v.Sub(pivot)
	return Vec2f{
		pivot.X + d.X*c - d.Y*s,
		pivot.Y + d.X*s + d.Y*c,
	}
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}
