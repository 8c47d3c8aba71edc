package mathutil

import "math"

// Vec2i is an integer pixel-space vector (value type).
type Vec2i struct {
	X, Y int
}

func (a Vec2i) Add(b Vec2i) Vec2i {
	return Vec2i{a.X + b.X, a.Y + b.Y}
}

func (a Vec2i) Sub(b Vec2i) Vec2i {
	return Vec2i{a.X - b.X, a.Y - b.Y}
}

func (v Vec2i) Scale(s int) Vec2i {
	return Vec2i{v.X * s, v.Y * s}
}

// Cross returns the z component of the 3D cross product of a and b.
func (a Vec2i) Cross(b Vec2i) int {
	return a.X*b.Y - a.Y*b.X
}

func (v Vec2i) Float() Vec2f {
	return Vec2f{float64(v.X), float64(v.Y)}
}

// Vec2f is a 2-component float vector, also used for UV coordinates.
type Vec2f struct {
	X, Y float64
}

func (a Vec2f) Add(b Vec2f) Vec2f {
	return Vec2f{a.X + b.X, a.Y + b.Y}
}

func (a Vec2f) Sub(b Vec2f) Vec2f {
	return Vec2f{a.X - b.X, a.Y - b.Y}
}

func (v Vec2f) Scale(s float64) Vec2f {
	return Vec2f{v.X * s, v.Y * s}
}

func (a Vec2f) Dot(b Vec2f) float64 {
	return a.X*b.X + a.Y*b.Y
}

func (a Vec2f) Cross(b Vec2f) float64 {
	return a.X*b.Y - a.Y*b.X
}

func (v Vec2f) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Round converts to the nearest integer pixel position.
func (v Vec2f) Round() Vec2i {
	return Vec2i{int(math.Round(v.X)), int(math.Round(v.Y))}
}
