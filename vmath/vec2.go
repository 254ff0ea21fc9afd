package vmath

import "math"

// Vec2 is a 2D float vector in plot coordinates (x right, y down)
type Vec2 struct {
	X, Y float64
}

// Point is an integer grid cell
type Point struct {
	X, Y int
}

// Common directions. Down is the gravity axis.
var (
	Zero = Vec2{}
	Up   = Vec2{0, -1}
	Down = Vec2{0, 1}
)

// V is shorthand for Vec2{x, y}
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// LenSq returns squared magnitude without sqrt
func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns the unit vector, zero-safe
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Zero
	}
	return Vec2{v.X / l, v.Y / l}
}

// Perpendicular returns vector rotated 90° clockwise on screen
func (v Vec2) Perpendicular() Vec2 {
	return Vec2{v.Y, -v.X}
}

// Round snaps to the nearest cell, halves away from zero
func (v Vec2) Round() Point {
	return Point{X: int(math.Round(v.X)), Y: int(math.Round(v.Y))}
}

// IsFinite reports whether neither component is NaN or infinite
func (v Vec2) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

// DistanceSq returns squared distance between two points
func DistanceSq(a, b Vec2) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	return dx*dx + dy*dy
}

func Distance(a, b Vec2) float64 {
	return math.Sqrt(DistanceSq(a, b))
}
