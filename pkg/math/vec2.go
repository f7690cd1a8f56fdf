// Package math provides float32 vector and matrix types for the renderer and layout code.
package math

import "github.com/chewxy/math32"

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float32
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Length returns the magnitude.
func (v Vec2) Length() float32 {
	return math32.Hypot(v.X, v.Y)
}

// ApproxEqual reports whether both components are within eps of other.
func (v Vec2) ApproxEqual(other Vec2, eps float32) bool {
	return math32.Abs(v.X-other.X) <= eps && math32.Abs(v.Y-other.Y) <= eps
}
