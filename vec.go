package fract

import "math"

// Vec2 is a 2D vector (or point).
type Vec2 struct {
	X, Y float64
}

// Add returns v + w.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{v.X + w.X, v.Y + w.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Len returns the magnitude of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Mat2 is a 2x2 matrix in row-major order.
type Mat2 struct {
	A, B float64
	C, D float64
}

// Rotation returns the matrix that rotates a vector counter-clockwise by
// angle radians. A negative angle rotates clockwise.
func Rotation(angle float64) Mat2 {
	sin, cos := math.Sincos(angle)
	return Mat2{cos, -sin, sin, cos}
}

// Apply returns m·v.
func (m Mat2) Apply(v Vec2) Vec2 {
	return Vec2{m.A*v.X + m.B*v.Y, m.C*v.X + m.D*v.Y}
}

// Det returns the determinant of m.
func (m Mat2) Det() float64 {
	return m.A*m.D - m.B*m.C
}

// Radians converts degrees to radians.
func Radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
