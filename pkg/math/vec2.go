// Package math provides integer grid math for the voxel world.
package math

import "math"

// IVec2 is a 2D integer vector, used for column coordinates.
type IVec2 struct {
	X, Y int
}

// Add returns v + other.
func (v IVec2) Add(other IVec2) IVec2 {
	return IVec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v IVec2) Sub(other IVec2) IVec2 {
	return IVec2{v.X - other.X, v.Y - other.Y}
}

// Scale returns v * scalar.
func (v IVec2) Scale(s int) IVec2 {
	return IVec2{v.X * s, v.Y * s}
}

// LengthSq returns the squared magnitude.
func (v IVec2) LengthSq() int {
	return v.X*v.X + v.Y*v.Y
}

// Length returns the magnitude.
func (v IVec2) Length() float64 {
	return math.Sqrt(float64(v.LengthSq()))
}

// Distance returns the Euclidean distance to another point.
func (v IVec2) Distance(other IVec2) float64 {
	return v.Sub(other).Length()
}

// Chebyshev returns the chessboard distance to another point.
func (v IVec2) Chebyshev(other IVec2) int {
	d := v.Sub(other)
	return max(absi(d.X), absi(d.Y))
}

func absi(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
