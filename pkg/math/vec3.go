package math

import "math"

// IVec3 is a 3D integer vector, used for voxel coordinates.
// Z is the vertical axis.
type IVec3 struct {
	X, Y, Z int
}

// Add returns v + other.
func (v IVec3) Add(other IVec3) IVec3 {
	return IVec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v IVec3) Sub(other IVec3) IVec3 {
	return IVec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// XY returns the lateral components as IVec2.
func (v IVec3) XY() IVec2 {
	return IVec2{v.X, v.Y}
}

// FloorDiv divides a by b rounding toward negative infinity.
// b must be positive.
func FloorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

// FloorMod returns a mod b in the range [0, b).
// b must be positive.
func FloorMod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

// Floor converts a float coordinate to the integer cell containing it.
func Floor(v float32) int {
	return int(math.Floor(float64(v)))
}

// Ceil returns the smallest integer not below v.
func Ceil(v float32) int {
	return int(math.Ceil(float64(v)))
}

// Cell returns the voxel containing a world point.
func Cell(x, y, z float32) IVec3 {
	return IVec3{Floor(x), Floor(y), Floor(z)}
}

// SplitWorld splits a world voxel coordinate into the owning cell of the given
// lateral size and the local coordinate inside it. Z passes through unchanged.
func SplitWorld(p IVec3, size int) (cell IVec2, local IVec3) {
	cell = IVec2{FloorDiv(p.X, size), FloorDiv(p.Y, size)}
	local = IVec3{FloorMod(p.X, size), FloorMod(p.Y, size), p.Z}
	return cell, local
}
