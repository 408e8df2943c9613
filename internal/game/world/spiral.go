package world

import "github.com/Faultbox/voxelstream/pkg/math"

// Spiral returns side*side distinct offsets walking outward from the origin
// in a square spiral. An odd side covers [-(side-1)/2, (side-1)/2] on both
// axes; an even side covers [-side/2+1, side/2].
func Spiral(side int) []math.IVec2 {
	if side <= 0 {
		return nil
	}

	out := make([]math.IVec2, 0, side*side)
	x, y := 0, 0
	dx, dy := 0, -1
	for range side * side {
		out = append(out, math.IVec2{X: x, Y: y})
		if x == y || (x < 0 && x == -y) || (x > 0 && x == 1-y) {
			dx, dy = -dy, dx
		}
		x += dx
		y += dy
	}
	return out
}

// inRange reports whether an offset from the viewer's column is handled by
// the streaming pass: inside the render radius, or in the 3x3 core around
// the viewer.
func inRange(off math.IVec2, renderDistance int) bool {
	if off.Chebyshev(math.IVec2{}) <= 1 {
		return true
	}
	return off.LengthSq() <= renderDistance*renderDistance
}
