package voxel

import "github.com/Faultbox/voxelstream/pkg/math"

// Direction names a lateral side of a column.
type Direction int

// Lateral directions. North is +Y, East is +X.
const (
	North Direction = iota
	East
	South
	West
)

// Directions lists all lateral directions in mask bit order.
var Directions = [4]Direction{North, East, South, West}

var directionOffsets = [4]math.IVec2{
	North: {X: 0, Y: 1},
	East:  {X: 1, Y: 0},
	South: {X: 0, Y: -1},
	West:  {X: -1, Y: 0},
}

// Offset returns the grid step toward the direction.
func (d Direction) Offset() math.IVec2 {
	return directionOffsets[d]
}

// Opposite returns the direction facing back.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Bit returns the direction's bit in an edge mask.
func (d Direction) Bit() uint8 {
	return 1 << uint(d)
}

// Neighbors holds the four lateral neighbours of a column, indexed by
// Direction. A nil entry means the neighbour is not loaded.
// These are non-owning snapshots taken by the scheduler; nothing keeps them
// beyond one mesh job.
type Neighbors [4]*Column

// BoundaryDirections returns the sides a local (x, y) touches, so an edit
// there can flag the columns across those sides.
func BoundaryDirections(x, y int) []Direction {
	var dirs []Direction
	if y == Size-1 {
		dirs = append(dirs, North)
	}
	if x == Size-1 {
		dirs = append(dirs, East)
	}
	if y == 0 {
		dirs = append(dirs, South)
	}
	if x == 0 {
		dirs = append(dirs, West)
	}
	return dirs
}

// Missing returns the edge mask of sides with no loaded neighbour.
func (nb Neighbors) Missing() uint8 {
	var mask uint8
	for _, d := range Directions {
		if nb[d] == nil {
			mask |= d.Bit()
		}
	}
	return mask
}
