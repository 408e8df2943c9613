package world

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/voxelstream/pkg/math"
)

// arriveRadius is how close, horizontally, feet must get to a waypoint's
// centre before moving on.
const arriveRadius = 0.15

// PathFollower steers a walker along a path of feet cells.
type PathFollower struct {
	pathFinder *PathFinder

	// Current path
	path      []math.IVec3
	pathIndex int

	// Movement state
	IsFollowingPath bool
}

// NewPathFollower creates a follower that plans with pathFinder.
func NewPathFollower(pathFinder *PathFinder) *PathFollower {
	return &PathFollower{pathFinder: pathFinder}
}

// MoveTo plans from the feet cell under feet to dest.
// Returns the path if one exists, nil otherwise.
func (pf *PathFollower) MoveTo(feet mgl32.Vec3, dest math.IVec3) []math.IVec3 {
	if pf.pathFinder == nil {
		return nil
	}

	path := pf.pathFinder.FindPath(FeetCell(feet), dest)
	if len(path) == 0 {
		pf.ClearPath()
		return nil
	}

	// Skip the first node, it is where we stand.
	pf.path = path[1:]
	pf.pathIndex = 0
	pf.IsFollowingPath = len(pf.path) > 0
	return path
}

// Steer returns the horizontal velocity that heads to the current waypoint at
// speed, and whether the walker should jump to climb onto it. Reaching the
// last waypoint ends the path.
func (pf *PathFollower) Steer(feet mgl32.Vec3, speed float32) (vel mgl32.Vec3, jump bool) {
	for pf.IsFollowingPath {
		wp := pf.path[pf.pathIndex]
		to := TileCenter(wp).Sub(feet)
		to[2] = 0
		if to.Len() > arriveRadius {
			return to.Normalize().Mul(speed), float32(wp.Z) > feet.Z()+0.5
		}

		pf.pathIndex++
		if pf.pathIndex >= len(pf.path) {
			pf.ClearPath()
		}
	}
	return mgl32.Vec3{}, false
}

// ClearPath stops the current path following.
func (pf *PathFollower) ClearPath() {
	pf.path = nil
	pf.pathIndex = 0
	pf.IsFollowingPath = false
}

// Path returns the remaining waypoints.
func (pf *PathFollower) Path() []math.IVec3 {
	if pf.pathIndex >= len(pf.path) {
		return nil
	}
	return pf.path[pf.pathIndex:]
}

// FeetCell returns the cell holding a feet position.
func FeetCell(feet mgl32.Vec3) math.IVec3 {
	return math.Cell(feet[0], feet[1], feet[2])
}

// TileCenter converts a feet cell to the world position of its floor centre.
func TileCenter(c math.IVec3) mgl32.Vec3 {
	return mgl32.Vec3{float32(c.X) + 0.5, float32(c.Y) + 0.5, float32(c.Z)}
}
