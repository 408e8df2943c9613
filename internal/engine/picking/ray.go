// Package picking provides ray casting against the voxel grid.
package picking

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/voxelstream/internal/game/voxel"
	"github.com/Faultbox/voxelstream/pkg/math"
)

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3 // Normalized direction
}

// ScreenToRay converts screen coordinates to a world-space ray.
// screenX, screenY are pixel coordinates, viewportW/H are viewport dimensions.
// invViewProj is the inverse of the view-projection matrix.
func ScreenToRay(screenX, screenY, viewportW, viewportH float32, invViewProj mgl32.Mat4) Ray {
	// Convert screen coords to normalized device coords (-1 to 1)
	ndcX := 2.0*screenX/viewportW - 1.0
	ndcY := 1.0 - 2.0*screenY/viewportH // Flip Y

	near := mgl32.TransformCoordinate(mgl32.Vec3{ndcX, ndcY, -1}, invViewProj)
	far := mgl32.TransformCoordinate(mgl32.Vec3{ndcX, ndcY, 1}, invViewProj)

	dir := far.Sub(near)
	if dir.Len() > 0 {
		dir = dir.Normalize()
	}
	return Ray{Origin: near, Direction: dir}
}

// Blocks reads world voxels.
type Blocks interface {
	GetGlobalBlock(p math.IVec3) voxel.BlockKind
}

// Hit is the first solid voxel along a ray.
type Hit struct {
	Cell     math.IVec3
	Normal   math.IVec3 // face entered through; zero if the ray starts inside
	Distance float32
	Block    voxel.BlockKind
}

// Adjacent returns the empty cell in front of the hit face, where a block
// would be placed.
func (h Hit) Adjacent() math.IVec3 {
	return h.Cell.Add(h.Normal)
}

// CastVoxels walks the grid cells pierced by r, nearest first, and returns
// the first solid one within maxDist.
func CastVoxels(q Blocks, r Ray, maxDist float32) (Hit, bool) {
	cell := math.Cell(r.Origin[0], r.Origin[1], r.Origin[2])
	pos := [3]int{cell.X, cell.Y, cell.Z}

	var (
		step   [3]int
		tMax   [3]float32
		tDelta [3]float32
	)
	for i := range 3 {
		d := r.Direction[i]
		switch {
		case d > 0:
			step[i] = 1
			tMax[i] = (float32(pos[i]+1) - r.Origin[i]) / d
			tDelta[i] = 1 / d
		case d < 0:
			step[i] = -1
			tMax[i] = (float32(pos[i]) - r.Origin[i]) / d
			tDelta[i] = -1 / d
		default:
			tMax[i] = gomath.MaxFloat32
			tDelta[i] = gomath.MaxFloat32
		}
	}

	var (
		normal [3]int
		t      float32
	)
	for t <= maxDist {
		p := math.IVec3{X: pos[0], Y: pos[1], Z: pos[2]}
		if kind := q.GetGlobalBlock(p); kind.Solid() {
			return Hit{
				Cell:     p,
				Normal:   math.IVec3{X: normal[0], Y: normal[1], Z: normal[2]},
				Distance: t,
				Block:    kind,
			}, true
		}

		axis := 0
		if tMax[1] < tMax[axis] {
			axis = 1
		}
		if tMax[2] < tMax[axis] {
			axis = 2
		}
		if step[axis] == 0 {
			break
		}

		t = tMax[axis]
		pos[axis] += step[axis]
		tMax[axis] += tDelta[axis]
		normal = [3]int{}
		normal[axis] = -step[axis]
	}
	return Hit{}, false
}
