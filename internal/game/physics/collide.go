package physics

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/voxelstream/pkg/math"
)

// skin shrinks the box when picking candidate cells, so a body resting
// exactly on a face does not count the cell behind it.
const skin = 0.001

// Contacts reports what a Resolve step ran into.
type Contacts struct {
	Floor   bool // pushed up out of a block
	Ceiling bool // pushed down out of a block
	X, Y    bool
}

// Axes in resolution order.
const (
	axisX = 0
	axisY = 1
	axisZ = 2
)

// Resolve advances b by its velocity over dt seconds, one axis at a time
// (Z, then Y, then X), pushing it out of every solid voxel it overlaps and
// zeroing velocity along the axis of each hit.
func Resolve(b Body, dt float32, q BlockQuery) Contacts {
	var c Contacts

	if hit, up := resolveAxis(b, axisZ, dt, q); hit {
		c.Floor = up
		c.Ceiling = !up
	}
	c.Y, _ = resolveAxis(b, axisY, dt, q)
	c.X, _ = resolveAxis(b, axisX, dt, q)
	return c
}

// resolveAxis moves b along one axis and separates it from solid cells.
// up reports whether the last push was toward positive.
func resolveAxis(b Body, axis int, dt float32, q BlockQuery) (hit, up bool) {
	shape := b.Shape()
	pos := b.Position()
	vel := b.Velocity()

	pos[axis] += vel[axis] * dt
	b.SetPosition(pos)

	lo, hi := cellRange(pos.Add(shape.Origin), shape.Size)
	for x := lo.X; x <= hi.X; x++ {
		for y := lo.Y; y <= hi.Y; y++ {
			for z := lo.Z; z <= hi.Z; z++ {
				cell := math.IVec3{X: x, Y: y, Z: z}
				if !q.GetGlobalBlock(cell).Solid() {
					continue
				}

				pos = b.Position()
				center := pos[axis] + shape.Origin[axis]
				half := shape.Size[axis] / 2
				face := float32(component(cell, axis))
				if center-half >= face+1 || face >= center+half {
					continue
				}

				dist := center - (face + 0.5)
				if half+0.5-abs(dist) <= 0 {
					continue
				}
				if dist < 0 {
					pos[axis] = face - half - shape.Origin[axis]
					up = false
				} else {
					pos[axis] = face + 1 + half - shape.Origin[axis]
					up = true
				}
				b.SetPosition(pos)

				vel = b.Velocity()
				vel[axis] = 0
				b.SetVelocity(vel)
				hit = true
			}
		}
	}
	return hit, up
}

// cellRange returns the inclusive voxel range overlapped by a box.
func cellRange(center, size mgl32.Vec3) (lo, hi math.IVec3) {
	h := size.Mul(0.5)
	lo = math.IVec3{
		X: math.Floor(center[0] - h[0] + skin),
		Y: math.Floor(center[1] - h[1] + skin),
		Z: math.Floor(center[2] - h[2] + skin),
	}
	hi = math.IVec3{
		X: math.Ceil(center[0]+h[0]-skin) - 1,
		Y: math.Ceil(center[1]+h[1]-skin) - 1,
		Z: math.Ceil(center[2]+h[2]-skin) - 1,
	}
	return lo, hi
}

func component(v math.IVec3, axis int) int {
	switch axis {
	case axisX:
		return v.X
	case axisY:
		return v.Y
	default:
		return v.Z
	}
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
