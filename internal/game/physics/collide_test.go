package physics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/voxelstream/internal/game/voxel"
	"github.com/Faultbox/voxelstream/pkg/math"
)

type blockFunc func(p math.IVec3) voxel.BlockKind

func (f blockFunc) GetGlobalBlock(p math.IVec3) voxel.BlockKind { return f(p) }

// ground is solid below z=10.
var ground = blockFunc(func(p math.IVec3) voxel.BlockKind {
	if p.Z < 10 {
		return voxel.Stone
	}
	return voxel.Air
})

// wall is solid for x >= 5.
var wall = blockFunc(func(p math.IVec3) voxel.BlockKind {
	if p.X >= 5 {
		return voxel.Stone
	}
	return voxel.Air
})

var empty = blockFunc(func(math.IVec3) voxel.BlockKind { return voxel.Air })

const eps = 1e-4

func TestResolveLandsOnFloor(t *testing.T) {
	b := NewMover(mgl32.Vec3{0.5, 0.5, 11.6}, PlayerShape())
	b.SetVelocity(mgl32.Vec3{0, 0, -5})

	c := Resolve(b, 0.1, ground)

	assert.True(t, c.Floor)
	assert.False(t, c.Ceiling)
	assert.InDelta(t, 11.6, b.Position().Z(), eps, "feet rest on z=10")
	assert.Zero(t, b.Velocity().Z())
}

func TestResolveRestingStaysPut(t *testing.T) {
	b := NewMover(mgl32.Vec3{3.5, -2.5, 11.6}, PlayerShape())

	c := Resolve(b, 0.016, ground)

	assert.False(t, c.Floor, "skin keeps the floor cell out of range")
	assert.Equal(t, mgl32.Vec3{3.5, -2.5, 11.6}, b.Position())
}

func TestResolveHitsCeiling(t *testing.T) {
	ceiling := blockFunc(func(p math.IVec3) voxel.BlockKind {
		if p.Z >= 20 {
			return voxel.Stone
		}
		return voxel.Air
	})
	b := NewMover(mgl32.Vec3{0.5, 0.5, 19}, PlayerShape())
	b.SetVelocity(mgl32.Vec3{0, 0, 10})

	c := Resolve(b, 0.1, ceiling)

	assert.True(t, c.Ceiling)
	assert.False(t, c.Floor)
	// top of box = pos - 0.7 + 0.9 = 20
	assert.InDelta(t, 19.8, b.Position().Z(), eps)
}

func TestResolveStopsAtWall(t *testing.T) {
	b := NewMover(mgl32.Vec3{4, 0.5, 100}, PlayerShape())
	b.SetVelocity(mgl32.Vec3{10, 0, 0})

	c := Resolve(b, 0.1, wall)

	assert.True(t, c.X)
	assert.False(t, c.Y)
	assert.InDelta(t, 4.7, b.Position().X(), eps)
	assert.Zero(t, b.Velocity().X())
}

func TestResolveSlidesAlongWall(t *testing.T) {
	b := NewMover(mgl32.Vec3{4.7, 0.5, 100}, PlayerShape())
	b.SetVelocity(mgl32.Vec3{3, 4, 0})

	c := Resolve(b, 0.1, wall)

	assert.True(t, c.X)
	assert.False(t, c.Y)
	assert.InDelta(t, 0.9, b.Position().Y(), eps, "Y movement is kept")
	assert.InDelta(t, 4.7, b.Position().X(), eps)
	assert.Equal(t, float32(4), b.Velocity().Y())
}

func TestResolveFreeFall(t *testing.T) {
	b := NewMover(mgl32.Vec3{0, 0, 50}, PlayerShape())
	b.SetVelocity(mgl32.Vec3{1, 2, -3})

	c := Resolve(b, 1, empty)

	assert.Equal(t, Contacts{}, c)
	assert.Equal(t, mgl32.Vec3{1, 2, 47}, b.Position())
}

func TestCellRange(t *testing.T) {
	lo, hi := cellRange(mgl32.Vec3{0.5, 0.5, 10.9}, mgl32.Vec3{1, 1, 1.8})
	assert.Equal(t, math.IVec3{X: 0, Y: 0, Z: 10}, lo)
	assert.Equal(t, math.IVec3{X: 0, Y: 0, Z: 11}, hi)

	lo, hi = cellRange(mgl32.Vec3{-0.2, 0, 0}, mgl32.Vec3{0.6, 0.6, 0.6})
	assert.Equal(t, math.IVec3{X: -1, Y: -1, Z: -1}, lo)
	assert.Equal(t, math.IVec3{X: 0, Y: 0, Z: 0}, hi)
}
