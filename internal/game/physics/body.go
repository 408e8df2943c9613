// Package physics moves bodies through the voxel world.
package physics

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/voxelstream/internal/game/voxel"
	"github.com/Faultbox/voxelstream/pkg/math"
)

// BlockQuery reads world voxels. *world.Manager satisfies it.
type BlockQuery interface {
	GetGlobalBlock(p math.IVec3) voxel.BlockKind
}

// Shape is an axis-aligned box centred at Origin relative to the body.
type Shape struct {
	Size   mgl32.Vec3
	Origin mgl32.Vec3
}

// Body is anything that collides with voxels.
type Body interface {
	Position() mgl32.Vec3
	SetPosition(p mgl32.Vec3)
	Velocity() mgl32.Vec3
	SetVelocity(v mgl32.Vec3)
	Shape() Shape
}

// Mover is a plain Body.
type Mover struct {
	pos   mgl32.Vec3
	vel   mgl32.Vec3
	shape Shape
}

// NewMover creates a body at pos with the given shape.
func NewMover(pos mgl32.Vec3, shape Shape) *Mover {
	return &Mover{pos: pos, shape: shape}
}

// PlayerShape is a 0.6 x 0.6 x 1.8 box whose position is at eye height.
func PlayerShape() Shape {
	return Shape{
		Size:   mgl32.Vec3{0.6, 0.6, 1.8},
		Origin: mgl32.Vec3{0, 0, -0.7},
	}
}

func (m *Mover) Position() mgl32.Vec3     { return m.pos }
func (m *Mover) SetPosition(p mgl32.Vec3) { m.pos = p }
func (m *Mover) Velocity() mgl32.Vec3     { return m.vel }
func (m *Mover) SetVelocity(v mgl32.Vec3) { m.vel = v }
func (m *Mover) Shape() Shape             { return m.shape }
