// Package camera provides camera implementations for 3D rendering.
package camera

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// Up is the world up axis. The voxel world is Z-up.
var Up = mgl32.Vec3{0, 0, 1}

// FlyCamera is a first-person camera with free look.
type FlyCamera struct {
	Position mgl32.Vec3

	// Orientation in radians. Yaw 0 looks along +X; positive pitch looks up.
	Yaw   float32
	Pitch float32

	FOV  float32 // vertical field of view, degrees
	Near float32
	Far  float32

	// Constraints
	MaxPitch float32

	// Sensitivity
	LookSensitivity float32
	Speed           float32 // fly speed, blocks per second
}

// NewFlyCamera creates a fly camera with default settings.
func NewFlyCamera(pos mgl32.Vec3) *FlyCamera {
	return &FlyCamera{
		Position:        pos,
		FOV:             70,
		Near:            0.1,
		Far:             1000,
		MaxPitch:        mgl32.DegToRad(89),
		LookSensitivity: 0.0025,
		Speed:           20,
	}
}

// Forward returns the unit view direction.
func (c *FlyCamera) Forward() mgl32.Vec3 {
	cp := float32(gomath.Cos(float64(c.Pitch)))
	return mgl32.Vec3{
		cp * float32(gomath.Cos(float64(c.Yaw))),
		cp * float32(gomath.Sin(float64(c.Yaw))),
		float32(gomath.Sin(float64(c.Pitch))),
	}
}

// Right returns the horizontal unit vector to the camera's right.
func (c *FlyCamera) Right() mgl32.Vec3 {
	return mgl32.Vec3{
		float32(gomath.Sin(float64(c.Yaw))),
		-float32(gomath.Cos(float64(c.Yaw))),
		0,
	}
}

// Heading returns the horizontal unit vector the camera faces.
func (c *FlyCamera) Heading() mgl32.Vec3 {
	return mgl32.Vec3{
		float32(gomath.Cos(float64(c.Yaw))),
		float32(gomath.Sin(float64(c.Yaw))),
		0,
	}
}

// ViewMatrix returns the view matrix for this camera.
func (c *FlyCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Forward()), Up)
}

// ProjectionMatrix returns the perspective projection for an aspect ratio.
func (c *FlyCamera) ProjectionMatrix(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), aspect, c.Near, c.Far)
}

// HandleLook updates orientation from a relative mouse motion.
func (c *FlyCamera) HandleLook(deltaX, deltaY float32) {
	c.Yaw -= deltaX * c.LookSensitivity
	c.Pitch -= deltaY * c.LookSensitivity

	// Clamp pitch
	if c.Pitch > c.MaxPitch {
		c.Pitch = c.MaxPitch
	}
	if c.Pitch < -c.MaxPitch {
		c.Pitch = -c.MaxPitch
	}
}

// HandleMovement flies the camera along its view, right and up axes.
// Each input is in [-1, 1]; dt is in seconds.
func (c *FlyCamera) HandleMovement(forward, right, up, dt float32) {
	step := c.Speed * dt
	move := c.Forward().Mul(forward).
		Add(c.Right().Mul(right)).
		Add(Up.Mul(up))
	c.Position = c.Position.Add(move.Mul(step))
}

// WalkVelocity returns a horizontal velocity for walking at speed.
func (c *FlyCamera) WalkVelocity(forward, right, speed float32) mgl32.Vec3 {
	dir := c.Heading().Mul(forward).Add(c.Right().Mul(right))
	if dir.Len() == 0 {
		return mgl32.Vec3{}
	}
	return dir.Normalize().Mul(speed)
}
