package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestForwardAxes(t *testing.T) {
	c := NewFlyCamera(mgl32.Vec3{})

	if f := c.Forward(); !near(f, mgl32.Vec3{1, 0, 0}, 1e-5) {
		t.Errorf("yaw 0 forward = %v, want +X", f)
	}
	if r := c.Right(); !near(r, mgl32.Vec3{0, -1, 0}, 1e-5) {
		t.Errorf("yaw 0 right = %v, want -Y", r)
	}

	c.Yaw = mgl32.DegToRad(90)
	if f := c.Forward(); !near(f, mgl32.Vec3{0, 1, 0}, 1e-5) {
		t.Errorf("yaw 90 forward = %v, want +Y", f)
	}
}

func TestHandleLookClampsPitch(t *testing.T) {
	c := NewFlyCamera(mgl32.Vec3{})

	c.HandleLook(0, -1e6)
	if c.Pitch != c.MaxPitch {
		t.Errorf("pitch = %v, want clamp to %v", c.Pitch, c.MaxPitch)
	}
	c.HandleLook(0, 1e6)
	if c.Pitch != -c.MaxPitch {
		t.Errorf("pitch = %v, want clamp to %v", c.Pitch, -c.MaxPitch)
	}
}

func TestHandleMovement(t *testing.T) {
	c := NewFlyCamera(mgl32.Vec3{0, 0, 100})
	c.Speed = 10

	c.HandleMovement(1, 0, 0, 0.5)
	if !near(c.Position, mgl32.Vec3{5, 0, 100}, 1e-4) {
		t.Errorf("position = %v, want {5 0 100}", c.Position)
	}

	c.HandleMovement(0, 0, -1, 1)
	if !near(c.Position, mgl32.Vec3{5, 0, 90}, 1e-4) {
		t.Errorf("position = %v, want {5 0 90}", c.Position)
	}
}

func TestWalkVelocityIsHorizontal(t *testing.T) {
	c := NewFlyCamera(mgl32.Vec3{})
	c.Pitch = 1.2

	v := c.WalkVelocity(1, 1, 4)
	if v.Z() != 0 {
		t.Errorf("walk velocity has vertical part %v", v.Z())
	}
	if l := v.Len(); l < 3.999 || l > 4.001 {
		t.Errorf("walk speed = %v, want 4", l)
	}
	if v := c.WalkVelocity(0, 0, 4); v != (mgl32.Vec3{}) {
		t.Errorf("idle walk velocity = %v, want zero", v)
	}
}

// near compares with an absolute tolerance; mgl32's relative check fails
// whenever one side of a component is exactly zero.
func near(a, b mgl32.Vec3, eps float32) bool {
	return a.Sub(b).Len() < eps
}
