package lighting

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestSunDirection(t *testing.T) {
	tests := []struct {
		azimuth, elevation float32
		want               mgl32.Vec3
	}{
		{0, 0, mgl32.Vec3{1, 0, 0}},
		{90, 0, mgl32.Vec3{0, 1, 0}},
		{0, 90, mgl32.Vec3{0, 0, 1}},
		{180, 0, mgl32.Vec3{-1, 0, 0}},
	}

	for _, tt := range tests {
		got := SunDirection(tt.azimuth, tt.elevation)
		if !near(got, tt.want, 1e-5) {
			t.Errorf("SunDirection(%v, %v) = %v, want %v", tt.azimuth, tt.elevation, got, tt.want)
		}
	}
}

func TestLightDirectionPointsDown(t *testing.T) {
	d := LightDirection(30, 60)
	if d.Z() >= 0 {
		t.Errorf("light from above should travel down, got %v", d)
	}
	if l := d.Len(); l < 0.9999 || l > 1.0001 {
		t.Errorf("light direction not unit length: %v", l)
	}
}

// near compares with an absolute tolerance; mgl32's relative check fails
// whenever one side of a component is exactly zero.
func near(a, b mgl32.Vec3, eps float32) bool {
	return a.Sub(b).Len() < eps
}
