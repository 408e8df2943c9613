// Package lighting provides lighting utilities for 3D rendering.
package lighting

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// SunDirection converts compass angles to a unit vector pointing toward the
// sun. Azimuth is measured from +X toward +Y (0-360), elevation from the
// horizon (0-90). Z is up.
func SunDirection(azimuth, elevation float32) mgl32.Vec3 {
	az := float64(mgl32.DegToRad(azimuth))
	el := float64(mgl32.DegToRad(elevation))

	return mgl32.Vec3{
		float32(gomath.Cos(el) * gomath.Cos(az)),
		float32(gomath.Cos(el) * gomath.Sin(az)),
		float32(gomath.Sin(el)),
	}
}

// LightDirection is the direction sunlight travels, as the column shader
// expects it.
func LightDirection(azimuth, elevation float32) mgl32.Vec3 {
	return SunDirection(azimuth, elevation).Mul(-1)
}
