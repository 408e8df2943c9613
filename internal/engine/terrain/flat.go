package terrain

import "github.com/Faultbox/voxelstream/internal/game/voxel"

// Flat is a level world at a fixed height.
type Flat struct {
	Layers
	Surface int
}

// NewFlat creates a flat sampler with the default strata.
func NewFlat(surface int) Flat {
	return Flat{Layers: DefaultLayers(), Surface: clampSurface(surface)}
}

// Sample implements voxel.Sampler.
func (f Flat) Sample(cx, cy int, p *voxel.Profile) {
	for x := range voxel.Size {
		for y := range voxel.Size {
			p.Surface[x][y] = f.Surface
		}
	}
}

// Slope repeats the same diagonal ramp in every column: the surface of local
// cell (x, y) is 10+x+y. Everything at or below it is stone.
type Slope struct{}

// Sample implements voxel.Sampler.
func (Slope) Sample(cx, cy int, p *voxel.Profile) {
	for x := range voxel.Size {
		for y := range voxel.Size {
			p.Surface[x][y] = 10 + x + y
		}
	}
}

// Layer implements voxel.Sampler.
func (Slope) Layer(z, surface int) voxel.BlockKind {
	if z <= surface {
		return voxel.Stone
	}
	return voxel.Air
}
