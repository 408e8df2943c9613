// Package terrain provides the samplers that shape generated columns.
package terrain

import (
	"fmt"

	"github.com/Faultbox/voxelstream/internal/game/voxel"
)

// Sampler kinds accepted by New.
const (
	KindNoise = "noise"
	KindFlat  = "flat"
	KindSlope = "slope"
)

// Kinds lists the sampler names New understands.
var Kinds = []string{KindNoise, KindFlat, KindSlope}

// New returns the sampler registered under kind.
func New(kind string, seed int64) (voxel.Sampler, error) {
	switch kind {
	case KindNoise, "":
		return NewNoise(seed, DefaultNoiseParams()), nil
	case KindFlat:
		return NewFlat(64), nil
	case KindSlope:
		return Slope{}, nil
	default:
		return nil, fmt.Errorf("unknown terrain %q (want one of %v)", kind, Kinds)
	}
}

// Layers assigns block kinds below a surface.
type Layers struct {
	SeaLevel  int // surfaces below this are sand
	DirtDepth int // dirt blocks under the top block
}

// DefaultLayers returns the standard strata.
func DefaultLayers() Layers {
	return Layers{SeaLevel: 62, DirtDepth: 3}
}

// Layer implements voxel.Sampler.
func (l Layers) Layer(z, surface int) voxel.BlockKind {
	switch {
	case z > surface:
		return voxel.Air
	case z == 0:
		return voxel.Bedrock
	case z < surface-l.DirtDepth:
		return voxel.Stone
	case surface < l.SeaLevel:
		return voxel.Sand
	case z == surface:
		return voxel.Grass
	default:
		return voxel.Dirt
	}
}

func clampSurface(h int) int {
	if h < 0 {
		return 0
	}
	if h > voxel.Height-1 {
		return voxel.Height - 1
	}
	return h
}
