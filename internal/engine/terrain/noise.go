package terrain

import (
	"github.com/ojrac/opensimplex-go"

	"github.com/Faultbox/voxelstream/internal/game/voxel"
)

// NoiseParams shapes the fractal heightfield.
type NoiseParams struct {
	BaseHeight  int     // surface height where noise is zero
	Amplitude   float32 // height range of the first octave
	Scale       float32 // world blocks per noise unit
	Octaves     int
	Lacunarity  float32 // frequency gain per octave
	Persistence float32 // amplitude gain per octave
	Layers      Layers
}

// DefaultNoiseParams returns rolling hills around sea level.
func DefaultNoiseParams() NoiseParams {
	return NoiseParams{
		BaseHeight:  64,
		Amplitude:   30,
		Scale:       100,
		Octaves:     4,
		Lacunarity:  1.5,
		Persistence: 0.5,
		Layers:      DefaultLayers(),
	}
}

// Noise is an opensimplex fractal heightfield. Safe for concurrent use.
type Noise struct {
	Layers
	params NoiseParams
	noise  opensimplex.Noise32
}

// NewNoise creates a noise sampler for the given seed.
func NewNoise(seed int64, params NoiseParams) *Noise {
	return &Noise{
		Layers: params.Layers,
		params: params,
		noise:  opensimplex.New32(seed),
	}
}

// Sample implements voxel.Sampler.
func (n *Noise) Sample(cx, cy int, p *voxel.Profile) {
	for x := range voxel.Size {
		for y := range voxel.Size {
			p.Surface[x][y] = n.Height(cx*voxel.Size+x, cy*voxel.Size+y)
		}
	}
}

// Height returns the surface height at a world block position.
func (n *Noise) Height(wx, wy int) int {
	var (
		fx  = float32(wx)
		fy  = float32(wy)
		amp = n.params.Amplitude
		val float32
	)
	for range n.params.Octaves {
		val += n.noise.Eval2(fx/n.params.Scale, fy/n.params.Scale) * amp
		fx *= n.params.Lacunarity
		fy *= n.params.Lacunarity
		amp *= n.params.Persistence
	}
	return clampSurface(n.params.BaseHeight + int(val))
}
