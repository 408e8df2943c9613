package voxel

// Profile is the terrain shape of one column: the surface height of every
// (x, y) cell. Surface -1 means the cell is empty all the way down.
type Profile struct {
	Surface [Size][Size]int
}

// Sampler maps a column coordinate to terrain.
// Implementations must be pure and safe to call concurrently for different
// columns.
type Sampler interface {
	// Sample fills p with the surface heights of column (cx, cy).
	Sample(cx, cy int, p *Profile)
	// Layer returns the block kind at height z of a cell whose surface is
	// at the given height.
	Layer(z, surface int) BlockKind
}
