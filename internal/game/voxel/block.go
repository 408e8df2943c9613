// Package voxel implements the column data model and mesh building.
//
// A Column is a 16x16x256 vertical slice of the world. Z is the vertical axis.
// Blocks are stored row-major by (x, y, z) so that a vertical run is contiguous.
package voxel

// Column dimensions.
const (
	Size   = 16  // lateral size (X and Y)
	Height = 256 // vertical size (Z)

	// Volume is the number of block slots in a column.
	Volume = Size * Size * Height
)

// BlockKind identifies a block type. Zero is air.
type BlockKind uint16

// Known block kinds.
const (
	Air BlockKind = iota
	Stone
	Dirt
	Grass
	Sand
	Bedrock
)

var blockNames = [...]string{
	Air:     "air",
	Stone:   "stone",
	Dirt:    "dirt",
	Grass:   "grass",
	Sand:    "sand",
	Bedrock: "bedrock",
}

// String returns the block name.
func (k BlockKind) String() string {
	if int(k) < len(blockNames) {
		return blockNames[k]
	}
	return "unknown"
}

// Solid reports whether the block occludes its neighbours.
func (k BlockKind) Solid() bool {
	return k != Air
}

// Index returns the slot index for local coordinates.
// No bounds checking: callers guarantee 0-15 / 0-15 / 0-255.
func Index(x, y, z int) int {
	return x*(Size*Height) + y*Height + z
}

// InBounds reports whether local coordinates address a slot.
func InBounds(x, y, z int) bool {
	return x >= 0 && x < Size && y >= 0 && y < Size && z >= 0 && z < Height
}
