// Package debug provides debug visualization utilities.
package debug

import "github.com/Faultbox/voxelstream/pkg/math"

// BBoxWireframeVertexCount is the number of vertices for a bbox wireframe (12 edges × 2).
const BBoxWireframeVertexCount = 24

// DefaultOutlinePadding keeps the target outline off the block faces so it
// does not z-fight.
const DefaultOutlinePadding = 0.004

// GenerateBBoxWireframeVertices creates line vertices for a wireframe bounding box.
// Returns 24 vertices (12 edges × 2 endpoints), format: [x, y, z] per vertex.
// Z is up.
func GenerateBBoxWireframeVertices(minX, minY, minZ, maxX, maxY, maxZ float32) []float32 {
	return []float32{
		// Bottom face (4 edges)
		minX, minY, minZ, maxX, minY, minZ,
		maxX, minY, minZ, maxX, maxY, minZ,
		maxX, maxY, minZ, minX, maxY, minZ,
		minX, maxY, minZ, minX, minY, minZ,
		// Top face (4 edges)
		minX, minY, maxZ, maxX, minY, maxZ,
		maxX, minY, maxZ, maxX, maxY, maxZ,
		maxX, maxY, maxZ, minX, maxY, maxZ,
		minX, maxY, maxZ, minX, minY, maxZ,
		// Vertical edges (4 edges)
		minX, minY, minZ, minX, minY, maxZ,
		maxX, minY, minZ, maxX, minY, maxZ,
		maxX, maxY, minZ, maxX, maxY, maxZ,
		minX, maxY, minZ, minX, maxY, maxZ,
	}
}

// BlockOutline returns the wireframe of one voxel cell, grown by padding on
// every side.
func BlockOutline(cell math.IVec3, padding float32) []float32 {
	x, y, z := float32(cell.X), float32(cell.Y), float32(cell.Z)
	return GenerateBBoxWireframeVertices(
		x-padding, y-padding, z-padding,
		x+1+padding, y+1+padding, z+1+padding,
	)
}
