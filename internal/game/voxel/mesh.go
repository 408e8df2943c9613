package voxel

// initialMeshCapacity covers a typical surface column without regrowth.
const initialMeshCapacity = Size * Size * 4 * VerticesPerFace

// BuildMesh builds the face-culled geometry of c.
//
// A face is emitted when the voxel on its other side is air. Across a lateral
// boundary the voxel comes from nb; a nil neighbour is treated as open world
// edge and its bit is set in the returned edge mask. The top of z=255 and the
// bottom of z=0 are always exposed.
//
// If any present neighbour is not generated yet, BuildMesh returns ok=false
// without building anything and the caller retries later.
func BuildMesh(c *Column, nb Neighbors) (verts []Vertex, edges uint8, ok bool) {
	for _, n := range nb {
		if n != nil && !n.Generated() {
			return nil, 0, false
		}
	}
	edges = nb.Missing()

	verts = make([]Vertex, 0, initialMeshCapacity)
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			for z := 0; z < Height; z++ {
				kind := c.Get(x, y, z)
				if !kind.Solid() {
					continue
				}
				if exposedNorth(c, nb, x, y, z) {
					verts = appendFace(verts, FaceNorth, x, y, z, kind)
				}
				if exposedSouth(c, nb, x, y, z) {
					verts = appendFace(verts, FaceSouth, x, y, z, kind)
				}
				if exposedWest(c, nb, x, y, z) {
					verts = appendFace(verts, FaceWest, x, y, z, kind)
				}
				if exposedEast(c, nb, x, y, z) {
					verts = appendFace(verts, FaceEast, x, y, z, kind)
				}
				if z == 0 || !c.Get(x, y, z-1).Solid() {
					verts = appendFace(verts, FaceBottom, x, y, z, kind)
				}
				if z == Height-1 || !c.Get(x, y, z+1).Solid() {
					verts = appendFace(verts, FaceTop, x, y, z, kind)
				}
			}
		}
	}
	return verts, edges, true
}

func exposedNorth(c *Column, nb Neighbors, x, y, z int) bool {
	if y < Size-1 {
		return !c.Get(x, y+1, z).Solid()
	}
	n := nb[North]
	return n == nil || !n.Get(x, 0, z).Solid()
}

func exposedSouth(c *Column, nb Neighbors, x, y, z int) bool {
	if y > 0 {
		return !c.Get(x, y-1, z).Solid()
	}
	n := nb[South]
	return n == nil || !n.Get(x, Size-1, z).Solid()
}

func exposedEast(c *Column, nb Neighbors, x, y, z int) bool {
	if x < Size-1 {
		return !c.Get(x+1, y, z).Solid()
	}
	n := nb[East]
	return n == nil || !n.Get(0, y, z).Solid()
}

func exposedWest(c *Column, nb Neighbors, x, y, z int) bool {
	if x > 0 {
		return !c.Get(x-1, y, z).Solid()
	}
	n := nb[West]
	return n == nil || !n.Get(Size-1, y, z).Solid()
}

func appendFace(verts []Vertex, f Face, x, y, z int, kind BlockKind) []Vertex {
	for i, corner := range faceCorners[f] {
		verts = append(verts, Vertex{
			X:      uint8(x) + corner[0],
			Y:      uint8(y) + corner[1],
			Z:      uint16(z) + uint16(corner[2]),
			Face:   f,
			Corner: uint8(i),
			Block:  kind,
		})
	}
	return verts
}
