package voxel

// Vertex is one corner of an emitted face, packed for upload.
//
// Position is local to the column. Z needs 16 bits since the top face of
// z=255 sits at 256. Face and Corner let the shader rebuild the normal and
// texture coordinates; Block drives texture selection.
type Vertex struct {
	X, Y   uint8
	Z      uint16
	Face   Face
	Corner uint8
	Block  BlockKind
}

// VertexSize is the packed size of a Vertex in bytes.
const VertexSize = 8

// Face identifies one of the six sides of a block.
type Face uint8

// Face tags, as seen by the shader.
const (
	FaceNorth  Face = iota // +Y
	FaceSouth              // -Y
	FaceWest               // -X
	FaceEast               // +X
	FaceBottom             // -Z
	FaceTop                // +Z
)

// VerticesPerFace is the number of vertices emitted per face (two triangles).
const VerticesPerFace = 6

var faceNames = [...]string{
	FaceNorth:  "north",
	FaceSouth:  "south",
	FaceWest:   "west",
	FaceEast:   "east",
	FaceBottom: "bottom",
	FaceTop:    "top",
}

// String returns the face name.
func (f Face) String() string {
	if int(f) < len(faceNames) {
		return faceNames[f]
	}
	return "invalid"
}

// Normal returns the outward unit step of the face.
func (f Face) Normal() [3]int {
	return faceNormals[f]
}

var faceNormals = [6][3]int{
	FaceNorth:  {0, 1, 0},
	FaceSouth:  {0, -1, 0},
	FaceWest:   {-1, 0, 0},
	FaceEast:   {1, 0, 0},
	FaceBottom: {0, 0, -1},
	FaceTop:    {0, 0, 1},
}

// faceCorners holds the unit-cube corner of each emitted vertex.
// Every triangle winds clockwise when seen from outside the block.
var faceCorners = [6][VerticesPerFace][3]uint8{
	FaceNorth: {
		{0, 1, 0}, {1, 1, 0}, {0, 1, 1},
		{0, 1, 1}, {1, 1, 0}, {1, 1, 1},
	},
	FaceSouth: {
		{1, 0, 0}, {0, 0, 0}, {1, 0, 1},
		{1, 0, 1}, {0, 0, 0}, {0, 0, 1},
	},
	FaceWest: {
		{0, 0, 0}, {0, 1, 0}, {0, 0, 1},
		{0, 0, 1}, {0, 1, 0}, {0, 1, 1},
	},
	FaceEast: {
		{1, 1, 0}, {1, 0, 0}, {1, 1, 1},
		{1, 1, 1}, {1, 0, 0}, {1, 0, 1},
	},
	FaceBottom: {
		{0, 0, 0}, {1, 0, 0}, {0, 1, 0},
		{0, 1, 0}, {1, 0, 0}, {1, 1, 0},
	},
	FaceTop: {
		{0, 1, 1}, {1, 1, 1}, {0, 0, 1},
		{0, 0, 1}, {1, 1, 1}, {1, 0, 1},
	},
}

// FaceCorner returns the unit-cube corner for a face vertex.
func FaceCorner(f Face, corner int) [3]uint8 {
	return faceCorners[f][corner]
}
