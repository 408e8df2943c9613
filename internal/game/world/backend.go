package world

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/voxelstream/internal/game/voxel"
)

// Backend owns GPU-side geometry. Every call comes from the goroutine
// driving Manager.Update.
type Backend interface {
	// Upload copies vertices into a new GPU resource and returns its handle.
	Upload(verts []voxel.Vertex) any
	// Release frees a handle returned by Upload.
	Release(handle any)
	// Draw renders a handle with its column origin as model offset.
	Draw(offset mgl32.Vec3, handle any)
}
