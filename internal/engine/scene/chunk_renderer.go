// Package scene renders streamed voxel columns.
package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/voxelstream/internal/engine/scene/shaders"
	"github.com/Faultbox/voxelstream/internal/engine/shader"
	"github.com/Faultbox/voxelstream/internal/game/voxel"
	"github.com/Faultbox/voxelstream/internal/game/world"
)

var _ world.Backend = (*ChunkRenderer)(nil)

// FrameStats counts the work of one frame.
type FrameStats struct {
	DrawCalls int
	Vertices  int
}

// mesh is the GPU side of one column.
type mesh struct {
	vao   uint32
	vbo   uint32
	count int32
}

// ChunkRenderer uploads and draws column meshes. It implements world.Backend
// and must only be used on the GL thread.
type ChunkRenderer struct {
	program *shader.Program
	log     *zap.Logger

	// Lighting and fog
	LightDir mgl32.Vec3
	FogColor mgl32.Vec3
	FogFar   float32

	meshes int
	frame  FrameStats
}

// NewChunkRenderer compiles the column shaders.
func NewChunkRenderer(log *zap.Logger) (*ChunkRenderer, error) {
	program, err := shader.NewProgram(shaders.ColumnVertexShader, shaders.ColumnFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("column shader: %w", err)
	}

	return &ChunkRenderer{
		program:  program,
		log:      log,
		LightDir: mgl32.Vec3{0.4, 0.3, -1}.Normalize(),
		FogColor: mgl32.Vec3{0.55, 0.72, 0.95},
		FogFar:   200,
	}, nil
}

// Begin binds the program and sets per-frame uniforms.
func (r *ChunkRenderer) Begin(viewProj mgl32.Mat4, eye mgl32.Vec3) {
	r.frame = FrameStats{}

	r.program.Use()
	r.program.SetMat4("uViewProj", viewProj)
	r.program.SetVec3("uEye", eye)
	r.program.SetVec3("uLightDir", r.LightDir)
	r.program.SetVec3("uFogColor", r.FogColor)
	r.program.SetFloat("uFogFar", r.FogFar)
}

// Upload implements world.Backend. An empty mesh gets no GPU resources and a
// nil handle.
func (r *ChunkRenderer) Upload(verts []voxel.Vertex) any {
	if len(verts) == 0 {
		return nil
	}

	m := &mesh{count: int32(len(verts))}
	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*voxel.VertexSize, unsafe.Pointer(&verts[0]), gl.STATIC_DRAW)

	stride := int32(voxel.VertexSize)
	// X, Y (location 0)
	gl.VertexAttribIPointerWithOffset(0, 2, gl.UNSIGNED_BYTE, stride, 0)
	gl.EnableVertexAttribArray(0)
	// Z (location 1)
	gl.VertexAttribIPointerWithOffset(1, 1, gl.UNSIGNED_SHORT, stride, 2)
	gl.EnableVertexAttribArray(1)
	// Face, Corner (location 2)
	gl.VertexAttribIPointerWithOffset(2, 2, gl.UNSIGNED_BYTE, stride, 4)
	gl.EnableVertexAttribArray(2)
	// Block (location 3)
	gl.VertexAttribIPointerWithOffset(3, 1, gl.UNSIGNED_SHORT, stride, 6)
	gl.EnableVertexAttribArray(3)

	gl.BindVertexArray(0)
	r.meshes++
	return m
}

// Release implements world.Backend.
func (r *ChunkRenderer) Release(h any) {
	m, ok := h.(*mesh)
	if !ok || m == nil {
		r.log.Warn("release of unknown handle", zap.Any("handle", h))
		return
	}
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteVertexArrays(1, &m.vao)
	r.meshes--
}

// Draw implements world.Backend.
func (r *ChunkRenderer) Draw(offset mgl32.Vec3, h any) {
	m, ok := h.(*mesh)
	if !ok || m == nil {
		return
	}
	r.program.SetVec3("uOffset", offset)
	gl.BindVertexArray(m.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, m.count)

	r.frame.DrawCalls++
	r.frame.Vertices += int(m.count)
}

// End unbinds the column state.
func (r *ChunkRenderer) End() {
	gl.BindVertexArray(0)
}

// Frame returns the stats of the last frame.
func (r *ChunkRenderer) Frame() FrameStats {
	return r.frame
}

// Meshes returns the number of live GPU meshes.
func (r *ChunkRenderer) Meshes() int {
	return r.meshes
}

// Close frees the shader program. Meshes are released by world.Manager.Close.
func (r *ChunkRenderer) Close() {
	if r.meshes != 0 {
		r.log.Warn("closing renderer with live meshes", zap.Int("meshes", r.meshes))
	}
	r.program.Delete()
}
