// Package renderer provides frame-level OpenGL state and the HUD crosshair.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/voxelstream/internal/engine/scene/shaders"
	"github.com/Faultbox/voxelstream/internal/engine/shader"
	"github.com/Faultbox/voxelstream/internal/logger"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
	Sky    mgl32.Vec3
}

// Renderer handles frame setup and screen-space overlays.
type Renderer struct {
	config Config

	crosshair    *shader.Program
	crosshairVAO uint32
	crosshairVBO uint32

	outline    *shader.Program
	outlineVAO uint32
	outlineVBO uint32
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	// Column faces wind clockwise seen from outside.
	gl.Enable(gl.CULL_FACE)
	gl.FrontFace(gl.CW)
	gl.CullFace(gl.BACK)

	gl.ClearColor(cfg.Sky[0], cfg.Sky[1], cfg.Sky[2], 1.0)

	var err error
	r.crosshair, err = shader.NewProgram(shaders.CrosshairVertexShader, shaders.CrosshairFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("crosshair shader: %w", err)
	}
	r.createCrosshair()

	r.outline, err = shader.NewProgram(shaders.OutlineVertexShader, shaders.OutlineFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("outline shader: %w", err)
	}
	r.createOutline()

	r.Resize(cfg.Width, cfg.Height)

	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.crosshairVAO != 0 {
		gl.DeleteVertexArrays(1, &r.crosshairVAO)
	}
	if r.crosshairVBO != 0 {
		gl.DeleteBuffers(1, &r.crosshairVBO)
	}
	if r.crosshair != nil {
		r.crosshair.Delete()
	}
	if r.outlineVAO != 0 {
		gl.DeleteVertexArrays(1, &r.outlineVAO)
	}
	if r.outlineVBO != 0 {
		gl.DeleteBuffers(1, &r.outlineVBO)
	}
	if r.outline != nil {
		r.outline.Delete()
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// End draws overlays on top of the frame.
func (r *Renderer) End() {
	r.drawCrosshair()
}

func (r *Renderer) drawCrosshair() {
	if r.config.Width == 0 || r.config.Height == 0 {
		return
	}
	// 10 pixel arms regardless of window size.
	scale := mgl32.Vec2{20 / float32(r.config.Width), 20 / float32(r.config.Height)}

	gl.Disable(gl.DEPTH_TEST)
	r.crosshair.Use()
	gl.Uniform2f(r.crosshair.Uniform("uScale"), scale[0], scale[1])
	gl.BindVertexArray(r.crosshairVAO)
	gl.DrawArrays(gl.LINES, 0, 4)
	gl.BindVertexArray(0)
	gl.Enable(gl.DEPTH_TEST)
}

func (r *Renderer) createCrosshair() {
	vertices := []float32{
		-0.5, 0, 0.5, 0,
		0, -0.5, 0, 0.5,
	}

	gl.GenVertexArrays(1, &r.crosshairVAO)
	gl.BindVertexArray(r.crosshairVAO)

	gl.GenBuffers(1, &r.crosshairVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.crosshairVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 2*4, 0)
	gl.EnableVertexAttribArray(0)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	logger.Debug("crosshair created",
		zap.Uint32("vao", r.crosshairVAO),
		zap.Uint32("vbo", r.crosshairVBO),
	)
}

// DrawLines draws world-space line segments, xyz per vertex, in one colour.
func (r *Renderer) DrawLines(viewProj mgl32.Mat4, verts []float32, color mgl32.Vec3) {
	if len(verts) < 6 {
		return
	}

	r.outline.Use()
	r.outline.SetMat4("uViewProj", viewProj)
	r.outline.SetVec3("uColor", color)

	gl.BindVertexArray(r.outlineVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.outlineVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, unsafe.Pointer(&verts[0]), gl.STREAM_DRAW)
	gl.DrawArrays(gl.LINES, 0, int32(len(verts)/3))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

// ReadPixels returns the current back buffer as RGBA, bottom row first.
func (r *Renderer) ReadPixels() (pixels []byte, width, height int) {
	width, height = r.config.Width, r.config.Height
	pixels = make([]byte, width*height*4)
	if len(pixels) == 0 {
		return pixels, width, height
	}
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels, width, height
}

func (r *Renderer) createOutline() {
	gl.GenVertexArrays(1, &r.outlineVAO)
	gl.BindVertexArray(r.outlineVAO)

	gl.GenBuffers(1, &r.outlineVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.outlineVBO)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}
