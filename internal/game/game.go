// Package game implements the interactive viewer loop.
package game

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Faultbox/voxelstream/internal/config"
	"github.com/Faultbox/voxelstream/internal/engine/camera"
	"github.com/Faultbox/voxelstream/internal/engine/debug"
	"github.com/Faultbox/voxelstream/internal/engine/input"
	"github.com/Faultbox/voxelstream/internal/engine/lighting"
	"github.com/Faultbox/voxelstream/internal/engine/picking"
	"github.com/Faultbox/voxelstream/internal/engine/renderer"
	"github.com/Faultbox/voxelstream/internal/engine/scene"
	"github.com/Faultbox/voxelstream/internal/engine/terrain"
	"github.com/Faultbox/voxelstream/internal/engine/window"
	"github.com/Faultbox/voxelstream/internal/game/physics"
	"github.com/Faultbox/voxelstream/internal/game/voxel"
	"github.com/Faultbox/voxelstream/internal/game/world"
	"github.com/Faultbox/voxelstream/internal/logger"
	"github.com/Faultbox/voxelstream/pkg/math"
)

// Movement tuning, in blocks and seconds.
const (
	gravity   = 28
	jumpSpeed = 9
	walkSpeed = 4.3
	reach     = 6
	maxStep   = 0.05 // physics substep
)

// Game is the viewer instance.
type Game struct {
	config  *config.Config
	log     *zap.Logger
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	chunks   *scene.ChunkRenderer
	input    *input.Input
	shots    *debug.ScreenshotCapture

	world    *world.Manager
	camera   *camera.FlyCamera
	player   *physics.Mover
	follower *world.PathFollower

	walking  bool
	wantShot bool
	onGround bool
	place    voxel.BlockKind
	target   picking.Hit
	hasHit   bool
}

// New creates the window, GL resources and the streaming world.
func New(cfg *config.Config) (*Game, error) {
	log := logger.Named("game")
	log.Info("initializing viewer",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Int("render_distance", cfg.World.RenderDistance),
		zap.String("terrain", cfg.World.Terrain),
		zap.Int64("seed", cfg.World.Seed),
	)

	g := &Game{
		config: cfg,
		log:    log,
		place:  voxel.Stone,
	}

	sampler, err := terrain.New(cfg.World.Terrain, cfg.World.Seed)
	if err != nil {
		return nil, err
	}

	// Create window (this also creates OpenGL context)
	g.window, err = window.New(window.Config{
		Title:      "voxelstream",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	}, logger.Named("window"))
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	chunks, err := g.initGraphics()
	if err != nil {
		g.window.Close()
		return nil, err
	}
	g.chunks = chunks

	g.input = input.New()
	g.world = world.NewManager(cfg.World.Streaming(), sampler, world.WithLogger(logger.Named("world")))

	spawn := mgl32.Vec3{8, 8, voxel.Height - 56}
	g.camera = camera.NewFlyCamera(spawn)
	g.camera.FOV = cfg.Graphics.FOV
	g.camera.Far = float32(cfg.World.RenderDistance+2) * voxel.Size * 1.5
	g.chunks.FogFar = float32(cfg.World.RenderDistance) * voxel.Size
	g.chunks.LightDir = lighting.LightDirection(35, 55)
	g.shots = debug.NewScreenshotCapture("screenshots", "voxelstream")
	g.player = physics.NewMover(spawn, physics.PlayerShape())
	g.follower = world.NewPathFollower(world.NewPathFinder(g.world, world.DefaultMaxNodes))

	g.window.CaptureMouse(true)

	log.Info("viewer initialized")
	return g, nil
}

func (g *Game) initGraphics() (*scene.ChunkRenderer, error) {
	width, height := g.window.GetSize()

	var err error
	g.renderer, err = renderer.New(renderer.Config{
		Width:  width,
		Height: height,
		Sky:    mgl32.Vec3{0.55, 0.72, 0.95},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	chunks, err := scene.NewChunkRenderer(logger.Named("chunks"))
	if err != nil {
		g.renderer.Close()
		return nil, fmt.Errorf("failed to create chunk renderer: %w", err)
	}
	return chunks, nil
}

// Run starts the main loop.
func (g *Game) Run() error {
	g.running = true

	// Timing
	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	g.log.Info("starting main loop")

	for g.running {
		// Calculate delta time
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		// 1. Process input
		if g.input.Update() {
			g.running = false
			break
		}
		g.handleEvents()

		// 2. Move and pick
		g.update(dt)

		// 3. Stream and render
		g.render()
		if g.wantShot {
			g.wantShot = false
			g.screenshot()
		}

		// 4. Present (swap buffers)
		g.window.SwapBuffers()

		// FPS counter
		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			stats := g.world.Stats()
			frame := g.chunks.Frame()
			g.window.SetTitle(fmt.Sprintf("voxelstream | %d fps | %d columns | %d draws | r=%d",
				frameCount, stats.Columns, frame.DrawCalls, g.world.RenderDistance()))
			g.log.Debug("frame stats",
				zap.Int("fps", frameCount),
				zap.Int("draw_calls", frame.DrawCalls),
				zap.Int("vertices", frame.Vertices),
				zap.Object("world", stats),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (g *Game) handleEvents() {
	for _, event := range g.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			g.renderer.Resize(g.window.GetSize())
		case input.EventKeyDown:
			switch event.Key {
			case sdl.SCANCODE_ESCAPE:
				g.running = false
			case sdl.SCANCODE_F:
				g.toggleWalk()
			case sdl.SCANCODE_G:
				g.goToTarget()
			case sdl.SCANCODE_F12:
				g.wantShot = true
			case sdl.SCANCODE_EQUALS:
				g.world.SetRenderDistance(g.world.RenderDistance() + 1)
			case sdl.SCANCODE_MINUS:
				g.world.SetRenderDistance(g.world.RenderDistance() - 1)
			case sdl.SCANCODE_1, sdl.SCANCODE_2, sdl.SCANCODE_3, sdl.SCANCODE_4:
				g.place = voxel.Stone + voxel.BlockKind(event.Key-sdl.SCANCODE_1)
				g.log.Info("selected block", zap.Stringer("block", g.place))
			}
		}
	}
}

func (g *Game) toggleWalk() {
	g.walking = !g.walking
	g.player.SetPosition(g.camera.Position)
	g.player.SetVelocity(mgl32.Vec3{})
	g.follower.ClearPath()
	g.log.Info("movement mode changed", zap.Bool("walking", g.walking))
}

// feet returns the bottom centre of the player's box.
func (g *Game) feet() mgl32.Vec3 {
	shape := g.player.Shape()
	p := g.player.Position()
	p[2] += shape.Origin.Z() - shape.Size.Z()/2 + 0.01
	return p
}

// goToTarget walks to the cell in front of the targeted face.
func (g *Game) goToTarget() {
	if !g.walking || !g.hasHit {
		return
	}
	dest := g.target.Adjacent()
	path := g.follower.MoveTo(g.feet(), dest)
	if path == nil {
		g.log.Info("no path", zap.Int("x", dest.X), zap.Int("y", dest.Y), zap.Int("z", dest.Z))
		return
	}
	g.log.Debug("walking path", zap.Int("nodes", len(path)))
}

func (g *Game) update(dt float32) {
	dx, dy := g.input.MouseDelta()
	g.camera.HandleLook(dx, dy)

	forward := g.input.Axis(sdl.SCANCODE_W, sdl.SCANCODE_S)
	right := g.input.Axis(sdl.SCANCODE_D, sdl.SCANCODE_A)

	if g.walking {
		g.walk(forward, right, dt)
	} else {
		up := g.input.Axis(sdl.SCANCODE_SPACE, sdl.SCANCODE_LSHIFT)
		g.camera.HandleMovement(forward, right, up, dt)
	}

	g.pick()
}

// walk integrates gravity and collision in small substeps so a long frame
// cannot tunnel through a block.
func (g *Game) walk(forward, right, dt float32) {
	// Hold still until the ground under the player exists.
	c := g.world.Index().Get(world.ViewerColumn(g.player.Position()))
	if c == nil || !c.Generated() {
		return
	}

	if forward != 0 || right != 0 {
		g.follower.ClearPath()
	}

	v := g.camera.WalkVelocity(forward, right, walkSpeed)
	jump := g.input.IsKeyHeld(sdl.SCANCODE_SPACE)
	if g.follower.IsFollowingPath {
		var climb bool
		v, climb = g.follower.Steer(g.feet(), walkSpeed)
		jump = jump || climb
	}

	vz := g.player.Velocity().Z()
	if g.onGround && jump {
		vz = jumpSpeed
	}

	for dt > 0 {
		step := min(dt, maxStep)
		dt -= step

		vz -= gravity * step
		g.player.SetVelocity(mgl32.Vec3{v.X(), v.Y(), vz})
		contacts := physics.Resolve(g.player, step, g.world)
		g.onGround = contacts.Floor
		vz = g.player.Velocity().Z()
	}
	g.camera.Position = g.player.Position()
}

func (g *Game) pick() {
	ray := picking.Ray{Origin: g.camera.Position, Direction: g.camera.Forward()}
	g.target, g.hasHit = picking.CastVoxels(g.world, ray, reach)
	if !g.hasHit {
		return
	}

	switch {
	case g.input.IsButtonPressed(sdl.BUTTON_LEFT):
		if g.world.TryBreakBlock(g.target.Cell) {
			g.log.Debug("block broken", zap.Stringer("block", g.target.Block))
		}
	case g.input.IsButtonPressed(sdl.BUTTON_RIGHT):
		if g.target.Normal == (math.IVec3{}) {
			return
		}
		g.world.SetBlock(g.target.Adjacent(), g.place)
	}
}

func (g *Game) render() {
	g.renderer.Begin()

	aspect := g.window.Aspect()
	viewProj := g.camera.ProjectionMatrix(aspect).Mul4(g.camera.ViewMatrix())
	g.chunks.Begin(viewProj, g.camera.Position)
	g.world.Update(g.camera.Position, g.chunks)
	g.chunks.End()

	if g.hasHit {
		g.renderer.DrawLines(viewProj, debug.BlockOutline(g.target.Cell, debug.DefaultOutlinePadding), mgl32.Vec3{0.05, 0.05, 0.05})
	}

	g.renderer.End()
}

// screenshot saves the frame just rendered, before it is presented.
func (g *Game) screenshot() {
	pixels, w, h := g.renderer.ReadPixels()
	name, err := g.shots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		g.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	g.log.Info("screenshot saved", zap.String("path", name))
}

// Close releases the world, GL resources and the window, in that order.
func (g *Game) Close() error {
	g.log.Info("closing viewer")

	var err error
	if g.world != nil {
		err = multierr.Append(err, g.world.Close(g.chunks))
	}
	if g.chunks != nil {
		g.chunks.Close()
	}
	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
	return err
}
