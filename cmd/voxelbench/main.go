// voxelbench drives the streaming scheduler headlessly and reports pipeline
// statistics. It accepts the same world flags as the viewer.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/voxelstream/internal/config"
	"github.com/Faultbox/voxelstream/internal/engine/terrain"
	"github.com/Faultbox/voxelstream/internal/game/voxel"
	"github.com/Faultbox/voxelstream/internal/game/world"
	"github.com/Faultbox/voxelstream/internal/logger"
)

var (
	flagFrames    = flag.Int("frames", 600, "Number of frames to run")
	flagSpeed     = flag.Float64("speed", 0.5, "Viewer speed along +X, blocks per frame")
	flagFrameTime = flag.Duration("frame-time", 16*time.Millisecond, "Pause between frames")
)

// countingBackend stands in for the GPU.
type countingBackend struct {
	next     int
	live     map[int]int // handle -> vertex count
	uploads  int
	releases int
	draws    int
	vertices int
}

func newCountingBackend() *countingBackend {
	return &countingBackend{live: make(map[int]int)}
}

func (b *countingBackend) Upload(verts []voxel.Vertex) any {
	b.uploads++
	if len(verts) == 0 {
		return nil
	}
	b.next++
	b.live[b.next] = len(verts)
	return b.next
}

func (b *countingBackend) Release(h any) {
	if id, ok := h.(int); ok {
		delete(b.live, id)
		b.releases++
	}
}

func (b *countingBackend) Draw(_ mgl32.Vec3, h any) {
	if id, ok := h.(int); ok {
		b.draws++
		b.vertices += b.live[id]
	}
}

// report is printed as YAML when the run ends.
type report struct {
	Frames        int           `yaml:"frames"`
	Elapsed       time.Duration `yaml:"elapsed"`
	AvgUpdate     time.Duration `yaml:"avg_update"`
	MaxUpdate     time.Duration `yaml:"max_update"`
	Uploads       int           `yaml:"uploads"`
	Releases      int           `yaml:"releases"`
	LiveMeshes    int           `yaml:"live_meshes"`
	DrawsPerFrame float64       `yaml:"draws_per_frame"`
	Pipeline      world.Stats   `yaml:"pipeline"`
}

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Error("bench failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	sampler, err := terrain.New(cfg.World.Terrain, cfg.World.Seed)
	if err != nil {
		return err
	}

	log := logger.Named("bench")
	m := world.NewManager(cfg.World.Streaming(), sampler, world.WithLogger(logger.Named("world")))
	backend := newCountingBackend()

	log.Info("starting",
		zap.Int("frames", *flagFrames),
		zap.Float64("speed", *flagSpeed),
		zap.Int("render_distance", cfg.World.RenderDistance),
		zap.String("terrain", cfg.World.Terrain),
	)

	var total, worst time.Duration
	viewer := mgl32.Vec3{8, 8, 100}
	start := time.Now()
	for frame := 0; frame < *flagFrames; frame++ {
		t := time.Now()
		m.Update(viewer, backend)
		d := time.Since(t)
		total += d
		worst = max(worst, d)

		viewer[0] += float32(*flagSpeed)
		if *flagFrameTime > 0 {
			time.Sleep(*flagFrameTime)
		}
		if frame%60 == 0 {
			log.Debug("frame", zap.Int("n", frame), zap.Object("world", m.Stats()))
		}
	}

	r := report{
		Frames:     *flagFrames,
		Elapsed:    time.Since(start),
		MaxUpdate:  worst,
		Uploads:    backend.uploads,
		LiveMeshes: len(backend.live),
		Pipeline:   m.Stats(),
	}
	if *flagFrames > 0 {
		r.AvgUpdate = total / time.Duration(*flagFrames)
		r.DrawsPerFrame = float64(backend.draws) / float64(*flagFrames)
	}

	closeErr := m.Close(backend)
	r.Releases = backend.releases
	log.Info("finished", zap.Object("world", r.Pipeline), zap.Int("live_after_close", len(backend.live)))

	out, err := yaml.Marshal(r)
	if err != nil {
		return err
	}
	fmt.Print(string(out))
	return closeErr
}
