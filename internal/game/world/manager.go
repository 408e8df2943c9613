// Package world streams voxel columns around a moving viewer.
//
// Manager is driven once per frame from a single goroutine. It creates
// columns, hands generation and meshing to background pools, uploads
// finished meshes through a Backend, and evicts columns that fall behind the
// viewer. The driving goroutine never waits on a worker.
package world

import (
	"sync/atomic"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Faultbox/voxelstream/internal/engine/worker"
	"github.com/Faultbox/voxelstream/internal/game/voxel"
	"github.com/Faultbox/voxelstream/pkg/math"
)

// Config tunes the streaming pass.
type Config struct {
	RenderDistance     int           // radius in columns
	MaxUploadsPerFrame int           // upload queue entries handled per Update
	SweepDelay         time.Duration // pause before each eviction sweep
	EvictionMargin     int           // extra columns kept past RenderDistance

	GenerateWorkers     int
	MeshWorkers         int
	HousekeepingWorkers int
}

// DefaultConfig returns the standard streaming settings.
func DefaultConfig() Config {
	return Config{
		RenderDistance:      12,
		MaxUploadsPerFrame:  10,
		SweepDelay:          50 * time.Millisecond,
		EvictionMargin:      2,
		GenerateWorkers:     1,
		MeshWorkers:         1,
		HousekeepingWorkers: 1,
	}
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the manager's logger. Pools log through it too.
func WithLogger(log *zap.Logger) Option {
	return func(m *Manager) {
		m.log = log
	}
}

// Manager is the streaming scheduler.
type Manager struct {
	cfg     Config
	sampler voxel.Sampler
	log     *zap.Logger

	renderDistance atomic.Int32
	maxUploads     atomic.Int32

	index     *Index
	uploads   Queue[*voxel.Column]
	deletions Queue[*voxel.Column]
	stranded  Queue[*voxel.Column] // generated columns left behind before meshing

	generate     *worker.Pool
	mesh         *worker.Pool
	housekeeping *worker.Pool

	sweeping atomic.Bool
	closed   atomic.Bool

	// Owned by the driving goroutine.
	spiral     []math.IVec2
	spiralSide int

	counters counters
}

// NewManager creates a scheduler that generates terrain from sampler.
func NewManager(cfg Config, sampler voxel.Sampler, opts ...Option) *Manager {
	m := &Manager{
		cfg:     cfg,
		sampler: sampler,
		log:     zap.NewNop(),
		index:   NewIndex(),
	}
	for _, opt := range opts {
		opt(m)
	}

	m.generate = worker.New("generate", cfg.GenerateWorkers, worker.WithLogger(m.log))
	m.mesh = worker.New("mesh", cfg.MeshWorkers, worker.WithLogger(m.log))
	m.housekeeping = worker.New("housekeeping", cfg.HousekeepingWorkers, worker.WithLogger(m.log))

	m.SetRenderDistance(cfg.RenderDistance)
	m.SetMaxUploadsPerFrame(cfg.MaxUploadsPerFrame)
	return m
}

// SetRenderDistance changes the streaming radius, in columns. Values below 1
// are raised to 1.
func (m *Manager) SetRenderDistance(r int) {
	m.renderDistance.Store(int32(max(r, 1)))
}

// RenderDistance returns the streaming radius.
func (m *Manager) RenderDistance() int {
	return int(m.renderDistance.Load())
}

// SetMaxUploadsPerFrame changes how many queued meshes one Update may upload.
// Values below 1 are raised to 1.
func (m *Manager) SetMaxUploadsPerFrame(n int) {
	m.maxUploads.Store(int32(max(n, 1)))
}

// MaxUploadsPerFrame returns the per-frame upload cap.
func (m *Manager) MaxUploadsPerFrame() int {
	return int(m.maxUploads.Load())
}

// Index returns the column index.
func (m *Manager) Index() *Index {
	return m.index
}

// ViewerColumn returns the column containing a world position.
func ViewerColumn(pos mgl32.Vec3) math.IVec2 {
	return math.IVec2{
		X: math.FloorDiv(math.Floor(pos.X()), voxel.Size),
		Y: math.FloorDiv(math.Floor(pos.Y()), voxel.Size),
	}
}

// Update runs one frame of streaming for a viewer at the given world
// position. It must always be called from the same goroutine, which is also
// the only one allowed to touch the backend.
func (m *Manager) Update(viewer mgl32.Vec3, backend Backend) {
	if m.closed.Load() {
		return
	}
	center := ViewerColumn(viewer)

	m.scheduleSweep(center)
	m.processUploads(backend)
	m.processDeletions(backend)
	m.processStranded()
	m.walk(center, backend)
}

// scheduleSweep queues an eviction sweep unless one is already in flight.
func (m *Manager) scheduleSweep(center math.IVec2) {
	if !m.sweeping.CompareAndSwap(false, true) {
		return
	}
	if err := m.housekeeping.Submit(func() { m.sweep(center) }); err != nil {
		m.sweeping.Store(false)
	}
}

// sweep flags resident columns beyond the eviction radius. Generated
// columns out there never reach Resident on their own, so they are queued
// for a mesh that makes them evictable.
func (m *Manager) sweep(center math.IVec2) {
	defer m.sweeping.Store(false)

	time.Sleep(m.cfg.SweepDelay)

	limit := m.RenderDistance() + m.cfg.EvictionMargin
	limitSq := limit * limit
	for _, c := range m.index.Snapshot() {
		if c.Coord().Sub(center).LengthSq() <= limitSq {
			continue
		}
		switch c.State() {
		case voxel.StateResident:
			if c.Transition(voxel.StateResident, voxel.StateEvicting) {
				m.deletions.Push(c)
				m.counters.evicted.Add(1)
			}
		case voxel.StateGenerated:
			m.stranded.Push(c)
		}
	}
}

// processStranded meshes the columns the last sweep found behind the
// viewer. Columns that moved on since are skipped.
func (m *Manager) processStranded() {
	for _, c := range m.stranded.Drain() {
		if c.State() != voxel.StateGenerated {
			continue
		}
		m.counters.reclaimed.Add(1)
		m.dispatchMesh(c, voxel.StateGenerated)
	}
}

// processUploads hands up to MaxUploadsPerFrame finished meshes to the
// backend. Every popped entry counts against the cap.
func (m *Manager) processUploads(backend Backend) {
	limit := m.MaxUploadsPerFrame()
	for range limit {
		c, ok := m.uploads.Pop()
		if !ok {
			return
		}
		if !c.Transition(voxel.StateMeshReady, voxel.StateUploading) {
			continue
		}

		h := backend.Upload(c.Staging())
		if old := c.SwapHandle(h); old != nil {
			backend.Release(old)
		}
		c.PromoteStaging()
		c.Transition(voxel.StateUploading, voxel.StateResident)
		m.counters.uploaded.Add(1)
	}
}

// processDeletions destroys every column flagged by the last sweeps.
func (m *Manager) processDeletions(backend Backend) {
	for _, c := range m.deletions.Drain() {
		m.index.Remove(c)
		if h := c.SwapHandle(nil); h != nil {
			backend.Release(h)
		}
		c.Transition(voxel.StateEvicting, voxel.StateDestroyed)
		m.log.Debug("column evicted", zap.Int("x", c.Coord().X), zap.Int("y", c.Coord().Y))
	}
}

// walk visits the viewer's surroundings nearest first.
func (m *Manager) walk(center math.IVec2, backend Backend) {
	r := m.RenderDistance()
	for _, off := range m.spiralFor(2*r + 1) {
		if !inRange(off, r) {
			continue
		}
		coord := center.Add(off)

		c := m.index.Get(coord)
		if c == nil {
			m.create(coord)
			continue
		}

		st := c.State()
		if st < voxel.StateGenerated || st >= voxel.StateEvicting {
			continue
		}
		if h := c.Handle(); h != nil {
			origin := c.Origin()
			backend.Draw(mgl32.Vec3{float32(origin.X), float32(origin.Y), 0}, h)
		}
		if c.Dirty() && (st == voxel.StateGenerated || st == voxel.StateResident) {
			m.dispatchMesh(c, st)
		}
	}
}

func (m *Manager) spiralFor(side int) []math.IVec2 {
	if side != m.spiralSide {
		m.spiral = Spiral(side)
		m.spiralSide = side
	}
	return m.spiral
}

// create inserts a column, queues its generation, and reopens any seam a
// neighbour meshed while this side was still empty.
func (m *Manager) create(coord math.IVec2) {
	c, created := m.index.GetOrCreate(coord)
	if !created {
		return
	}
	m.counters.created.Add(1)
	c.Transition(voxel.StateUnloaded, voxel.StateGenerating)

	for _, d := range voxel.Directions {
		n := m.index.Get(coord.Add(d.Offset()))
		if n != nil && n.EdgeMask()&d.Opposite().Bit() != 0 {
			n.MarkDirty()
		}
	}

	err := m.generate.Submit(func() {
		if c.Generate(m.sampler) {
			m.counters.generated.Add(1)
		}
	})
	if err != nil {
		m.log.Warn("generation not queued", zap.Int("x", coord.X), zap.Int("y", coord.Y), zap.Error(err))
		return
	}
	m.log.Debug("column created", zap.Int("x", coord.X), zap.Int("y", coord.Y))
}

// dispatchMesh claims c for meshing and queues the job. The neighbour
// snapshot and the edge mask are taken here, on the driving goroutine, so a
// neighbour created later always sees the mask it needs to heal.
func (m *Manager) dispatchMesh(c *voxel.Column, prev voxel.State) {
	nb := m.index.Neighbors(c.Coord())
	if !c.Transition(prev, voxel.StateMeshing) {
		return
	}
	c.ClearDirty()
	c.SetEdgeMask(nb.Missing())

	if err := m.mesh.Submit(func() { m.buildMesh(c, nb, prev) }); err != nil {
		c.MarkDirty()
		c.Transition(voxel.StateMeshing, prev)
	}
}

// buildMesh runs on the mesh pool.
func (m *Manager) buildMesh(c *voxel.Column, nb voxel.Neighbors, prev voxel.State) {
	verts, _, ok := voxel.BuildMesh(c, nb)
	if !ok {
		m.counters.deferred.Add(1)
		c.MarkDirty()
		c.Transition(voxel.StateMeshing, prev)
		return
	}
	if c.Dirty() {
		m.counters.stale.Add(1)
		c.Transition(voxel.StateMeshing, prev)
		return
	}

	c.SetStaging(verts)
	c.Transition(voxel.StateMeshing, voxel.StateMeshReady)
	m.uploads.Push(c)
	m.counters.meshed.Add(1)
}

// Close stops the pools after they finish their queued jobs, then destroys
// every remaining column and releases its GPU handle. backend may be nil if
// nothing was ever uploaded. Calling Close again is a no-op.
func (m *Manager) Close(backend Backend) error {
	if !m.closed.CompareAndSwap(false, true) {
		return nil
	}

	var err error
	err = multierr.Append(err, m.housekeeping.Stop())
	err = multierr.Append(err, m.generate.Stop())
	err = multierr.Append(err, m.mesh.Stop())

	m.uploads.Drain()
	m.deletions.Drain()
	m.stranded.Drain()

	columns := m.index.Snapshot()
	for _, c := range columns {
		m.index.Remove(c)
		if h := c.SwapHandle(nil); h != nil && backend != nil {
			backend.Release(h)
		}
		c.Destroy()
	}

	m.log.Debug("world closed", zap.Int("columns", len(columns)), zap.Error(err))
	return err
}
