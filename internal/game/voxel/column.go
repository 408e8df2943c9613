package voxel

import (
	"sync/atomic"

	"github.com/Faultbox/voxelstream/pkg/math"
)

// Column is one 16x16x256 slice of the world.
//
// Block slots are atomics: the mesher may read a column while the driving
// goroutine edits it, and a torn read only shows up until the next remesh.
// Staging geometry is written by the meshing job before the column reaches
// StateMeshReady; everything else below the state cell belongs to the
// driving goroutine.
type Column struct {
	coord  math.IVec2
	blocks []atomic.Uint32
	state  stateCell

	// edgeMask records which sides were meshed as open world edge.
	edgeMask atomic.Uint32

	staging  []Vertex
	vertices []Vertex
	handle   any
}

// NewColumn creates an unloaded column at the given grid coordinate.
func NewColumn(coord math.IVec2) *Column {
	return &Column{
		coord:  coord,
		blocks: make([]atomic.Uint32, Volume),
	}
}

// Coord returns the column's grid coordinate.
func (c *Column) Coord() math.IVec2 {
	return c.coord
}

// Origin returns the world block coordinate of the column's (0, 0, 0) slot.
func (c *Column) Origin() math.IVec2 {
	return c.coord.Scale(Size)
}

// Get returns the block at local coordinates.
// No bounds checking: callers guarantee 0-15 / 0-15 / 0-255.
func (c *Column) Get(x, y, z int) BlockKind {
	return BlockKind(c.blocks[Index(x, y, z)].Load())
}

// Set overwrites the block at local coordinates and flags the column for remesh.
// Neighbouring columns are not touched; see world.Manager for boundary edits.
func (c *Column) Set(x, y, z int, kind BlockKind) {
	c.blocks[Index(x, y, z)].Store(uint32(kind))
	c.state.setDirty(true)
}

// Generate fills every slot from the sampler and then publishes the column as
// generated with a pending remesh. It runs at most once; later calls return false.
func (c *Column) Generate(s Sampler) bool {
	if !c.state.transition(StateUnloaded, StateGenerating) {
		if st, _ := c.state.load(); st != StateGenerating {
			return false
		}
	}

	var p Profile
	s.Sample(c.coord.X, c.coord.Y, &p)
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			surface := p.Surface[x][y]
			base := Index(x, y, 0)
			for z := 0; z < Height; z++ {
				c.blocks[base+z].Store(uint32(s.Layer(z, surface)))
			}
		}
	}

	return c.state.transitionDirty(StateGenerating, StateGenerated)
}

// State returns the current lifecycle stage.
func (c *Column) State() State {
	s, _ := c.state.load()
	return s
}

// Generated reports whether every block slot has been written.
func (c *Column) Generated() bool {
	return c.State() >= StateGenerated
}

// Dirty reports whether the column needs a remesh.
func (c *Column) Dirty() bool {
	_, d := c.state.load()
	return d
}

// MarkDirty flags the column for remesh.
func (c *Column) MarkDirty() {
	c.state.setDirty(true)
}

// ClearDirty drops the remesh flag. Only the scheduler does this, when it
// dispatches a mesh job.
func (c *Column) ClearDirty() {
	c.state.setDirty(false)
}

// Transition moves the column from one stage to another. It fails if the
// column is not currently in from.
func (c *Column) Transition(from, to State) bool {
	return c.state.transition(from, to)
}

// Destroy forces the column into its terminal stage regardless of where it
// is. Only valid once no job can still reach the column.
func (c *Column) Destroy() {
	c.state.reset(StateDestroyed)
}

// EdgeMask returns the sides meshed as open world edge, one bit per Direction.
func (c *Column) EdgeMask() uint8 {
	return uint8(c.edgeMask.Load())
}

// SetEdgeMask records the sides meshed as open world edge.
func (c *Column) SetEdgeMask(mask uint8) {
	c.edgeMask.Store(uint32(mask))
}

// SetStaging stores freshly built geometry. Called by the meshing job.
func (c *Column) SetStaging(v []Vertex) {
	c.staging = v
}

// Staging returns geometry that is built but not yet uploaded.
func (c *Column) Staging() []Vertex {
	return c.staging
}

// PromoteStaging makes the staging geometry the visible geometry and
// returns it.
func (c *Column) PromoteStaging() []Vertex {
	c.vertices, c.staging = c.staging, nil
	return c.vertices
}

// Vertices returns the uploaded geometry.
func (c *Column) Vertices() []Vertex {
	return c.vertices
}

// Handle returns the GPU resource handle, or nil before the first upload.
func (c *Column) Handle() any {
	return c.handle
}

// SwapHandle installs a new GPU handle and returns the previous one.
func (c *Column) SwapHandle(h any) any {
	old := c.handle
	c.handle = h
	return old
}
