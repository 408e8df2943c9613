package voxel

import "sync/atomic"

// State is the main lifecycle stage of a column.
type State uint32

// Lifecycle stages, in order.
const (
	StateUnloaded State = iota
	StateGenerating
	StateGenerated
	StateMeshing
	StateMeshReady
	StateUploading
	StateResident
	StateEvicting
	StateDestroyed
)

// dirtyBit is kept orthogonal to the stage: a remesh can be requested
// from any stage after generation.
const (
	dirtyBit  uint32 = 1 << 31
	stateMask uint32 = dirtyBit - 1
)

var stateNames = [...]string{
	StateUnloaded:   "unloaded",
	StateGenerating: "generating",
	StateGenerated:  "generated",
	StateMeshing:    "meshing",
	StateMeshReady:  "mesh-ready",
	StateUploading:  "uploading",
	StateResident:   "resident",
	StateEvicting:   "evicting",
	StateDestroyed:  "destroyed",
}

// String returns the state name.
func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "invalid"
}

// stateCell packs State and the dirty bit into one atomic word.
type stateCell struct {
	v atomic.Uint32
}

func (c *stateCell) load() (State, bool) {
	w := c.v.Load()
	return State(w & stateMask), w&dirtyBit != 0
}

// transition moves from one stage to another, preserving the dirty bit.
func (c *stateCell) transition(from, to State) bool {
	for {
		w := c.v.Load()
		if State(w&stateMask) != from {
			return false
		}
		if c.v.CompareAndSwap(w, (w&dirtyBit)|uint32(to)) {
			return true
		}
	}
}

// transitionDirty moves between stages and sets the dirty bit in one step.
func (c *stateCell) transitionDirty(from, to State) bool {
	for {
		w := c.v.Load()
		if State(w&stateMask) != from {
			return false
		}
		if c.v.CompareAndSwap(w, dirtyBit|uint32(to)) {
			return true
		}
	}
}

// reset forces a stage and drops the dirty bit.
func (c *stateCell) reset(to State) {
	c.v.Store(uint32(to))
}

func (c *stateCell) setDirty(dirty bool) {
	for {
		w := c.v.Load()
		next := w &^ dirtyBit
		if dirty {
			next |= dirtyBit
		}
		if w == next || c.v.CompareAndSwap(w, next) {
			return
		}
	}
}
