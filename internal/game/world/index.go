package world

import (
	"sync"

	"github.com/Faultbox/voxelstream/internal/game/voxel"
	"github.com/Faultbox/voxelstream/pkg/math"
)

// Index maps column coordinates to loaded columns.
// Every method takes the lock for the duration of one map operation only.
type Index struct {
	mu      sync.RWMutex
	columns map[math.IVec2]*voxel.Column
}

// NewIndex creates an empty index.
func NewIndex() *Index {
	return &Index{
		columns: make(map[math.IVec2]*voxel.Column),
	}
}

// Get returns the column at coord, or nil.
func (idx *Index) Get(coord math.IVec2) *voxel.Column {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.columns[coord]
}

// GetOrCreate returns the column at coord, creating an unloaded one if none
// exists. created reports whether this call inserted it.
func (idx *Index) GetOrCreate(coord math.IVec2) (c *voxel.Column, created bool) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	if c, ok := idx.columns[coord]; ok {
		return c, false
	}
	c = voxel.NewColumn(coord)
	idx.columns[coord] = c
	return c, true
}

// Remove deletes the entry for c's coordinate if it still points at c.
func (idx *Index) Remove(c *voxel.Column) bool {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	if idx.columns[c.Coord()] != c {
		return false
	}
	delete(idx.columns, c.Coord())
	return true
}

// Snapshot copies out every indexed column.
func (idx *Index) Snapshot() []*voxel.Column {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	out := make([]*voxel.Column, 0, len(idx.columns))
	for _, c := range idx.columns {
		out = append(out, c)
	}
	return out
}

// Len returns the number of indexed columns.
func (idx *Index) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.columns)
}

// Neighbors resolves the four lateral neighbours of coord in one pass.
func (idx *Index) Neighbors(coord math.IVec2) voxel.Neighbors {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	var nb voxel.Neighbors
	for _, d := range voxel.Directions {
		nb[d] = idx.columns[coord.Add(d.Offset())]
	}
	return nb
}
