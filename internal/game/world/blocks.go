package world

import (
	"github.com/Faultbox/voxelstream/internal/game/voxel"
	"github.com/Faultbox/voxelstream/pkg/math"
)

// column resolves the generated column holding a world voxel and the voxel's
// local coordinates.
func (m *Manager) column(p math.IVec3) (*voxel.Column, math.IVec3, bool) {
	if p.Z < 0 || p.Z >= voxel.Height {
		return nil, math.IVec3{}, false
	}
	cell, local := math.SplitWorld(p, voxel.Size)
	c := m.index.Get(cell)
	if c == nil || !c.Generated() {
		return nil, math.IVec3{}, false
	}
	return c, local, true
}

// GetGlobalBlock returns the block at a world voxel position. Voxels in
// missing or ungenerated columns, and above or below the world, read as air.
func (m *Manager) GetGlobalBlock(p math.IVec3) voxel.BlockKind {
	c, l, ok := m.column(p)
	if !ok {
		return voxel.Air
	}
	return c.Get(l.X, l.Y, l.Z)
}

// TryBreakBlock turns a solid voxel into air. It returns false, changing
// nothing, when the voxel is out of the world, its column is not generated,
// or it is already air.
func (m *Manager) TryBreakBlock(p math.IVec3) bool {
	c, l, ok := m.column(p)
	if !ok || !c.Get(l.X, l.Y, l.Z).Solid() {
		return false
	}
	m.edit(c, l, voxel.Air)
	return true
}

// SetBlock places kind at a world voxel position. It returns false when the
// column is not available or the voxel already holds kind.
func (m *Manager) SetBlock(p math.IVec3, kind voxel.BlockKind) bool {
	c, l, ok := m.column(p)
	if !ok || c.Get(l.X, l.Y, l.Z) == kind {
		return false
	}
	m.edit(c, l, kind)
	return true
}

// edit writes a block and flags every column whose mesh can show it.
func (m *Manager) edit(c *voxel.Column, l math.IVec3, kind voxel.BlockKind) {
	c.Set(l.X, l.Y, l.Z, kind)
	for _, d := range voxel.BoundaryDirections(l.X, l.Y) {
		if n := m.index.Get(c.Coord().Add(d.Offset())); n != nil {
			n.MarkDirty()
		}
	}
	m.counters.edits.Add(1)
}
