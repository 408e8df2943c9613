package world

import (
	"container/heap"
	"slices"

	"github.com/Faultbox/voxelstream/internal/game/voxel"
	"github.com/Faultbox/voxelstream/pkg/math"
)

// BlockReader reads world voxels. *Manager satisfies it.
type BlockReader interface {
	GetGlobalBlock(p math.IVec3) voxel.BlockKind
}

// DefaultMaxNodes bounds a search. The world has no edge, so an unreachable
// goal would otherwise expand forever.
const DefaultMaxNodes = 8192

// Move costs.
const (
	straightCost = 1.0
	diagonalCost = 1.414
	climbCost    = 0.5 // added to a step that goes up one block
)

// searchNode is one feet cell in the A* frontier.
type searchNode struct {
	cell   math.IVec3
	g, f   float32
	parent *searchNode
	slot   int // heap position, -1 once popped
}

// openList orders the frontier by f.
type openList []*searchNode

func (o openList) Len() int           { return len(o) }
func (o openList) Less(i, j int) bool { return o[i].f < o[j].f }
func (o openList) Swap(i, j int) {
	o[i], o[j] = o[j], o[i]
	o[i].slot, o[j].slot = i, j
}

func (o *openList) Push(x any) {
	n := x.(*searchNode)
	n.slot = len(*o)
	*o = append(*o, n)
}

func (o *openList) Pop() any {
	old := *o
	n := old[len(old)-1]
	old[len(old)-1] = nil
	n.slot = -1
	*o = old[:len(old)-1]
	return n
}

// lateral steps, straight ones at even indices.
var lateral = [8]math.IVec2{
	{X: 0, Y: 1},
	{X: 1, Y: 1},
	{X: 1, Y: 0},
	{X: 1, Y: -1},
	{X: 0, Y: -1},
	{X: -1, Y: -1},
	{X: -1, Y: 0},
	{X: -1, Y: 1},
}

// PathFinder finds walking routes for a body two blocks tall.
type PathFinder struct {
	blocks   BlockReader
	maxNodes int
}

// NewPathFinder creates a pathfinder. maxNodes <= 0 selects DefaultMaxNodes.
func NewPathFinder(blocks BlockReader, maxNodes int) *PathFinder {
	if maxNodes <= 0 {
		maxNodes = DefaultMaxNodes
	}
	return &PathFinder{blocks: blocks, maxNodes: maxNodes}
}

// Standable reports whether feet can rest at p: solid ground below and two
// free cells for the body.
func (pf *PathFinder) Standable(p math.IVec3) bool {
	if p.Z < 1 || p.Z+1 >= voxel.Height {
		return false
	}
	return pf.solid(p.X, p.Y, p.Z-1) && pf.free(p.X, p.Y, p.Z) && pf.free(p.X, p.Y, p.Z+1)
}

// FindPath returns the feet cells from start to goal, both included.
// Steps may climb or drop one block; diagonals may not cut corners.
// Returns nil if either end is not standable or no path is found within
// the node budget.
func (pf *PathFinder) FindPath(start, goal math.IVec3) []math.IVec3 {
	if !pf.Standable(start) || !pf.Standable(goal) {
		return nil
	}

	open := &openList{}
	seen := map[math.IVec3]*searchNode{
		start: {cell: start, f: heuristic(start, goal)},
	}
	heap.Push(open, seen[start])

	for expanded := 0; open.Len() > 0 && expanded < pf.maxNodes; expanded++ {
		cur := heap.Pop(open).(*searchNode)
		if cur.cell == goal {
			return cur.trace()
		}

		for i, dir := range lateral {
			next, cost, ok := pf.step(cur.cell, dir, i%2 == 1)
			if !ok {
				continue
			}
			g := cur.g + cost

			n, known := seen[next]
			switch {
			case !known:
				n = &searchNode{cell: next, g: g, f: g + heuristic(next, goal), parent: cur}
				seen[next] = n
				heap.Push(open, n)
			case n.slot >= 0 && g < n.g:
				n.f -= n.g - g
				n.g = g
				n.parent = cur
				heap.Fix(open, n.slot)
			}
		}
	}

	return nil
}

// step tries to move from feet cell p along dir, flat first, then up, then
// down.
func (pf *PathFinder) step(p math.IVec3, dir math.IVec2, diagonal bool) (math.IVec3, float32, bool) {
	flat := math.IVec3{X: p.X + dir.X, Y: p.Y + dir.Y, Z: p.Z}

	if diagonal {
		// Both orthogonal cells must be clear at body height.
		if !pf.free(p.X+dir.X, p.Y, p.Z) || !pf.free(p.X+dir.X, p.Y, p.Z+1) ||
			!pf.free(p.X, p.Y+dir.Y, p.Z) || !pf.free(p.X, p.Y+dir.Y, p.Z+1) {
			return p, 0, false
		}
		return flat, diagonalCost, pf.Standable(flat)
	}

	if pf.Standable(flat) {
		return flat, straightCost, true
	}

	up := math.IVec3{X: flat.X, Y: flat.Y, Z: p.Z + 1}
	if pf.free(p.X, p.Y, p.Z+2) && pf.Standable(up) {
		return up, straightCost + climbCost, true
	}

	down := math.IVec3{X: flat.X, Y: flat.Y, Z: p.Z - 1}
	if pf.Standable(down) {
		return down, straightCost, true
	}
	return p, 0, false
}

func (pf *PathFinder) solid(x, y, z int) bool {
	return pf.blocks.GetGlobalBlock(math.IVec3{X: x, Y: y, Z: z}).Solid()
}

func (pf *PathFinder) free(x, y, z int) bool {
	if z >= voxel.Height {
		return true
	}
	return !pf.solid(x, y, z)
}

// heuristic is the octile distance on the horizontal plane.
func heuristic(a, b math.IVec3) float32 {
	dx := abs(b.X - a.X)
	dy := abs(b.Y - a.Y)
	if dx < dy {
		return float32(dx)*diagonalCost + float32(dy-dx)
	}
	return float32(dy)*diagonalCost + float32(dx-dy)
}

// trace walks parents back to the start and returns the cells in travel
// order.
func (n *searchNode) trace() []math.IVec3 {
	var cells []math.IVec3
	for ; n != nil; n = n.parent {
		cells = append(cells, n.cell)
	}
	slices.Reverse(cells)
	return cells
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
