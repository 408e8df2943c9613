package world

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/voxelstream/internal/game/voxel"
	"github.com/Faultbox/voxelstream/pkg/math"
)

func TestIndexGetOrCreate(t *testing.T) {
	idx := NewIndex()
	coord := math.IVec2{X: -2, Y: 7}

	assert.Nil(t, idx.Get(coord))

	c, created := idx.GetOrCreate(coord)
	require.True(t, created)
	assert.Equal(t, coord, c.Coord())
	assert.Equal(t, voxel.StateUnloaded, c.State())

	again, created := idx.GetOrCreate(coord)
	assert.False(t, created)
	assert.Same(t, c, again)
	assert.Equal(t, 1, idx.Len())
}

func TestIndexRemoveOnlySameColumn(t *testing.T) {
	idx := NewIndex()
	c, _ := idx.GetOrCreate(math.IVec2{})

	assert.False(t, idx.Remove(voxel.NewColumn(math.IVec2{})), "stale pointer must not remove the live entry")
	assert.Equal(t, 1, idx.Len())

	assert.True(t, idx.Remove(c))
	assert.False(t, idx.Remove(c))
	assert.Zero(t, idx.Len())
}

func TestIndexNeighbors(t *testing.T) {
	idx := NewIndex()
	east, _ := idx.GetOrCreate(math.IVec2{X: 1})
	south, _ := idx.GetOrCreate(math.IVec2{Y: -1})

	nb := idx.Neighbors(math.IVec2{})
	assert.Same(t, east, nb[voxel.East])
	assert.Same(t, south, nb[voxel.South])
	assert.Nil(t, nb[voxel.North])
	assert.Nil(t, nb[voxel.West])
	assert.Equal(t, voxel.North.Bit()|voxel.West.Bit(), nb.Missing())
}

func TestIndexSnapshotIsCopy(t *testing.T) {
	idx := NewIndex()
	for i := range 10 {
		idx.GetOrCreate(math.IVec2{X: i})
	}

	snap := idx.Snapshot()
	require.Len(t, snap, 10)
	for _, c := range snap {
		idx.Remove(c)
	}
	assert.Len(t, snap, 10)
	assert.Zero(t, idx.Len())
}

func TestIndexConcurrentCreate(t *testing.T) {
	idx := NewIndex()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
	)
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 50 {
				if _, ok := idx.GetOrCreate(math.IVec2{X: i % 10}); ok {
					mu.Lock()
					created++
					mu.Unlock()
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, created)
	assert.Equal(t, 10, idx.Len())
}

func TestQueue(t *testing.T) {
	var q Queue[int]

	_, ok := q.Pop()
	assert.False(t, ok)

	for i := range 5 {
		q.Push(i)
	}
	assert.Equal(t, 5, q.Len())

	v, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, 0, v)

	assert.Equal(t, []int{1, 2, 3, 4}, q.Drain())
	assert.Zero(t, q.Len())
	assert.Empty(t, q.Drain())
}

func TestSpiral(t *testing.T) {
	assert.Nil(t, Spiral(0))

	for side := 1; side <= 9; side++ {
		offsets := Spiral(side)
		require.Len(t, offsets, side*side)
		assert.Equal(t, math.IVec2{}, offsets[0])

		lo, hi := -(side-1)/2, side/2
		seen := make(map[math.IVec2]bool, len(offsets))
		for _, o := range offsets {
			assert.False(t, seen[o], "side %d visits %v twice", side, o)
			seen[o] = true
			assert.True(t, o.X >= lo && o.X <= hi && o.Y >= lo && o.Y <= hi,
				"side %d offset %v outside [%d, %d]", side, o, lo, hi)
		}
	}
}

func TestSpiralOrder(t *testing.T) {
	want := []math.IVec2{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: -1, Y: 1},
		{X: -1, Y: 0}, {X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
	}
	assert.Equal(t, want, Spiral(3))
}

func TestSpiralNearestFirst(t *testing.T) {
	// Each ring is finished before the next begins.
	offsets := Spiral(7)
	ring := 0
	for _, o := range offsets {
		r := o.Chebyshev(math.IVec2{})
		require.GreaterOrEqual(t, r, ring)
		ring = r
	}
}

func TestInRange(t *testing.T) {
	count := func(r int) int {
		n := 0
		for _, o := range Spiral(2*r + 1) {
			if inRange(o, r) {
				n++
			}
		}
		return n
	}

	assert.Equal(t, 9, count(1), "radius 1 is the 3x3 core")
	assert.Equal(t, 13, count(2))
	assert.Equal(t, 29, count(3))
}
