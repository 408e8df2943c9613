package world

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/voxelstream/internal/game/voxel"
	"github.com/Faultbox/voxelstream/pkg/math"
)

// gridBlocks is a flat floor at z=0 with extra solid cells.
type gridBlocks map[math.IVec3]bool

func (g gridBlocks) GetGlobalBlock(p math.IVec3) voxel.BlockKind {
	if p.Z == 0 || g[p] {
		return voxel.Stone
	}
	return voxel.Air
}

// wall adds a two-high wall column at (x, y).
func (g gridBlocks) wall(x, y int) {
	g[math.IVec3{X: x, Y: y, Z: 1}] = true
	g[math.IVec3{X: x, Y: y, Z: 2}] = true
}

func cell(x, y, z int) math.IVec3 {
	return math.IVec3{X: x, Y: y, Z: z}
}

func TestPathFinder_FindPath_Simple(t *testing.T) {
	pf := NewPathFinder(gridBlocks{}, 0)

	path := pf.FindPath(cell(0, 0, 1), cell(4, 4, 1))
	if path == nil {
		t.Fatal("expected path, got nil")
	}

	if path[0] != cell(0, 0, 1) {
		t.Errorf("path should start at (0,0,1), got %v", path[0])
	}
	if last := path[len(path)-1]; last != cell(4, 4, 1) {
		t.Errorf("path should end at (4,4,1), got %v", last)
	}
	// Pure diagonal: 5 nodes
	if len(path) != 5 {
		t.Errorf("expected 5 nodes on a diagonal, got %d", len(path))
	}
}

func TestPathFinder_FindPath_WithObstacle(t *testing.T) {
	// Wall at x=2 spanning y=-3..3; the route has to go round an end.
	g := gridBlocks{}
	for y := -3; y <= 3; y++ {
		g.wall(2, y)
	}
	pf := NewPathFinder(g, 0)

	path := pf.FindPath(cell(0, 0, 1), cell(4, 0, 1))
	if path == nil {
		t.Fatal("expected path around wall, got nil")
	}

	var crossed bool
	for _, p := range path {
		if p.X != 2 {
			continue
		}
		crossed = true
		if p.Y >= -3 && p.Y <= 3 {
			t.Errorf("path goes through wall at %v", p)
		}
	}
	if !crossed {
		t.Error("path never crosses x=2")
	}
}

func TestPathFinder_DetoursEitherSide(t *testing.T) {
	// Wall at x=2 spanning y=0..3: passing south of it at y=-1 is legal.
	g := gridBlocks{}
	for y := 0; y <= 3; y++ {
		g.wall(2, y)
	}
	pf := NewPathFinder(g, 0)

	path := pf.FindPath(cell(0, 0, 1), cell(4, 0, 1))
	if path == nil {
		t.Fatal("expected path around wall, got nil")
	}
	for _, p := range path {
		if p.X == 2 && p.Y >= 0 && p.Y <= 3 {
			t.Errorf("path goes through wall at %v", p)
		}
	}
}

func TestPathFinder_NoCornerCutting(t *testing.T) {
	g := gridBlocks{}
	g.wall(1, 0)
	g.wall(0, 1)
	pf := NewPathFinder(g, 0)

	// Both orthogonal cells are walls, so the direct diagonal is blocked and
	// the path has to go around.
	path := pf.FindPath(cell(0, 0, 1), cell(1, 1, 1))
	if path == nil {
		t.Fatal("expected a path around the corner, got nil")
	}
	if len(path) <= 2 {
		t.Errorf("path cuts the corner: %v", path)
	}
}

func TestPathFinder_ClimbAndDrop(t *testing.T) {
	// A one-block step at x=2..3
	g := gridBlocks{}
	for y := -2; y <= 2; y++ {
		g[cell(2, y, 1)] = true
		g[cell(3, y, 1)] = true
	}
	pf := NewPathFinder(g, 0)

	path := pf.FindPath(cell(0, 0, 1), cell(5, 0, 1))
	if path == nil {
		t.Fatal("expected path over the step, got nil")
	}

	var climbed bool
	for i := 1; i < len(path); i++ {
		dz := path[i].Z - path[i-1].Z
		if dz > 1 || dz < -1 {
			t.Errorf("step %v -> %v changes height by %d", path[i-1], path[i], dz)
		}
		if path[i].Z == 2 {
			climbed = true
		}
	}
	if !climbed {
		t.Error("expected path to climb onto the step")
	}
}

func TestPathFinder_TooHighToClimb(t *testing.T) {
	// Ring of two-high walls around the start.
	g := gridBlocks{}
	for x := -1; x <= 1; x++ {
		for y := -1; y <= 1; y++ {
			if x != 0 || y != 0 {
				g.wall(x, y)
			}
		}
	}
	pf := NewPathFinder(g, 0)

	if path := pf.FindPath(cell(0, 0, 1), cell(3, 0, 1)); path != nil {
		t.Errorf("expected no path out of the pit, got %v", path)
	}
}

func TestPathFinder_Unstandable(t *testing.T) {
	pf := NewPathFinder(gridBlocks{}, 0)

	if pf.Standable(cell(0, 0, 0)) {
		t.Error("cell inside the floor should not be standable")
	}
	if pf.Standable(cell(0, 0, 5)) {
		t.Error("cell in mid air should not be standable")
	}
	if path := pf.FindPath(cell(0, 0, 1), cell(2, 2, 4)); path != nil {
		t.Errorf("goal in mid air should not be reachable, got %v", path)
	}
}

func TestPathFinder_NodeBudget(t *testing.T) {
	pf := NewPathFinder(gridBlocks{}, 10)

	if path := pf.FindPath(cell(0, 0, 1), cell(100, 0, 1)); path != nil {
		t.Errorf("expected search to give up, got %d nodes", len(path))
	}
}

func TestPathFollower_Steer(t *testing.T) {
	pf := NewPathFollower(NewPathFinder(gridBlocks{}, 0))

	feet := mgl32.Vec3{0.5, 0.5, 1}
	path := pf.MoveTo(feet, cell(3, 0, 1))
	if len(path) != 4 {
		t.Fatalf("expected 4 nodes, got %d", len(path))
	}
	if !pf.IsFollowingPath {
		t.Fatal("expected follower to be active")
	}

	vel, jump := pf.Steer(feet, 2)
	if !near(vel, mgl32.Vec3{2, 0, 0}, 1e-4) {
		t.Errorf("velocity = %v, want {2 0 0}", vel)
	}
	if jump {
		t.Error("flat path should not jump")
	}

	// Walk through each waypoint centre in turn.
	pf.Steer(mgl32.Vec3{1.5, 0.5, 1}, 2)
	pf.Steer(mgl32.Vec3{2.5, 0.5, 1}, 2)
	if n := len(pf.Path()); n != 1 {
		t.Fatalf("expected 1 waypoint left, got %d", n)
	}
	vel, _ = pf.Steer(mgl32.Vec3{3.5, 0.5, 1}, 2)
	if vel != (mgl32.Vec3{}) {
		t.Errorf("velocity at goal = %v, want zero", vel)
	}
	if pf.IsFollowingPath {
		t.Error("expected path to be finished")
	}
}

func TestPathFollower_JumpsOntoStep(t *testing.T) {
	g := gridBlocks{}
	g[cell(1, 0, 1)] = true
	pf := NewPathFollower(NewPathFinder(g, 0))

	feet := mgl32.Vec3{0.5, 0.5, 1}
	if path := pf.MoveTo(feet, cell(1, 0, 2)); path == nil {
		t.Fatal("expected path onto the step")
	}
	if _, jump := pf.Steer(feet, 2); !jump {
		t.Error("expected jump toward a higher waypoint")
	}
}

func TestPathFollower_ClearPath(t *testing.T) {
	pf := NewPathFollower(NewPathFinder(gridBlocks{}, 0))
	pf.MoveTo(mgl32.Vec3{0.5, 0.5, 1}, cell(2, 2, 1))

	pf.ClearPath()
	if pf.IsFollowingPath || pf.Path() != nil {
		t.Error("expected empty path after clear")
	}
}

// near compares with an absolute tolerance; mgl32's relative check fails
// whenever one side of a component is exactly zero.
func near(a, b mgl32.Vec3, eps float32) bool {
	return a.Sub(b).Len() < eps
}
