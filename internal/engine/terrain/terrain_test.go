package terrain

import (
	"sync"
	"testing"

	"github.com/Faultbox/voxelstream/internal/game/voxel"
	"github.com/Faultbox/voxelstream/pkg/math"
)

func TestNew(t *testing.T) {
	tests := []struct {
		kind    string
		wantErr bool
	}{
		{"", false},
		{KindNoise, false},
		{KindFlat, false},
		{KindSlope, false},
		{"caves", true},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			s, err := New(tt.kind, 7)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("New(%q) expected error", tt.kind)
				}
				return
			}
			if err != nil {
				t.Fatalf("New(%q) error: %v", tt.kind, err)
			}
			if s == nil {
				t.Fatalf("New(%q) returned nil sampler", tt.kind)
			}
		})
	}
}

func TestLayers(t *testing.T) {
	l := Layers{SeaLevel: 62, DirtDepth: 3}

	tests := []struct {
		name    string
		z       int
		surface int
		want    voxel.BlockKind
	}{
		{"above surface", 71, 70, voxel.Air},
		{"bedrock floor", 0, 70, voxel.Bedrock},
		{"deep stone", 10, 70, voxel.Stone},
		{"top block", 70, 70, voxel.Grass},
		{"under top", 68, 70, voxel.Dirt},
		{"beach top", 50, 50, voxel.Sand},
		{"beach under", 48, 50, voxel.Sand},
		{"beach stone", 40, 50, voxel.Stone},
		{"empty cell", 0, -1, voxel.Air},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.Layer(tt.z, tt.surface); got != tt.want {
				t.Errorf("Layer(%d, %d) = %v, want %v", tt.z, tt.surface, got, tt.want)
			}
		})
	}
}

func TestNoiseDeterministic(t *testing.T) {
	a := NewNoise(1337, DefaultNoiseParams())
	b := NewNoise(1337, DefaultNoiseParams())

	var pa, pb voxel.Profile
	a.Sample(-3, 8, &pa)
	b.Sample(-3, 8, &pb)
	if pa != pb {
		t.Fatal("same seed produced different profiles")
	}

	for x := range voxel.Size {
		for y := range voxel.Size {
			h := pa.Surface[x][y]
			if h < 0 || h >= voxel.Height {
				t.Fatalf("surface[%d][%d] = %d out of range", x, y, h)
			}
		}
	}
}

func TestNoiseSeamless(t *testing.T) {
	n := NewNoise(42, DefaultNoiseParams())

	var left, right voxel.Profile
	n.Sample(0, 0, &left)
	n.Sample(1, 0, &right)

	// Adjacent columns sample the same continuous field.
	for y := range voxel.Size {
		if got, want := right.Surface[0][y], n.Height(voxel.Size, y); got != want {
			t.Errorf("right[0][%d] = %d, want %d", y, got, want)
		}
		if got, want := left.Surface[voxel.Size-1][y], n.Height(voxel.Size-1, y); got != want {
			t.Errorf("left[15][%d] = %d, want %d", y, got, want)
		}
	}
}

func TestNoiseConcurrent(t *testing.T) {
	n := NewNoise(9, DefaultNoiseParams())

	var want voxel.Profile
	n.Sample(5, 5, &want)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var p voxel.Profile
			n.Sample(5, 5, &p)
			if p != want {
				t.Error("concurrent sample differs")
			}
		}()
	}
	wg.Wait()
}

func TestFlatAndSlope(t *testing.T) {
	f := NewFlat(300)
	if f.Surface != voxel.Height-1 {
		t.Errorf("NewFlat(300).Surface = %d, want clamp to %d", f.Surface, voxel.Height-1)
	}

	var (
		s Slope
		p voxel.Profile
	)
	s.Sample(4, -9, &p)
	if p.Surface[0][0] != 10 || p.Surface[15][15] != 40 {
		t.Errorf("slope corners = %d, %d, want 10, 40", p.Surface[0][0], p.Surface[15][15])
	}
	if s.Layer(10, 10) != voxel.Stone || s.Layer(11, 10) != voxel.Air {
		t.Error("slope layer should be stone up to the surface")
	}
}

func TestGenerateColumn(t *testing.T) {
	c := voxel.NewColumn(math.IVec2{X: 2, Y: 3})
	if !c.Generate(NewFlat(64)) {
		t.Fatal("Generate returned false")
	}
	if got := c.Get(0, 0, 64); got != voxel.Grass {
		t.Errorf("top = %v, want grass", got)
	}
	if got := c.Get(0, 0, 65); got != voxel.Air {
		t.Errorf("above top = %v, want air", got)
	}
	if got := c.Get(7, 7, 0); got != voxel.Bedrock {
		t.Errorf("floor = %v, want bedrock", got)
	}
}
