package math

import (
	"testing"
)

func TestIVec2Add(t *testing.T) {
	a := IVec2{1, 2}
	b := IVec2{3, -4}
	got := a.Add(b)
	want := IVec2{4, -2}
	if got != want {
		t.Errorf("IVec2.Add() = %v, want %v", got, want)
	}
}

func TestIVec2Length(t *testing.T) {
	v := IVec2{3, 4}
	if got := v.Length(); got != 5 {
		t.Errorf("IVec2.Length() = %v, want 5", got)
	}
	if got := v.LengthSq(); got != 25 {
		t.Errorf("IVec2.LengthSq() = %v, want 25", got)
	}
}

func TestIVec2Chebyshev(t *testing.T) {
	a := IVec2{-1, 1}
	if got := a.Chebyshev(IVec2{}); got != 1 {
		t.Errorf("Chebyshev() = %d, want 1", got)
	}
	if got := (IVec2{5, -2}).Chebyshev(IVec2{1, 1}); got != 4 {
		t.Errorf("Chebyshev() = %d, want 4", got)
	}
}

func TestFloorDiv(t *testing.T) {
	tests := []struct {
		a, b, want int
	}{
		{0, 16, 0},
		{15, 16, 0},
		{16, 16, 1},
		{-1, 16, -1},
		{-16, 16, -1},
		{-17, 16, -2},
		{33, 16, 2},
	}
	for _, tt := range tests {
		if got := FloorDiv(tt.a, tt.b); got != tt.want {
			t.Errorf("FloorDiv(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestFloorMod(t *testing.T) {
	tests := []struct {
		a, b, want int
	}{
		{0, 16, 0},
		{15, 16, 15},
		{16, 16, 0},
		{-1, 16, 15},
		{-16, 16, 0},
		{-17, 16, 15},
	}
	for _, tt := range tests {
		if got := FloorMod(tt.a, tt.b); got != tt.want {
			t.Errorf("FloorMod(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestSplitWorld(t *testing.T) {
	cell, local := SplitWorld(IVec3{-1, 5, 10}, 16)
	if cell != (IVec2{-1, 0}) {
		t.Errorf("cell = %v, want {-1 0}", cell)
	}
	if local != (IVec3{15, 5, 10}) {
		t.Errorf("local = %v, want {15 5 10}", local)
	}

	// Recombining must give back the original coordinate.
	for x := -40; x <= 40; x += 7 {
		for y := -40; y <= 40; y += 5 {
			p := IVec3{x, y, 3}
			c, l := SplitWorld(p, 16)
			if c.X*16+l.X != x || c.Y*16+l.Y != y {
				t.Fatalf("SplitWorld(%v) = %v, %v does not recombine", p, c, l)
			}
		}
	}
}

func TestFloor(t *testing.T) {
	if got := Floor(-0.5); got != -1 {
		t.Errorf("Floor(-0.5) = %d, want -1", got)
	}
	if got := Floor(15.99); got != 15 {
		t.Errorf("Floor(15.99) = %d, want 15", got)
	}
}

func TestCeilAndCell(t *testing.T) {
	if got := Ceil(-0.5); got != 0 {
		t.Errorf("Ceil(-0.5) = %d, want 0", got)
	}
	if got := Ceil(2.001); got != 3 {
		t.Errorf("Ceil(2.001) = %d, want 3", got)
	}
	if got := Cell(-0.1, 3.7, 255.5); got != (IVec3{-1, 3, 255}) {
		t.Errorf("Cell = %v, want {-1 3 255}", got)
	}
}
