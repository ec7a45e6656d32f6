package core

import "testing"

func TestCoordAdd(t *testing.T) {
	got := C(3, 4).Add(D(-1, 2))
	if got != C(2, 6) {
		t.Errorf("Add() = %v, want (2,6)", got)
	}
}

func TestCoordNeighbors(t *testing.T) {
	n := C(5, 5).Neighbors()
	want := map[Coord]bool{
		C(5, 4): true,
		C(6, 5): true,
		C(5, 6): true,
		C(4, 5): true,
	}
	for _, c := range n {
		if !want[c] {
			t.Errorf("unexpected neighbor %v", c)
		}
		delete(want, c)
	}
	if len(want) != 0 {
		t.Errorf("missing neighbors: %v", want)
	}
}

func TestSpanAnyOrder(t *testing.T) {
	r1 := Span(C(1, 5), C(4, 2))
	r2 := Span(C(4, 2), C(1, 5))
	if r1 != r2 {
		t.Errorf("Span() should be corner-order independent: %v vs %v", r1, r2)
	}
	if r1.MinX != 1 || r1.MinY != 2 || r1.MaxX != 4 || r1.MaxY != 5 {
		t.Errorf("Span() = %v, want {1 2 4 5}", r1)
	}
}

func TestRectContains(t *testing.T) {
	r := Span(C(0, 0), C(2, 2))
	cases := []struct {
		pos  Coord
		want bool
	}{
		{C(0, 0), true},
		{C(2, 2), true},
		{C(1, 1), true},
		{C(3, 1), false},
		{C(1, -1), false},
	}
	for _, tc := range cases {
		if got := r.Contains(tc.pos); got != tc.want {
			t.Errorf("Contains(%v) = %v, want %v", tc.pos, got, tc.want)
		}
	}
}

func TestClamp(t *testing.T) {
	cases := []struct {
		val, min, max, want int
	}{
		{5, 0, 10, 5},
		{-3, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 0, 0},
	}
	for _, tc := range cases {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tc.val, tc.min, tc.max, got, tc.want)
		}
	}
}
