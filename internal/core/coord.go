// Package core provides the fundamental grid types for the puzzle engine.
// It contains no external dependencies (especially no Bubble Tea) to keep
// puzzle logic pure and testable.
package core

// Coord is an integer 2D grid coordinate.
type Coord struct {
	X, Y int
}

// C is a shorthand constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// Add returns the coordinate translated by d.
func (c Coord) Add(d Delta) Coord {
	return Coord{X: c.X + d.DX, Y: c.Y + d.DY}
}

// Neighbors returns the four orthogonally adjacent coordinates (N/E/S/W).
func (c Coord) Neighbors() [4]Coord {
	return [4]Coord{
		{X: c.X, Y: c.Y - 1},
		{X: c.X + 1, Y: c.Y},
		{X: c.X, Y: c.Y + 1},
		{X: c.X - 1, Y: c.Y},
	}
}

// Delta is an integer 2D translation.
type Delta struct {
	DX, DY int
}

// D is a shorthand constructor for Delta.
func D(dx, dy int) Delta {
	return Delta{DX: dx, DY: dy}
}

// Rect is an axis-aligned inclusive rectangle spanned by two corners.
type Rect struct {
	MinX, MinY int
	MaxX, MaxY int
}

// Span builds the rectangle spanned by two corners in any order.
func Span(a, b Coord) Rect {
	return Rect{
		MinX: Min(a.X, b.X),
		MinY: Min(a.Y, b.Y),
		MaxX: Max(a.X, b.X),
		MaxY: Max(a.Y, b.Y),
	}
}

// Contains returns true if the coordinate lies inside the rectangle,
// borders included.
func (r Rect) Contains(c Coord) bool {
	return c.X >= r.MinX && c.X <= r.MaxX && c.Y >= r.MinY && c.Y <= r.MaxY
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
