// Package core provides fundamental types and utilities shared by the game
// and its front ends. It contains no external dependencies (especially no
// Bubble Tea or ebiten) to keep game logic pure and testable.
package core

// Rect represents an axis-aligned bounding box used for collision detection.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
// Edges that merely touch do not count as an overlap.
func (r Rect) Intersects(other Rect) bool {
	// No overlap if one rect is completely to the left, right, above, or below
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Scale maps the rectangle from a logical field of fieldW x fieldH into a
// grid of gridW x gridH cells. Non-empty rects always cover at least one cell.
func (r Rect) Scale(fieldW, fieldH, gridW, gridH int) Rect {
	if fieldW <= 0 || fieldH <= 0 {
		return Rect{}
	}
	x := floorDiv(r.X*gridW, fieldW)
	y := floorDiv(r.Y*gridH, fieldH)
	right := floorDiv(r.Right()*gridW+fieldW-1, fieldW)
	bottom := floorDiv(r.Bottom()*gridH+fieldH-1, fieldH)
	return Rect{X: x, Y: y, W: Max(right-x, 1), H: Max(bottom-y, 1)}
}

// floorDiv divides rounding towards negative infinity, so shapes partly
// above the field keep their size when scaled.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
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
