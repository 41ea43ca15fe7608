package gamekit

// Rect is an axis-aligned rectangle given by its top-left corner and its
// size. A Rect with negative width or height is invalid.
type Rect[T Number] struct {
	X, Y, W, H T
}

// RectF is a Rect of float64.
type RectF = Rect[float64]

// RectI is a Rect of int.
type RectI = Rect[int]

// NewRect creates a rectangle from a position and a size.
func NewRect[T Number](x, y, w, h T) Rect[T] {
	return Rect[T]{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect[T]) Right() T {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect[T]) Bottom() T {
	return r.Y + r.H
}

// Center returns the coordinates of the center point.
func (r Rect[T]) Center() (T, T) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Empty reports whether the rectangle has no area.
func (r Rect[T]) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether the point (px, py) lies inside the rectangle.
// The top and left edges are inclusive, the bottom and right edges are
// exclusive.
func (r Rect[T]) Contains(px, py T) bool {
	return r.X <= px && px < r.Right() && r.Y <= py && py < r.Bottom()
}

// Intersects reports whether two rectangles overlap.
func (r Rect[T]) Intersects(o Rect[T]) bool {
	if r.X >= o.Right() || o.X >= r.Right() {
		return false
	}
	if r.Y >= o.Bottom() || o.Y >= r.Bottom() {
		return false
	}
	return true
}

// RangeX returns the horizontal extent as a Range.
func (r Rect[T]) RangeX() Range[T] {
	return Range[T]{Lo: r.X, Hi: r.Right()}
}

// RangeY returns the vertical extent as a Range.
func (r Rect[T]) RangeY() Range[T] {
	return Range[T]{Lo: r.Y, Hi: r.Bottom()}
}
