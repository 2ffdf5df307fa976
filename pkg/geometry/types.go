// Package geometry provides basic geometric types used throughout the application.
package geometry

// PointInt represents a 2D point with integer coordinates.
type PointInt struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns the sum of two points.
func (p PointInt) Add(other PointInt) PointInt {
	return PointInt{X: p.X + other.X, Y: p.Y + other.Y}
}

// RectInt represents a rectangle with integer coordinates.
// The right and bottom edges are exclusive.
type RectInt struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// NewRectInt creates a new RectInt.
func NewRectInt(x, y, width, height int) RectInt {
	return RectInt{X: x, Y: y, Width: width, Height: height}
}

// RectFromEdges builds a rectangle from left/top (inclusive) and
// right/bottom (exclusive) edges.
func RectFromEdges(left, top, right, bottom int) RectInt {
	if right < left {
		right = left
	}
	if bottom < top {
		bottom = top
	}
	return RectInt{X: left, Y: top, Width: right - left, Height: bottom - top}
}

// Right returns the exclusive right edge.
func (r RectInt) Right() int { return r.X + r.Width }

// Bottom returns the exclusive bottom edge.
func (r RectInt) Bottom() int { return r.Y + r.Height }

// Empty reports whether the rectangle covers no pixels.
func (r RectInt) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Area returns the number of pixels covered.
func (r RectInt) Area() int {
	if r.Empty() {
		return 0
	}
	return r.Width * r.Height
}

// Contains returns true if the point is inside the rectangle.
func (r RectInt) Contains(p PointInt) bool {
	return p.X >= r.X && p.X < r.Right() &&
		p.Y >= r.Y && p.Y < r.Bottom()
}

// Expand grows the rectangle by n pixels on every side.
func (r RectInt) Expand(n int) RectInt {
	return RectFromEdges(r.X-n, r.Y-n, r.Right()+n, r.Bottom()+n)
}

// Intersect returns the overlap of two rectangles, or the zero RectInt
// when they do not overlap.
func (r RectInt) Intersect(other RectInt) RectInt {
	left := max(r.X, other.X)
	top := max(r.Y, other.Y)
	right := min(r.Right(), other.Right())
	bottom := min(r.Bottom(), other.Bottom())
	if right <= left || bottom <= top {
		return RectInt{}
	}
	return RectFromEdges(left, top, right, bottom)
}

// Centered returns a width x height rectangle centered inside r.
// Odd leftovers go to the right/bottom side.
func (r RectInt) Centered(width, height int) RectInt {
	return RectInt{
		X:      r.X + (r.Width-width)/2,
		Y:      r.Y + (r.Height-height)/2,
		Width:  width,
		Height: height,
	}
}
