package strata

import "math"

// Point represents a 2D position in logical coordinates.
type Point struct {
	X, Y float32
}

// Pt is a convenience function to create a Point.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Add returns the point displaced by a vector.
func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Vector {
	return Vector{X: p.X - q.X, Y: p.Y - q.Y}
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float32 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return float32(math.Sqrt(float64(dx*dx + dy*dy)))
}

// Vector represents a 2D displacement or direction.
// Unlike a Point, a Vector is not affected by translation.
type Vector struct {
	X, Y float32
}

// Vec is a convenience function to create a Vector.
func Vec(x, y float32) Vector {
	return Vector{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vector) Add(w Vector) Vector {
	return Vector{X: v.X + w.X, Y: v.Y + w.Y}
}

// Mul returns the vector scaled by s.
func (v Vector) Mul(s float32) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// Size represents 2D dimensions.
type Size struct {
	Width, Height float32
}

// SizeInfinity is the size with unbounded dimensions. Text runs use it
// when their bounds should not constrain layout.
var SizeInfinity = Size{
	Width:  float32(math.Inf(1)),
	Height: float32(math.Inf(1)),
}

// IsEmpty returns true if the size has no area.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Rectangle represents an axis-aligned rectangle given by its top-left
// corner and its extent.
type Rectangle struct {
	X, Y          float32
	Width, Height float32
}

// NewRectangle creates a Rectangle from a top-left position and a size.
func NewRectangle(position Point, size Size) Rectangle {
	return Rectangle{
		X:      position.X,
		Y:      position.Y,
		Width:  size.Width,
		Height: size.Height,
	}
}

// RectWithSize creates a Rectangle of the given size anchored at the origin.
func RectWithSize(size Size) Rectangle {
	return Rectangle{Width: size.Width, Height: size.Height}
}

// Position returns the top-left corner of the rectangle.
func (r Rectangle) Position() Point {
	return Point{X: r.X, Y: r.Y}
}

// Size returns the extent of the rectangle.
func (r Rectangle) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Right returns the right edge x-coordinate.
func (r Rectangle) Right() float32 {
	return r.X + r.Width
}

// Bottom returns the bottom edge y-coordinate.
func (r Rectangle) Bottom() float32 {
	return r.Y + r.Height
}

// IsEmpty returns true if the rectangle has no area.
func (r Rectangle) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains returns true if the point lies inside the rectangle.
func (r Rectangle) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Intersects returns true if two rectangles overlap with non-zero area.
func (r Rectangle) Intersects(other Rectangle) bool {
	_, ok := r.Intersection(other)
	return ok
}

// Intersection returns the overlapping region of two rectangles.
// The second return value is false when the rectangles do not overlap;
// callers treat that as "nothing visible" and prune, never as an error.
func (r Rectangle) Intersection(other Rectangle) (Rectangle, bool) {
	x0 := max32(r.X, other.X)
	y0 := max32(r.Y, other.Y)
	x1 := min32(r.Right(), other.Right())
	y1 := min32(r.Bottom(), other.Bottom())

	if x1 <= x0 || y1 <= y0 {
		return Rectangle{}, false
	}

	return Rectangle{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}, true
}

// Union returns the smallest rectangle containing both r and other.
func (r Rectangle) Union(other Rectangle) Rectangle {
	x0 := min32(r.X, other.X)
	y0 := min32(r.Y, other.Y)
	x1 := max32(r.Right(), other.Right())
	y1 := max32(r.Bottom(), other.Bottom())

	return Rectangle{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Add returns the rectangle displaced by a vector.
func (r Rectangle) Add(v Vector) Rectangle {
	return Rectangle{
		X:      r.X + v.X,
		Y:      r.Y + v.Y,
		Width:  r.Width,
		Height: r.Height,
	}
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
