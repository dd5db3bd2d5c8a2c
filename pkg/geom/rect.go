// pkg/geom/rect.go
package geom

// Rect is an axis-aligned rectangle, origin at the top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// Center returns the middle point of the rectangle.
func (r Rect) Center() Vector2 {
	return Vector2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Intersects reports whether a and b overlap. Rectangles that only share an
// edge do not intersect.
func Intersects(a, b Rect) bool {
	return a.X < b.X+b.W &&
		a.X+a.W > b.X &&
		a.Y < b.Y+b.H &&
		a.Y+a.H > b.Y
}

// Contains reports whether p lies inside r, boundary included.
func (r Rect) Contains(p Vector2) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}
