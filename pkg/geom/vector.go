// pkg/geom/vector.go
package geom

import "math"

// Vector2 is a point or direction in world or screen space.
type Vector2 struct {
	X, Y float64
}

func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vector2) Scale(k float64) Vector2 {
	return Vector2{X: v.X * k, Y: v.Y * k}
}

// Len returns the Euclidean length of v.
func (v Vector2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns the unit vector for v and false if v has zero length.
func (v Vector2) Normalize() (Vector2, bool) {
	l := v.Len()
	if l == 0 {
		return Vector2{}, false
	}
	return Vector2{X: v.X / l, Y: v.Y / l}, true
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Vector2) float64 {
	return b.Sub(a).Len()
}
