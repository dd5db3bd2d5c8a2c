// component/movement.go
package component

import "go-pixel-arena/pkg/geom"

// Camera is the top-left corner of the viewport in world space.
// It is derived from the player every tick.
type Camera struct {
	Position geom.Vector2
}

// WorldToScreen converts a world position into viewport coordinates.
func (c Camera) WorldToScreen(p geom.Vector2) geom.Vector2 {
	return p.Sub(c.Position)
}

// Road is a cosmetic road. Not collidable.
type Road struct {
	Points []geom.Vector2
	Width  float64
}
