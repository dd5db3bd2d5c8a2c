// internal/component/projectile.go
package component

import (
	"image/color"

	"go-pixel-arena/internal/types"
	"go-pixel-arena/pkg/geom"
)

// Projectile представляет летящий снаряд.
type Projectile struct {
	ID         types.EntityID
	Rect       geom.Rect
	Direction  geom.Vector2 // unit vector
	Speed      float64      // units per tick
	Damage     int
	IsCritical bool
	Color      color.RGBA
}
