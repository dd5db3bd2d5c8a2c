// internal/component/enemy.go
package component

import (
	"image/color"

	"go-pixel-arena/internal/types"
	"go-pixel-arena/pkg/geom"
)

// Enemy представляет вражескую сущность.
// Enemies are stationary: SpeedX and SpeedY stay zero.
type Enemy struct {
	ID        types.EntityID
	Rect      geom.Rect
	Color     color.RGBA
	MaxHP     int
	CurrentHP int
	SpeedX    float64
	SpeedY    float64
}

// IsDead reports whether the enemy has no HP left.
func (e *Enemy) IsDead() bool {
	return e.CurrentHP <= 0
}

// HealthRatio returns CurrentHP/MaxHP in [0, 1].
func (e *Enemy) HealthRatio() float64 {
	if e.MaxHP <= 0 {
		return 0
	}
	r := float64(e.CurrentHP) / float64(e.MaxHP)
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}
