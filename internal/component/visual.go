// internal/component/visual.go
package component

import (
	"image/color"

	"go-pixel-arena/internal/types"
	"go-pixel-arena/pkg/geom"
)

// PopupKind separates damage numbers from level-up banners.
type PopupKind int

const (
	PopupDamage PopupKind = iota
	PopupLevelUp
)

// Popup это всплывающий текст, который поднимается и гаснет.
type Popup struct {
	Kind       PopupKind
	Text       string
	Position   geom.Vector2
	Opacity    float64
	StartTime  float64 // game clock seconds
	Lifetime   float64 // seconds
	Rise       float64 // units per tick
	IsCritical bool
}

// Particle is one fragment of an explosion. Life is counted in ticks.
type Particle struct {
	Position geom.Vector2
	Velocity geom.Vector2
	Size     float64
	Life     int
	MaxLife  int
	Color    color.RGBA
}

// Opacity fades linearly with remaining life.
func (p *Particle) Opacity() float64 {
	if p.MaxLife <= 0 || p.Life <= 0 {
		return 0
	}
	return float64(p.Life) / float64(p.MaxLife)
}

// Explosion is a burst of particles removed once all of them expire.
type Explosion struct {
	ID        types.EntityID
	Particles []Particle
}
