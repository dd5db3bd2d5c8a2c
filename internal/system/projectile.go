// internal/system/projectile.go
package system

import (
	"go-pixel-arena/internal/entity"
)

// ProjectileSystem управляет движением снарядов.
type ProjectileSystem struct {
	state *entity.GameState
}

func NewProjectileSystem(state *entity.GameState) *ProjectileSystem {
	return &ProjectileSystem{state: state}
}

// Update moves every projectile one tick along its direction and drops the
// ones that left the world. A projectile exactly on the boundary survives.
func (s *ProjectileSystem) Update() {
	w, h := s.state.Tuning.WorldWidth, s.state.Tuning.WorldHeight

	kept := s.state.Projectiles[:0]
	for _, proj := range s.state.Projectiles {
		proj.Rect.X += proj.Direction.X * proj.Speed
		proj.Rect.Y += proj.Direction.Y * proj.Speed

		if proj.Rect.X < 0 || proj.Rect.X > w || proj.Rect.Y < 0 || proj.Rect.Y > h {
			continue
		}
		kept = append(kept, proj)
	}
	clearTail(s.state.Projectiles, len(kept))
	s.state.Projectiles = kept
}
