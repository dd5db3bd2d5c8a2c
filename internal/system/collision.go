// internal/system/collision.go
package system

import (
	"go-pixel-arena/internal/config"
	"go-pixel-arena/internal/entity"
	"go-pixel-arena/internal/event"
	"go-pixel-arena/pkg/geom"
)

// CollisionSystem разрешает столкновения снарядов и игрока с врагами.
type CollisionSystem struct {
	state           *entity.GameState
	eventDispatcher *event.Dispatcher
	effects         *VisualEffectSystem
	waves           *WaveSystem
}

func NewCollisionSystem(state *entity.GameState, eventDispatcher *event.Dispatcher,
	effects *VisualEffectSystem, waves *WaveSystem) *CollisionSystem {
	return &CollisionSystem{
		state:           state,
		eventDispatcher: eventDispatcher,
		effects:         effects,
		waves:           waves,
	}
}

// ResolveBulletHits consumes every bullet that overlaps an enemy. A bullet
// hits only the first enemy it overlaps. Returns how many enemies died.
func (s *CollisionSystem) ResolveBulletHits() int {
	killed := 0

	kept := s.state.Projectiles[:0]
	for _, proj := range s.state.Projectiles {
		hit := false
		for _, enemy := range s.state.Enemies {
			if !geom.Intersects(proj.Rect, enemy.Rect) {
				continue
			}
			hit = true

			enemy.CurrentHP -= proj.Damage
			if enemy.CurrentHP < 0 {
				enemy.CurrentHP = 0
			}
			s.effects.ShowDamagePopup(proj.Damage, enemy.Rect.Center(), proj.IsCritical)
			s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyHit, Data: enemy.ID})

			if enemy.IsDead() {
				s.state.RemoveEnemy(enemy.ID)
				killed++
				s.eventDispatcher.Dispatch(event.Event{
					Type: event.EnemyKilled,
					Data: event.EnemyKilledData{EnemyID: enemy.ID, WorldLevel: s.state.WorldLevel},
				})
			}
			break
		}
		if !hit {
			kept = append(kept, proj)
		}
	}
	clearTail(s.state.Projectiles, len(kept))
	s.state.Projectiles = kept

	return killed
}

// ResolvePlayerContacts handles enemies touching the player according to the
// collision mode. Returns how many enemies were removed.
func (s *CollisionSystem) ResolvePlayerContacts() int {
	p := &s.state.Player
	removed := 0

	kept := s.state.Enemies[:0]
	for _, enemy := range s.state.Enemies {
		if !geom.Intersects(p.Rect, enemy.Rect) {
			kept = append(kept, enemy)
			continue
		}

		switch s.state.Tuning.CollisionMode {
		case config.CollisionRelocate:
			s.waves.RelocateEnemy(enemy)
			kept = append(kept, enemy)
		default:
			p.Stats.TakeDamage(enemy.MaxHP)
			s.effects.SpawnExplosion(enemy.Rect.Center())
			removed++
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.PlayerHit,
				Data: event.PlayerHitData{Damage: enemy.MaxHP, CurrentHealth: p.Stats.CurrentHealth},
			})
		}
	}
	clearTail(s.state.Enemies, len(kept))
	s.state.Enemies = kept

	return removed
}
