// internal/entity/ecs.go
package entity

import (
	"go-pixel-arena/internal/component"
	"go-pixel-arena/internal/config"
	"go-pixel-arena/internal/types"
	"go-pixel-arena/pkg/geom"
)

// GameState is the authoritative state of one session. Only the tick mutates
// it. Entity sets are slices so iteration order is stable.
type GameState struct {
	Tuning   config.Tuning
	GameTime float64 // seconds since start
	Tick     uint64
	NextID   types.EntityID

	Player      component.Player
	Camera      component.Camera
	Enemies     []*component.Enemy
	Projectiles []*component.Projectile
	Popups      []*component.Popup
	Explosions  []*component.Explosion
	Roads       []component.Road

	Experience  int
	Level       int
	WorldLevel  int
	SkillPoints int
	Phase       component.Phase
}

// NewGameState places the player in the middle of the world with the base
// stats from tuning. Enemies and roads are spawned by the wave system.
func NewGameState(t config.Tuning) *GameState {
	st := t.PlayerStats
	return &GameState{
		Tuning: t,
		NextID: 1,
		Player: component.Player{
			Rect: geom.Rect{
				X: t.WorldWidth / 2,
				Y: t.WorldHeight / 2,
				W: t.PlayerSize,
				H: t.PlayerSize,
			},
			Stats: component.Stats{
				TotalHealth:       st.TotalHealth,
				CurrentHealth:     st.TotalHealth,
				AttackPower:       st.AttackPower,
				AttackSpeed:       st.AttackSpeed,
				AttackRange:       st.AttackRange,
				CriticalHitChance: st.CriticalHitChance,
				CriticalHitDamage: st.CriticalHitDamage,
			},
			Speed:        t.PlayerSpeed,
			LastShotTime: component.NeverFired,
		},
		Level:      1,
		WorldLevel: 1,
		Phase:      component.PhasePlaying,
	}
}

func (gs *GameState) NewEntity() types.EntityID {
	id := gs.NextID
	gs.NextID++
	return id
}

// WorldBounds returns the world rectangle.
func (gs *GameState) WorldBounds() geom.Rect {
	return geom.Rect{W: gs.Tuning.WorldWidth, H: gs.Tuning.WorldHeight}
}

// IsGameOver reports whether the session has ended.
func (gs *GameState) IsGameOver() bool {
	return gs.Phase == component.PhaseGameOver
}

// RemoveEnemy drops the enemy with the given id and reports whether it was present.
func (gs *GameState) RemoveEnemy(id types.EntityID) bool {
	for i, e := range gs.Enemies {
		if e.ID == id {
			gs.Enemies = append(gs.Enemies[:i], gs.Enemies[i+1:]...)
			return true
		}
	}
	return false
}
