// internal/system/wave.go
package system

import (
	"math"

	"go-pixel-arena/internal/component"
	"go-pixel-arena/internal/config"
	"go-pixel-arena/internal/defs"
	"go-pixel-arena/internal/entity"
	"go-pixel-arena/internal/utils"
	"go-pixel-arena/pkg/geom"
)

// WaveSystem размещает врагов и декоративные дороги.
type WaveSystem struct {
	state *entity.GameState
	rng   *utils.PRNGService
}

func NewWaveSystem(state *entity.GameState, rng *utils.PRNGService) *WaveSystem {
	return &WaveSystem{state: state, rng: rng}
}

// SpawnEnemies creates count enemies at uniform random positions fully inside
// the world. Overlap is allowed. HP scales with worldLevel.
func (s *WaveSystem) SpawnEnemies(count, worldLevel int) []*component.Enemy {
	t := s.state.Tuning
	hp := defs.EnemyHP(t.EnemyBaseHP, worldLevel)

	enemies := make([]*component.Enemy, 0, max(count, 0))
	for i := 0; i < count; i++ {
		enemies = append(enemies, &component.Enemy{
			ID:        s.state.NewEntity(),
			Rect:      s.randomEnemyRect(),
			Color:     config.EnemyColor,
			MaxHP:     hp,
			CurrentHP: hp,
		})
	}
	return enemies
}

// StartWave replaces the enemy set with a fresh wave for the current world level.
func (s *WaveSystem) StartWave() {
	s.state.Enemies = s.SpawnEnemies(s.state.Tuning.EnemiesPerWave, s.state.WorldLevel)
}

// RelocateEnemy moves an enemy to a new random position.
func (s *WaveSystem) RelocateEnemy(e *component.Enemy) {
	e.Rect = s.randomEnemyRect()
}

func (s *WaveSystem) randomEnemyRect() geom.Rect {
	t := s.state.Tuning
	return geom.Rect{
		X: s.rng.Float64() * (t.WorldWidth - t.EnemySize),
		Y: s.rng.Float64() * (t.WorldHeight - t.EnemySize),
		W: t.EnemySize,
		H: t.EnemySize,
	}
}

// GenerateRoads builds the cosmetic road network with a random walk per road.
func (s *WaveSystem) GenerateRoads() []component.Road {
	t := s.state.Tuning
	roads := make([]component.Road, 0, max(t.RoadCount, 0))
	for i := 0; i < t.RoadCount; i++ {
		road := component.Road{Width: s.rng.Range(t.RoadMinWidth, t.RoadMaxWidth)}

		current := geom.Vector2{
			X: s.rng.Float64() * t.WorldWidth,
			Y: s.rng.Float64() * t.WorldHeight,
		}
		segments := s.rng.IntRange(t.RoadMinSegments, t.RoadMaxSegments)
		for j := 0; j < segments; j++ {
			road.Points = append(road.Points, current)

			angle := s.rng.Float64() * 2 * math.Pi
			step := s.rng.Range(t.RoadMinStep, t.RoadMaxStep)
			current.X = utils.Clamp(current.X+math.Cos(angle)*step, 0, t.WorldWidth)
			current.Y = utils.Clamp(current.Y+math.Sin(angle)*step, 0, t.WorldHeight)
		}
		roads = append(roads, road)
	}
	return roads
}
