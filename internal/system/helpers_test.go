package system

import (
	"testing"

	"go-pixel-arena/internal/component"
	"go-pixel-arena/internal/config"
	"go-pixel-arena/internal/entity"
	"go-pixel-arena/internal/event"
	"go-pixel-arena/internal/utils"
	"go-pixel-arena/pkg/geom"
)

const testSeed = 12345

// testWorld wires every system around one state, the way app.Game does.
type testWorld struct {
	state       *entity.GameState
	rng         *utils.PRNGService
	dispatcher  *event.Dispatcher
	effects     *VisualEffectSystem
	waves       *WaveSystem
	movement    *MovementSystem
	combat      *CombatSystem
	projectiles *ProjectileSystem
	collisions  *CollisionSystem
	progression *ProgressionSystem
	phases      *StateSystem
	events      []event.Event
}

func newTestWorld(t *testing.T, tweak func(*config.Tuning)) *testWorld {
	t.Helper()
	tuning := config.DefaultTuning()
	tuning.Seed = testSeed
	if tweak != nil {
		tweak(&tuning)
	}

	w := &testWorld{
		state:      entity.NewGameState(tuning),
		rng:        utils.NewPRNGService(tuning.Seed),
		dispatcher: event.NewDispatcher(),
	}
	w.effects = NewVisualEffectSystem(w.state, w.rng)
	w.waves = NewWaveSystem(w.state, w.rng)
	w.movement = NewMovementSystem(w.state)
	w.combat = NewCombatSystem(w.state, w.rng, w.dispatcher)
	w.projectiles = NewProjectileSystem(w.state)
	w.collisions = NewCollisionSystem(w.state, w.dispatcher, w.effects, w.waves)
	w.progression = NewProgressionSystem(w.state, w.rng, w.dispatcher, w.effects, w.waves)
	w.phases = NewStateSystem(w.state, w.dispatcher)

	record := event.ListenerFunc(func(e event.Event) { w.events = append(w.events, e) })
	for _, typ := range []event.EventType{
		event.ShotFired, event.EnemyHit, event.EnemyKilled, event.LevelUp,
		event.WaveCleared, event.PlayerHit, event.SkillSpent, event.GameOver,
	} {
		w.dispatcher.Subscribe(typ, record)
	}
	return w
}

func (w *testWorld) count(typ event.EventType) int {
	n := 0
	for _, e := range w.events {
		if e.Type == typ {
			n++
		}
	}
	return n
}

// placePlayer puts the player's top-left corner at (x, y).
func (w *testWorld) placePlayer(x, y float64) {
	w.state.Player.Rect.X = x
	w.state.Player.Rect.Y = y
}

// enemyAt adds an enemy whose centre is at (cx, cy).
func (w *testWorld) enemyAt(cx, cy float64, hp int) *component.Enemy {
	size := w.state.Tuning.EnemySize
	e := &component.Enemy{
		ID:        w.state.NewEntity(),
		Rect:      geom.Rect{X: cx - size/2, Y: cy - size/2, W: size, H: size},
		Color:     config.EnemyColor,
		MaxHP:     hp,
		CurrentHP: hp,
	}
	w.state.Enemies = append(w.state.Enemies, e)
	return e
}

// bulletOn adds a motionless bullet sitting on the enemy's centre.
func (w *testWorld) bulletOn(e *component.Enemy, damage int) *component.Projectile {
	c := e.Rect.Center()
	p := &component.Projectile{
		ID:     w.state.NewEntity(),
		Rect:   geom.Rect{X: c.X - 1, Y: c.Y - 1, W: 2, H: 2},
		Damage: damage,
	}
	w.state.Projectiles = append(w.state.Projectiles, p)
	return p
}
