// internal/app/game.go
package app

import (
	"log/slog"

	"github.com/google/uuid"

	"go-pixel-arena/internal/config"
	"go-pixel-arena/internal/defs"
	"go-pixel-arena/internal/entity"
	"go-pixel-arena/internal/event"
	"go-pixel-arena/internal/input"
	"go-pixel-arena/internal/system"
	"go-pixel-arena/internal/utils"
)

// Game holds the session state and the systems that advance it.
type Game struct {
	State              *entity.GameState
	EventDispatcher    *event.Dispatcher
	Rng                *utils.PRNGService
	RunID              string
	MovementSystem     *system.MovementSystem
	CombatSystem       *system.CombatSystem
	ProjectileSystem   *system.ProjectileSystem
	CollisionSystem    *system.CollisionSystem
	WaveSystem         *system.WaveSystem
	ProgressionSystem  *system.ProgressionSystem
	VisualEffectSystem *system.VisualEffectSystem
	StateSystem        *system.StateSystem

	logger *slog.Logger
}

// NewGame initializes a new session: roads, the first wave and the camera.
// A nil logger uses slog.Default.
func NewGame(tuning config.Tuning, logger *slog.Logger) *Game {
	if logger == nil {
		logger = slog.Default()
	}
	runID := uuid.NewString()
	logger = logger.With("run_id", runID)

	state := entity.NewGameState(tuning)
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(tuning.Seed)

	g := &Game{
		State:            state,
		EventDispatcher:  eventDispatcher,
		Rng:              rng,
		RunID:            runID,
		MovementSystem:   system.NewMovementSystem(state),
		CombatSystem:     system.NewCombatSystem(state, rng, eventDispatcher),
		ProjectileSystem: system.NewProjectileSystem(state),
		WaveSystem:       system.NewWaveSystem(state, rng),
		StateSystem:      system.NewStateSystem(state, eventDispatcher),
		logger:           logger,
	}
	g.VisualEffectSystem = system.NewVisualEffectSystem(state, rng)
	g.CollisionSystem = system.NewCollisionSystem(state, eventDispatcher, g.VisualEffectSystem, g.WaveSystem)
	g.ProgressionSystem = system.NewProgressionSystem(state, rng, eventDispatcher, g.VisualEffectSystem, g.WaveSystem)
	system.NewEventLogger(logger, eventDispatcher)

	state.Roads = g.WaveSystem.GenerateRoads()
	g.WaveSystem.StartWave()
	g.MovementSystem.UpdateCamera()

	logger.Info("game started",
		"seed", rng.Seed(),
		"enemies", len(state.Enemies),
		"world", [2]float64{tuning.WorldWidth, tuning.WorldHeight},
		"collision_mode", string(tuning.CollisionMode))
	return g
}

// Tick advances the simulation by one frame and returns the post-tick
// snapshot. deltaTime is in seconds and only drives the game clock
// (attack cooldown, popup fade); movement is per tick. A finished game
// is not advanced.
func (g *Game) Tick(in input.State, deltaTime float64) Snapshot {
	if g.State.IsGameOver() {
		return g.Snapshot()
	}
	if deltaTime < 0 {
		deltaTime = 0
	}
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	g.State.GameTime += deltaTime
	g.State.Tick++

	g.MovementSystem.Update(in)
	g.CombatSystem.Update()
	g.MovementSystem.UpdateEnemies()
	g.ProjectileSystem.Update()

	removed := g.CollisionSystem.ResolveBulletHits()
	removed += g.CollisionSystem.ResolvePlayerContacts()
	if removed > 0 && len(g.State.Enemies) == 0 {
		g.ProgressionSystem.AdvanceWorldLevel()
	}

	g.StateSystem.Update()
	g.VisualEffectSystem.Update()

	return g.Snapshot()
}

// SpendSkillPoint doubles the gained value of stat if a skill point is available.
func (g *Game) SpendSkillPoint(stat defs.Stat) bool {
	if g.State.IsGameOver() {
		return false
	}
	spent := g.ProgressionSystem.SpendSkillPoint(stat)
	if !spent {
		g.logger.Debug("skill point not spent", "stat", stat.String(), "skill_points", g.State.SkillPoints)
	}
	return spent
}

// IsGameOver reports whether the player has died.
func (g *Game) IsGameOver() bool {
	return g.State.IsGameOver()
}

// GetGameTime returns seconds of simulated time.
func (g *Game) GetGameTime() float64 {
	return g.State.GameTime
}
