// internal/state/game_state.go
package state

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-pixel-arena/internal/app"
	"go-pixel-arena/internal/assets"
	"go-pixel-arena/internal/component"
	"go-pixel-arena/internal/config"
	"go-pixel-arena/internal/defs"
	"go-pixel-arena/internal/input"
	"go-pixel-arena/internal/ui"
)

// Keys 1-5 spend a skill point on the stat at the same position in defs.AllStats.
var skillKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5}

// Options are shared by every session started from the same process.
type Options struct {
	Tuning  config.Tuning
	Logger  *slog.Logger
	Sprites *assets.SpriteManager
}

// GameState это состояние игры: тик симуляции, HUD и панель статов.
type GameState struct {
	sm       *StateMachine
	opts     Options
	game     *app.Game
	renderer ui.Renderer
	hud      *ui.HUD
	stats    *ui.StatsPanel
	keyboard input.Source
	snap     app.Snapshot
}

func NewGameState(sm *StateMachine, opts Options) *GameState {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	gameLogic := app.NewGame(opts.Tuning, opts.Logger)

	var sprite *ebiten.Image
	if opts.Sprites != nil {
		size := int(opts.Tuning.PlayerSize)
		if opts.Sprites.Load(assets.PlayerSpriteID, size, config.PlayerColor) {
			gameLogic.State.Player.Visual = component.VisualSprite
		}
		sprite, _ = opts.Sprites.Get(assets.PlayerSpriteID)
	}

	return &GameState{
		sm:       sm,
		opts:     opts,
		game:     gameLogic,
		renderer: ui.NewWorldRenderer(sprite),
		hud:      ui.NewHUD(),
		stats:    ui.NewStatsPanel(),
		keyboard: input.KeyboardSource{},
		snap:     gameLogic.Snapshot(),
	}
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.stats.Toggle()
	}
	for i, key := range skillKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.game.SpendSkillPoint(defs.AllStats[i])
		}
	}

	g.snap = g.game.Tick(input.Sample(g.keyboard), deltaTime)

	if g.snap.GameOver {
		g.stats.Hide()
		g.sm.SetState(NewGameOverState(g.sm, g))
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.snap)
	g.hud.Draw(screen, g.snap)
	g.stats.Draw(screen, g.snap)
}

func (g *GameState) Exit() {}

// Snapshot returns the last drawn snapshot.
func (g *GameState) Snapshot() app.Snapshot {
	return g.snap
}

// restartOptions reseeds the next session so a restart is not a replay.
func (g *GameState) restartOptions() Options {
	opts := g.opts
	opts.Tuning.Seed = 0
	return opts
}
