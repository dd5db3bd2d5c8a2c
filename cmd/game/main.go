// cmd/game/main.go
package main

import (
	"errors"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-pixel-arena/internal/assets"
	"go-pixel-arena/internal/config"
	"go-pixel-arena/internal/state"
	"go-pixel-arena/internal/utils"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// logTuningError reports why defaults are in use. A missing file is the
// normal case and is not worth a warning.
func logTuningError(logger *slog.Logger, path string, err error) {
	switch {
	case err == nil:
	case errors.Is(err, os.ErrNotExist):
		logger.Info("no tuning file, using defaults", "path", path)
	default:
		logger.Warn("using default tuning", "path", path, "err", err)
	}
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(utils.GetEnvDefault("PIXEL_ARENA_LOG_LEVEL", "info")),
	}))
	slog.SetDefault(logger)

	configPath := utils.GetEnvDefault("PIXEL_ARENA_CONFIG", "config.yaml")
	tuning, err := config.LoadTuning(configPath)
	logTuningError(logger, configPath, err)

	sprites := assets.NewSpriteManager(utils.GetEnvDefault("PIXEL_ARENA_SPRITES", "assets/sprites"), logger)
	defer sprites.Cleanup()

	sm := state.NewStateMachine()
	sm.SetState(state.NewGameState(sm, state.Options{
		Tuning:  tuning,
		Logger:  logger,
		Sprites: sprites,
	}))

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
