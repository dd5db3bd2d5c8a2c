package system

import (
	"log/slog"

	"go-pixel-arena/internal/event"
)

// EventLogger пишет значимые игровые события в структурированный лог.
type EventLogger struct {
	logger *slog.Logger
}

// NewEventLogger subscribes the logger to the events worth a log line.
// Per-shot and per-hit events are left out.
func NewEventLogger(logger *slog.Logger, eventDispatcher *event.Dispatcher) *EventLogger {
	l := &EventLogger{logger: logger}
	for _, t := range []event.EventType{event.LevelUp, event.WaveCleared, event.PlayerHit, event.SkillSpent, event.GameOver} {
		eventDispatcher.Subscribe(t, l)
	}
	return l
}

func (l *EventLogger) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.LevelUpData:
		l.logger.Info("level up", "level", data.Level, "benefit", data.Benefit)
	case event.WaveClearedData:
		l.logger.Info("wave cleared", "world_level", data.WorldLevel, "skill_points", data.SkillPoints, "enemies", data.Enemies)
	case event.PlayerHitData:
		l.logger.Debug("player hit", "damage", data.Damage, "health", data.CurrentHealth)
	case event.SkillSpentData:
		l.logger.Info("skill point spent", "stat", data.Stat, "gained", data.Gained, "skill_points", data.SkillPoints)
	case event.GameOverData:
		l.logger.Info("game over", "level", data.Level, "world_level", data.WorldLevel, "game_time", data.GameTime)
	default:
		l.logger.Debug("game event", "type", string(e.Type))
	}
}
