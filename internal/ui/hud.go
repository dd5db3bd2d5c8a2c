// internal/ui/hud.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"go-pixel-arena/internal/app"
	"go-pixel-arena/internal/config"
)

// HUD собирает все индикаторы поверх мира.
type HUD struct {
	Health  *PlayerHealthIndicator
	Level   *PlayerLevelIndicator
	Wave    *WaveIndicator
	Minimap *Minimap
}

func NewHUD() *HUD {
	m := float32(config.HUDMargin)
	return &HUD{
		Health:  NewPlayerHealthIndicator(m, m),
		Level:   NewPlayerLevelIndicator(m, m+healthBarHeight+8),
		Wave:    NewWaveIndicator(float32(config.ScreenWidth)/2, m),
		Minimap: NewMinimap(float32(config.ScreenWidth-config.MinimapWidth-config.MinimapMargin), config.MinimapMargin),
	}
}

// skillPointsLabel is empty when there is nothing to spend.
func skillPointsLabel(points int) string {
	if points <= 0 {
		return ""
	}
	return fmt.Sprintf("Skill points: %d  [C] to spend", points)
}

func (h *HUD) Draw(screen *ebiten.Image, snap app.Snapshot) {
	stats := snap.Player.Stats
	h.Health.Draw(screen, stats.CurrentHealth, stats.TotalHealth)
	h.Level.Draw(screen, snap.Level, snap.Experience, snap.XPPerLevel)
	h.Wave.Draw(screen, snap.WorldLevel)
	h.Minimap.Draw(screen, snap)

	if label := skillPointsLabel(snap.SkillPoints); label != "" {
		y := int(h.Level.Y) + xpBarHeight + 8
		drawText(screen, DefaultFace, label, int(h.Level.X), y, config.LevelUpPopupColor)
	}
}
