// internal/ui/player_health_indicator.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-pixel-arena/internal/config"
)

const healthBarHeight = 12

// PlayerHealthIndicator отображает здоровье игрока полосой с текстом.
type PlayerHealthIndicator struct {
	X, Y float32
}

// NewPlayerHealthIndicator создает новый индикатор здоровья.
func NewPlayerHealthIndicator(x, y float32) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y}
}

// healthRatio is the filled share of the bar, in [0, 1].
func healthRatio(health, maxHealth int) float64 {
	if maxHealth <= 0 || health <= 0 {
		return 0
	}
	if health >= maxHealth {
		return 1
	}
	return float64(health) / float64(maxHealth)
}

// healthColor turns red once health is at or below half.
func healthColor(health, maxHealth int) color.RGBA {
	if health*2 <= maxHealth {
		return config.EnemyColor
	}
	return config.HPBarFillColor
}

// Draw рисует полосу здоровья и подпись над ней.
func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, health, maxHealth int) {
	vector.DrawFilledRect(screen, i.X, i.Y, config.HealthBarWidth, healthBarHeight, config.HPBarBackColor, true)
	fill := float32(float64(config.HealthBarWidth-2*borderWidth) * healthRatio(health, maxHealth))
	if fill > 0 {
		vector.DrawFilledRect(screen, i.X+borderWidth, i.Y+borderWidth, fill, healthBarHeight-2*borderWidth,
			healthColor(health, maxHealth), true)
	}
	vector.StrokeRect(screen, i.X, i.Y, config.HealthBarWidth, healthBarHeight, borderWidth, borderColor, true)

	label := fmt.Sprintf("HP %d/%d", health, maxHealth)
	drawText(screen, DefaultFace, label, int(i.X)+config.HealthBarWidth+6, int(i.Y), config.TextLightColor)
}

// GetHeight возвращает общую высоту индикатора.
func (i *PlayerHealthIndicator) GetHeight() float32 {
	return healthBarHeight
}
