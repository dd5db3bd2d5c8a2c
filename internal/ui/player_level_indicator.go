// internal/ui/player_level_indicator.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-pixel-arena/internal/config"
)

// PlayerLevelIndicator отображает уровень и опыт игрока.
type PlayerLevelIndicator struct {
	X, Y float32
}

const (
	xpBarWidth  = config.HealthBarWidth
	xpBarHeight = 12
	borderWidth = 1
)

var borderColor = color.White

// NewPlayerLevelIndicator создает новый индикатор уровня.
func NewPlayerLevelIndicator(x, y float32) *PlayerLevelIndicator {
	return &PlayerLevelIndicator{X: x, Y: y}
}

// xpFill is the filled share of the experience bar.
func xpFill(currentXP, xpToNext int) float64 {
	if xpToNext <= 0 || currentXP <= 0 {
		return 0
	}
	return min(float64(currentXP)/float64(xpToNext), 1)
}

// Draw отрисовывает полосу опыта и номер уровня.
func (i *PlayerLevelIndicator) Draw(screen *ebiten.Image, level, currentXP, xpToNext int) {
	// 1. Обводка полосы опыта
	vector.StrokeRect(screen, i.X, i.Y, xpBarWidth, xpBarHeight, borderWidth, borderColor, true)

	// 2. Заполненная часть
	fillWidth := float32(float64(xpBarWidth-borderWidth*2) * xpFill(currentXP, xpToNext))
	if fillWidth > 0 {
		vector.DrawFilledRect(screen, i.X+borderWidth, i.Y+borderWidth, fillWidth, xpBarHeight-borderWidth*2, config.XPBarFillColor, true)
	}

	// 3. Номер уровня справа от полосы
	label := fmt.Sprintf("Lv %d  %d/%d XP", level, currentXP, xpToNext)
	drawText(screen, DefaultFace, label, int(i.X)+xpBarWidth+6, int(i.Y), config.TextLightColor)
}
