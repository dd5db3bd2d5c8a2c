// internal/ui/wave_indicator.go
package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"go-pixel-arena/internal/config"
)

// WaveIndicator отображает мировой уровень римскими цифрами.
type WaveIndicator struct {
	X, Y             float32
	Color            color.RGBA
	OutlineColor     color.Color
	OutlineThickness int
}

// NewWaveIndicator создает новый индикатор мирового уровня, центрированный по x.
func NewWaveIndicator(x, y float32) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		Color:            config.UIColorBlue,
		OutlineColor:     color.White,
		OutlineThickness: 1,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw отрисовывает индикатор на экране.
func (i *WaveIndicator) Draw(screen *ebiten.Image, worldLevel int) {
	if worldLevel <= 0 {
		return
	}

	label := "World " + toRoman(worldLevel)

	// Каждый десятый уровень выделяется красным
	textColor := i.Color
	if worldLevel%10 == 0 {
		textColor = config.EnemyColor
	}

	x := int(i.X) - textWidth(DefaultFace, label)/2
	drawOutlinedText(screen, DefaultFace, label, x, int(i.Y), i.OutlineThickness, textColor, i.OutlineColor)
}
