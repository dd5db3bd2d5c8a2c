// internal/input/keyboard.go
package input

import "github.com/hajimehoshi/ebiten/v2"

var keyboardNames = map[string]ebiten.Key{
	"a":          ebiten.KeyA,
	"d":          ebiten.KeyD,
	"w":          ebiten.KeyW,
	"s":          ebiten.KeyS,
	"ArrowLeft":  ebiten.KeyArrowLeft,
	"ArrowRight": ebiten.KeyArrowRight,
	"ArrowUp":    ebiten.KeyArrowUp,
	"ArrowDown":  ebiten.KeyArrowDown,
}

// KeyboardSource reads the ebiten keyboard. Unknown names are never pressed.
type KeyboardSource struct{}

func (KeyboardSource) IsPressed(name string) bool {
	key, ok := keyboardNames[name]
	if !ok {
		return false
	}
	return ebiten.IsKeyPressed(key)
}
