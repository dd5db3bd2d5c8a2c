// internal/ui/text.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// DefaultFace это моноширинный шрифт для HUD, попапов и панели статов.
var DefaultFace font.Face = basicfont.Face7x13

// textWidth returns the advance width of s in pixels.
func textWidth(face font.Face, s string) int {
	return text.BoundString(face, s).Dx()
}

// drawText draws s with its top-left corner at (x, y).
func drawText(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color) {
	text.Draw(screen, s, face, x, y+face.Metrics().Ascent.Ceil(), clr)
}

// drawTextCentered draws s centered horizontally on x.
func drawTextCentered(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color) {
	drawText(screen, face, s, x-textWidth(face, s)/2, y, clr)
}

// drawOutlinedText рисует текст с обводкой толщиной thickness.
func drawOutlinedText(screen *ebiten.Image, face font.Face, s string, x, y, thickness int, clr, outline color.Color) {
	for dy := -thickness; dy <= thickness; dy++ {
		for dx := -thickness; dx <= thickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			drawText(screen, face, s, x+dx, y+dy, outline)
		}
	}
	drawText(screen, face, s, x, y, clr)
}
