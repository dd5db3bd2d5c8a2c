// internal/ui/minimap.go
package ui

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-pixel-arena/internal/app"
	"go-pixel-arena/internal/config"
	"go-pixel-arena/pkg/geom"
)

var (
	minimapEnemyColor  = color.RGBA{0xFF, 0x00, 0x00, 255}
	minimapPlayerColor = color.RGBA{0xFF, 0xFF, 0x00, 255}
)

// Minimap рисует уменьшенный мир: дороги, рамку камеры, врагов и игрока.
type Minimap struct {
	X, Y  float32
	W, H  float64
	frame *ebiten.Image
}

// NewMinimap creates a minimap with its top-left corner at (x, y).
func NewMinimap(x, y float32) *Minimap {
	m := &Minimap{X: x, Y: y, W: config.MinimapWidth, H: config.MinimapHeight}
	m.frame = ebiten.NewImageFromImage(minimapFrame(config.MinimapWidth, config.MinimapHeight))
	return m
}

// minimapFrame pre-renders the translucent background and white border.
func minimapFrame(w, h int) image.Image {
	dc := gg.NewContext(w, h)
	dc.SetColor(config.MinimapBackground)
	dc.DrawRectangle(0, 0, float64(w), float64(h))
	dc.Fill()
	dc.SetColor(color.White)
	dc.SetLineWidth(1)
	dc.DrawRectangle(0.5, 0.5, float64(w)-1, float64(h)-1)
	dc.Stroke()
	return dc.Image()
}

// scale maps a world point into minimap-local coordinates.
func (m *Minimap) scale(world geom.Rect, p geom.Vector2) (float32, float32) {
	if world.W <= 0 || world.H <= 0 {
		return 0, 0
	}
	return float32(p.X * m.W / world.W), float32(p.Y * m.H / world.H)
}

// Draw отрисовывает миникарту по снимку состояния.
func (m *Minimap) Draw(screen *ebiten.Image, snap app.Snapshot) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(m.X), float64(m.Y))
	screen.DrawImage(m.frame, op)

	for _, road := range snap.Roads {
		for i := 0; i+1 < len(road.Points); i++ {
			x0, y0 := m.scale(snap.World, road.Points[i])
			x1, y1 := m.scale(snap.World, road.Points[i+1])
			vector.StrokeLine(screen, m.X+x0, m.Y+y0, m.X+x1, m.Y+y1, 1, config.RoadColor, false)
		}
	}

	cx, cy := m.scale(snap.World, snap.Camera.Position)
	cw, ch := m.scale(snap.World, snap.Viewport)
	vector.StrokeRect(screen, m.X+cx, m.Y+cy, cw, ch, 1, config.MinimapCamera, false)

	for _, e := range snap.Enemies {
		x, y := m.scale(snap.World, geom.Vector2{X: e.Rect.X, Y: e.Rect.Y})
		vector.DrawFilledRect(screen, m.X+x-1, m.Y+y-1, 2, 2, minimapEnemyColor, false)
	}

	px, py := m.scale(snap.World, geom.Vector2{X: snap.Player.Rect.X, Y: snap.Player.Rect.Y})
	vector.DrawFilledRect(screen, m.X+px-2, m.Y+py-2, 4, 4, minimapPlayerColor, false)
}
