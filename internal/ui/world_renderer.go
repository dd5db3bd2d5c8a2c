// internal/ui/world_renderer.go
package ui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-pixel-arena/internal/app"
	"go-pixel-arena/internal/component"
	"go-pixel-arena/internal/config"
	"go-pixel-arena/pkg/geom"
	"go-pixel-arena/pkg/render"
)

// Renderer draws one post-tick snapshot.
type Renderer interface {
	Draw(screen *ebiten.Image, snap app.Snapshot)
}

// WorldRenderer рисует мир в координатах камеры: траву, дороги, радиус атаки,
// игрока, врагов, снаряды, частицы и всплывающий текст.
type WorldRenderer struct {
	playerSprite *ebiten.Image
}

var _ Renderer = (*WorldRenderer)(nil)

// NewWorldRenderer creates a renderer. A nil sprite draws the player as a circle.
func NewWorldRenderer(playerSprite *ebiten.Image) *WorldRenderer {
	return &WorldRenderer{playerSprite: playerSprite}
}

func (r *WorldRenderer) Draw(screen *ebiten.Image, snap app.Snapshot) {
	screen.Fill(config.GrassColor)

	cam := snap.Camera
	r.drawRoads(screen, cam, snap.Roads)
	r.drawAttackRange(screen, cam, snap.Player)
	r.drawPlayer(screen, cam, snap.Player)

	for _, e := range snap.Enemies {
		r.drawEnemy(screen, cam, e)
	}
	for _, b := range snap.Bullets {
		pos := cam.WorldToScreen(geom.Vector2{X: b.Rect.X, Y: b.Rect.Y})
		vector.DrawFilledRect(screen, float32(math.Floor(pos.X)), float32(math.Floor(pos.Y)),
			float32(b.Rect.W), float32(b.Rect.H), b.Color, false)
	}
	for _, ex := range snap.Explosions {
		for _, p := range ex.Particles {
			pos := cam.WorldToScreen(p.Position)
			vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), float32(p.Size),
				render.WithAlpha(p.Color, p.Opacity()), true)
		}
	}
	for _, p := range snap.Popups {
		r.drawPopup(screen, cam, p)
	}
}

func (r *WorldRenderer) drawRoads(screen *ebiten.Image, cam component.Camera, roads []component.Road) {
	texture := render.WithAlpha(config.RoadTextureColor, config.RoadTextureAlpha)
	for _, road := range roads {
		if len(road.Points) < 2 {
			continue
		}
		points := make([][2]float64, len(road.Points))
		for i, p := range road.Points {
			s := cam.WorldToScreen(p)
			points[i] = [2]float64{s.X, s.Y}
		}
		render.StrokePolyline(screen, points, float32(road.Width), config.RoadColor)
		render.StrokePolyline(screen, points, float32(road.Width-config.RoadTextureInset), texture)
	}
}

func (r *WorldRenderer) drawAttackRange(screen *ebiten.Image, cam component.Camera, p component.Player) {
	c := cam.WorldToScreen(p.Center())
	render.StrokeDashedCircle(screen, c.X, c.Y, p.Stats.EffectiveAttackRange(), config.AttackRangeDash, 1, config.AttackRangeColor)
}

func (r *WorldRenderer) drawPlayer(screen *ebiten.Image, cam component.Camera, p component.Player) {
	if p.Visual == component.VisualSprite && r.playerSprite != nil {
		pos := cam.WorldToScreen(geom.Vector2{X: p.Rect.X, Y: p.Rect.Y})
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(math.Floor(pos.X), math.Floor(pos.Y))
		screen.DrawImage(r.playerSprite, op)
		return
	}
	c := cam.WorldToScreen(p.Center())
	vector.DrawFilledCircle(screen, float32(c.X), float32(c.Y), float32(p.Rect.W/2), config.PlayerColor, true)
}

func (r *WorldRenderer) drawEnemy(screen *ebiten.Image, cam component.Camera, e component.Enemy) {
	pos := cam.WorldToScreen(geom.Vector2{X: e.Rect.X, Y: e.Rect.Y})
	x, y := float32(math.Floor(pos.X)), float32(math.Floor(pos.Y))
	w, h := float32(e.Rect.W), float32(e.Rect.H)
	vector.DrawFilledRect(screen, x, y, w, h, e.Color, false)

	// полоска здоровья над врагом
	barY := y - config.EnemyHPBarHeight - 2
	vector.DrawFilledRect(screen, x, barY, w, config.EnemyHPBarHeight, render.DarkenColor(e.Color), false)
	if fill := w * float32(e.HealthRatio()); fill > 0 {
		vector.DrawFilledRect(screen, x, barY, fill, config.EnemyHPBarHeight, config.HPBarFillColor, false)
	}
}

func (r *WorldRenderer) drawPopup(screen *ebiten.Image, cam component.Camera, p component.Popup) {
	base := config.DamagePopupColor
	switch {
	case p.Kind == component.PopupLevelUp:
		base = config.LevelUpPopupColor
	case p.IsCritical:
		base = config.CriticalPopupColor
	}
	pos := cam.WorldToScreen(p.Position)
	drawTextCentered(screen, DefaultFace, p.Text, int(pos.X), int(pos.Y), render.WithAlpha(base, p.Opacity))
}
