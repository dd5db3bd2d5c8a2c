// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	WorldWidth   = ScreenWidth * 2
	WorldHeight  = ScreenHeight * 2
	MaxDeltaTime = 0.06
	WindowTitle  = "Pixel Arena"

	MinimapWidth   = 150
	MinimapHeight  = 113
	MinimapMargin  = 10
	HUDMargin      = 12
	StatsPanelW    = 320
	StatsPanelH    = 280
	HealthBarWidth = 118

	RoadTextureInset = 5
	RoadTextureAlpha = 0.5
	AttackRangeDash  = 5.0
	EnemyHPBarHeight = 3.0
)

var (
	GrassColor          = color.RGBA{0x8A, 0xA6, 0x24, 255}
	RoadColor           = color.RGBA{0xF4, 0xA4, 0x60, 255}
	RoadTextureColor    = color.RGBA{0xD2, 0xB4, 0x8C, 255}
	PlayerColor         = color.RGBA{0xFE, 0xA4, 0x05, 255}
	EnemyColor          = color.RGBA{0xFF, 0x00, 0x00, 255}
	BulletColor         = color.RGBA{0xFF, 0xFF, 0xFF, 255}
	CriticalBulletColor = color.RGBA{0xFF, 0xD7, 0x00, 255}
	AttackRangeColor    = color.RGBA{0xFF, 0xFF, 0xF0, 255}
	DamagePopupColor    = color.RGBA{0xFF, 0xFF, 0xFF, 255}
	CriticalPopupColor  = color.RGBA{0xFF, 0x45, 0x00, 255}
	LevelUpPopupColor   = color.RGBA{0xFF, 0xFF, 0x00, 255}
	ExplosionColors     = []color.RGBA{
		{0xFF, 0x45, 0x00, 255}, // orange red
		{0xFF, 0xA5, 0x00, 255}, // orange
		{0xFF, 0xFF, 0x00, 255}, // yellow
	}
	HPBarBackColor    = color.RGBA{60, 0, 0, 255}
	HPBarFillColor    = color.RGBA{50, 205, 50, 255}
	XPBarFillColor    = color.RGBA{70, 100, 120, 220}
	MinimapBackground = color.RGBA{0, 0, 0, 204}
	MinimapCamera     = color.RGBA{0xFF, 0xFF, 0x00, 255}
	PanelBackground   = color.RGBA{20, 20, 30, 230}
	OverlayColor      = color.RGBA{0, 0, 0, 160}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	UIColorBlue       = color.RGBA{70, 130, 180, 255}
)
