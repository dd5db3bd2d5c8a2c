// internal/ui/stats_panel.go
package ui

import (
	"fmt"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-pixel-arena/internal/app"
	"go-pixel-arena/internal/component"
	"go-pixel-arena/internal/config"
	"go-pixel-arena/internal/defs"
)

const (
	panelPadding  = 16
	lineHeight    = 20
	columnSpacing = 170
)

// StatLine is one row of the stats panel.
type StatLine struct {
	Label  string
	Base   string
	Gained string
}

// StatsPanel показывает характеристики игрока поверх игры. Игра под ней
// не останавливается.
type StatsPanel struct {
	IsVisible bool
}

func NewStatsPanel() *StatsPanel {
	return &StatsPanel{}
}

func (p *StatsPanel) Toggle() {
	p.IsVisible = !p.IsVisible
}

func (p *StatsPanel) Hide() {
	p.IsVisible = false
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// StatLines formats the player's stats: base value and gained bonus apart.
func StatLines(s component.Stats) []StatLine {
	return []StatLine{
		{Label: "Health", Base: fmt.Sprintf("%d/%d", s.CurrentHealth, s.TotalHealth)},
		{Label: defs.StatAttackPower.String(), Base: strconv.Itoa(s.AttackPower), Gained: fmt.Sprintf("+%d", s.GainedAttackPower)},
		{Label: defs.StatAttackSpeed.String(), Base: formatNumber(s.AttackSpeed), Gained: fmt.Sprintf("+%.1f", s.GainedAttackSpeed)},
		{Label: defs.StatAttackRange.String(), Base: formatNumber(s.AttackRange), Gained: "+" + formatNumber(s.GainedAttackRange)},
		{Label: defs.StatCritChance.String(), Base: formatNumber(s.CriticalHitChance) + "%", Gained: "+" + formatNumber(s.GainedCriticalHitChance) + "%"},
		{Label: defs.StatCritDamage.String(), Base: formatNumber(s.CriticalHitDamage) + "%", Gained: "+" + formatNumber(s.GainedCriticalHitDamage) + "%"},
	}
}

// SkillHints lists the keys that spend a skill point, in stat order.
func SkillHints() []string {
	hints := make([]string, len(defs.AllStats))
	for i, stat := range defs.AllStats {
		hints[i] = fmt.Sprintf("[%d] %s", i+1, stat)
	}
	return hints
}

// Draw рисует панель по центру экрана, если она открыта.
func (p *StatsPanel) Draw(screen *ebiten.Image, snap app.Snapshot) {
	if !p.IsVisible {
		return
	}
	x := float32(config.ScreenWidth-config.StatsPanelW) / 2
	y := float32(config.ScreenHeight-config.StatsPanelH) / 2
	vector.DrawFilledRect(screen, x, y, config.StatsPanelW, config.StatsPanelH, config.PanelBackground, true)
	vector.StrokeRect(screen, x, y, config.StatsPanelW, config.StatsPanelH, borderWidth, borderColor, true)

	left := int(x) + panelPadding
	row := int(y) + panelPadding
	drawText(screen, DefaultFace, "Stats  [C] close", left, row, config.TextLightColor)
	row += lineHeight + 4

	for _, line := range StatLines(snap.Player.Stats) {
		drawText(screen, DefaultFace, line.Label, left, row, config.TextLightColor)
		drawText(screen, DefaultFace, line.Base, left+columnSpacing, row, config.TextLightColor)
		if line.Gained != "" {
			drawText(screen, DefaultFace, line.Gained, left+columnSpacing+60, row, config.HPBarFillColor)
		}
		row += lineHeight
	}

	row += 6
	drawText(screen, DefaultFace, fmt.Sprintf("Skill points: %d", snap.SkillPoints), left, row, config.LevelUpPopupColor)
	if snap.SkillPoints > 0 {
		row += lineHeight
		drawText(screen, DefaultFace, "Double a gained stat:", left, row, config.TextLightColor)
		for i, hint := range SkillHints() {
			col, r := i%2, i/2
			drawText(screen, DefaultFace, hint, left+col*150, row+lineHeight*(r+1), config.TextLightColor)
		}
	}
}
