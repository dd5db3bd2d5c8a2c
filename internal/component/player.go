// internal/component/player.go
package component

import (
	"math"

	"go-pixel-arena/internal/utils"
	"go-pixel-arena/pkg/geom"
)

// NeverFired is the LastShotTime of a player that has not shot yet.
var NeverFired = math.Inf(-1)

// Stats хранит базовые характеристики игрока и отдельно полученные бонусы.
// Base and gained values are never merged so the stats panel can show both.
type Stats struct {
	TotalHealth       int
	CurrentHealth     int
	AttackPower       int
	AttackSpeed       float64 // attacks per second
	AttackRange       float64
	CriticalHitChance float64 // 0-100
	CriticalHitDamage float64 // percent, 100 = no bonus

	GainedAttackPower       int
	GainedAttackSpeed       float64
	GainedAttackRange       float64
	GainedCriticalHitChance float64
	GainedCriticalHitDamage float64
}

func (s *Stats) EffectiveAttackPower() int {
	return s.AttackPower + s.GainedAttackPower
}

func (s *Stats) EffectiveAttackSpeed() float64 {
	return s.AttackSpeed + s.GainedAttackSpeed
}

func (s *Stats) EffectiveAttackRange() float64 {
	return s.AttackRange + s.GainedAttackRange
}

// EffectiveCritChance is clamped to [0, 100].
func (s *Stats) EffectiveCritChance() float64 {
	return utils.Clamp(s.CriticalHitChance+s.GainedCriticalHitChance, 0, 100)
}

func (s *Stats) EffectiveCritDamage() float64 {
	return s.CriticalHitDamage + s.GainedCriticalHitDamage
}

// TakeDamage lowers current health, never below zero.
func (s *Stats) TakeDamage(amount int) {
	if amount < 0 {
		amount = 0
	}
	s.CurrentHealth = utils.ClampInt(s.CurrentHealth-amount, 0, s.TotalHealth)
}

// IsDead reports whether the player has no health left.
func (s *Stats) IsDead() bool {
	return s.CurrentHealth <= 0
}

// VisualKind describes how the player is drawn. The simulation never reads it.
type VisualKind int

const (
	VisualSolid VisualKind = iota
	VisualSprite
)

// Player это управляемый игроком аватар.
type Player struct {
	Rect         geom.Rect
	Stats        Stats
	Speed        float64 // units per tick
	LastShotTime float64 // game clock seconds, NeverFired initially
	Visual       VisualKind
}

// Center returns the middle of the player's rectangle.
func (p *Player) Center() geom.Vector2 {
	return p.Rect.Center()
}
