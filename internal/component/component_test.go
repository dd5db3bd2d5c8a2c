package component

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-pixel-arena/pkg/geom"
)

func TestStatsEffectiveValuesAddGained(t *testing.T) {
	s := Stats{
		AttackPower: 25, GainedAttackPower: 10,
		AttackSpeed: 0.5, GainedAttackSpeed: 0.2,
		AttackRange: 150, GainedAttackRange: 5,
		CriticalHitChance: 15, GainedCriticalHitChance: 5,
		CriticalHitDamage: 200, GainedCriticalHitDamage: 50,
	}

	assert.Equal(t, 35, s.EffectiveAttackPower())
	assert.InDelta(t, 0.7, s.EffectiveAttackSpeed(), 1e-9)
	assert.Equal(t, 155.0, s.EffectiveAttackRange())
	assert.Equal(t, 20.0, s.EffectiveCritChance())
	assert.Equal(t, 250.0, s.EffectiveCritDamage())
	// base values are untouched
	assert.Equal(t, 25, s.AttackPower)
}

func TestStatsCritChanceIsClamped(t *testing.T) {
	s := Stats{CriticalHitChance: 90, GainedCriticalHitChance: 40}
	assert.Equal(t, 100.0, s.EffectiveCritChance())

	s = Stats{CriticalHitChance: -20}
	assert.Equal(t, 0.0, s.EffectiveCritChance())
}

func TestStatsTakeDamageClampsHealth(t *testing.T) {
	s := Stats{TotalHealth: 100, CurrentHealth: 100}

	s.TakeDamage(30)
	assert.Equal(t, 70, s.CurrentHealth)
	assert.False(t, s.IsDead())

	s.TakeDamage(-10)
	assert.Equal(t, 70, s.CurrentHealth)

	s.TakeDamage(500)
	assert.Equal(t, 0, s.CurrentHealth)
	assert.True(t, s.IsDead())
}

func TestEnemyHealthRatio(t *testing.T) {
	e := Enemy{MaxHP: 50, CurrentHP: 25}
	assert.Equal(t, 0.5, e.HealthRatio())

	e.CurrentHP = -5
	assert.Equal(t, 0.0, e.HealthRatio())
	assert.True(t, e.IsDead())

	assert.Equal(t, 0.0, (&Enemy{}).HealthRatio())
}

func TestParticleOpacity(t *testing.T) {
	p := Particle{Life: 15, MaxLife: 60}
	assert.Equal(t, 0.25, p.Opacity())

	p.Life = 0
	assert.Equal(t, 0.0, p.Opacity())
}

func TestCameraWorldToScreen(t *testing.T) {
	c := Camera{Position: geom.Vector2{X: 100, Y: 50}}
	assert.Equal(t, geom.Vector2{X: 20, Y: 30}, c.WorldToScreen(geom.Vector2{X: 120, Y: 80}))
}
