package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-pixel-arena/internal/component"
	"go-pixel-arena/internal/config"
)

func TestNewGameStateStartsAtLevelOne(t *testing.T) {
	gs := NewGameState(config.DefaultTuning())

	assert.Equal(t, 1, gs.Level)
	assert.Equal(t, 1, gs.WorldLevel)
	assert.Equal(t, 0, gs.Experience)
	assert.Equal(t, 0, gs.SkillPoints)
	assert.Equal(t, component.PhasePlaying, gs.Phase)
	assert.False(t, gs.IsGameOver())

	assert.Equal(t, 800.0, gs.Player.Rect.X)
	assert.Equal(t, 600.0, gs.Player.Rect.Y)
	assert.Equal(t, 100, gs.Player.Stats.CurrentHealth)
	assert.True(t, math.IsInf(gs.Player.LastShotTime, -1))
}

func TestNewEntityIsMonotonic(t *testing.T) {
	gs := NewGameState(config.DefaultTuning())

	a := gs.NewEntity()
	b := gs.NewEntity()
	assert.Greater(t, b, a)
}

func TestRemoveEnemy(t *testing.T) {
	gs := NewGameState(config.DefaultTuning())
	gs.Enemies = []*component.Enemy{{ID: 1}, {ID: 2}, {ID: 3}}

	assert.True(t, gs.RemoveEnemy(2))
	assert.False(t, gs.RemoveEnemy(2))
	assert.Len(t, gs.Enemies, 2)
	assert.Equal(t, 1, int(gs.Enemies[0].ID))
	assert.Equal(t, 3, int(gs.Enemies[1].ID))
}
