package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-pixel-arena/internal/component"
	"go-pixel-arena/internal/config"
)

func TestSpawnEnemiesInsideWorld(t *testing.T) {
	w := newTestWorld(t, nil)
	tu := w.state.Tuning

	enemies := w.waves.SpawnEnemies(15, 3)

	require.Len(t, enemies, 15)
	ids := map[uint64]bool{}
	for _, e := range enemies {
		assert.Equal(t, 78, e.MaxHP)
		assert.Equal(t, e.MaxHP, e.CurrentHP)
		assert.GreaterOrEqual(t, e.Rect.X, 0.0)
		assert.GreaterOrEqual(t, e.Rect.Y, 0.0)
		assert.LessOrEqual(t, e.Rect.X+e.Rect.W, tu.WorldWidth)
		assert.LessOrEqual(t, e.Rect.Y+e.Rect.H, tu.WorldHeight)
		assert.Equal(t, tu.EnemySize, e.Rect.W)
		assert.False(t, ids[uint64(e.ID)], "ids are unique")
		ids[uint64(e.ID)] = true
	}
}

func TestSpawnEnemiesZeroCount(t *testing.T) {
	w := newTestWorld(t, nil)
	assert.Empty(t, w.waves.SpawnEnemies(0, 1))
	assert.Empty(t, w.waves.SpawnEnemies(-1, 1))
}

func TestStartWaveReplacesEnemies(t *testing.T) {
	w := newTestWorld(t, nil)
	w.enemyAt(10, 10, 1)
	w.state.WorldLevel = 4

	w.waves.StartWave()

	require.Len(t, w.state.Enemies, 15)
	assert.Equal(t, 106, w.state.Enemies[0].MaxHP)
}

func TestSameSeedSameWave(t *testing.T) {
	a := newTestWorld(t, nil)
	b := newTestWorld(t, nil)
	a.waves.StartWave()
	b.waves.StartWave()

	for i := range a.state.Enemies {
		assert.Equal(t, a.state.Enemies[i].Rect, b.state.Enemies[i].Rect)
	}
}

func TestGenerateRoads(t *testing.T) {
	w := newTestWorld(t, nil)
	tu := w.state.Tuning

	roads := w.waves.GenerateRoads()

	require.Len(t, roads, 5)
	for _, r := range roads {
		assert.GreaterOrEqual(t, len(r.Points), 8)
		assert.LessOrEqual(t, len(r.Points), 12)
		assert.GreaterOrEqual(t, r.Width, 40.0)
		assert.LessOrEqual(t, r.Width, 60.0)
		for _, p := range r.Points {
			assert.True(t, p.X >= 0 && p.X <= tu.WorldWidth && p.Y >= 0 && p.Y <= tu.WorldHeight)
		}
	}
}

func TestGenerateRoadsNegativeCount(t *testing.T) {
	w := newTestWorld(t, func(tu *config.Tuning) { tu.RoadCount = -1 })

	var roads []component.Road
	require.NotPanics(t, func() { roads = w.waves.GenerateRoads() })
	assert.Empty(t, roads)
}
