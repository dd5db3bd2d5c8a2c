package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-pixel-arena/internal/component"
	"go-pixel-arena/internal/config"
	"go-pixel-arena/internal/event"
)

func TestBulletDamagesEnemyAndIsConsumed(t *testing.T) {
	w := newTestWorld(t, nil)
	w.placePlayer(0, 0)
	e := w.enemyAt(500, 500, 51)
	w.bulletOn(e, 25)

	killed := w.collisions.ResolveBulletHits()

	assert.Equal(t, 0, killed)
	assert.Empty(t, w.state.Projectiles)
	assert.Equal(t, 26, e.CurrentHP)
	require.Len(t, w.state.Popups, 1)
	assert.Equal(t, "-25", w.state.Popups[0].Text)
	assert.Equal(t, e.Rect.Center(), w.state.Popups[0].Position)
	assert.Equal(t, 1, w.count(event.EnemyHit))
	assert.Equal(t, 0, w.count(event.EnemyKilled))
}

func TestBulletHitsOnlyFirstOverlappingEnemy(t *testing.T) {
	w := newTestWorld(t, nil)
	w.placePlayer(0, 0)
	first := w.enemyAt(500, 500, 25)
	second := w.enemyAt(505, 505, 25)
	w.bulletOn(first, 100)

	killed := w.collisions.ResolveBulletHits()

	assert.Equal(t, 1, killed)
	require.Len(t, w.state.Enemies, 1)
	assert.Equal(t, second.ID, w.state.Enemies[0].ID)
	assert.Equal(t, 25, second.CurrentHP)
}

func TestKillingEnemyGrantsExperience(t *testing.T) {
	w := newTestWorld(t, nil)
	w.placePlayer(0, 0)
	e := w.enemyAt(500, 500, 25)
	w.bulletOn(e, 30)

	w.collisions.ResolveBulletHits()

	assert.Empty(t, w.state.Enemies)
	assert.Equal(t, 0, e.CurrentHP, "hp never goes negative")
	assert.Equal(t, 1, w.state.Experience)
	assert.Equal(t, 1, w.count(event.EnemyKilled))
}

func TestSimultaneousKillsNeverSkipALevel(t *testing.T) {
	w := newTestWorld(t, nil)
	w.placePlayer(0, 0)
	for i := 0; i < 4; i++ {
		e := w.enemyAt(300+float64(i)*100, 500, 25)
		w.bulletOn(e, 25)
	}
	w.enemyAt(900, 900, 25)

	killed := w.collisions.ResolveBulletHits()

	assert.Equal(t, 4, killed)
	assert.Equal(t, 3, w.state.Level)
	assert.Equal(t, 0, w.state.Experience)
	assert.Equal(t, 2, w.count(event.LevelUp))
}

func TestMissedBulletsSurvive(t *testing.T) {
	w := newTestWorld(t, nil)
	w.placePlayer(0, 0)
	e := w.enemyAt(500, 500, 25)
	p := w.bulletOn(e, 25)
	p.Rect.X += 100

	assert.Equal(t, 0, w.collisions.ResolveBulletHits())
	assert.Len(t, w.state.Projectiles, 1)
	assert.Equal(t, 25, e.CurrentHP)
}

func TestPlayerContactExplodesEnemy(t *testing.T) {
	w := newTestWorld(t, nil)
	w.placePlayer(100, 100)
	w.enemyAt(115, 115, 25)
	w.enemyAt(800, 800, 25)

	removed := w.collisions.ResolvePlayerContacts()

	assert.Equal(t, 1, removed)
	assert.Len(t, w.state.Enemies, 1)
	assert.Equal(t, 75, w.state.Player.Stats.CurrentHealth)
	require.Len(t, w.state.Explosions, 1)
	assert.Len(t, w.state.Explosions[0].Particles, w.state.Tuning.ParticlesPerExplosion)
	assert.Equal(t, 1, w.count(event.PlayerHit))
}

func TestPlayerContactRelocatesInSimpleMode(t *testing.T) {
	w := newTestWorld(t, func(tu *config.Tuning) { tu.CollisionMode = config.CollisionRelocate })
	w.placePlayer(100, 100)
	e := w.enemyAt(115, 115, 25)
	before := e.Rect

	removed := w.collisions.ResolvePlayerContacts()

	assert.Equal(t, 0, removed)
	require.Len(t, w.state.Enemies, 1)
	assert.NotEqual(t, before, e.Rect)
	assert.Equal(t, 100, w.state.Player.Stats.CurrentHealth)
	assert.Empty(t, w.state.Explosions)
}

func TestPlayerHealthNeverDropsBelowZero(t *testing.T) {
	w := newTestWorld(t, nil)
	w.placePlayer(100, 100)
	w.state.Player.Stats.CurrentHealth = 10
	w.enemyAt(115, 115, 78)

	w.collisions.ResolvePlayerContacts()

	assert.Equal(t, 0, w.state.Player.Stats.CurrentHealth)
	assert.IsType(t, event.PlayerHitData{}, w.events[len(w.events)-1].Data)
	assert.Equal(t, component.PhasePlaying, w.state.Phase, "phase changes in the state system")
}
