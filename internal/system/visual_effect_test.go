package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-pixel-arena/internal/component"
	"go-pixel-arena/internal/config"
	"go-pixel-arena/pkg/geom"
)

func TestDamagePopupRisesAndFades(t *testing.T) {
	w := newTestWorld(t, nil)
	w.effects.ShowDamagePopup(25, geom.Vector2{X: 100, Y: 100}, true)

	w.state.GameTime = 0.5
	w.effects.Update()

	require.Len(t, w.state.Popups, 1)
	p := w.state.Popups[0]
	assert.Equal(t, "-25", p.Text)
	assert.True(t, p.IsCritical)
	assert.Equal(t, 99.0, p.Position.Y)
	assert.InDelta(t, 0.5, p.Opacity, 1e-9)

	w.state.GameTime = 1.0
	w.effects.Update()
	assert.Empty(t, w.state.Popups)
}

func TestLevelUpBannerLastsLongerAndRisesSlower(t *testing.T) {
	w := newTestWorld(t, nil)
	w.placePlayer(200, 200)
	w.effects.ShowLevelUpPopup("+5 Attack Power")

	banner := w.state.Popups[0]
	assert.Equal(t, geom.Vector2{X: 215, Y: 180}, banner.Position)

	w.state.GameTime = 1.5
	w.effects.Update()
	require.Len(t, w.state.Popups, 1)
	assert.Equal(t, 179.5, banner.Position.Y)
	assert.InDelta(t, 0.25, banner.Opacity, 1e-9)

	w.state.GameTime = 2.0
	w.effects.Update()
	assert.Empty(t, w.state.Popups)
}

func TestOnlyOneLevelUpBanner(t *testing.T) {
	w := newTestWorld(t, nil)
	w.effects.ShowDamagePopup(5, geom.Vector2{}, false)
	w.effects.ShowLevelUpPopup("first")
	w.effects.ShowLevelUpPopup("second")

	banners := 0
	for _, p := range w.state.Popups {
		if p.Kind == component.PopupLevelUp {
			banners++
			assert.Equal(t, "Level Up! second", p.Text)
		}
	}
	assert.Equal(t, 1, banners)
	assert.Len(t, w.state.Popups, 2)
}

func TestExplosionParticlesWithinRanges(t *testing.T) {
	w := newTestWorld(t, nil)
	at := geom.Vector2{X: 300, Y: 300}
	w.effects.SpawnExplosion(at)

	require.Len(t, w.state.Explosions, 1)
	particles := w.state.Explosions[0].Particles
	require.Len(t, particles, 20)
	for _, p := range particles {
		assert.Equal(t, at, p.Position)
		speed := p.Velocity.Len()
		assert.GreaterOrEqual(t, speed, 1.0-1e-9)
		assert.LessOrEqual(t, speed, 4.0+1e-9)
		assert.GreaterOrEqual(t, p.Size, 3.0)
		assert.LessOrEqual(t, p.Size, 7.0)
		assert.GreaterOrEqual(t, p.Life, 30)
		assert.LessOrEqual(t, p.Life, 60)
		assert.Contains(t, config.ExplosionColors, p.Color)
	}
}

func TestExplosionParticlesShrinkAndExpire(t *testing.T) {
	w := newTestWorld(t, nil)
	w.state.Explosions = []*component.Explosion{{
		Particles: []component.Particle{
			{Position: geom.Vector2{X: 10, Y: 10}, Velocity: geom.Vector2{X: 2, Y: -1}, Size: 4, Life: 2, MaxLife: 2},
			{Size: 4, Life: 1, MaxLife: 1},
		},
	}}

	w.effects.Update()
	require.Len(t, w.state.Explosions, 1)
	require.Len(t, w.state.Explosions[0].Particles, 1)
	p := w.state.Explosions[0].Particles[0]
	assert.Equal(t, geom.Vector2{X: 12, Y: 9}, p.Position)
	assert.InDelta(t, 3.8, p.Size, 1e-9)
	assert.InDelta(t, 0.5, p.Opacity(), 1e-9)

	w.effects.Update()
	assert.Empty(t, w.state.Explosions)
}

func TestExplosionWithNegativeParticleCountIsEmpty(t *testing.T) {
	w := newTestWorld(t, func(tu *config.Tuning) { tu.ParticlesPerExplosion = -1 })

	require.NotPanics(t, func() { w.effects.SpawnExplosion(geom.Vector2{X: 10, Y: 10}) })
	require.Len(t, w.state.Explosions, 1)
	assert.Empty(t, w.state.Explosions[0].Particles)

	w.effects.Update()
	assert.Empty(t, w.state.Explosions)
}
