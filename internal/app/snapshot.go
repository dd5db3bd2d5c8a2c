package app

import (
	"go-pixel-arena/internal/component"
	"go-pixel-arena/pkg/geom"
)

// Snapshot is a read-only copy of the state handed to the renderer after a
// tick. Mutating it never affects the simulation.
type Snapshot struct {
	Player      component.Player
	Enemies     []component.Enemy
	Bullets     []component.Projectile
	Popups      []component.Popup
	Explosions  []component.Explosion
	Roads       []component.Road
	Camera      component.Camera
	World       geom.Rect
	Viewport    geom.Vector2
	Level       int
	Experience  int
	XPPerLevel  int
	WorldLevel  int
	SkillPoints int
	GameOver    bool
	GameTime    float64
}

// Snapshot copies the current state.
func (g *Game) Snapshot() Snapshot {
	st := g.State
	snap := Snapshot{
		Player:      st.Player,
		Enemies:     make([]component.Enemy, len(st.Enemies)),
		Bullets:     make([]component.Projectile, len(st.Projectiles)),
		Popups:      make([]component.Popup, len(st.Popups)),
		Explosions:  make([]component.Explosion, len(st.Explosions)),
		Roads:       make([]component.Road, len(st.Roads)),
		Camera:      st.Camera,
		World:       st.WorldBounds(),
		Viewport:    geom.Vector2{X: st.Tuning.ViewportWidth, Y: st.Tuning.ViewportHeight},
		Level:       st.Level,
		Experience:  st.Experience,
		XPPerLevel:  st.Tuning.XPPerLevel,
		WorldLevel:  st.WorldLevel,
		SkillPoints: st.SkillPoints,
		GameOver:    st.IsGameOver(),
		GameTime:    st.GameTime,
	}
	for i, e := range st.Enemies {
		snap.Enemies[i] = *e
	}
	for i, p := range st.Projectiles {
		snap.Bullets[i] = *p
	}
	for i, p := range st.Popups {
		snap.Popups[i] = *p
	}
	for i, e := range st.Explosions {
		snap.Explosions[i] = component.Explosion{
			ID:        e.ID,
			Particles: append([]component.Particle(nil), e.Particles...),
		}
	}
	for i, r := range st.Roads {
		snap.Roads[i] = component.Road{
			Points: append([]geom.Vector2(nil), r.Points...),
			Width:  r.Width,
		}
	}
	return snap
}
