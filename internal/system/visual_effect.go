// internal/system/visual_effect.go
package system

import (
	"fmt"
	"math"

	"go-pixel-arena/internal/component"
	"go-pixel-arena/internal/config"
	"go-pixel-arena/internal/entity"
	"go-pixel-arena/internal/utils"
	"go-pixel-arena/pkg/geom"
)

// VisualEffectSystem управляет визуальными эффектами: всплывающими числами
// урона, баннером уровня и взрывами частиц.
type VisualEffectSystem struct {
	state *entity.GameState
	rng   *utils.PRNGService
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(state *entity.GameState, rng *utils.PRNGService) *VisualEffectSystem {
	return &VisualEffectSystem{state: state, rng: rng}
}

// ShowDamagePopup adds a "-N" number at the given world position.
func (s *VisualEffectSystem) ShowDamagePopup(damage int, at geom.Vector2, isCritical bool) {
	t := s.state.Tuning
	s.state.Popups = append(s.state.Popups, &component.Popup{
		Kind:       component.PopupDamage,
		Text:       fmt.Sprintf("-%d", damage),
		Position:   at,
		Opacity:    1,
		StartTime:  s.state.GameTime,
		Lifetime:   t.DamagePopupLifetime,
		Rise:       t.DamagePopupRise,
		IsCritical: isCritical,
	})
}

// ShowLevelUpPopup shows the level-up banner above the player. Only one
// banner exists at a time; a new one replaces the previous.
func (s *VisualEffectSystem) ShowLevelUpPopup(benefitText string) {
	t := s.state.Tuning
	p := &s.state.Player

	kept := s.state.Popups[:0]
	for _, popup := range s.state.Popups {
		if popup.Kind != component.PopupLevelUp {
			kept = append(kept, popup)
		}
	}
	clearTail(s.state.Popups, len(kept))

	s.state.Popups = append(kept, &component.Popup{
		Kind:      component.PopupLevelUp,
		Text:      "Level Up! " + benefitText,
		Position:  geom.Vector2{X: p.Center().X, Y: p.Rect.Y - 20},
		Opacity:   1,
		StartTime: s.state.GameTime,
		Lifetime:  t.LevelUpPopupLifetime,
		Rise:      t.LevelUpPopupRise,
	})
}

// SpawnExplosion creates a particle burst centred on at.
func (s *VisualEffectSystem) SpawnExplosion(at geom.Vector2) {
	t := s.state.Tuning
	particles := make([]component.Particle, 0, max(t.ParticlesPerExplosion, 0))
	for i := 0; i < t.ParticlesPerExplosion; i++ {
		angle := s.rng.Float64() * 2 * math.Pi
		speed := s.rng.Range(t.ParticleMinSpeed, t.ParticleMaxSpeed)
		life := s.rng.IntRange(t.ParticleMinLife, t.ParticleMaxLife)
		particles = append(particles, component.Particle{
			Position: at,
			Velocity: geom.Vector2{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed},
			Size:     s.rng.Range(t.ParticleMinSize, t.ParticleMaxSize),
			Life:     life,
			MaxLife:  life,
			Color:    config.ExplosionColors[s.rng.Intn(len(config.ExplosionColors))],
		})
	}
	s.state.Explosions = append(s.state.Explosions, &component.Explosion{
		ID:        s.state.NewEntity(),
		Particles: particles,
	})
}

// Update обновляет все активные визуальные эффекты.
func (s *VisualEffectSystem) Update() {
	s.updatePopups()
	s.updateExplosions()
}

func (s *VisualEffectSystem) updatePopups() {
	now := s.state.GameTime

	kept := s.state.Popups[:0]
	for _, popup := range s.state.Popups {
		elapsed := now - popup.StartTime
		if popup.Lifetime <= 0 || elapsed >= popup.Lifetime {
			continue
		}
		popup.Opacity = utils.Clamp(utils.Lerp(1, 0, elapsed/popup.Lifetime), 0, 1)
		popup.Position.Y -= popup.Rise
		kept = append(kept, popup)
	}
	clearTail(s.state.Popups, len(kept))
	s.state.Popups = kept
}

func (s *VisualEffectSystem) updateExplosions() {
	shrink := s.state.Tuning.ParticleShrink

	kept := s.state.Explosions[:0]
	for _, explosion := range s.state.Explosions {
		alive := explosion.Particles[:0]
		for _, p := range explosion.Particles {
			p.Position = p.Position.Add(p.Velocity)
			p.Size *= shrink
			p.Life--
			if p.Life > 0 {
				alive = append(alive, p)
			}
		}
		explosion.Particles = alive
		if len(alive) > 0 {
			kept = append(kept, explosion)
		}
	}
	clearTail(s.state.Explosions, len(kept))
	s.state.Explosions = kept
}
