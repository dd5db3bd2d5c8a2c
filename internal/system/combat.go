package system

import (
	"math"

	"go-pixel-arena/internal/component"
	"go-pixel-arena/internal/config"
	"go-pixel-arena/internal/entity"
	"go-pixel-arena/internal/event"
	"go-pixel-arena/internal/utils"
	"go-pixel-arena/pkg/geom"
)

// CombatSystem управляет автоатакой игрока: выбор цели, перезарядка, выстрел.
type CombatSystem struct {
	state           *entity.GameState
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(state *entity.GameState, rng *utils.PRNGService, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{
		state:           state,
		rng:             rng,
		eventDispatcher: eventDispatcher,
	}
}

// AttackInterval returns seconds between shots for the given stats, or +Inf
// when the attack speed is not positive.
func AttackInterval(stats *component.Stats) float64 {
	speed := stats.EffectiveAttackSpeed()
	if speed <= 0 {
		return math.Inf(1)
	}
	return 1.0 / speed
}

// Update fires at most one projectile. The cooldown is only consumed when a
// target in range exists.
func (s *CombatSystem) Update() {
	p := &s.state.Player
	now := s.state.GameTime

	if now-p.LastShotTime < AttackInterval(&p.Stats) {
		return
	}

	target := s.FindClosestTarget()
	if target == nil {
		return
	}

	s.fireAt(target)
	p.LastShotTime = now
}

// FindClosestTarget returns the enemy whose centre is nearest to the player's
// centre within effective range. Ties keep the first enemy encountered.
func (s *CombatSystem) FindClosestTarget() *component.Enemy {
	p := &s.state.Player
	origin := p.Center()
	attackRange := p.Stats.EffectiveAttackRange()

	var closest *component.Enemy
	minDistance := math.Inf(1)
	for _, enemy := range s.state.Enemies {
		distance := geom.Distance(origin, enemy.Rect.Center())
		if distance <= attackRange && distance < minDistance {
			minDistance = distance
			closest = enemy
		}
	}
	return closest
}

// RollDamage decides whether a shot is critical and how much damage it does.
func (s *CombatSystem) RollDamage(stats *component.Stats) (int, bool) {
	baseDamage := stats.EffectiveAttackPower()
	isCritical := s.rng.Float64()*100 < stats.EffectiveCritChance()
	if !isCritical {
		return baseDamage, false
	}
	return int(math.Floor(float64(baseDamage) * stats.EffectiveCritDamage() / 100)), true
}

func (s *CombatSystem) fireAt(target *component.Enemy) {
	p := &s.state.Player
	t := s.state.Tuning
	origin := p.Center()

	direction, ok := target.Rect.Center().Sub(origin).Normalize()
	if !ok {
		// цель ровно в центре игрока
		direction = geom.Vector2{X: 1}
	}

	damage, isCritical := s.RollDamage(&p.Stats)

	bulletColor := config.BulletColor
	if isCritical {
		bulletColor = config.CriticalBulletColor
	}

	proj := &component.Projectile{
		ID: s.state.NewEntity(),
		Rect: geom.Rect{
			X: origin.X - t.ProjectileSize/2,
			Y: origin.Y - t.ProjectileSize/2,
			W: t.ProjectileSize,
			H: t.ProjectileSize,
		},
		Direction:  direction,
		Speed:      t.ProjectileSpeed,
		Damage:     damage,
		IsCritical: isCritical,
		Color:      bulletColor,
	}
	s.state.Projectiles = append(s.state.Projectiles, proj)

	s.eventDispatcher.Dispatch(event.Event{Type: event.ShotFired, Data: proj.ID})
}
