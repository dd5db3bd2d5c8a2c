// internal/config/tuning.go
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CollisionMode selects what happens when the player touches an enemy.
type CollisionMode string

const (
	// CollisionRelocate moves the enemy to a random spot, no damage.
	CollisionRelocate CollisionMode = "relocate"
	// CollisionExplode removes the enemy and damages the player by its max HP.
	CollisionExplode CollisionMode = "explode"
)

// Tuning holds every gameplay number of a session. Speeds are per tick,
// times are in seconds.
type Tuning struct {
	Seed int64 `yaml:"seed"`

	WorldWidth     float64 `yaml:"world_width"`
	WorldHeight    float64 `yaml:"world_height"`
	ViewportWidth  float64 `yaml:"viewport_width"`
	ViewportHeight float64 `yaml:"viewport_height"`

	PlayerSize  float64     `yaml:"player_size"`
	PlayerSpeed float64     `yaml:"player_speed"`
	PlayerStats StatsTuning `yaml:"player_stats"`

	EnemySize      float64 `yaml:"enemy_size"`
	EnemiesPerWave int     `yaml:"enemies_per_wave"`
	EnemyBaseHP    int     `yaml:"enemy_base_hp"`

	ProjectileSize  float64 `yaml:"projectile_size"`
	ProjectileSpeed float64 `yaml:"projectile_speed"`

	XPPerKill  int `yaml:"xp_per_kill"`
	XPPerLevel int `yaml:"xp_per_level"`

	CollisionMode CollisionMode `yaml:"collision_mode"`

	DamagePopupLifetime  float64 `yaml:"damage_popup_lifetime"`
	DamagePopupRise      float64 `yaml:"damage_popup_rise"`
	LevelUpPopupLifetime float64 `yaml:"level_up_popup_lifetime"`
	LevelUpPopupRise     float64 `yaml:"level_up_popup_rise"`

	ParticlesPerExplosion int     `yaml:"particles_per_explosion"`
	ParticleMinSpeed      float64 `yaml:"particle_min_speed"`
	ParticleMaxSpeed      float64 `yaml:"particle_max_speed"`
	ParticleMinSize       float64 `yaml:"particle_min_size"`
	ParticleMaxSize       float64 `yaml:"particle_max_size"`
	ParticleMinLife       int     `yaml:"particle_min_life"`
	ParticleMaxLife       int     `yaml:"particle_max_life"`
	ParticleShrink        float64 `yaml:"particle_shrink"`

	RoadCount       int     `yaml:"road_count"`
	RoadMinSegments int     `yaml:"road_min_segments"`
	RoadMaxSegments int     `yaml:"road_max_segments"`
	RoadMinStep     float64 `yaml:"road_min_step"`
	RoadMaxStep     float64 `yaml:"road_max_step"`
	RoadMinWidth    float64 `yaml:"road_min_width"`
	RoadMaxWidth    float64 `yaml:"road_max_width"`
}

// StatsTuning is the starting stat block of the player.
type StatsTuning struct {
	TotalHealth       int     `yaml:"total_health"`
	AttackPower       int     `yaml:"attack_power"`
	AttackSpeed       float64 `yaml:"attack_speed"` // attacks per second
	AttackRange       float64 `yaml:"attack_range"`
	CriticalHitChance float64 `yaml:"critical_hit_chance"` // 0-100
	CriticalHitDamage float64 `yaml:"critical_hit_damage"` // percent, 100 = no bonus
}

// DefaultTuning returns the built-in balance.
func DefaultTuning() Tuning {
	return Tuning{
		WorldWidth:     WorldWidth,
		WorldHeight:    WorldHeight,
		ViewportWidth:  ScreenWidth,
		ViewportHeight: ScreenHeight,

		PlayerSize:  30,
		PlayerSpeed: 5,
		PlayerStats: StatsTuning{
			TotalHealth:       100,
			AttackPower:       25,
			AttackSpeed:       0.5,
			AttackRange:       150,
			CriticalHitChance: 15,
			CriticalHitDamage: 200,
		},

		EnemySize:      20,
		EnemiesPerWave: 15,
		EnemyBaseHP:    25,

		ProjectileSize:  2,
		ProjectileSpeed: 5,

		XPPerKill:  1,
		XPPerLevel: 2,

		CollisionMode: CollisionExplode,

		DamagePopupLifetime:  1.0,
		DamagePopupRise:      1.0,
		LevelUpPopupLifetime: 2.0,
		LevelUpPopupRise:     0.5,

		ParticlesPerExplosion: 20,
		ParticleMinSpeed:      1,
		ParticleMaxSpeed:      4,
		ParticleMinSize:       3,
		ParticleMaxSize:       7,
		ParticleMinLife:       30,
		ParticleMaxLife:       60,
		ParticleShrink:        0.95,

		RoadCount:       5,
		RoadMinSegments: 8,
		RoadMaxSegments: 12,
		RoadMinStep:     100,
		RoadMaxStep:     300,
		RoadMinWidth:    40,
		RoadMaxWidth:    60,
	}
}

// LoadTuning reads a YAML file and overlays it on DefaultTuning. Keys absent
// from the file keep their default value.
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()

	file, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("failed to read tuning file: %w", err)
	}
	if err := yaml.Unmarshal(file, &t); err != nil {
		return DefaultTuning(), fmt.Errorf("failed to unmarshal tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return DefaultTuning(), fmt.Errorf("invalid tuning in %s: %w", path, err)
	}
	return t, nil
}

// Validate rejects values the simulation cannot run with.
func (t Tuning) Validate() error {
	var errs []error
	if t.WorldWidth < t.ViewportWidth || t.WorldHeight < t.ViewportHeight {
		errs = append(errs, errors.New("world must be at least as large as the viewport"))
	}
	if t.EnemySize <= 0 || t.EnemySize > t.WorldWidth || t.EnemySize > t.WorldHeight {
		errs = append(errs, errors.New("enemy_size must fit inside the world"))
	}
	if t.PlayerSize <= 0 {
		errs = append(errs, errors.New("player_size must be positive"))
	}
	if t.EnemiesPerWave < 0 {
		errs = append(errs, errors.New("enemies_per_wave must not be negative"))
	}
	if t.XPPerLevel <= 0 {
		errs = append(errs, errors.New("xp_per_level must be positive"))
	}
	if t.ProjectileSpeed < 0 {
		errs = append(errs, errors.New("projectile_speed must not be negative"))
	}
	if t.ParticlesPerExplosion < 0 {
		errs = append(errs, errors.New("particles_per_explosion must not be negative"))
	}
	if t.ParticleShrink <= 0 || t.ParticleShrink > 1 {
		errs = append(errs, errors.New("particle_shrink must be in (0, 1]"))
	}
	if t.RoadCount < 0 {
		errs = append(errs, errors.New("road_count must not be negative"))
	}
	ranges := []struct {
		name     string
		min, max float64
	}{
		{"particle_min_life/particle_max_life", float64(t.ParticleMinLife), float64(t.ParticleMaxLife)},
		{"particle_min_speed/particle_max_speed", t.ParticleMinSpeed, t.ParticleMaxSpeed},
		{"particle_min_size/particle_max_size", t.ParticleMinSize, t.ParticleMaxSize},
		{"road_min_segments/road_max_segments", float64(t.RoadMinSegments), float64(t.RoadMaxSegments)},
		{"road_min_step/road_max_step", t.RoadMinStep, t.RoadMaxStep},
		{"road_min_width/road_max_width", t.RoadMinWidth, t.RoadMaxWidth},
	}
	for _, r := range ranges {
		if r.min > r.max {
			errs = append(errs, fmt.Errorf("%s range is inverted", r.name))
		}
	}
	switch t.CollisionMode {
	case CollisionRelocate, CollisionExplode:
	default:
		errs = append(errs, fmt.Errorf("unknown collision_mode %q", t.CollisionMode))
	}
	return errors.Join(errs...)
}
