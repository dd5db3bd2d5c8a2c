package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTuningIsValid(t *testing.T) {
	tuning := DefaultTuning()

	require.NoError(t, tuning.Validate())
	assert.Equal(t, tuning.ViewportWidth*2, tuning.WorldWidth)
	assert.Equal(t, tuning.ViewportHeight*2, tuning.WorldHeight)
	assert.Equal(t, 15, tuning.EnemiesPerWave)
	assert.Equal(t, 2, tuning.XPPerLevel)
}

func TestLoadTuningOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	data := []byte("enemies_per_wave: 3\ncollision_mode: relocate\nplayer_stats:\n  attack_speed: 2\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	tuning, err := LoadTuning(path)
	require.NoError(t, err)

	assert.Equal(t, 3, tuning.EnemiesPerWave)
	assert.Equal(t, CollisionRelocate, tuning.CollisionMode)
	assert.Equal(t, 2.0, tuning.PlayerStats.AttackSpeed)
	// untouched keys keep defaults
	assert.Equal(t, 25, tuning.EnemyBaseHP)
	assert.Equal(t, 150.0, tuning.PlayerStats.AttackRange)
}

func TestLoadTuningMissingFile(t *testing.T) {
	tuning, err := LoadTuning(filepath.Join(t.TempDir(), "nope.yaml"))

	require.Error(t, err)
	assert.Equal(t, DefaultTuning(), tuning)
}

func TestLoadTuningRejectsValuesThatBreakTheLoop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	yml := `particles_per_explosion: -1
road_count: -1
projectile_speed: -5
particle_shrink: 1.5
particle_min_speed: 4
particle_max_speed: 1
particle_min_size: 7
particle_max_size: 3
road_min_step: 300
road_max_step: 100
road_min_width: 60
road_max_width: 40
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o644))

	tuning, err := LoadTuning(path)

	require.Error(t, err)
	for _, field := range []string{
		"particles_per_explosion", "road_count", "projectile_speed", "particle_shrink",
		"particle_min_speed", "particle_min_size", "road_min_step", "road_min_width",
	} {
		assert.Contains(t, err.Error(), field)
	}
	assert.Equal(t, DefaultTuning(), tuning)
}

func TestValidateParticleShrinkBounds(t *testing.T) {
	tu := DefaultTuning()
	tu.ParticleShrink = 0
	assert.Error(t, tu.Validate())

	tu.ParticleShrink = 1
	assert.NoError(t, tu.Validate())
}

func TestValidateAcceptsZeroCounts(t *testing.T) {
	tu := DefaultTuning()
	tu.ParticlesPerExplosion = 0
	tu.RoadCount = 0
	tu.ProjectileSpeed = 0
	assert.NoError(t, tu.Validate())
}

func TestLoadTuningRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("collision_mode: bounce\nxp_per_level: 0\n"), 0o644))

	tuning, err := LoadTuning(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "collision_mode")
	assert.Contains(t, err.Error(), "xp_per_level")
	assert.Equal(t, DefaultTuning(), tuning)
}
