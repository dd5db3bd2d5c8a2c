package defs

import "math"

// EnemyHP returns the hit points of an enemy spawned at the given world level.
// Growth is super-linear: floor(base*L + (L-1)*L*0.5).
func EnemyHP(base, worldLevel int) int {
	if worldLevel < 1 {
		worldLevel = 1
	}
	l := float64(worldLevel)
	return int(math.Floor(float64(base)*l + (l-1)*l*0.5))
}
