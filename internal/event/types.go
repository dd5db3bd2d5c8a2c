// internal/event/types.go
package event

import "go-pixel-arena/internal/types"

const (
	ShotFired   EventType = "ShotFired"   // Игрок выстрелил
	EnemyHit    EventType = "EnemyHit"    // Снаряд попал во врага
	EnemyKilled EventType = "EnemyKilled" // Враг уничтожен
	LevelUp     EventType = "LevelUp"     // Новый уровень игрока
	WaveCleared EventType = "WaveCleared" // Волна зачищена, мировой уровень повышен
	PlayerHit   EventType = "PlayerHit"   // Враг взорвался на игроке
	SkillSpent  EventType = "SkillSpent"
	GameOver    EventType = "GameOver"
)

// EnemyKilledData описывает уничтоженного врага.
type EnemyKilledData struct {
	EnemyID    types.EntityID
	WorldLevel int
}

// LevelUpData describes a level-up and the benefit it granted.
type LevelUpData struct {
	Level   int
	Benefit string
}

// WaveClearedData is sent after the world level advanced.
type WaveClearedData struct {
	WorldLevel  int
	SkillPoints int
	Enemies     int
}

// PlayerHitData describes damage taken from an exploding enemy.
type PlayerHitData struct {
	Damage        int
	CurrentHealth int
}

// SkillSpentData describes a spent skill point.
type SkillSpentData struct {
	Stat        string
	Gained      float64
	SkillPoints int
}

// GameOverData is sent once when the player dies.
type GameOverData struct {
	Level      int
	WorldLevel int
	GameTime   float64
}
