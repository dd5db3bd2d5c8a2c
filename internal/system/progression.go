// internal/system/progression.go
package system

import (
	"go-pixel-arena/internal/component"
	"go-pixel-arena/internal/defs"
	"go-pixel-arena/internal/entity"
	"go-pixel-arena/internal/event"
	"go-pixel-arena/internal/utils"
)

// ProgressionSystem отвечает за опыт, уровни, мировые уровни и очки навыков.
type ProgressionSystem struct {
	state           *entity.GameState
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
	effects         *VisualEffectSystem
	waves           *WaveSystem
}

func NewProgressionSystem(state *entity.GameState, rng *utils.PRNGService, eventDispatcher *event.Dispatcher,
	effects *VisualEffectSystem, waves *WaveSystem) *ProgressionSystem {
	ps := &ProgressionSystem{
		state:           state,
		rng:             rng,
		eventDispatcher: eventDispatcher,
		effects:         effects,
		waves:           waves,
	}
	eventDispatcher.Subscribe(event.EnemyKilled, ps)
	return ps
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *ProgressionSystem) OnEvent(e event.Event) {
	if e.Type != event.EnemyKilled {
		return
	}
	s.AddExperience(s.state.Tuning.XPPerKill)
}

// AddExperience adds xp and levels up once the threshold is reached.
// Experience resets to zero on level-up.
func (s *ProgressionSystem) AddExperience(xp int) {
	if xp <= 0 {
		return
	}
	s.state.Experience += xp
	if s.state.Experience >= s.state.Tuning.XPPerLevel {
		s.state.Level++
		s.state.Experience = 0
		s.levelUp()
	}
}

func (s *ProgressionSystem) levelUp() {
	idx := s.rng.ChooseWeighted(defs.BenefitWeights())
	if idx < 0 {
		return
	}
	benefit := defs.BenefitTable[idx]
	ApplyBenefit(&s.state.Player.Stats, benefit)

	s.effects.ShowLevelUpPopup(benefit.Text())
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.LevelUp,
		Data: event.LevelUpData{Level: s.state.Level, Benefit: benefit.Text()},
	})
}

// ApplyBenefit adds the benefit's amount to the matching gained stat.
func ApplyBenefit(stats *component.Stats, benefit defs.Benefit) {
	switch benefit.Stat {
	case defs.StatAttackPower:
		stats.GainedAttackPower += int(benefit.Amount)
	case defs.StatAttackSpeed:
		stats.GainedAttackSpeed += benefit.Amount
	case defs.StatAttackRange:
		stats.GainedAttackRange += benefit.Amount
	case defs.StatCritChance:
		stats.GainedCriticalHitChance += benefit.Amount
	case defs.StatCritDamage:
		stats.GainedCriticalHitDamage += benefit.Amount
	}
}

// AdvanceWorldLevel is called once per fully cleared wave.
func (s *ProgressionSystem) AdvanceWorldLevel() {
	s.state.WorldLevel++
	s.state.SkillPoints++
	s.waves.StartWave()

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.WaveCleared,
		Data: event.WaveClearedData{
			WorldLevel:  s.state.WorldLevel,
			SkillPoints: s.state.SkillPoints,
			Enemies:     len(s.state.Enemies),
		},
	})
}

// SpendSkillPoint doubles the gained value of stat and consumes one point.
// Without points, or for an unknown stat, nothing changes.
func (s *ProgressionSystem) SpendSkillPoint(stat defs.Stat) bool {
	if s.state.SkillPoints <= 0 || !stat.Valid() {
		return false
	}

	stats := &s.state.Player.Stats
	var gained float64
	switch stat {
	case defs.StatAttackPower:
		stats.GainedAttackPower *= 2
		gained = float64(stats.GainedAttackPower)
	case defs.StatAttackSpeed:
		stats.GainedAttackSpeed *= 2
		gained = stats.GainedAttackSpeed
	case defs.StatAttackRange:
		stats.GainedAttackRange *= 2
		gained = stats.GainedAttackRange
	case defs.StatCritChance:
		stats.GainedCriticalHitChance *= 2
		gained = stats.GainedCriticalHitChance
	case defs.StatCritDamage:
		stats.GainedCriticalHitDamage *= 2
		gained = stats.GainedCriticalHitDamage
	}
	s.state.SkillPoints--

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.SkillSpent,
		Data: event.SkillSpentData{Stat: stat.String(), Gained: gained, SkillPoints: s.state.SkillPoints},
	})
	return true
}
