// internal/defs/benefits.go
package defs

import "fmt"

// Stat identifies one of the player's upgradable combat stats.
type Stat int

const (
	StatAttackPower Stat = iota
	StatAttackSpeed
	StatAttackRange
	StatCritChance
	StatCritDamage
)

// AllStats lists the upgradable stats in display order.
var AllStats = []Stat{StatAttackPower, StatAttackSpeed, StatAttackRange, StatCritChance, StatCritDamage}

func (s Stat) String() string {
	switch s {
	case StatAttackPower:
		return "Attack Power"
	case StatAttackSpeed:
		return "Attack Speed"
	case StatAttackRange:
		return "Attack Range"
	case StatCritChance:
		return "Critical Chance"
	case StatCritDamage:
		return "Critical Hit Damage"
	default:
		return fmt.Sprintf("Stat(%d)", int(s))
	}
}

// Valid reports whether s is a known stat.
func (s Stat) Valid() bool {
	return s >= StatAttackPower && s <= StatCritDamage
}

// Benefit is one entry of the level-up table: a flat increment to a gained stat.
type Benefit struct {
	Stat   Stat
	Amount float64
	Weight int
}

// BenefitTable is the level-up reward pool. All entries are equally likely.
var BenefitTable = []Benefit{
	{Stat: StatAttackPower, Amount: 5, Weight: 1},
	{Stat: StatAttackSpeed, Amount: 0.1, Weight: 1},
	{Stat: StatAttackRange, Amount: 5, Weight: 1},
	{Stat: StatCritChance, Amount: 5, Weight: 1},
	{Stat: StatCritDamage, Amount: 50, Weight: 1},
}

// BenefitWeights returns the weights of BenefitTable in order.
func BenefitWeights() []int {
	weights := make([]int, len(BenefitTable))
	for i, b := range BenefitTable {
		weights[i] = b.Weight
	}
	return weights
}

// Text renders the benefit the way the level-up banner shows it.
func (b Benefit) Text() string {
	switch b.Stat {
	case StatAttackSpeed:
		return fmt.Sprintf("+%.1f %s", b.Amount, b.Stat)
	case StatCritChance:
		return fmt.Sprintf("+%g%% %s", b.Amount, b.Stat)
	default:
		return fmt.Sprintf("+%g %s", b.Amount, b.Stat)
	}
}
