package components

import (
	"github.com/automoto/wavebreak/config"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	TypeName   string                  // "Grunt", "Gunner", "Bomber", "Brute" etc...
	TypeConfig *config.EnemyTypeConfig // Cached reference to type configuration
	Variant    config.Variant
	BossStyle  config.Variant // Melee or Ranged, only read for bosses

	MoveSpeed   float64 // Current speed; zero while frozen
	AttackRange float64

	AttackCooldown          float64 // Seconds between attacks
	AttackCooldownRemaining float64 // >= 0
	AttackDamage            int
	RewardValue             int

	Facing float64 // Radians
}

// Style is the behaviour the enemy fights with. Bosses borrow the melee or
// ranged behaviour; bombers fight as melee.
func (e *EnemyData) Style() config.Variant {
	switch e.Variant {
	case config.VariantBoss:
		if e.BossStyle == config.VariantRanged {
			return config.VariantRanged
		}
		return config.VariantMelee
	case config.VariantRanged:
		return config.VariantRanged
	}
	return config.VariantMelee
}

var Enemy = donburi.NewComponentType[EnemyData]()
