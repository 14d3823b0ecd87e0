package config

import (
	"fmt"
	"strings"

	"github.com/yohamta/donburi/ecs"
	"gopkg.in/yaml.v3"
)

// Default is the layer every simulated entity is created on.
const Default ecs.LayerID = 0

// Variant is the behavioural subtype of a combat entity.
type Variant int

const (
	VariantMelee Variant = iota
	VariantRanged
	VariantBomber
	VariantBoss
)

var variantNames = map[Variant]string{
	VariantMelee:  "melee",
	VariantRanged: "ranged",
	VariantBomber: "bomber",
	VariantBoss:   "boss",
}

func (v Variant) String() string {
	if name, ok := variantNames[v]; ok {
		return name
	}
	return fmt.Sprintf("variant(%d)", int(v))
}

// ParseVariant maps a variant name from a tuning file to its value.
func ParseVariant(name string) (Variant, error) {
	for v, n := range variantNames {
		if strings.EqualFold(n, name) {
			return v, nil
		}
	}
	return 0, fmt.Errorf("unknown variant %q", name)
}

// UnmarshalYAML lets tuning files spell variants by name.
func (v *Variant) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return err
	}
	parsed, err := ParseVariant(name)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// MarshalYAML writes the variant name.
func (v Variant) MarshalYAML() (any, error) {
	return v.String(), nil
}

// EnemyTypeConfig is one spawnable enemy template.
type EnemyTypeConfig struct {
	Name      string  `yaml:"name"`
	Variant   Variant `yaml:"variant"`
	BossStyle Variant `yaml:"bossStyle"` // melee or ranged, only read for bosses

	Health          float64 `yaml:"health"`
	CollisionRadius float64 `yaml:"collisionRadius"`

	// Movement
	MoveSpeed          float64 `yaml:"moveSpeed"`
	StopDistance       float64 `yaml:"stopDistance"`       // melee
	SpeedupRadius      float64 `yaml:"speedupRadius"`      // melee charge beyond this distance
	SpeedupMultiplier  float64 `yaml:"speedupMultiplier"`  // melee charge factor
	RangedStopDistance float64 `yaml:"rangedStopDistance"` // ranged

	// Attack
	AttackRange     float64 `yaml:"attackRange"`
	AttackCooldown  float64 `yaml:"attackCooldown"` // seconds
	AttackDamage    int     `yaml:"attackDamage"`
	ProjectileSpeed float64 `yaml:"projectileSpeed"`
	FirePointRadius float64 `yaml:"firePointRadius"`

	// Bomber splash
	ExplosionRadius float64 `yaml:"explosionRadius"`
	ExplosionDamage int     `yaml:"explosionDamage"`

	// Payout
	RewardValue     int     `yaml:"rewardValue"`
	XPValue         int     `yaml:"xpValue"`
	XPOrbDropChance float64 `yaml:"xpOrbDropChance"` // 0..1
}

// IsRanged reports whether the template kites and fires instead of closing in.
func (c *EnemyTypeConfig) IsRanged() bool {
	if c.Variant == VariantBoss {
		return c.BossStyle == VariantRanged
	}
	return c.Variant == VariantRanged
}

// EnemyConfig holds every enemy template keyed by name.
type EnemyConfig struct {
	Types map[string]EnemyTypeConfig `yaml:"types"`

	// Seconds a dead entity lingers before it is removed from the world
	DeathLinger float64 `yaml:"deathLinger"`
}

// WaveConfig drives the wave director.
type WaveConfig struct {
	StartNumber      int      `yaml:"startNumber"`
	StartQuota       int      `yaml:"startQuota"`
	SpawnInterval    float64  `yaml:"spawnInterval"` // seconds between spawns
	AdvanceDelay     float64  `yaml:"advanceDelay"`  // seconds between clear and next wave
	SpawnRadius      float64  `yaml:"spawnRadius"`
	BossEvery        int      `yaml:"bossEvery"`
	QuotaGrowthEvery int      `yaml:"quotaGrowthEvery"`
	RemainingNotice  int      `yaml:"remainingNotice"` // announce when this many or fewer remain
	Templates        []string `yaml:"templates"`
	BossTemplate     string   `yaml:"bossTemplate"`
}

// CombatConfig holds shared combat values.
type CombatConfig struct {
	ShieldFactor  float64 `yaml:"shieldFactor"` // multiplier applied to direct hits while shielded
	FlashDuration float64 `yaml:"flashDuration"`
}

// PlayerConfig holds player values.
type PlayerConfig struct {
	Health               float64 `yaml:"health"`
	MoveSpeed            float64 `yaml:"moveSpeed"`
	CollisionRadius      float64 `yaml:"collisionRadius"`
	Regeneration         float64 `yaml:"regeneration"`         // fraction of max health per second
	SafeZoneRegeneration float64 `yaml:"safeZoneRegeneration"` // fraction per second inside a safe zone
	RespawnDelay         float64 `yaml:"respawnDelay"`

	// Basic weapon
	ShotDamage   float64 `yaml:"shotDamage"`
	ShotCooldown float64 `yaml:"shotCooldown"`
	ShotSpeed    float64 `yaml:"shotSpeed"`
}

// ProgressionConfig holds currency and experience values.
type ProgressionConfig struct {
	MaxCoins              int     `yaml:"maxCoins"`
	PassiveIncome         int     `yaml:"passiveIncome"`
	PassiveIncomeInterval float64 `yaml:"passiveIncomeInterval"`
	XPToFirstLevel        int     `yaml:"xpToFirstLevel"`
	XPLevelGrowth         int     `yaml:"xpLevelGrowth"`
}

// PickupConfig holds pickup values.
type PickupConfig struct {
	CollectRadius float64 `yaml:"collectRadius"`
	Size          float64 `yaml:"size"`
}

// ProjectileConfig holds projectile values shared by every shooter.
type ProjectileConfig struct {
	Radius   float64 `yaml:"radius"`
	Lifetime float64 `yaml:"lifetime"`
}

// ArenaConfig describes the playable area used when no map is loaded.
type ArenaConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	CellSize int `yaml:"cellSize"`
}

// HUDConfig holds notice timings.
type HUDConfig struct {
	RemainingFade float64 `yaml:"remainingFade"`
	BannerTime    float64 `yaml:"bannerTime"`
	BannerFade    float64 `yaml:"bannerFade"`
	BannerRise    float64 `yaml:"bannerRise"`
}

// Global configuration instances
var Enemy EnemyConfig
var Wave WaveConfig
var Combat CombatConfig
var Player PlayerConfig
var Progression ProgressionConfig
var Pickups PickupConfig
var Projectile ProjectileConfig
var Arena ArenaConfig
var HUD HUDConfig

func init() {
	Wave = WaveConfig{
		StartNumber:      1,
		StartQuota:       5,
		SpawnInterval:    0.4,
		AdvanceDelay:     3,
		SpawnRadius:      10,
		BossEvery:        5,
		QuotaGrowthEvery: 2,
		RemainingNotice:  5,
		Templates:        []string{"Grunt", "Gunner", "Bomber"},
		BossTemplate:     "Brute",
	}

	Combat = CombatConfig{
		ShieldFactor:  0.2,
		FlashDuration: 0.1,
	}

	Player = PlayerConfig{
		Health:               100,
		MoveSpeed:            5,
		CollisionRadius:      0.5,
		Regeneration:         0.01,
		SafeZoneRegeneration: 0.1,
		RespawnDelay:         6, // fade in, hold, stash, fade out

		ShotDamage:   25,
		ShotCooldown: 0.25,
		ShotSpeed:    20,
	}

	Progression = ProgressionConfig{
		MaxCoins:              100000,
		PassiveIncome:         1,
		PassiveIncomeInterval: 1.5,
		XPToFirstLevel:        100,
		XPLevelGrowth:         50,
	}

	Pickups = PickupConfig{
		CollectRadius: 1,
		Size:          0.5,
	}

	Projectile = ProjectileConfig{
		Radius:   0.15,
		Lifetime: 4,
	}

	Arena = ArenaConfig{
		Width:    200,
		Height:   200,
		CellSize: 2,
	}

	HUD = HUDConfig{
		RemainingFade: 2,
		BannerTime:    1.5,
		BannerFade:    1,
		BannerRise:    50,
	}

	Enemy = EnemyConfig{
		DeathLinger: 0.5,
		Types: map[string]EnemyTypeConfig{
			"Grunt": {
				Name:              "Grunt",
				Variant:           VariantMelee,
				Health:            100,
				CollisionRadius:   0.5,
				MoveSpeed:         2,
				StopDistance:      2,
				SpeedupRadius:     10,
				SpeedupMultiplier: 3,
				AttackRange:       2,
				AttackCooldown:    1,
				AttackDamage:      10,
				RewardValue:       5,
				XPValue:           10,
				XPOrbDropChance:   1,
			},
			"Gunner": {
				Name:               "Gunner",
				Variant:            VariantRanged,
				Health:             60,
				CollisionRadius:    0.5,
				MoveSpeed:          2,
				RangedStopDistance: 5,
				AttackRange:        5,
				AttackCooldown:     1.5,
				AttackDamage:       8,
				ProjectileSpeed:    10,
				FirePointRadius:    0.5,
				RewardValue:        8,
				XPValue:            12,
				XPOrbDropChance:    1,
			},
			"Bomber": {
				Name:              "Bomber",
				Variant:           VariantBomber,
				Health:            40,
				CollisionRadius:   0.5,
				MoveSpeed:         3,
				StopDistance:      1,
				SpeedupRadius:     10,
				SpeedupMultiplier: 3,
				AttackRange:       1,
				AttackCooldown:    1,
				AttackDamage:      5,
				ExplosionRadius:   3,
				ExplosionDamage:   20,
				RewardValue:       6,
				XPValue:           10,
				XPOrbDropChance:   0.75,
			},
			"Brute": {
				Name:              "Brute",
				Variant:           VariantBoss,
				BossStyle:         VariantMelee,
				Health:            1000,
				CollisionRadius:   1.2,
				MoveSpeed:         1.5,
				StopDistance:      2.5,
				SpeedupRadius:     14,
				SpeedupMultiplier: 3,
				AttackRange:       2.5,
				AttackCooldown:    1.2,
				AttackDamage:      25,
				RewardValue:       100,
				XPValue:           150,
				XPOrbDropChance:   1,
			},
		},
	}

	Powerups = defaultPowerups()
	Input = defaultInput()
}
