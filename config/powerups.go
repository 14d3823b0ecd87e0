package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// PowerupID names the equipped powerup.
type PowerupID int

const (
	PowerupNone PowerupID = iota
	PowerupShield
	PowerupEMP
	PowerupDecoy
	PowerupSnowStorm
	PowerupTurret
	PowerupCount // Must be last - used for array sizing
)

var powerupNames = map[PowerupID]string{
	PowerupNone:      "none",
	PowerupShield:    "shield",
	PowerupEMP:       "emp",
	PowerupDecoy:     "decoy",
	PowerupSnowStorm: "snowstorm",
	PowerupTurret:    "turret",
}

func (p PowerupID) String() string {
	if name, ok := powerupNames[p]; ok {
		return name
	}
	return fmt.Sprintf("powerup(%d)", int(p))
}

// ParsePowerup maps a powerup name to its ID.
func ParsePowerup(name string) (PowerupID, error) {
	for id, n := range powerupNames {
		if strings.EqualFold(n, name) {
			return id, nil
		}
	}
	return PowerupNone, fmt.Errorf("unknown powerup %q", name)
}

func (p *PowerupID) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return err
	}
	parsed, err := ParsePowerup(name)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

type ShieldPowerupConfig struct {
	Duration float64 `yaml:"duration"`
	Cooldown float64 `yaml:"cooldown"`
}

type EMPPowerupConfig struct {
	Radius         float64 `yaml:"radius"`
	FreezeDuration float64 `yaml:"freezeDuration"`
	Cooldown       float64 `yaml:"cooldown"`
}

type DecoyPowerupConfig struct {
	Lifetime float64 `yaml:"lifetime"`
	Cooldown float64 `yaml:"cooldown"`
}

type SnowStormPowerupConfig struct {
	Duration       float64 `yaml:"duration"`
	Cooldown       float64 `yaml:"cooldown"`
	Radius         float64 `yaml:"radius"`
	SlowMultiplier float64 `yaml:"slowMultiplier"`
}

type TurretPowerupConfig struct {
	Lifetime      float64 `yaml:"lifetime"`
	Cooldown      float64 `yaml:"cooldown"`
	Range         float64 `yaml:"range"`
	FireRate      float64 `yaml:"fireRate"` // seconds between volleys
	Damage        float64 `yaml:"damage"`
	SpreadDegrees float64 `yaml:"spreadDegrees"`
	BulletSpeed   float64 `yaml:"bulletSpeed"`
}

// PowerupConfig holds the equipped powerup and every powerup's tuning.
type PowerupConfig struct {
	Equipped  PowerupID              `yaml:"equipped"`
	Shield    ShieldPowerupConfig    `yaml:"shield"`
	EMP       EMPPowerupConfig       `yaml:"emp"`
	Decoy     DecoyPowerupConfig     `yaml:"decoy"`
	SnowStorm SnowStormPowerupConfig `yaml:"snowStorm"`
	Turret    TurretPowerupConfig    `yaml:"turret"`
}

var Powerups PowerupConfig

func defaultPowerups() PowerupConfig {
	return PowerupConfig{
		Equipped: PowerupEMP,
		Shield: ShieldPowerupConfig{
			Duration: 5,
			Cooldown: 10,
		},
		EMP: EMPPowerupConfig{
			Radius:         5,
			FreezeDuration: 3,
			Cooldown:       10,
		},
		Decoy: DecoyPowerupConfig{
			Lifetime: 10,
			Cooldown: 15,
		},
		SnowStorm: SnowStormPowerupConfig{
			Duration:       5,
			Cooldown:       10,
			Radius:         3,
			SlowMultiplier: 0.5,
		},
		Turret: TurretPowerupConfig{
			Lifetime:      10,
			Cooldown:      15,
			Range:         10,
			FireRate:      0.2,
			Damage:        10,
			SpreadDegrees: 5,
			BulletSpeed:   10,
		},
	}
}
