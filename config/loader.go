package config

import (
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// Tuning is the on-disk shape of a tuning overlay. Sections that are absent
// keep their current values; enemy types present in the file replace the
// same-named defaults wholesale.
type Tuning struct {
	Wave        WaveConfig        `yaml:"wave"`
	Enemy       EnemyConfig       `yaml:"enemy"`
	Combat      CombatConfig      `yaml:"combat"`
	Player      PlayerConfig      `yaml:"player"`
	Progression ProgressionConfig `yaml:"progression"`
	Pickups     PickupConfig      `yaml:"pickups"`
	Projectile  ProjectileConfig  `yaml:"projectile"`
	Arena       ArenaConfig       `yaml:"arena"`
	HUD         HUDConfig         `yaml:"hud"`
	Powerups    PowerupConfig     `yaml:"powerups"`
}

// Current snapshots the global configuration.
func Current() Tuning {
	types := make(map[string]EnemyTypeConfig, len(Enemy.Types))
	for name, t := range Enemy.Types {
		types[name] = t
	}
	enemy := Enemy
	enemy.Types = types

	wave := Wave
	wave.Templates = append([]string(nil), Wave.Templates...)

	return Tuning{
		Wave:        wave,
		Enemy:       enemy,
		Combat:      Combat,
		Player:      Player,
		Progression: Progression,
		Pickups:     Pickups,
		Projectile:  Projectile,
		Arena:       Arena,
		HUD:         HUD,
		Powerups:    Powerups,
	}
}

// Apply installs t as the global configuration.
func (t Tuning) Apply() {
	Wave = t.Wave
	Enemy = t.Enemy
	Combat = t.Combat
	Player = t.Player
	Progression = t.Progression
	Pickups = t.Pickups
	Projectile = t.Projectile
	Arena = t.Arena
	HUD = t.HUD
	Powerups = t.Powerups
}

// ParseTuning overlays a YAML document on top of base and validates the result.
func ParseTuning(data []byte, base Tuning) (Tuning, error) {
	t := base
	if err := yaml.Unmarshal(data, &t); err != nil {
		return base, fmt.Errorf("failed to parse tuning YAML: %w", err)
	}
	for name, et := range t.Enemy.Types {
		if et.Name == "" {
			et.Name = name
			t.Enemy.Types[name] = et
		}
	}
	if err := t.Validate(); err != nil {
		return base, err
	}
	return t, nil
}

// LoadTuning reads a YAML overlay from fsys and applies it over the current
// global configuration.
func LoadTuning(fsys fs.FS, path string) error {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return fmt.Errorf("failed to read tuning file %s: %w", path, err)
	}
	t, err := ParseTuning(data, Current())
	if err != nil {
		return fmt.Errorf("invalid tuning in %s: %w", path, err)
	}
	t.Apply()
	return nil
}

// Validate checks the cross-references and ranges the simulation relies on.
// Missing templates are not an error here; the wave director degrades to
// no-op spawns and logs it.
func (t Tuning) Validate() error {
	if t.Wave.SpawnInterval < 0 || t.Wave.AdvanceDelay < 0 {
		return fmt.Errorf("wave timings must not be negative")
	}
	if t.Wave.StartQuota < 0 {
		return fmt.Errorf("wave startQuota must not be negative, got %d", t.Wave.StartQuota)
	}
	if t.Wave.SpawnRadius <= 0 {
		return fmt.Errorf("wave spawnRadius must be positive, got %v", t.Wave.SpawnRadius)
	}
	for _, name := range t.Wave.Templates {
		if _, ok := t.Enemy.Types[name]; !ok {
			return fmt.Errorf("wave template %q has no enemy type", name)
		}
	}
	if t.Wave.BossTemplate != "" {
		boss, ok := t.Enemy.Types[t.Wave.BossTemplate]
		if !ok {
			return fmt.Errorf("boss template %q has no enemy type", t.Wave.BossTemplate)
		}
		if boss.Variant != VariantBoss {
			return fmt.Errorf("boss template %q has variant %s", t.Wave.BossTemplate, boss.Variant)
		}
	}
	for name, et := range t.Enemy.Types {
		if et.Health <= 0 {
			return fmt.Errorf("enemy %s: health must be positive, got %v", name, et.Health)
		}
		if et.XPOrbDropChance < 0 || et.XPOrbDropChance > 1 {
			return fmt.Errorf("enemy %s: xpOrbDropChance must be within [0,1], got %v", name, et.XPOrbDropChance)
		}
		if et.Variant == VariantBomber && et.ExplosionRadius <= 0 {
			return fmt.Errorf("enemy %s: bomber needs a positive explosionRadius", name)
		}
	}
	if t.Combat.ShieldFactor < 0 || t.Combat.ShieldFactor > 1 {
		return fmt.Errorf("combat shieldFactor must be within [0,1], got %v", t.Combat.ShieldFactor)
	}
	if t.Arena.Width <= 0 || t.Arena.Height <= 0 || t.Arena.CellSize <= 0 {
		return fmt.Errorf("arena dimensions must be positive")
	}
	return nil
}
