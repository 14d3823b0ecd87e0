package factory

import (
	"github.com/automoto/wavebreak/archetypes"
	"github.com/automoto/wavebreak/components"
	cfg "github.com/automoto/wavebreak/config"
	"github.com/automoto/wavebreak/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

func CreateTurret(ecs *ecs.ECS, pos dmath.Vec2, c cfg.TurretPowerupConfig) *donburi.Entry {
	turret := archetypes.Turret.Spawn(ecs)
	components.Kind.SetValue(turret, tags.CategoryTurret)
	components.Transform.SetValue(turret, components.TransformData{Position: pos})
	components.Turret.SetValue(turret, components.TurretData{
		FireRate:      c.FireRate,
		Range:         c.Range,
		Damage:        c.Damage,
		SpreadDegrees: c.SpreadDegrees,
		BulletSpeed:   c.BulletSpeed,
	})
	components.Lifetime.Get(turret).Timer.Start(c.Lifetime)
	return turret
}
