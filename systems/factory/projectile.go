package factory

import (
	"github.com/automoto/wavebreak/archetypes"
	"github.com/automoto/wavebreak/components"
	"github.com/automoto/wavebreak/config"
	"github.com/automoto/wavebreak/shared/gamemath"
	"github.com/automoto/wavebreak/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreateProjectile spawns a projectile travelling along shot.Direction.
func CreateProjectile(ecs *ecs.ECS, shot components.Shot) *donburi.Entry {
	p := archetypes.Projectile.Spawn(ecs)
	components.Kind.SetValue(p, tags.CategoryProjectile)
	components.Transform.SetValue(p, components.TransformData{Position: shot.Origin})
	attachObject(ecs, p, shot.Origin, config.Projectile.Radius*2, tags.ResolvProjectile)

	dir := gamemath.Direction(dmath.Vec2{}, shot.Direction)
	components.Projectile.SetValue(p, components.ProjectileData{
		Owner:    shot.Owner,
		Damage:   shot.Damage,
		Velocity: dmath.Vec2{X: dir.X * shot.Speed, Y: dir.Y * shot.Speed},
	})
	components.Lifetime.Get(p).Timer.Start(config.Projectile.Lifetime)
	return p
}
