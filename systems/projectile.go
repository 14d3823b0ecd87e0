package systems

import (
	"github.com/automoto/wavebreak/components"
	cfg "github.com/automoto/wavebreak/config"
	"github.com/automoto/wavebreak/shared/gamemath"
	"github.com/automoto/wavebreak/systems/factory"
	"github.com/automoto/wavebreak/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// projectileMargin is how far outside the arena a projectile may travel.
const projectileMargin = 5

// ProjectileLauncher is the default Launcher hook.
type ProjectileLauncher struct {
	ecs *ecs.ECS
}

func NewProjectileLauncher(ecs *ecs.ECS) *ProjectileLauncher {
	return &ProjectileLauncher{ecs: ecs}
}

func (l *ProjectileLauncher) Fire(shot components.Shot) {
	if shot.Speed <= 0 {
		return
	}
	factory.CreateProjectile(l.ecs, shot)
}

// UpdateProjectiles moves projectiles in straight lines and resolves hits.
// Enemy shots hurt the player and are stopped by decoys; player and turret
// shots hurt enemies.
func UpdateProjectiles(ecs *ecs.ECS) {
	dt := components.DeltaTime(ecs.World)
	var toRemove []*donburi.Entry

	var arena *components.ArenaData
	if arenaEntry, ok := components.Arena.First(ecs.World); ok {
		arena = components.Arena.Get(arenaEntry)
	}

	for _, e := range snapshot(ecs.World, components.Projectile) {
		p := components.Projectile.Get(e)
		pos := positionOf(e)
		pos.X += p.Velocity.X * dt
		pos.Y += p.Velocity.Y * dt
		setPosition(e, pos)

		if arena != nil && outOfBounds(arena, pos) {
			toRemove = append(toRemove, e)
			continue
		}
		if checkProjectileHit(ecs, e, p, pos) {
			toRemove = append(toRemove, e)
		}
	}

	for _, e := range toRemove {
		factory.Destroy(ecs, e)
	}
}

func outOfBounds(arena *components.ArenaData, pos dmath.Vec2) bool {
	return pos.X < -projectileMargin || pos.Y < -projectileMargin ||
		pos.X > arena.Width+projectileMargin || pos.Y > arena.Height+projectileMargin
}

func checkProjectileHit(ecs *ecs.ECS, e *donburi.Entry, p *components.ProjectileData, pos dmath.Vec2) bool {
	if p.Owner == tags.CategoryEnemy {
		for _, target := range queryArea(ecs.World, pos, cfg.Projectile.Radius, tags.ResolvPlayer, tags.ResolvDecoy) {
			if !touching(pos, target) {
				continue
			}
			switch components.KindOf(target) {
			case tags.CategoryPlayer:
				if components.Player.Get(target).Dead {
					continue
				}
				DamagePlayer(ecs, target, p.Damage, DamageDirect)
				return true
			case tags.CategoryDecoy:
				components.Decoy.Get(target).Hits++
				return true
			}
		}
		return false
	}

	for _, target := range queryArea(ecs.World, pos, cfg.Projectile.Radius, tags.ResolvEnemy) {
		if target.HasComponent(components.Death) || !touching(pos, target) {
			continue
		}
		ApplyDamage(ecs, target, p.Damage)
		factory.CreateEffect(ecs, factory.EffectImpact, pos, cfg.Combat.FlashDuration)
		return true
	}
	return false
}

// touching is the exact test: projectile circle against the target's bounding circle.
func touching(pos dmath.Vec2, target *donburi.Entry) bool {
	reach := cfg.Projectile.Radius
	if target.HasComponent(components.Object) {
		if obj := components.Object.Get(target); obj.Object != nil {
			_, _, w, _ := obj.Bounds()
			reach += w / 2
		}
	}
	return gamemath.Distance(pos, positionOf(target)) <= reach
}
