package systems

import (
	"fmt"
	"log"

	"github.com/automoto/wavebreak/components"
	cfg "github.com/automoto/wavebreak/config"
	"github.com/automoto/wavebreak/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// resolveDeath runs an enemy's death side effects, once, in order: splash,
// payout, drops, population, destruction request.
func resolveDeath(ecs *ecs.ECS, e *donburi.Entry) {
	if e.HasComponent(components.Death) {
		return
	}
	donburi.Add(e, components.Death, &components.DeathData{})
	components.Death.Get(e).Timer.Start(cfg.Enemy.DeathLinger)

	// Owned timers die with the entity
	status := components.Status.Get(e)
	status.Freeze.Stop()

	enemy := components.Enemy.Get(e)
	tc := enemy.TypeConfig
	if tc == nil {
		tc = &cfg.EnemyTypeConfig{}
	}
	pos := positionOf(e)
	hooks := components.GetHooks(ecs.World)

	if enemy.Variant == cfg.VariantBomber {
		factory.CreateEffect(ecs, factory.EffectExplosion, pos, 1)
		hits := applySplash(ecs, pos, tc.ExplosionRadius, tc.ExplosionDamage)
		if hits > 0 {
			log.Printf("[combat] %s explosion hit %d target(s) for %d", enemy.TypeName, hits, tc.ExplosionDamage)
		}
	}

	if hooks.Progression != nil {
		hooks.Progression.GrantCurrency(enemy.RewardValue)
		hooks.Progression.NotifyKill()
	}
	if hooks.Feedback != nil {
		hooks.Feedback.FloatingText(dmath.Vec2{X: pos.X, Y: pos.Y - 1}, fmt.Sprintf("+%d", enemy.RewardValue))
	}

	dropLoot(ecs, enemy, tc, pos)
	factory.CreateEffect(ecs, factory.EffectDeath, pos, 1)

	OnEntityDied(ecs)
}

func dropLoot(ecs *ecs.ECS, enemy *components.EnemyData, tc *cfg.EnemyTypeConfig, pos dmath.Vec2) {
	rng := components.RNG(ecs.World)
	if tc.XPOrbDropChance > 0 && rng.Float64() <= tc.XPOrbDropChance {
		factory.CreatePickup(ecs, components.PickupXPOrb, tc.XPValue, pos)
	}
	if enemy.Variant == cfg.VariantBoss {
		factory.CreatePickup(ecs, components.PickupPowerupOrb, 1, pos)
	}
}

// UpdateDeaths removes entries whose death linger has run out.
func UpdateDeaths(ecs *ecs.ECS) {
	dt := components.DeltaTime(ecs.World)
	var toRemove []*donburi.Entry

	components.Death.Each(ecs.World, func(e *donburi.Entry) {
		death := components.Death.Get(e)
		if death.Timer.Tick(dt) || !death.Timer.Active() {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		factory.Destroy(ecs, e)
	}
}
