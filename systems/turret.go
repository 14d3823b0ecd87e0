package systems

import (
	"math"

	"github.com/automoto/wavebreak/components"
	"github.com/automoto/wavebreak/shared/gamemath"
	"github.com/automoto/wavebreak/systems/factory"
	"github.com/automoto/wavebreak/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateTurrets fires each turret at the nearest live enemy in range. Turret
// volleys hit instantly; the impact effect is scattered by the spread angle.
func UpdateTurrets(ecs *ecs.ECS) {
	dt := components.DeltaTime(ecs.World)
	rng := components.RNG(ecs.World)

	for _, e := range snapshot(ecs.World, components.Turret) {
		turret := components.Turret.Get(e)
		pos := positionOf(e)

		target, ok := nearestEnemy(ecs, pos, turret.Range)
		if !ok {
			continue
		}
		turret.Fire.Start(0)
		if !turret.Fire.Tick(dt) {
			continue
		}
		turret.Fire.Restart(turret.FireRate)

		targetPos := positionOf(target)
		spread := (rng.Float64()*2 - 1) * turret.SpreadDegrees * math.Pi / 180
		angle := gamemath.FacingAngle(pos, targetPos) + spread
		impact := gamemath.PointOnCircle(pos, gamemath.Distance(pos, targetPos), angle)

		ApplyDamage(ecs, target, turret.Damage)
		factory.CreateEffect(ecs, factory.EffectImpact, impact, 0.1)
	}
}

func nearestEnemy(ecs *ecs.ECS, origin dmath.Vec2, maxRange float64) (*donburi.Entry, bool) {
	var best *donburi.Entry
	bestDist := math.Inf(1)
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			return
		}
		dist := gamemath.Distance(origin, positionOf(e))
		if dist <= maxRange && dist < bestDist {
			best = e
			bestDist = dist
		}
	})
	return best, best != nil
}
