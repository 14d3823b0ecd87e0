package systems

import (
	"github.com/automoto/wavebreak/components"
	cfg "github.com/automoto/wavebreak/config"
	"github.com/automoto/wavebreak/shared/gamemath"
	"github.com/automoto/wavebreak/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

const defaultSpeedupMultiplier = 3

// UpdateEnemies ticks every enemy against this frame's targets. Movement is
// applied immediately, so later enemies see earlier ones already moved.
func UpdateEnemies(ecs *ecs.ECS) {
	dt := components.DeltaTime(ecs.World)
	player, decoys := collectTargets(ecs)

	for _, e := range snapshot(ecs.World, tags.Enemy) {
		TickEnemy(ecs, e, dt, player, decoys)
	}
}

// TickEnemy advances one enemy by dt: pick a target, face it, then move or
// attack according to its fighting style. Frozen and dying enemies are skipped.
func TickEnemy(ecs *ecs.ECS, e *donburi.Entry, dt float64, player *Candidate, decoys []Candidate) {
	if e == nil || !e.Valid() || e.HasComponent(components.Death) {
		return
	}
	status := components.Status.Get(e)
	if status.Frozen {
		return
	}

	enemy := components.Enemy.Get(e)
	pos := positionOf(e)

	target, ok := SelectTarget(pos, player, decoys)
	if !ok {
		return
	}
	enemy.Facing = gamemath.FacingAngle(pos, target.Position)
	distance := gamemath.Distance(pos, target.Position)

	tc := enemy.TypeConfig
	if tc == nil {
		tc = &cfg.EnemyTypeConfig{}
	}

	if enemy.Style() == cfg.VariantRanged {
		tickRanged(ecs, e, enemy, status, tc, pos, target, distance, dt)
		return
	}
	tickMelee(ecs, e, enemy, status, tc, pos, target, distance, dt)
}

func tickMelee(ecs *ecs.ECS, e *donburi.Entry, enemy *components.EnemyData, status *components.StatusData, tc *cfg.EnemyTypeConfig, pos dmath.Vec2, target Candidate, distance, dt float64) {
	if distance > tc.StopDistance {
		speed := status.Speed(enemy.MoveSpeed)
		if tc.SpeedupRadius > 0 && distance > tc.SpeedupRadius {
			mult := tc.SpeedupMultiplier
			if mult <= 0 {
				mult = defaultSpeedupMultiplier
			}
			speed *= mult
		}
		setPosition(e, gamemath.MoveTowards(pos, target.Position, speed*dt))
		return
	}

	countdown(enemy, dt)
	if distance <= enemy.AttackRange && enemy.AttackCooldownRemaining <= 0 {
		meleeAttack(ecs, enemy, target)
		enemy.AttackCooldownRemaining = enemy.AttackCooldown
	}
}

func tickRanged(ecs *ecs.ECS, e *donburi.Entry, enemy *components.EnemyData, status *components.StatusData, tc *cfg.EnemyTypeConfig, pos dmath.Vec2, target Candidate, distance, dt float64) {
	if distance > tc.RangedStopDistance {
		setPosition(e, gamemath.MoveTowards(pos, target.Position, status.Speed(enemy.MoveSpeed)*dt))
		return
	}

	countdown(enemy, dt)
	if enemy.AttackCooldownRemaining <= 0 {
		fireAt(ecs, enemy, tc, pos, target)
		enemy.AttackCooldownRemaining = enemy.AttackCooldown
	}
}

func countdown(enemy *components.EnemyData, dt float64) {
	enemy.AttackCooldownRemaining -= dt
	if enemy.AttackCooldownRemaining < 0 {
		enemy.AttackCooldownRemaining = 0
	}
}

// meleeAttack hurts the player; decoys absorb the hit.
func meleeAttack(ecs *ecs.ECS, enemy *components.EnemyData, target Candidate) {
	switch target.Category {
	case tags.CategoryPlayer:
		DamagePlayer(ecs, target.Entry, float64(enemy.AttackDamage), DamageDirect)
	case tags.CategoryDecoy:
		if target.Entry.Valid() && target.Entry.HasComponent(components.Decoy) {
			components.Decoy.Get(target.Entry).Hits++
		}
	}
}

// fireAt hands a Shot to the launcher. The core only decides timing,
// direction and damage; travel and impact belong to the projectile system.
func fireAt(ecs *ecs.ECS, enemy *components.EnemyData, tc *cfg.EnemyTypeConfig, pos dmath.Vec2, target Candidate) {
	launcher := components.GetHooks(ecs.World).Launcher
	if launcher == nil {
		return
	}
	dir := gamemath.Direction(pos, target.Position)
	launcher.Fire(components.Shot{
		Owner:     tags.CategoryEnemy,
		Origin:    dmath.Vec2{X: pos.X + dir.X*tc.FirePointRadius, Y: pos.Y + dir.Y*tc.FirePointRadius},
		Direction: dir,
		Damage:    float64(enemy.AttackDamage),
		Speed:     tc.ProjectileSpeed,
	})
}
