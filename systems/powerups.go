package systems

import (
	"log"
	"math"

	"github.com/automoto/wavebreak/components"
	cfg "github.com/automoto/wavebreak/config"
	"github.com/automoto/wavebreak/shared/gamemath"
	"github.com/automoto/wavebreak/systems/factory"
	"github.com/automoto/wavebreak/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdatePowerups runs powerup windows, activates the equipped powerup on a
// fresh ActionPowerup intent and applies snow storm slows.
func UpdatePowerups(ecs *ecs.ECS) {
	stateEntry, ok := components.PowerupState.First(ecs.World)
	if !ok {
		return
	}
	ps := components.PowerupState.Get(stateEntry)
	dt := components.DeltaTime(ecs.World)

	for id := range ps.Gates {
		if ps.Gates[id].Tick(dt) {
			log.Printf("[powerup] %s ended", cfg.PowerupID(id))
		}
	}

	if e, ok := tags.Player.First(ecs.World); ok && !components.Player.Get(e).Dead {
		if components.PlayerInput.Get(e).JustPressed(cfg.ActionPowerup) {
			ActivatePowerup(ecs, ps.Equipped)
		}
	}

	applySnowStorms(ecs)
}

// ActivatePowerup fires powerup id at the player's position. It returns false
// while the powerup is active or cooling down, or when there is no live player.
func ActivatePowerup(ecs *ecs.ECS, id cfg.PowerupID) bool {
	if id <= cfg.PowerupNone || id >= cfg.PowerupCount {
		return false
	}
	stateEntry, ok := components.PowerupState.First(ecs.World)
	if !ok {
		return false
	}
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok || components.Player.Get(playerEntry).Dead {
		return false
	}
	gate := &components.PowerupState.Get(stateEntry).Gates[id]
	pos := positionOf(playerEntry)
	p := cfg.Powerups

	switch id {
	case cfg.PowerupShield:
		if !gate.Trigger(p.Shield.Duration, p.Shield.Cooldown) {
			return false
		}
	case cfg.PowerupEMP:
		if !gate.Trigger(0, p.EMP.Cooldown) {
			return false
		}
		factory.CreateEffect(ecs, factory.EffectEMP, pos, 1)
		frozen := EMPPulse(ecs, pos, p.EMP.Radius, p.EMP.FreezeDuration)
		log.Printf("[powerup] emp froze %d enemies", frozen)
	case cfg.PowerupDecoy:
		if !gate.Trigger(0, p.Decoy.Cooldown) {
			return false
		}
		factory.CreateDecoy(ecs, pos, p.Decoy.Lifetime)
	case cfg.PowerupSnowStorm:
		if !gate.Trigger(0, p.SnowStorm.Cooldown) {
			return false
		}
		factory.CreateSnowStorm(ecs, pos, p.SnowStorm)
	case cfg.PowerupTurret:
		if !gate.Trigger(0, p.Turret.Cooldown) {
			return false
		}
		factory.CreateTurret(ecs, pos, p.Turret)
	}
	log.Printf("[powerup] %s activated", id)
	return true
}

// EMPPulse freezes every live enemy within radius of center and returns how
// many were newly frozen.
func EMPPulse(ecs *ecs.ECS, center dmath.Vec2, radius, duration float64) int {
	frozen := 0
	for _, e := range nearby(ecs.World, center, radius, tags.Enemy, tags.ResolvEnemy) {
		if gamemath.Distance(center, positionOf(e)) > radius {
			continue
		}
		if Freeze(e, duration) {
			frozen++
		}
	}
	return frozen
}

// applySnowStorms recomputes every enemy's slow from the storms it stands in.
func applySnowStorms(ecs *ecs.ECS) {
	components.Status.Each(ecs.World, func(e *donburi.Entry) {
		components.Status.Get(e).SlowMultiplier = 0
	})

	for _, stormEntry := range snapshot(ecs.World, components.SnowStorm) {
		storm := components.SnowStorm.Get(stormEntry)
		center := positionOf(stormEntry)
		for _, e := range nearby(ecs.World, center, storm.Radius, tags.Enemy, tags.ResolvEnemy) {
			if !e.HasComponent(components.Status) || gamemath.Distance(center, positionOf(e)) > storm.Radius {
				continue
			}
			status := components.Status.Get(e)
			if status.SlowMultiplier == 0 {
				status.SlowMultiplier = storm.SlowMultiplier
			} else {
				status.SlowMultiplier = math.Min(status.SlowMultiplier, storm.SlowMultiplier)
			}
		}
	}
}
