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

// UpdatePlayer applies the player's resolved intents: movement, aim and
// firing, plus regeneration and the respawn countdown.
func UpdatePlayer(ecs *ecs.ECS) {
	e, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	dt := components.DeltaTime(ecs.World)
	player := components.Player.Get(e)

	if player.Dead {
		if player.Respawn.Tick(dt) {
			respawnPlayer(ecs, e)
		}
		return
	}

	regenerate(ecs, e, dt)
	movePlayer(ecs, e, dt)
	firePlayer(ecs, e, dt)
}

func regenerate(ecs *ecs.ECS, e *donburi.Entry, dt float64) {
	hp := components.Health.Get(e)
	if hp.Current >= hp.Max {
		return
	}
	rate := cfg.Player.Regeneration
	if inSafeZone(ecs, e) {
		rate = cfg.Player.SafeZoneRegeneration
	}
	hp.Current += hp.Max * rate * dt
	hp.Clamp()
}

func movePlayer(ecs *ecs.ECS, e *donburi.Entry, dt float64) {
	input := components.PlayerInput.Get(e)
	player := components.Player.Get(e)

	var dir dmath.Vec2
	if input.Pressed(cfg.ActionMoveUp) {
		dir.Y--
	}
	if input.Pressed(cfg.ActionMoveDown) {
		dir.Y++
	}
	if input.Pressed(cfg.ActionMoveLeft) {
		dir.X--
	}
	if input.Pressed(cfg.ActionMoveRight) {
		dir.X++
	}

	pos := positionOf(e)
	if input.HasAim {
		player.Facing = math.Atan2(input.Aim.Y-pos.Y, input.Aim.X-pos.X)
	}

	speed := cfg.Player.MoveSpeed
	if input.Pressed(cfg.ActionSprint) {
		speed *= gamemath.SprintMultiplier
	}
	pos, moved := gamemath.Walk(pos, dir, speed, dt)
	if !moved {
		return
	}
	if !input.HasAim {
		player.Facing = math.Atan2(dir.Y, dir.X)
	}

	if arenaEntry, ok := components.Arena.First(ecs.World); ok {
		pos = components.Arena.Get(arenaEntry).Clamp(pos)
	}
	setPosition(e, pos)
}

func firePlayer(ecs *ecs.ECS, e *donburi.Entry, dt float64) {
	player := components.Player.Get(e)
	input := components.PlayerInput.Get(e)

	if player.ShotCooldown > 0 {
		player.ShotCooldown -= dt
	}
	if !input.Pressed(cfg.ActionFire) || player.ShotCooldown > 0 {
		return
	}
	launcher := components.GetHooks(ecs.World).Launcher
	if launcher == nil {
		return
	}

	dir := dmath.Vec2{X: math.Cos(player.Facing), Y: math.Sin(player.Facing)}
	pos := positionOf(e)
	offset := cfg.Player.CollisionRadius
	launcher.Fire(components.Shot{
		Owner:     tags.CategoryPlayer,
		Origin:    dmath.Vec2{X: pos.X + dir.X*offset, Y: pos.Y + dir.Y*offset},
		Direction: dir,
		Damage:    cfg.Player.ShotDamage,
		Speed:     cfg.Player.ShotSpeed,
	})
	player.ShotCooldown = cfg.Player.ShotCooldown
}

// killPlayer drops the carried coins as a stash and starts the respawn countdown.
func killPlayer(ecs *ecs.ECS, e *donburi.Entry) {
	player := components.Player.Get(e)
	if player.Dead {
		return
	}
	player.Dead = true
	player.Respawn.Restart(cfg.Player.RespawnDelay)

	pos := positionOf(e)
	if progressEntry, ok := components.Progress.First(ecs.World); ok {
		progress := components.Progress.Get(progressEntry)
		if progress.Coins > 0 {
			factory.CreatePickup(ecs, components.PickupDeathStash, progress.Coins, pos)
			progress.Coins = 0
		}
	}
	log.Printf("[player] died at (%.1f, %.1f)", pos.X, pos.Y)
}

func respawnPlayer(ecs *ecs.ECS, e *donburi.Entry) {
	player := components.Player.Get(e)
	player.Dead = false
	player.ShotCooldown = 0

	if arenaEntry, ok := components.Arena.First(ecs.World); ok {
		setPosition(e, components.Arena.Get(arenaEntry).Respawn)
	}

	hp := components.Health.Get(e)
	hp.Current = hp.Max
	components.Flash.Get(e).Remaining = 0
}

// inSafeZone reports whether the entry's center lies inside any safe zone.
func inSafeZone(ecs *ecs.ECS, e *donburi.Entry) bool {
	pos := positionOf(e)
	for _, zone := range nearby(ecs.World, pos, 0, tags.SafeZone, tags.ResolvSafeZone) {
		if components.Object.Get(zone).Contains(pos) {
			return true
		}
	}
	return false
}
