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

func CreatePlayer(ecs *ecs.ECS, pos dmath.Vec2) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)
	components.Kind.SetValue(player, tags.CategoryPlayer)
	components.Transform.SetValue(player, components.TransformData{Position: pos})
	attachObject(ecs, player, pos, cfg.Player.CollisionRadius*2, tags.ResolvPlayer)

	components.Player.SetValue(player, components.PlayerData{})
	components.PlayerInput.SetValue(player, components.PlayerInputData{})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})
	components.Flash.SetValue(player, components.FlashData{})

	return player
}

// CreateDecoy spawns an invulnerable target that expires after lifetime seconds.
func CreateDecoy(ecs *ecs.ECS, pos dmath.Vec2, lifetime float64) *donburi.Entry {
	decoy := archetypes.Decoy.Spawn(ecs)
	components.Kind.SetValue(decoy, tags.CategoryDecoy)
	components.Transform.SetValue(decoy, components.TransformData{Position: pos})
	attachObject(ecs, decoy, pos, cfg.Player.CollisionRadius*2, tags.ResolvDecoy)
	components.Decoy.SetValue(decoy, components.DecoyData{})

	lt := components.Lifetime.Get(decoy)
	lt.Timer.Start(lifetime)
	return decoy
}
