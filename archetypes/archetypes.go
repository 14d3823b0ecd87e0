package archetypes

import (
	"github.com/automoto/wavebreak/components"
	cfg "github.com/automoto/wavebreak/config"
	"github.com/automoto/wavebreak/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Kind,
		components.Player,
		components.PlayerInput,
		components.Transform,
		components.Object,
		components.Health,
		components.Flash,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Kind,
		components.Enemy,
		components.Transform,
		components.Object,
		components.Health,
		components.Status,
		components.Flash,
	)
	Decoy = newArchetype(
		tags.Decoy,
		components.Kind,
		components.Decoy,
		components.Transform,
		components.Object,
		components.Lifetime,
	)
	Pickup = newArchetype(
		tags.Pickup,
		components.Kind,
		components.Pickup,
		components.Transform,
		components.Object,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Kind,
		components.Projectile,
		components.Transform,
		components.Object,
		components.Lifetime,
	)
	Turret = newArchetype(
		tags.Turret,
		components.Kind,
		components.Turret,
		components.Transform,
		components.Lifetime,
	)
	SnowStorm = newArchetype(
		tags.Effect,
		components.Kind,
		components.SnowStorm,
		components.Transform,
		components.Lifetime,
	)
	Effect = newArchetype(
		tags.Effect,
		components.Kind,
		components.Effect,
		components.Transform,
		components.Lifetime,
	)
	SafeZone = newArchetype(
		tags.SafeZone,
		components.Kind,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Arena = newArchetype(
		components.Arena,
	)
	Wave = newArchetype(
		components.Wave,
	)
	HUD = newArchetype(
		components.HUD,
	)
	Session = newArchetype(
		components.Clock,
		components.Random,
		components.Hooks,
		components.Progress,
		components.PowerupState,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
