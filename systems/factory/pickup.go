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

func CreatePickup(ecs *ecs.ECS, kind components.PickupKind, value int, pos dmath.Vec2) *donburi.Entry {
	pickup := archetypes.Pickup.Spawn(ecs)
	components.Kind.SetValue(pickup, tags.CategoryPickup)
	components.Transform.SetValue(pickup, components.TransformData{Position: pos})
	attachObject(ecs, pickup, pos, cfg.Pickups.Size, tags.ResolvPickup)
	components.Pickup.SetValue(pickup, components.PickupData{
		Kind:  kind,
		Value: value,
	})
	return pickup
}
