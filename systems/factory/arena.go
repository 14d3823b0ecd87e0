package factory

import (
	"github.com/automoto/wavebreak/archetypes"
	"github.com/automoto/wavebreak/components"
	"github.com/automoto/wavebreak/shared/leveldata"
	"github.com/automoto/wavebreak/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreateArena installs the arena singleton and its safe zones.
func CreateArena(ecs *ecs.ECS, data *leveldata.ArenaData) *donburi.Entry {
	arena := archetypes.Arena.Spawn(ecs)
	components.Arena.SetValue(arena, components.ArenaData{
		Name:        data.Name,
		Width:       data.Width,
		Height:      data.Height,
		PlayerSpawn: dmath.Vec2{X: data.PlayerSpawn.X, Y: data.PlayerSpawn.Y},
		Respawn:     dmath.Vec2{X: data.Respawn.X, Y: data.Respawn.Y},
	})

	for _, zone := range data.SafeZones {
		CreateSafeZone(ecs, zone)
	}
	return arena
}

func CreateSafeZone(ecs *ecs.ECS, zone leveldata.Rect) *donburi.Entry {
	e := archetypes.SafeZone.Spawn(ecs)
	components.Kind.SetValue(e, tags.CategorySafeZone)

	obj := components.NewObject(zone.X, zone.Y, zone.W, zone.H, tags.ResolvSafeZone)
	obj.Data = e
	components.Object.SetValue(e, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	return e
}
