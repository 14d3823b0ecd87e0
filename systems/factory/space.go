package factory

import (
	"github.com/automoto/wavebreak/archetypes"
	"github.com/automoto/wavebreak/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	components.Space.SetValue(space, components.SpaceData{
		Space: components.NewSpace(width, height, cellWidth, cellHeight),
	})
	return space
}

// attachObject gives e a square collision object of the given size (world
// units) centered on pos and adds it to the space if one exists.
func attachObject(ecs *ecs.ECS, e *donburi.Entry, pos dmath.Vec2, size float64, resolvTags ...string) *resolv.Object {
	obj := components.NewObject(pos.X-size/2, pos.Y-size/2, size, size, resolvTags...)
	obj.Data = e // Link for O(1) lookup

	components.Object.SetValue(e, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	return obj
}

// Destroy removes e and its collision object. Invalid entries are ignored.
func Destroy(ecs *ecs.ECS, e *donburi.Entry) {
	if e == nil || !e.Valid() {
		return
	}
	if e.HasComponent(components.Object) {
		if obj := components.Object.Get(e); obj.Object != nil && obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}
	ecs.World.Remove(e.Entity())
}
