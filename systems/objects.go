package systems

import (
	"github.com/automoto/wavebreak/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateObjects re-syncs every collision object with its transform.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		if e.HasComponent(components.Transform) {
			syncObject(e)
		}
	}
}

// setPosition moves e and keeps its collision object centered on it.
func setPosition(e *donburi.Entry, pos dmath.Vec2) {
	components.Transform.Get(e).Position = pos
	if e.HasComponent(components.Object) {
		syncObject(e)
	}
}

func syncObject(e *donburi.Entry) {
	obj := components.Object.Get(e)
	if obj.Object == nil {
		return
	}
	obj.Center(components.Transform.Get(e).Position)
}

func positionOf(e *donburi.Entry) dmath.Vec2 {
	return components.Transform.Get(e).Position
}

// snapshot collects the current entries of c so callers can add or remove
// components while walking them.
func snapshot[T any](w donburi.World, c *donburi.ComponentType[T]) []*donburi.Entry {
	var out []*donburi.Entry
	c.Each(w, func(e *donburi.Entry) {
		out = append(out, e)
	})
	return out
}

// queryArea is a broad phase over the resolv space: entries carrying any of
// tags whose collision objects share a cell with the square of half-size
// radius around center, padded by one cell on every side. Callers run their
// own exact distance test.
func queryArea(w donburi.World, center dmath.Vec2, radius float64, tags ...string) []*donburi.Entry {
	spaceEntry, ok := components.Space.First(w)
	if !ok {
		return nil
	}
	space := components.Space.Get(spaceEntry)

	reach := radius + space.CellSize()
	area := components.NewObject(center.X-reach, center.Y-reach, reach*2, reach*2)
	space.Add(area)
	defer space.Remove(area)

	check := area.Check(0, 0, tags...)
	if check == nil {
		return nil
	}
	return entriesOf(check.ObjectsByTags(tags...))
}

// nearby returns the broad-phase candidates around center: a resolv query
// when the world has a space, otherwise every entry with the donburi tag.
func nearby(w donburi.World, center dmath.Vec2, radius float64, tag *donburi.ComponentType[donburi.Tag], resolvTag string) []*donburi.Entry {
	if _, ok := components.Space.First(w); ok {
		return queryArea(w, center, radius, resolvTag)
	}
	return snapshot(w, tag)
}

// entriesOf maps collision objects back to their live entries, once each.
func entriesOf(objects []*resolv.Object) []*donburi.Entry {
	seen := make(map[donburi.Entity]bool, len(objects))
	var out []*donburi.Entry
	for _, obj := range objects {
		e, ok := obj.Data.(*donburi.Entry)
		if !ok || e == nil || !e.Valid() || seen[e.Entity()] {
			continue
		}
		seen[e.Entity()] = true
		out = append(out, e)
	}
	return out
}
