package systems

import (
	"github.com/automoto/wavebreak/components"
	cfg "github.com/automoto/wavebreak/config"
	"github.com/automoto/wavebreak/shared/gamemath"
	"github.com/automoto/wavebreak/systems/factory"
	"github.com/automoto/wavebreak/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePickups collects every pickup within reach of the live player.
func UpdatePickups(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok || components.Player.Get(playerEntry).Dead {
		return
	}
	pos := positionOf(playerEntry)
	radius := cfg.Pickups.CollectRadius

	var collected []*donburi.Entry
	for _, e := range nearby(ecs.World, pos, radius, tags.Pickup, tags.ResolvPickup) {
		if components.KindOf(e) != tags.CategoryPickup {
			continue
		}
		if gamemath.Distance(pos, positionOf(e)) > radius {
			continue
		}
		collected = append(collected, e)
	}

	for _, e := range collected {
		collect(ecs, e)
		factory.Destroy(ecs, e)
	}
}

func collect(ecs *ecs.ECS, e *donburi.Entry) {
	pickup := components.Pickup.Get(e)
	hooks := components.GetHooks(ecs.World)

	switch pickup.Kind {
	case components.PickupXPOrb:
		if hooks.Progression != nil {
			hooks.Progression.GrantExperience(pickup.Value)
		}
	case components.PickupDeathStash:
		if hooks.Progression != nil {
			hooks.Progression.GrantCurrency(pickup.Value)
		}
	case components.PickupPowerupOrb:
		if progressEntry, ok := components.Progress.First(ecs.World); ok {
			components.Progress.Get(progressEntry).PowerupOrbs += pickup.Value
		}
	}
}
