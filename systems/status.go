package systems

import (
	"github.com/automoto/wavebreak/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Freeze suspends an enemy's movement and attacks for duration seconds. It is
// single-shot: freezing a frozen or dying enemy is a no-op and returns false.
func Freeze(e *donburi.Entry, duration float64) bool {
	if e == nil || !e.Valid() || e.HasComponent(components.Death) || !e.HasComponent(components.Status) {
		return false
	}
	status := components.Status.Get(e)
	if status.Frozen {
		return false
	}
	enemy := components.Enemy.Get(e)
	status.Frozen = true
	status.PreFreezeSpeed = enemy.MoveSpeed
	enemy.MoveSpeed = 0
	status.Freeze.Restart(duration)
	return true
}

// UpdateStatusEffects runs freeze timers and hit flashes.
func UpdateStatusEffects(ecs *ecs.ECS) {
	dt := components.DeltaTime(ecs.World)

	components.Status.Each(ecs.World, func(e *donburi.Entry) {
		status := components.Status.Get(e)
		if e.HasComponent(components.Death) {
			status.Freeze.Stop()
			return
		}
		if status.Frozen && status.Freeze.Tick(dt) {
			unfreeze(e, status)
		}
	})

	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Remaining > 0 {
			flash.Remaining -= dt
			if flash.Remaining < 0 {
				flash.Remaining = 0
			}
		}
	})
}

func unfreeze(e *donburi.Entry, status *components.StatusData) {
	components.Enemy.Get(e).MoveSpeed = status.PreFreezeSpeed
	status.Frozen = false
}
