package systems

import (
	"github.com/automoto/wavebreak/components"
	"github.com/yohamta/donburi/ecs"
)

// SetDelta records the step length the next pipeline run will use.
func SetDelta(ecs *ecs.ECS, dt float64) {
	if e, ok := components.Clock.First(ecs.World); ok {
		if dt < 0 {
			dt = 0
		}
		components.Clock.Get(e).Delta = dt
	}
}

// UpdateClock advances elapsed time and the tick counter.
func UpdateClock(ecs *ecs.ECS) {
	e, ok := components.Clock.First(ecs.World)
	if !ok {
		return
	}
	clock := components.Clock.Get(e)
	clock.Elapsed += clock.Delta
	clock.Ticks++
}
