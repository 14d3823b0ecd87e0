package systems

import (
	"fmt"

	"github.com/automoto/wavebreak/components"
	"github.com/automoto/wavebreak/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateLifetimes destroys decoys, turrets, storms, projectiles and effects
// whose lifetime ran out.
func UpdateLifetimes(ecs *ecs.ECS) {
	dt := components.DeltaTime(ecs.World)
	var toDestroy []*donburi.Entry

	components.Lifetime.Each(ecs.World, func(e *donburi.Entry) {
		lt := components.Lifetime.Get(e)
		if lt.Timer.Tick(dt) || !lt.Timer.Active() {
			toDestroy = append(toDestroy, e)
		}
	})

	for _, e := range toDestroy {
		factory.Destroy(ecs, e)
	}
}

// EffectFeedback is the default Feedback hook: damage numbers and floating
// text become short-lived effect entities.
type EffectFeedback struct {
	ecs *ecs.ECS
}

func NewEffectFeedback(ecs *ecs.ECS) *EffectFeedback {
	return &EffectFeedback{ecs: ecs}
}

func (f *EffectFeedback) DamageTaken(pos dmath.Vec2, amount float64) {
	factory.CreateFloatingText(f.ecs, fmt.Sprintf("%.0f", amount), dmath.Vec2{X: pos.X, Y: pos.Y - 0.5})
}

func (f *EffectFeedback) FloatingText(pos dmath.Vec2, text string) {
	factory.CreateFloatingText(f.ecs, text, pos)
}
