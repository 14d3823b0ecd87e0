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

// Effect names
const (
	EffectExplosion    = "explosion"
	EffectImpact       = "impact"
	EffectFloatingText = "floating_text"
	EffectEMP          = "emp"
	EffectDeath        = "death"
)

// CreateEffect spawns a cosmetic entity that expires after duration seconds.
func CreateEffect(ecs *ecs.ECS, name string, pos dmath.Vec2, duration float64) *donburi.Entry {
	return createEffect(ecs, name, "", pos, duration)
}

// CreateFloatingText spawns a text popup such as "+5".
func CreateFloatingText(ecs *ecs.ECS, text string, pos dmath.Vec2) *donburi.Entry {
	return createEffect(ecs, EffectFloatingText, text, pos, cfg.HUD.RemainingFade)
}

func createEffect(ecs *ecs.ECS, name, text string, pos dmath.Vec2, duration float64) *donburi.Entry {
	effect := archetypes.Effect.Spawn(ecs)
	components.Kind.SetValue(effect, tags.CategoryEffect)
	components.Transform.SetValue(effect, components.TransformData{Position: pos})
	components.Effect.SetValue(effect, components.EffectData{Name: name, Text: text})
	components.Lifetime.Get(effect).Timer.Start(duration)
	return effect
}

// CreateSnowStorm spawns a slowing area centered on pos.
func CreateSnowStorm(ecs *ecs.ECS, pos dmath.Vec2, c cfg.SnowStormPowerupConfig) *donburi.Entry {
	storm := archetypes.SnowStorm.Spawn(ecs)
	components.Kind.SetValue(storm, tags.CategoryEffect)
	components.Transform.SetValue(storm, components.TransformData{Position: pos})
	components.SnowStorm.SetValue(storm, components.SnowStormData{
		Radius:         c.Radius,
		SlowMultiplier: c.SlowMultiplier,
	})
	components.Lifetime.Get(storm).Timer.Start(c.Duration)
	return storm
}
