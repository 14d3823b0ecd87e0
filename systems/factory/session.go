package factory

import (
	"math/rand"

	"github.com/automoto/wavebreak/archetypes"
	"github.com/automoto/wavebreak/components"
	cfg "github.com/automoto/wavebreak/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession spawns the per-run singletons: clock, seeded random source,
// hooks, progression and powerup state.
func CreateSession(ecs *ecs.ECS, seed int64, hooks components.HooksData) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)
	components.Clock.SetValue(session, components.ClockData{})
	components.Random.SetValue(session, components.RandomData{Rand: rand.New(rand.NewSource(seed))})
	components.Hooks.SetValue(session, hooks)
	components.Progress.SetValue(session, components.ProgressData{
		Level:    1,
		XPToNext: cfg.Progression.XPToFirstLevel,
	})
	components.PowerupState.SetValue(session, components.PowerupStateData{
		Equipped: cfg.Powerups.Equipped,
	})
	return session
}

func CreateHUD(ecs *ecs.ECS) *donburi.Entry {
	hud := archetypes.HUD.Spawn(ecs)
	components.HUD.SetValue(hud, components.HUDData{WaveLabel: cfg.Wave.StartNumber})
	return hud
}
