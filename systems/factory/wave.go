package factory

import (
	"errors"
	"log"

	"github.com/automoto/wavebreak/archetypes"
	"github.com/automoto/wavebreak/components"
	cfg "github.com/automoto/wavebreak/config"
	"github.com/automoto/wavebreak/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ErrNoPlayer is returned when the wave director has nothing to spawn around.
var ErrNoPlayer = errors.New("wave director needs a player to spawn around")

// CreateWaveDirector spawns the wave director singleton in the idle phase.
// Spawn positions are computed around the player, so one must already exist.
func CreateWaveDirector(ecs *ecs.ECS) (*donburi.Entry, error) {
	if _, ok := tags.Player.First(ecs.World); !ok {
		return nil, ErrNoPlayer
	}

	wave := archetypes.Wave.Spawn(ecs)
	components.Wave.SetValue(wave, components.WaveData{
		Number:       cfg.Wave.StartNumber,
		Quota:        cfg.Wave.StartQuota,
		Templates:    regularTemplates(cfg.Wave.Templates),
		BossTemplate: cfg.Wave.BossTemplate,
		Phase:        components.NewWavePhase(),
	})
	return wave, nil
}

// regularTemplates drops boss types so only the boss slot can produce a boss.
func regularTemplates(names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		if t, ok := cfg.Enemy.Types[name]; ok && t.Variant == cfg.VariantBoss {
			log.Printf("[wave] template %s is a boss type, only used for boss slots", name)
			continue
		}
		out = append(out, name)
	}
	return out
}
