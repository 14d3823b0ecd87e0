package scenes

import (
	"fmt"
	"log"
	"math"

	"github.com/automoto/wavebreak/components"
	cfg "github.com/automoto/wavebreak/config"
	"github.com/automoto/wavebreak/shared/leveldata"
	"github.com/automoto/wavebreak/systems"
	"github.com/automoto/wavebreak/systems/factory"
	"github.com/automoto/wavebreak/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// ArenaOptions configures a run.
type ArenaOptions struct {
	// Level is the loaded arena map. Nil uses an open arena sized by config.Arena.
	Level *leveldata.ArenaData
	Seed  int64
	// Hooks replaces the default collaborators. Nil wires the in-world ones.
	Hooks *components.HooksData
}

// Arena owns one run: the world, its singletons and the system pipeline.
type Arena struct {
	ecs    *ecs.ECS
	player *donburi.Entry
}

// Summary is a read-only view of the run used by hosts and tests.
type Summary struct {
	Wave         int
	Phase        string
	Live         int
	Coins        int
	Kills        int
	Level        int
	PlayerHealth float64
	PlayerDead   bool
	Elapsed      float64
}

func NewArena(opts ArenaOptions) (*Arena, error) {
	level := opts.Level
	if level == nil {
		level = openArena()
	}
	if level.Width <= 0 || level.Height <= 0 {
		return nil, fmt.Errorf("arena %q has invalid size %vx%v", level.Name, level.Width, level.Height)
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.UpdatePlayer)
	ecs.AddSystem(systems.UpdatePowerups)
	ecs.AddSystem(systems.UpdateStatusEffects)
	ecs.AddSystem(systems.UpdateEnemies)
	ecs.AddSystem(systems.UpdateProjectiles)
	ecs.AddSystem(systems.UpdateTurrets)
	ecs.AddSystem(systems.UpdatePickups)
	ecs.AddSystem(systems.UpdateWaves)
	ecs.AddSystem(systems.UpdateProgression)
	ecs.AddSystem(systems.UpdateHUD)
	ecs.AddSystem(systems.UpdateLifetimes)
	ecs.AddSystem(systems.UpdateDeaths)
	ecs.AddSystem(systems.UpdateObjects)

	cell := cfg.Arena.CellSize
	if cell <= 0 {
		cell = 1
	}
	factory.CreateSpace(ecs, int(math.Ceil(level.Width)), int(math.Ceil(level.Height)), cell, cell)
	factory.CreateArena(ecs, level)

	var hooks components.HooksData
	if opts.Hooks != nil {
		hooks = *opts.Hooks
	} else {
		hooks = components.HooksData{
			Progression: systems.NewWorldProgression(ecs.World),
			UI:          systems.NewHUD(ecs.World),
			Feedback:    systems.NewEffectFeedback(ecs),
			Launcher:    systems.NewProjectileLauncher(ecs),
		}
	}
	factory.CreateSession(ecs, opts.Seed, hooks)
	factory.CreateHUD(ecs)

	player := factory.CreatePlayer(ecs, dmath.Vec2{X: level.PlayerSpawn.X, Y: level.PlayerSpawn.Y})

	if _, err := factory.CreateWaveDirector(ecs); err != nil {
		return nil, fmt.Errorf("create wave director: %w", err)
	}

	systems.StartWave(ecs)
	if ui := components.GetHooks(ecs.World).UI; ui != nil {
		ui.SetWaveLabel(cfg.Wave.StartNumber)
	}
	log.Printf("[arena] run started on %q (%vx%v), seed %d", level.Name, level.Width, level.Height, opts.Seed)

	return &Arena{ecs: ecs, player: player}, nil
}

func openArena() *leveldata.ArenaData {
	w, h := float64(cfg.Arena.Width), float64(cfg.Arena.Height)
	center := leveldata.Point{X: w / 2, Y: h / 2}
	return &leveldata.ArenaData{
		Name:        "open",
		Width:       w,
		Height:      h,
		PlayerSpawn: center,
		Respawn:     center,
	}
}

// Update steps the run by dt seconds.
func (a *Arena) Update(dt float64) {
	systems.SetDelta(a.ecs, dt)
	a.ecs.Update()

	if a.player.Valid() {
		components.PlayerInput.Get(a.player).Advance()
	}
}

// SetInput records the player's intents for the next step.
func (a *Arena) SetInput(actions map[cfg.ActionID]bool, aim *dmath.Vec2) {
	if !a.player.Valid() {
		return
	}
	input := components.PlayerInput.Get(a.player)
	input.Set(actions)
	input.HasAim = aim != nil
	if aim != nil {
		input.Aim = *aim
	}
}

// ActivatePowerup fires the equipped powerup outside the input path.
func (a *Arena) ActivatePowerup() bool {
	state, ok := components.PowerupState.First(a.ecs.World)
	if !ok {
		return false
	}
	return systems.ActivatePowerup(a.ecs, components.PowerupState.Get(state).Equipped)
}

func (a *Arena) ECS() *ecs.ECS {
	return a.ecs
}

func (a *Arena) World() donburi.World {
	return a.ecs.World
}

func (a *Arena) Player() *donburi.Entry {
	return a.player
}

// EnemyCount counts enemies that are still alive.
func (a *Arena) EnemyCount() int {
	count := 0
	tags.Enemy.Each(a.ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Death) {
			count++
		}
	})
	return count
}

func (a *Arena) Summary() Summary {
	var s Summary
	if e, ok := components.Wave.First(a.ecs.World); ok {
		w := components.Wave.Get(e)
		s.Wave = w.Number
		s.Phase = w.PhaseName()
		s.Live = w.Live
	}
	if e, ok := components.Progress.First(a.ecs.World); ok {
		p := components.Progress.Get(e)
		s.Coins = p.Coins
		s.Kills = p.Kills
		s.Level = p.Level
	}
	if e, ok := components.Clock.First(a.ecs.World); ok {
		s.Elapsed = components.Clock.Get(e).Elapsed
	}
	if a.player.Valid() {
		s.PlayerHealth = components.Health.Get(a.player).Current
		s.PlayerDead = components.Player.Get(a.player).Dead
	}
	return s
}
