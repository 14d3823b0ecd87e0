package systems

import (
	"log"
	"math"

	"github.com/automoto/wavebreak/components"
	cfg "github.com/automoto/wavebreak/config"
	"github.com/automoto/wavebreak/shared/gamemath"
	"github.com/automoto/wavebreak/systems/factory"
	"github.com/automoto/wavebreak/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func waveDirector(w donburi.World) *components.WaveData {
	if e, ok := components.Wave.First(w); ok {
		return components.Wave.Get(e)
	}
	return nil
}

// StartWave resets the population and begins the gradual spawn sequence. The
// first slot is filled immediately, the rest one spawn interval apart.
func StartWave(ecs *ecs.ECS) {
	w := waveDirector(ecs.World)
	if w == nil {
		return
	}
	w.Live = 0
	w.NextWaveScheduled = false
	w.AdvanceTimer.Stop()
	w.SpawnSlot = 0
	w.SpawnTimer.Stop()
	w.SpawnInProgress = w.Quota > 0
	w.Transition(components.EventStart)

	if !w.SpawnInProgress {
		w.Transition(components.EventSpawned)
		return
	}
	spawnNext(ecs, w)
}

// OnEntityDied is the only way population goes down. It never drops below zero.
func OnEntityDied(ecs *ecs.ECS) {
	w := waveDirector(ecs.World)
	if w == nil {
		return
	}
	w.Live--
	if w.Live < 0 {
		w.Live = 0
	}
	if w.Live >= 1 && w.Live <= cfg.Wave.RemainingNotice {
		if ui := components.GetHooks(ecs.World).UI; ui != nil {
			ui.SetRemainingCount(w.Live)
		}
	}
}

// UpdateWaves paces spawning and schedules the next wave once the current
// one is fully spawned and cleared.
func UpdateWaves(ecs *ecs.ECS) {
	w := waveDirector(ecs.World)
	if w == nil {
		return
	}
	dt := components.DeltaTime(ecs.World)

	if w.SpawnInProgress && w.SpawnTimer.Tick(dt) {
		spawnNext(ecs, w)
	}

	if w.NextWaveScheduled {
		if w.AdvanceTimer.Tick(dt) {
			advanceWave(ecs, w)
		}
		return
	}

	if !w.SpawnInProgress && w.Live == 0 && w.PhaseName() == components.PhaseWaiting {
		w.NextWaveScheduled = true
		w.AdvanceTimer.Restart(cfg.Wave.AdvanceDelay)
		w.Transition(components.EventCleared)
	}
}

func advanceWave(ecs *ecs.ECS, w *components.WaveData) {
	w.Number++
	if cfg.Wave.QuotaGrowthEvery > 0 && w.Number%cfg.Wave.QuotaGrowthEvery == 0 {
		w.Quota++
	}
	if ui := components.GetHooks(ecs.World).UI; ui != nil {
		ui.SetWaveLabel(w.Number)
	}
	log.Printf("[wave] wave %d begins, quota %d", w.Number, w.Quota)
	StartWave(ecs)
}

func spawnNext(ecs *ecs.ECS, w *components.WaveData) {
	slot := w.SpawnSlot
	w.SpawnSlot++
	spawnSlot(ecs, w, slot)

	if w.SpawnSlot >= w.Quota {
		w.SpawnInProgress = false
		w.SpawnTimer.Stop()
		w.Transition(components.EventSpawned)
		return
	}
	w.SpawnTimer.Restart(cfg.Wave.SpawnInterval)
}

// IsBossSlot reports whether slot of wave number is reserved for the boss.
func IsBossSlot(number, slot int) bool {
	return slot == 0 && cfg.Wave.BossEvery > 0 && number%cfg.Wave.BossEvery == 0
}

func spawnSlot(ecs *ecs.ECS, w *components.WaveData, slot int) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		log.Printf("[wave] wave %d slot %d: no player to spawn around, skipped", w.Number, slot)
		return
	}

	rng := components.RNG(ecs.World)
	boss := IsBossSlot(w.Number, slot) && w.BossTemplate != ""

	var name string
	switch {
	case boss:
		name = w.BossTemplate
	case len(w.Templates) == 0:
		if slot == 0 {
			log.Printf("[wave] wave %d: no enemy templates configured, nothing to spawn", w.Number)
		}
		return
	default:
		name = w.Templates[rng.Intn(len(w.Templates))]
	}

	center := positionOf(playerEntry)
	angle := rng.Float64() * 2 * math.Pi
	pos := gamemath.PointOnCircle(center, cfg.Wave.SpawnRadius, angle)

	if _, err := factory.CreateEnemy(ecs, name, pos, gamemath.FacingAngle(pos, center)); err != nil {
		log.Printf("[wave] wave %d slot %d: %v", w.Number, slot, err)
		return
	}
	w.Live++

	if boss {
		log.Printf("[wave] wave %d: boss %s spawned", w.Number, name)
		if ui := components.GetHooks(ecs.World).UI; ui != nil {
			ui.ShowBossBanner()
		}
	}
}
