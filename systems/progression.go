package systems

import (
	"log"

	"github.com/automoto/wavebreak/components"
	cfg "github.com/automoto/wavebreak/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WorldProgression is the default Progression hook. It keeps the run's
// coins, kills and experience in the Progress singleton.
type WorldProgression struct {
	world donburi.World
}

func NewWorldProgression(w donburi.World) *WorldProgression {
	return &WorldProgression{world: w}
}

func (p *WorldProgression) progress() *components.ProgressData {
	if e, ok := components.Progress.First(p.world); ok {
		return components.Progress.Get(e)
	}
	return nil
}

// GrantCurrency adds coins up to the configured cap.
func (p *WorldProgression) GrantCurrency(amount int) {
	data := p.progress()
	if data == nil || amount <= 0 {
		return
	}
	data.Coins += amount
	if cfg.Progression.MaxCoins > 0 && data.Coins > cfg.Progression.MaxCoins {
		data.Coins = cfg.Progression.MaxCoins
	}
}

// GrantExperience adds XP and levels up as many times as it covers.
func (p *WorldProgression) GrantExperience(amount int) {
	data := p.progress()
	if data == nil || amount <= 0 {
		return
	}
	data.XP += amount
	for data.XPToNext > 0 && data.XP >= data.XPToNext {
		data.XP -= data.XPToNext
		data.Level++
		data.XPToNext += cfg.Progression.XPLevelGrowth
		log.Printf("[progress] reached level %d", data.Level)
	}
}

func (p *WorldProgression) NotifyKill() {
	if data := p.progress(); data != nil {
		data.Kills++
	}
}

// UpdateProgression pays passive income while the player is alive.
func UpdateProgression(ecs *ecs.ECS) {
	e, ok := components.Progress.First(ecs.World)
	if !ok || cfg.Progression.PassiveIncomeInterval <= 0 {
		return
	}
	if playerEntry, ok := components.Player.First(ecs.World); !ok || components.Player.Get(playerEntry).Dead {
		return
	}

	data := components.Progress.Get(e)
	data.Income.Start(cfg.Progression.PassiveIncomeInterval)
	if !data.Income.Tick(components.DeltaTime(ecs.World)) {
		return
	}
	if prog := components.GetHooks(ecs.World).Progression; prog != nil {
		prog.GrantCurrency(cfg.Progression.PassiveIncome)
	}
}
