package components

import (
	cfg "github.com/automoto/wavebreak/config"
	"github.com/automoto/wavebreak/shared/timer"
	"github.com/yohamta/donburi"
)

// PowerupStateData tracks the equipped powerup and each powerup's
// active and cooldown windows.
type PowerupStateData struct {
	Equipped cfg.PowerupID
	Gates    [cfg.PowerupCount]timer.Gate
}

// Shielded reports whether the shield window is open.
func (p *PowerupStateData) Shielded() bool {
	return p.Gates[cfg.PowerupShield].Active.Active()
}

var PowerupState = donburi.NewComponentType[PowerupStateData]()
