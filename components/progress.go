package components

import (
	"github.com/automoto/wavebreak/shared/timer"
	"github.com/yohamta/donburi"
)

// ProgressData is the run's economy and experience.
type ProgressData struct {
	Coins       int
	Kills       int
	XP          int
	Level       int
	XPToNext    int
	PowerupOrbs int

	Income timer.Timer
}

var Progress = donburi.NewComponentType[ProgressData]()
