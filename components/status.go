package components

import (
	"github.com/automoto/wavebreak/shared/timer"
	"github.com/yohamta/donburi"
)

type StatusData struct {
	Frozen         bool
	PreFreezeSpeed float64
	Freeze         timer.Timer

	// SlowMultiplier scales movement while inside a snow storm. Zero means not slowed.
	SlowMultiplier float64
}

// Speed returns the movement speed after slow effects.
func (s *StatusData) Speed(base float64) float64 {
	if s.SlowMultiplier > 0 {
		return base * s.SlowMultiplier
	}
	return base
}

var Status = donburi.NewComponentType[StatusData]()
