package components

import (
	"github.com/automoto/wavebreak/shared/timer"
	"github.com/yohamta/donburi"
)

// DeathData marks an entity that has started its death sequence. Its side
// effects have already run; when Timer fires the entry is removed from the world.
type DeathData struct {
	Timer timer.Timer
}

var Death = donburi.NewComponentType[DeathData]()
