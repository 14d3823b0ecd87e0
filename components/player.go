package components

import (
	"github.com/automoto/wavebreak/shared/timer"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Facing       float64
	ShotCooldown float64

	Dead    bool
	Respawn timer.Timer
}

var Player = donburi.NewComponentType[PlayerData]()
