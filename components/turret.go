package components

import (
	"github.com/automoto/wavebreak/shared/timer"
	"github.com/yohamta/donburi"
)

type TurretData struct {
	Fire          timer.Timer
	FireRate      float64
	Range         float64
	Damage        float64
	SpreadDegrees float64
	BulletSpeed   float64
}

var Turret = donburi.NewComponentType[TurretData]()

// SnowStormData is an area that slows enemies inside Radius.
type SnowStormData struct {
	Radius         float64
	SlowMultiplier float64
}

var SnowStorm = donburi.NewComponentType[SnowStormData]()
