package components

import (
	"github.com/automoto/wavebreak/shared/timer"
	"github.com/yohamta/donburi"
)

// FlashData tracks the hit flash (permanently attached, Remaining 0 = off)
type FlashData struct {
	Remaining float64
}

var Flash = donburi.NewComponentType[FlashData]()

// LifetimeData marks entities that are destroyed when Timer fires
type LifetimeData struct {
	Timer timer.Timer
}

var Lifetime = donburi.NewComponentType[LifetimeData]()

// EffectData describes a short-lived visual (explosion, impact, floating text)
type EffectData struct {
	Name string
	Text string
}

var Effect = donburi.NewComponentType[EffectData]()
