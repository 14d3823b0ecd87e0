package netcomponents

import "github.com/yohamta/donburi"

// NetWaveStateData is the run-wide state shown in the client HUD.
type NetWaveStateData struct {
	Wave  int
	Quota int
	Live  int
	Phase string

	Remaining      int
	RemainingAlpha float64
	BossBanner     bool
	BannerAlpha    float64
	BannerOffset   float64

	Coins   int
	Kills   int
	Level   int
	Elapsed float64
}

var NetWaveState = donburi.NewComponentType[NetWaveStateData]()
