package netcomponents

import "github.com/yohamta/donburi"

type NetPlayerData struct {
	X, Y         float64
	Facing       float64
	Health       float64
	MaxHealth    float64
	Dead         bool
	Shielded     bool
	LastSequence uint32 // Last input sequence applied by the server
}

var NetPlayer = donburi.NewComponentType[NetPlayerData]()

// LerpNetPlayer interpolates position; everything else snaps to the newer state.
func LerpNetPlayer(from, to NetPlayerData, t float64) *NetPlayerData {
	out := to
	out.X = from.X + (to.X-from.X)*t
	out.Y = from.Y + (to.Y-from.Y)*t
	return &out
}
