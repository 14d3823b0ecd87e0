package components

import "github.com/yohamta/donburi"

// DecoyData marks an invulnerable target that draws enemies away from the player.
type DecoyData struct {
	Hits int // Attacks absorbed
}

var Decoy = donburi.NewComponentType[DecoyData]()
