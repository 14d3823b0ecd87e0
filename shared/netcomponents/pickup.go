package netcomponents

import "github.com/yohamta/donburi"

type NetPickupData struct {
	X, Y  float64
	Kind  int
	Value int
}

var NetPickup = donburi.NewComponentType[NetPickupData]()
