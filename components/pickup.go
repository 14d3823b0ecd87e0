package components

import "github.com/yohamta/donburi"

type PickupKind int

const (
	PickupXPOrb PickupKind = iota
	PickupPowerupOrb
	PickupDeathStash
)

func (k PickupKind) String() string {
	switch k {
	case PickupXPOrb:
		return "xp_orb"
	case PickupPowerupOrb:
		return "powerup_orb"
	case PickupDeathStash:
		return "death_stash"
	}
	return "unknown"
}

type PickupData struct {
	Kind  PickupKind
	Value int
}

var Pickup = donburi.NewComponentType[PickupData]()
