package components

import (
	"github.com/automoto/wavebreak/tags"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// Shot is a request to launch a projectile.
type Shot struct {
	Owner     tags.Category
	Origin    dmath.Vec2
	Direction dmath.Vec2 // Unit length
	Damage    float64
	Speed     float64
}

type ProjectileData struct {
	Owner    tags.Category
	Damage   float64
	Velocity dmath.Vec2
}

var Projectile = donburi.NewComponentType[ProjectileData]()
