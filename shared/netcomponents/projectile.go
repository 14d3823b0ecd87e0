package netcomponents

import "github.com/yohamta/donburi"

type NetProjectileData struct {
	X, Y       float64
	VelX, VelY float64 // Client extrapolation between snapshots
	Owner      int     // tags.Category of the shooter
}

var NetProjectile = donburi.NewComponentType[NetProjectileData]()

// LerpNetProjectile interpolates between two projectile states
func LerpNetProjectile(from, to NetProjectileData, t float64) *NetProjectileData {
	return &NetProjectileData{
		X:     from.X + (to.X-from.X)*t,
		Y:     from.Y + (to.Y-from.Y)*t,
		VelX:  to.VelX,
		VelY:  to.VelY,
		Owner: to.Owner,
	}
}
