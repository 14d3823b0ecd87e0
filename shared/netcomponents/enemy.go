package netcomponents

import "github.com/yohamta/donburi"

type NetEnemyData struct {
	X, Y      float64
	TypeName  string // "Grunt", "Brute", etc.
	Variant   int
	Facing    float64
	Health    float64
	MaxHealth float64
	Frozen    bool
	Dying     bool
}

var NetEnemy = donburi.NewComponentType[NetEnemyData]()

// LerpNetEnemy interpolates between two enemy states
func LerpNetEnemy(from, to NetEnemyData, t float64) *NetEnemyData {
	return &NetEnemyData{
		X:         from.X + (to.X-from.X)*t,
		Y:         from.Y + (to.Y-from.Y)*t,
		TypeName:  to.TypeName,
		Variant:   to.Variant,
		Facing:    to.Facing,
		Health:    to.Health,
		MaxHealth: to.MaxHealth,
		Frozen:    to.Frozen,
		Dying:     to.Dying,
	}
}
