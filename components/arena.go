package components

import (
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// ArenaData describes the playfield the run takes place in.
type ArenaData struct {
	Name        string
	Width       float64
	Height      float64
	PlayerSpawn dmath.Vec2
	Respawn     dmath.Vec2
}

// Clamp keeps p inside the arena bounds.
func (a *ArenaData) Clamp(p dmath.Vec2) dmath.Vec2 {
	if p.X < 0 {
		p.X = 0
	}
	if p.Y < 0 {
		p.Y = 0
	}
	if a.Width > 0 && p.X > a.Width {
		p.X = a.Width
	}
	if a.Height > 0 && p.Y > a.Height {
		p.Y = a.Height
	}
	return p
}

var Arena = donburi.NewComponentType[ArenaData]()
