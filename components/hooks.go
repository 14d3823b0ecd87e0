package components

import (
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// Progression receives economy and experience side effects.
type Progression interface {
	GrantCurrency(amount int)
	GrantExperience(amount int)
	NotifyKill()
}

// UI receives wave notices.
type UI interface {
	SetWaveLabel(n int)
	SetRemainingCount(n int) // only called for 1..5 remaining
	ShowBossBanner()
}

// Feedback receives cosmetic notifications.
type Feedback interface {
	DamageTaken(pos dmath.Vec2, amount float64)
	FloatingText(pos dmath.Vec2, text string)
}

// Launcher turns a Shot into a moving projectile.
type Launcher interface {
	Fire(shot Shot)
}

// HooksData holds the collaborators the combat core calls out to.
// A nil hook means the side effect is skipped.
type HooksData struct {
	Progression Progression
	UI          UI
	Feedback    Feedback
	Launcher    Launcher
}

var Hooks = donburi.NewComponentType[HooksData]()

// GetHooks returns the hooks singleton, or an empty set when none exists.
func GetHooks(w donburi.World) *HooksData {
	if e, ok := Hooks.First(w); ok {
		return Hooks.Get(e)
	}
	return &HooksData{}
}
