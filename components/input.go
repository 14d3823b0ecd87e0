package components

import (
	cfg "github.com/automoto/wavebreak/config"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// PlayerInputData stores the player's resolved intents. The host writes it
// from network messages; nothing in the simulation reads raw devices.
// JustPressed is computed on demand by comparing frames.
type PlayerInputData struct {
	CurrentInput  [cfg.ActionCount]bool // Current frame's Pressed state
	PreviousInput [cfg.ActionCount]bool // Previous frame's Pressed state
	Aim           dmath.Vec2            // World point the player aims at
	HasAim        bool
}

// Pressed reports whether action is held this frame.
func (p *PlayerInputData) Pressed(action cfg.ActionID) bool {
	return p.CurrentInput[action]
}

// JustPressed reports whether action went down this frame.
func (p *PlayerInputData) JustPressed(action cfg.ActionID) bool {
	return p.CurrentInput[action] && !p.PreviousInput[action]
}

// Set replaces the current frame's actions, moving the old ones to PreviousInput.
func (p *PlayerInputData) Set(actions map[cfg.ActionID]bool) {
	p.PreviousInput = p.CurrentInput
	p.CurrentInput = [cfg.ActionCount]bool{}
	for a, held := range actions {
		if a > cfg.ActionNone && a < cfg.ActionCount {
			p.CurrentInput[a] = held
		}
	}
}

// Advance carries the current actions into PreviousInput without a new sample.
func (p *PlayerInputData) Advance() {
	p.PreviousInput = p.CurrentInput
}

var PlayerInput = donburi.NewComponentType[PlayerInputData]()
