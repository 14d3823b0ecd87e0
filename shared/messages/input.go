package messages

import "github.com/automoto/wavebreak/config"

// PlayerInput is sent from client to server each frame with the player's
// resolved intents. Clients map their devices through config.Input; the
// server never sees raw keys.
type PlayerInput struct {
	Sequence  uint32                   // Incrementing ID for reconciliation
	Actions   map[config.ActionID]bool // Which actions are currently pressed
	AimX      float64                  // World point the player aims at
	AimY      float64
	HasAim    bool
	Timestamp int64 // Client timestamp (Unix ms)
}

// NewPlayerInput creates a PlayerInput with initialized map
func NewPlayerInput(seq uint32) PlayerInput {
	return PlayerInput{
		Sequence: seq,
		Actions:  make(map[config.ActionID]bool),
	}
}

// FromKeys resolves held key names through the configured bindings.
func FromKeys(seq uint32, held []string) PlayerInput {
	in := NewPlayerInput(seq)
	for action, pressed := range config.Input.Resolve(held) {
		if pressed {
			in.Actions[action] = true
		}
	}
	return in
}
