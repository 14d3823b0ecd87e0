package config

import "strings"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionFire
	ActionPowerup
	ActionSprint
	ActionPause
	ActionCount // Must be last - used for array sizing
)

// InputBinding lists the key names bound to one action.
type InputBinding struct {
	Keys []string `yaml:"keys"`
}

// InputConfig maps actions to key names. Devices are read by the client; the
// simulation only ever sees the resolved actions.
type InputConfig struct {
	Bindings map[ActionID]InputBinding `yaml:"bindings"`
}

// Input is the global input configuration
var Input InputConfig

func defaultInput() InputConfig {
	return InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionMoveUp:    {Keys: []string{"W", "Up"}},
			ActionMoveDown:  {Keys: []string{"S", "Down"}},
			ActionMoveLeft:  {Keys: []string{"A", "Left"}},
			ActionMoveRight: {Keys: []string{"D", "Right"}},
			ActionFire:      {Keys: []string{"Mouse0"}},
			ActionPowerup:   {Keys: []string{"1"}},
			ActionSprint:    {Keys: []string{"LeftShift"}},
			ActionPause:     {Keys: []string{"Escape"}},
		},
	}
}

// Resolve turns the names of the currently held keys into action intents.
func (c InputConfig) Resolve(held []string) map[ActionID]bool {
	actions := make(map[ActionID]bool)
	for action, binding := range c.Bindings {
		for _, key := range binding.Keys {
			for _, h := range held {
				if strings.EqualFold(key, h) {
					actions[action] = true
				}
			}
		}
	}
	return actions
}

// Rebind replaces the keys of one action.
func (c *InputConfig) Rebind(action ActionID, keys ...string) {
	if c.Bindings == nil {
		c.Bindings = make(map[ActionID]InputBinding)
	}
	c.Bindings[action] = InputBinding{Keys: keys}
}
