package network

import (
	"math"

	cfg "github.com/automoto/wavebreak/config"
	"github.com/automoto/wavebreak/shared/gamemath"
	"github.com/automoto/wavebreak/shared/netcomponents"
	dmath "github.com/yohamta/donburi/features/math"
)

// Autopilot drives a headless pilot: it aims and fires at the nearest enemy,
// backs off when one gets close and otherwise strafes.
type Autopilot struct {
	// KeepAway is the distance below which the pilot retreats.
	KeepAway float64
	// PowerupBelow activates the equipped powerup when health drops under
	// this fraction of max. Zero never activates.
	PowerupBelow float64

	strafe float64
}

func NewAutopilot() *Autopilot {
	return &Autopilot{KeepAway: 3, PowerupBelow: 0.5}
}

// Decide returns the actions to hold and the aim point for this frame.
func (a *Autopilot) Decide(player netcomponents.NetPlayerData, enemies []netcomponents.NetEnemyData, dt float64) (map[cfg.ActionID]bool, *dmath.Vec2) {
	actions := make(map[cfg.ActionID]bool)
	if player.Dead {
		return actions, nil
	}

	pos := dmath.Vec2{X: player.X, Y: player.Y}
	nearest, dist := -1, math.Inf(1)
	for i, e := range enemies {
		if d := gamemath.Distance(pos, dmath.Vec2{X: e.X, Y: e.Y}); d < dist {
			nearest, dist = i, d
		}
	}

	if player.MaxHealth > 0 && player.Health/player.MaxHealth < a.PowerupBelow {
		actions[cfg.ActionPowerup] = true
	}

	if nearest < 0 {
		return actions, nil
	}

	target := dmath.Vec2{X: enemies[nearest].X, Y: enemies[nearest].Y}
	actions[cfg.ActionFire] = true

	if dist < a.KeepAway {
		away := gamemath.Direction(target, pos)
		pressAlong(actions, away)
		actions[cfg.ActionSprint] = true
	} else {
		// Circle the target
		a.strafe += dt
		angle := gamemath.FacingAngle(target, pos) + math.Pi/2
		if math.Mod(a.strafe, 6) >= 3 {
			angle -= math.Pi
		}
		pressAlong(actions, dmath.Vec2{X: math.Cos(angle), Y: math.Sin(angle)})
	}
	return actions, &target
}

// pressAlong holds the direction keys closest to dir.
func pressAlong(actions map[cfg.ActionID]bool, dir dmath.Vec2) {
	const deadZone = 0.38
	if dir.X > deadZone {
		actions[cfg.ActionMoveRight] = true
	} else if dir.X < -deadZone {
		actions[cfg.ActionMoveLeft] = true
	}
	if dir.Y > deadZone {
		actions[cfg.ActionMoveDown] = true
	} else if dir.Y < -deadZone {
		actions[cfg.ActionMoveUp] = true
	}
}
