// Package timer provides the countdown used for every timed suspension in the
// simulation: freeze, attack and powerup cooldowns, wave pacing and lifetimes.
//
// A Timer is a value type meant to live inside a component, so its lifetime
// is the lifetime of the entity that owns it. Removing the entity drops the
// timer with it and nothing fires afterwards.
package timer

// epsilon absorbs float drift from summing fixed steps, so 0.4 s is reached
// after four 0.1 s ticks.
const epsilon = 1e-9

// Timer counts down in seconds and fires once when it reaches zero.
type Timer struct {
	duration  float64
	remaining float64
	active    bool
}

// Start arms the timer for d seconds. Starting an active timer is a no-op,
// so repeated requests never extend or restack the duration.
func (t *Timer) Start(d float64) bool {
	if t.active {
		return false
	}
	t.Restart(d)
	return true
}

// Restart arms the timer for d seconds regardless of its current state.
func (t *Timer) Restart(d float64) {
	if d < 0 {
		d = 0
	}
	t.duration = d
	t.remaining = d
	t.active = true
}

// Stop disarms the timer without firing.
func (t *Timer) Stop() {
	t.active = false
	t.remaining = 0
}

// Tick advances the timer by dt and reports whether it fired on this call.
func (t *Timer) Tick(dt float64) bool {
	if !t.active {
		return false
	}
	t.remaining -= dt
	if t.remaining > epsilon {
		return false
	}
	t.active = false
	t.remaining = 0
	return true
}

// Active reports whether the timer is counting down.
func (t *Timer) Active() bool {
	return t.active
}

// Remaining is the time left before the timer fires, zero when inactive.
func (t *Timer) Remaining() float64 {
	return t.remaining
}

// Duration is the length the timer was last armed with.
func (t *Timer) Duration() float64 {
	return t.duration
}

// Elapsed is the time spent since the timer was last armed.
func (t *Timer) Elapsed() float64 {
	if !t.active {
		return t.duration
	}
	return t.duration - t.remaining
}

// Gate pairs an "active" window with a follow-up cooldown, the shape shared
// by every powerup: while either window runs, the gate refuses activation.
type Gate struct {
	Active   Timer
	Cooldown Timer

	pendingCooldown float64
}

// Ready reports whether the gate can be triggered.
func (g *Gate) Ready() bool {
	return !g.Active.Active() && !g.Cooldown.Active()
}

// Trigger opens the active window. When it closes, the cooldown starts.
// A zero active window goes straight to cooldown.
func (g *Gate) Trigger(active, cooldown float64) bool {
	if !g.Ready() {
		return false
	}
	if active <= 0 {
		g.Cooldown.Start(cooldown)
		return true
	}
	g.Active.Start(active)
	g.pendingCooldown = cooldown
	return true
}

// Tick advances both windows. ended reports that the active window closed on
// this call, which is when callers tear down whatever the powerup created.
func (g *Gate) Tick(dt float64) (ended bool) {
	if g.Active.Tick(dt) {
		g.Cooldown.Start(g.pendingCooldown)
		return true
	}
	g.Cooldown.Tick(dt)
	return false
}
