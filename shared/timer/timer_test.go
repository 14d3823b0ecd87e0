package timer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimerFiresOnce(t *testing.T) {
	var tm Timer
	assert.True(t, tm.Start(1.0))
	assert.False(t, tm.Tick(0.4))
	assert.False(t, tm.Tick(0.4))
	assert.True(t, tm.Tick(0.4))
	assert.False(t, tm.Active())
	assert.False(t, tm.Tick(10))
}

func TestTimerStartWhileActiveDoesNotExtend(t *testing.T) {
	var tm Timer
	tm.Start(3)
	tm.Tick(1)
	assert.False(t, tm.Start(5))
	assert.InDelta(t, 2.0, tm.Remaining(), 1e-9)
	assert.InDelta(t, 3.0, tm.Duration(), 1e-9)
}

func TestTimerRestartForces(t *testing.T) {
	var tm Timer
	tm.Start(3)
	tm.Tick(2)
	tm.Restart(5)
	assert.InDelta(t, 5.0, tm.Remaining(), 1e-9)
	assert.InDelta(t, 0.0, tm.Elapsed(), 1e-9)
}

func TestTimerStopDoesNotFire(t *testing.T) {
	var tm Timer
	tm.Start(1)
	tm.Stop()
	assert.False(t, tm.Tick(2))
	assert.Zero(t, tm.Remaining())
}

func TestTimerZeroDurationFiresNextTick(t *testing.T) {
	var tm Timer
	tm.Start(0)
	assert.True(t, tm.Active())
	assert.True(t, tm.Tick(0))
}

func TestGateActiveThenCooldown(t *testing.T) {
	var g Gate
	assert.True(t, g.Ready())
	assert.True(t, g.Trigger(5, 10))
	assert.False(t, g.Ready())
	assert.False(t, g.Trigger(5, 10))

	assert.False(t, g.Tick(4.9))
	assert.True(t, g.Tick(0.2))
	assert.True(t, g.Cooldown.Active())
	assert.False(t, g.Ready())

	g.Tick(9.9)
	assert.False(t, g.Ready())
	g.Tick(0.2)
	assert.True(t, g.Ready())
}

func TestGateInstantGoesToCooldown(t *testing.T) {
	var g Gate
	assert.True(t, g.Trigger(0, 15))
	assert.False(t, g.Active.Active())
	assert.True(t, g.Cooldown.Active())
	assert.False(t, g.Tick(15.1))
	assert.True(t, g.Ready())
}

func TestTimerFixedStepsReachDuration(t *testing.T) {
	var tm Timer
	tm.Start(0.4)
	for i := 0; i < 3; i++ {
		assert.False(t, tm.Tick(0.1), "tick %d", i)
	}
	assert.True(t, tm.Tick(0.1))
}
