package systems

import (
	"testing"

	"github.com/automoto/wavebreak/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestFreezeIsSingleShot(t *testing.T) {
	e, _ := newTestECS(t)
	enemy := addEnemy(t, e, "Grunt", dmath.Vec2{X: 120, Y: 100})
	status := components.Status.Get(enemy)

	require.True(t, Freeze(enemy, 3))
	assert.True(t, status.Frozen)
	assert.Equal(t, 0.0, components.Enemy.Get(enemy).MoveSpeed)
	assert.InDelta(t, 2, status.PreFreezeSpeed, 1e-9)

	step(e, 1, UpdateStatusEffects)
	remaining := status.Freeze.Remaining()

	assert.False(t, Freeze(enemy, 10), "freezing a frozen enemy")
	assert.InDelta(t, remaining, status.Freeze.Remaining(), 1e-9, "unfreeze time unchanged")
	assert.InDelta(t, 2, status.PreFreezeSpeed, 1e-9, "saved speed not overwritten by 0")

	step(e, 1, UpdateStatusEffects)
	assert.True(t, status.Frozen)
	step(e, 1, UpdateStatusEffects)
	assert.False(t, status.Frozen)
	assert.InDelta(t, 2, components.Enemy.Get(enemy).MoveSpeed, 1e-9)
}

func TestFrozenEnemyHoldsStill(t *testing.T) {
	e, _ := newTestECS(t)
	addPlayer(t, e)
	enemy := addEnemy(t, e, "Grunt", dmath.Vec2{X: 120, Y: 100})
	Freeze(enemy, 1)

	step(e, 0.5, UpdateStatusEffects, UpdateEnemies)
	assert.Equal(t, dmath.Vec2{X: 120, Y: 100}, positionOf(enemy))

	step(e, 0.5, UpdateStatusEffects, UpdateEnemies)
	assert.Less(t, positionOf(enemy).X, 120.0, "moves again once thawed")
}

func TestDyingEnemyNeverThaws(t *testing.T) {
	e, _ := newTestECS(t)
	enemy := addEnemy(t, e, "Grunt", dmath.Vec2{X: 120, Y: 100})
	require.True(t, Freeze(enemy, 1))
	ApplyDamage(e, enemy, 1000)

	step(e, 2, UpdateStatusEffects)
	assert.True(t, components.Status.Get(enemy).Frozen)
	assert.Equal(t, 0.0, components.Enemy.Get(enemy).MoveSpeed)
	assert.False(t, Freeze(enemy, 1))
}

func TestSlowMultiplier(t *testing.T) {
	var s components.StatusData
	assert.Equal(t, 4.0, s.Speed(4))
	s.SlowMultiplier = 0.5
	assert.Equal(t, 2.0, s.Speed(4))
}
