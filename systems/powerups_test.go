package systems

import (
	"fmt"
	"testing"

	"github.com/automoto/wavebreak/components"
	cfg "github.com/automoto/wavebreak/config"
	"github.com/automoto/wavebreak/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

func powerupState(t *testing.T, w donburi.World) *components.PowerupStateData {
	t.Helper()
	e, ok := components.PowerupState.First(w)
	require.True(t, ok)
	return components.PowerupState.Get(e)
}

func TestShieldRunsThenCoolsDown(t *testing.T) {
	e, _ := newTestECS(t)
	addPlayer(t, e)
	ps := powerupState(t, e.World)

	require.True(t, ActivatePowerup(e, cfg.PowerupShield))
	assert.True(t, ps.Shielded())
	assert.False(t, ActivatePowerup(e, cfg.PowerupShield), "active")

	for i := 0; i < 5; i++ {
		step(e, 1, UpdatePowerups)
	}
	assert.False(t, ps.Shielded())
	assert.False(t, ActivatePowerup(e, cfg.PowerupShield), "cooling down")

	for i := 0; i < 10; i++ {
		step(e, 1, UpdatePowerups)
	}
	assert.True(t, ActivatePowerup(e, cfg.PowerupShield))
}

func TestEMPFreezesEnemiesInRadius(t *testing.T) {
	e, _ := newTestECS(t)
	addPlayer(t, e)
	inside := addEnemy(t, e, "Grunt", dmath.Vec2{X: 104, Y: 100})
	outside := addEnemy(t, e, "Grunt", dmath.Vec2{X: 110, Y: 100})

	require.True(t, ActivatePowerup(e, cfg.PowerupEMP))
	assert.True(t, components.Status.Get(inside).Frozen)
	assert.False(t, components.Status.Get(outside).Frozen)

	assert.False(t, ActivatePowerup(e, cfg.PowerupEMP), "cooldown starts at activation")
	assert.Equal(t, 0, EMPPulse(e, center, 5, 3), "already frozen")
}

func TestDecoyExpires(t *testing.T) {
	e, _ := newTestECS(t)
	addPlayer(t, e)

	require.True(t, ActivatePowerup(e, cfg.PowerupDecoy))
	decoy, ok := components.Decoy.First(e.World)
	require.True(t, ok)

	for i := 0; i < 9; i++ {
		step(e, 1, UpdateLifetimes)
	}
	assert.True(t, decoy.Valid())
	step(e, 1, UpdateLifetimes)
	assert.False(t, decoy.Valid())
}

func TestTurretPowerupSpawnsTurret(t *testing.T) {
	e, _ := newTestECS(t)
	addPlayer(t, e)

	require.True(t, ActivatePowerup(e, cfg.PowerupTurret))
	turret, ok := components.Turret.First(e.World)
	require.True(t, ok)
	assert.Equal(t, center, positionOf(turret))
}

func TestPowerupIntentActivatesEquipped(t *testing.T) {
	e, _ := newTestECS(t)
	player := addPlayer(t, e)
	ps := powerupState(t, e.World)
	ps.Equipped = cfg.PowerupShield

	input := components.PlayerInput.Get(player)
	input.Set(map[cfg.ActionID]bool{cfg.ActionPowerup: true})
	step(e, 0.1, UpdatePowerups)
	assert.True(t, ps.Shielded())
}

func TestPowerupNeedsLivePlayer(t *testing.T) {
	e, _ := newTestECS(t)
	player := addPlayer(t, e)
	components.Player.Get(player).Dead = true

	assert.False(t, ActivatePowerup(e, cfg.PowerupShield))
	assert.False(t, ActivatePowerup(e, cfg.PowerupNone))
	assert.False(t, ActivatePowerup(e, cfg.PowerupCount))
}

func TestEMPPulseAcrossCell(t *testing.T) {
	for _, x := range acrossCell() {
		t.Run(fmt.Sprintf("%.2f", x), func(t *testing.T) {
			e, _ := newTestECS(t)
			origin := dmath.Vec2{X: x, Y: 100}
			edge := addEnemy(t, e, "Grunt", dmath.Vec2{X: x + 4.95, Y: 100})
			beyond := addEnemy(t, e, "Grunt", dmath.Vec2{X: x - 5.05, Y: 100})

			assert.Equal(t, 1, EMPPulse(e, origin, 5, 3))
			assert.True(t, components.Status.Get(edge).Frozen)
			assert.False(t, components.Status.Get(beyond).Frozen)
		})
	}
}

func TestSnowStormsSlowEnemiesInside(t *testing.T) {
	e, _ := newTestECS(t)
	storm := cfg.Powerups.SnowStorm
	inside := addEnemy(t, e, "Grunt", dmath.Vec2{X: 102.9, Y: 100})
	outside := addEnemy(t, e, "Grunt", dmath.Vec2{X: 103.1, Y: 100})
	factory.CreateSnowStorm(e, center, storm)

	applySnowStorms(e)
	assert.Equal(t, storm.SlowMultiplier, components.Status.Get(inside).SlowMultiplier)
	assert.Equal(t, 0.0, components.Status.Get(outside).SlowMultiplier)

	deeper := storm
	deeper.SlowMultiplier = 0.25
	factory.CreateSnowStorm(e, dmath.Vec2{X: 104, Y: 100}, deeper)
	applySnowStorms(e)
	assert.Equal(t, 0.25, components.Status.Get(inside).SlowMultiplier)
	assert.Equal(t, 0.25, components.Status.Get(outside).SlowMultiplier)

	setPosition(outside, dmath.Vec2{X: 120, Y: 100})
	applySnowStorms(e)
	assert.Equal(t, 0.0, components.Status.Get(outside).SlowMultiplier)
}
