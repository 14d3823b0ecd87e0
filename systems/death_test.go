package systems

import (
	"testing"

	"github.com/automoto/wavebreak/components"
	cfg "github.com/automoto/wavebreak/config"
	"github.com/automoto/wavebreak/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestDeathSideEffectsRunInOrder(t *testing.T) {
	e, rec := newTestECS(t)
	addPlayer(t, e)
	_, err := factory.CreateWaveDirector(e)
	require.NoError(t, err)
	w := waveDirector(e.World)
	w.Live = 3

	bomber := addEnemy(t, e, "Bomber", dmath.Vec2{X: 102, Y: 100})
	rec.calls = nil

	ApplyDamage(e, bomber, 1000)
	assert.Equal(t, []string{
		"damage:1000",
		"damage:20", // splash on the player
		"currency:6",
		"kill",
		"text:+6",
		"remaining:2",
	}, rec.calls)
	assert.Equal(t, 2, w.Live)
}

func TestDeathDropsLoot(t *testing.T) {
	e, _ := newTestECS(t)
	addPlayer(t, e)

	grunt := addEnemy(t, e, "Grunt", dmath.Vec2{X: 120, Y: 100})
	ApplyDamage(e, grunt, 1000)
	assert.Equal(t, 1, countPickups(e.World, components.PickupXPOrb))
	assert.Equal(t, 0, countPickups(e.World, components.PickupPowerupOrb))

	boss := addEnemy(t, e, "Brute", dmath.Vec2{X: 80, Y: 100})
	ApplyDamage(e, boss, 5000)
	assert.Equal(t, 2, countPickups(e.World, components.PickupXPOrb))
	assert.Equal(t, 1, countPickups(e.World, components.PickupPowerupOrb))
}

func TestDeathWithoutDropChanceDropsNoOrb(t *testing.T) {
	restoreConfig(t)
	grunt := cfg.Enemy.Types["Grunt"]
	grunt.XPOrbDropChance = 0
	cfg.Enemy.Types["Grunt"] = grunt

	e, _ := newTestECS(t)
	enemy := addEnemy(t, e, "Grunt", dmath.Vec2{X: 120, Y: 100})
	ApplyDamage(e, enemy, 1000)
	assert.Equal(t, 0, countPickups(e.World, components.PickupXPOrb))
}

func TestDeathWithoutHooksIsSilent(t *testing.T) {
	e, _ := newTestECS(t)
	hooks, ok := components.Hooks.First(e.World)
	require.True(t, ok)
	components.Hooks.SetValue(hooks, components.HooksData{})

	enemy := addEnemy(t, e, "Grunt", dmath.Vec2{X: 120, Y: 100})
	assert.NotPanics(t, func() {
		assert.True(t, ApplyDamage(e, enemy, 1000))
	})
}

func TestUpdateDeathsRemovesAfterLinger(t *testing.T) {
	e, _ := newTestECS(t)
	enemy := addEnemy(t, e, "Grunt", dmath.Vec2{X: 120, Y: 100})
	obj := components.Object.Get(enemy).Object
	space := obj.Space
	require.NotNil(t, space)

	ApplyDamage(e, enemy, 1000)
	step(e, cfg.Enemy.DeathLinger/2, UpdateDeaths)
	assert.True(t, enemy.Valid())

	step(e, cfg.Enemy.DeathLinger/2, UpdateDeaths)
	assert.False(t, enemy.Valid())
	assert.NotContains(t, space.Objects(), obj)
}

func TestDyingEnemyDoesNotAct(t *testing.T) {
	e, rec := newTestECS(t)
	player := addPlayer(t, e)
	enemy := addEnemy(t, e, "Grunt", dmath.Vec2{X: 101, Y: 100})
	ApplyDamage(e, enemy, 1000)
	before := positionOf(enemy)
	rec.calls = nil

	step(e, 0.1, UpdateEnemies)
	assert.Equal(t, before, positionOf(enemy))
	assert.Empty(t, rec.calls)
	assert.InDelta(t, cfg.Player.Health, components.Health.Get(player).Current, 1e-9)
}
