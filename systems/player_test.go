package systems

import (
	"testing"

	"github.com/automoto/wavebreak/components"
	cfg "github.com/automoto/wavebreak/config"
	"github.com/automoto/wavebreak/shared/leveldata"
	"github.com/automoto/wavebreak/systems/factory"
	"github.com/automoto/wavebreak/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestPlayerMovesFromIntents(t *testing.T) {
	e, _ := newTestECS(t)
	player := addPlayer(t, e)

	components.PlayerInput.Get(player).Set(map[cfg.ActionID]bool{cfg.ActionMoveRight: true})
	step(e, 0.5, UpdatePlayer)
	assert.InDelta(t, 102.5, positionOf(player).X, 1e-9)

	components.PlayerInput.Get(player).Set(map[cfg.ActionID]bool{
		cfg.ActionMoveUp: true,
		cfg.ActionSprint: true,
	})
	step(e, 0.5, UpdatePlayer)
	assert.InDelta(t, 96.25, positionOf(player).Y, 1e-9)
}

func TestPlayerStaysInArena(t *testing.T) {
	e, _ := newTestECS(t)
	player := factory.CreatePlayer(e, dmath.Vec2{X: 1, Y: 1})

	components.PlayerInput.Get(player).Set(map[cfg.ActionID]bool{cfg.ActionMoveLeft: true})
	step(e, 1, UpdatePlayer)
	assert.Equal(t, 0.0, positionOf(player).X)
}

func TestPlayerFiresTowardAim(t *testing.T) {
	e, rec := newTestECS(t)
	player := addPlayer(t, e)
	input := components.PlayerInput.Get(player)
	input.Set(map[cfg.ActionID]bool{cfg.ActionFire: true})
	input.Aim = dmath.Vec2{X: 100, Y: 110}
	input.HasAim = true

	step(e, 0.1, UpdatePlayer)
	require.Len(t, rec.shots, 1)
	shot := rec.shots[0]
	assert.Equal(t, tags.CategoryPlayer, shot.Owner)
	assert.InDelta(t, 0, shot.Direction.X, 1e-9)
	assert.InDelta(t, 1, shot.Direction.Y, 1e-9)
	assert.Equal(t, cfg.Player.ShotDamage, shot.Damage)

	step(e, 0.1, UpdatePlayer)
	assert.Len(t, rec.shots, 1, "weapon cooldown")
}

func TestPlayerDeathDropsStashAndRespawns(t *testing.T) {
	e, _ := newTestECS(t)
	player := addPlayer(t, e)
	progressEntry, _ := components.Progress.First(e.World)
	progress := components.Progress.Get(progressEntry)
	progress.Coins = 42

	setPosition(player, dmath.Vec2{X: 50, Y: 60})
	res := DamagePlayer(e, player, 500, DamageDirect)
	require.True(t, res.Died)
	assert.Equal(t, 0, progress.Coins)

	stash, ok := components.Pickup.First(e.World)
	require.True(t, ok)
	assert.Equal(t, components.PickupDeathStash, components.Pickup.Get(stash).Kind)
	assert.Equal(t, 42, components.Pickup.Get(stash).Value)

	steps := int(cfg.Player.RespawnDelay / 0.5)
	for i := 0; i < steps-1; i++ {
		step(e, 0.5, UpdatePlayer)
	}
	assert.True(t, components.Player.Get(player).Dead)

	step(e, 0.5, UpdatePlayer)
	assert.False(t, components.Player.Get(player).Dead)
	assert.Equal(t, center, positionOf(player))
	assert.Equal(t, cfg.Player.Health, components.Health.Get(player).Current)
}

func TestPlayerRegeneratesFasterInSafeZone(t *testing.T) {
	e, _ := newTestECS(t)
	player := addPlayer(t, e)
	hp := components.Health.Get(player)

	hp.Current = 50
	step(e, 1, UpdatePlayer)
	assert.InDelta(t, 51, hp.Current, 1e-9)

	factory.CreateSafeZone(e, leveldata.Rect{X: 95, Y: 95, W: 10, H: 10, Name: "camp"})
	hp.Current = 50
	step(e, 1, UpdatePlayer)
	assert.InDelta(t, 60, hp.Current, 1e-9)
}
