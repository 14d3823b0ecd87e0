package systems

import (
	"fmt"
	"testing"

	"github.com/automoto/wavebreak/components"
	cfg "github.com/automoto/wavebreak/config"
	"github.com/automoto/wavebreak/systems/factory"
	"github.com/automoto/wavebreak/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestEnemyShotHitsPlayer(t *testing.T) {
	e, _ := newTestECS(t)
	player := addPlayer(t, e)
	shot := factory.CreateProjectile(e, components.Shot{
		Owner:     tags.CategoryEnemy,
		Origin:    dmath.Vec2{X: 103, Y: 100},
		Direction: dmath.Vec2{X: -1},
		Damage:    8,
		Speed:     10,
	})

	step(e, 0.1, UpdateProjectiles)
	assert.True(t, shot.Valid())
	assert.InDelta(t, 102, positionOf(shot).X, 1e-9)

	step(e, 0.1, UpdateProjectiles)
	step(e, 0.1, UpdateProjectiles)
	assert.False(t, shot.Valid())
	assert.InDelta(t, 92, components.Health.Get(player).Current, 1e-9)
}

func TestDecoyAbsorbsEnemyShot(t *testing.T) {
	e, _ := newTestECS(t)
	player := addPlayer(t, e)
	decoy := factory.CreateDecoy(e, dmath.Vec2{X: 102, Y: 100}, 10)
	shot := factory.CreateProjectile(e, components.Shot{
		Owner:     tags.CategoryEnemy,
		Origin:    dmath.Vec2{X: 104, Y: 100},
		Direction: dmath.Vec2{X: -1},
		Damage:    8,
		Speed:     10,
	})

	for i := 0; i < 3 && shot.Valid(); i++ {
		step(e, 0.1, UpdateProjectiles)
	}
	assert.False(t, shot.Valid())
	assert.Equal(t, 1, components.Decoy.Get(decoy).Hits)
	assert.Equal(t, cfg.Player.Health, components.Health.Get(player).Current)
}

func TestPlayerShotDamagesEnemy(t *testing.T) {
	e, _ := newTestECS(t)
	addPlayer(t, e)
	grunt := addEnemy(t, e, "Grunt", dmath.Vec2{X: 110, Y: 100})
	NewProjectileLauncher(e).Fire(components.Shot{
		Owner:     tags.CategoryPlayer,
		Origin:    dmath.Vec2{X: 101, Y: 100},
		Direction: dmath.Vec2{X: 1},
		Damage:    25,
		Speed:     20,
	})
	shot, ok := components.Projectile.First(e.World)
	require.True(t, ok)

	for i := 0; i < 10 && shot.Valid(); i++ {
		step(e, 0.05, UpdateProjectiles)
	}
	assert.False(t, shot.Valid())
	assert.InDelta(t, 75, components.Health.Get(grunt).Current, 1e-9)
}

func TestProjectileLeavesArena(t *testing.T) {
	e, _ := newTestECS(t)
	shot := factory.CreateProjectile(e, components.Shot{
		Owner:     tags.CategoryPlayer,
		Origin:    dmath.Vec2{X: 199, Y: 100},
		Direction: dmath.Vec2{X: 1},
		Damage:    25,
		Speed:     20,
	})

	step(e, 0.5, UpdateProjectiles)
	assert.False(t, shot.Valid())
}

func TestLauncherIgnoresStillShots(t *testing.T) {
	e, _ := newTestECS(t)
	NewProjectileLauncher(e).Fire(components.Shot{Owner: tags.CategoryEnemy, Damage: 5})
	_, ok := components.Projectile.First(e.World)
	assert.False(t, ok)
}

func TestProjectileHitsAcrossCell(t *testing.T) {
	tests := []struct {
		name string
		gap  float64
		hit  bool
	}{
		{"centre", 0, true},
		{"inside body", 0.3, true},
		{"grazing", 0.6, true},
		{"just clear", 0.7, false},
		{"next cell", 2.5, false},
	}
	for _, x := range acrossCell() {
		for _, tt := range tests {
			t.Run(fmt.Sprintf("%s at %.2f", tt.name, x), func(t *testing.T) {
				e, _ := newTestECS(t)
				grunt := addEnemy(t, e, "Grunt", dmath.Vec2{X: x, Y: 100})
				shot := factory.CreateProjectile(e, components.Shot{
					Owner:     tags.CategoryPlayer,
					Origin:    dmath.Vec2{X: x - tt.gap, Y: 100},
					Direction: dmath.Vec2{X: 1},
					Damage:    25,
					Speed:     0.01,
				})

				step(e, 0.1, UpdateProjectiles)
				assert.Equal(t, !tt.hit, shot.Valid())
				want := 100.0
				if tt.hit {
					want = 75
				}
				assert.InDelta(t, want, components.Health.Get(grunt).Current, 1e-9)
			})
		}
	}
}

func TestEnemyShotHitsPlayerAcrossCell(t *testing.T) {
	for _, x := range acrossCell() {
		t.Run(fmt.Sprintf("%.2f", x), func(t *testing.T) {
			e, _ := newTestECS(t)
			player := addPlayer(t, e)
			setPosition(player, dmath.Vec2{X: x, Y: 100})
			shot := factory.CreateProjectile(e, components.Shot{
				Owner:     tags.CategoryEnemy,
				Origin:    dmath.Vec2{X: x, Y: 100.4},
				Direction: dmath.Vec2{Y: -1},
				Damage:    8,
				Speed:     0.01,
			})

			step(e, 0.1, UpdateProjectiles)
			assert.False(t, shot.Valid())
			assert.InDelta(t, 92, components.Health.Get(player).Current, 1e-9)
		})
	}
}
