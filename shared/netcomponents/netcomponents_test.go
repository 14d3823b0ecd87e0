package netcomponents

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLerpNetEnemy(t *testing.T) {
	from := NetEnemyData{X: 0, Y: 10, Health: 100, TypeName: "Grunt"}
	to := NetEnemyData{X: 10, Y: 20, Health: 50, TypeName: "Grunt", Frozen: true}

	got := LerpNetEnemy(from, to, 0.5)
	assert.Equal(t, 5.0, got.X)
	assert.Equal(t, 15.0, got.Y)
	assert.Equal(t, 50.0, got.Health)
	assert.True(t, got.Frozen)
}

func TestLerpNetPlayerSnapsState(t *testing.T) {
	from := NetPlayerData{X: 0, Health: 100}
	to := NetPlayerData{X: 4, Health: 0, Dead: true, LastSequence: 9}

	got := LerpNetPlayer(from, to, 0.25)
	assert.Equal(t, 1.0, got.X)
	assert.True(t, got.Dead)
	assert.Equal(t, uint32(9), got.LastSequence)
}

func TestLerpNetProjectile(t *testing.T) {
	got := LerpNetProjectile(NetProjectileData{X: 2, VelX: 1}, NetProjectileData{X: 4, VelX: 3, Owner: 2}, 0.5)
	assert.Equal(t, 3.0, got.X)
	assert.Equal(t, 3.0, got.VelX)
	assert.Equal(t, 2, got.Owner)
}
