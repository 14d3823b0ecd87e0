package components

import (
	"testing"

	cfg "github.com/automoto/wavebreak/config"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestEnemyStyle(t *testing.T) {
	tests := []struct {
		variant cfg.Variant
		boss    cfg.Variant
		want    cfg.Variant
	}{
		{cfg.VariantMelee, cfg.VariantMelee, cfg.VariantMelee},
		{cfg.VariantRanged, cfg.VariantMelee, cfg.VariantRanged},
		{cfg.VariantBomber, cfg.VariantMelee, cfg.VariantMelee},
		{cfg.VariantBoss, cfg.VariantMelee, cfg.VariantMelee},
		{cfg.VariantBoss, cfg.VariantRanged, cfg.VariantRanged},
		{cfg.VariantBoss, cfg.VariantBomber, cfg.VariantMelee},
	}
	for _, tt := range tests {
		e := EnemyData{Variant: tt.variant, BossStyle: tt.boss}
		assert.Equal(t, tt.want, e.Style(), "%s/%s", tt.variant, tt.boss)
	}
}

func TestHealthClamp(t *testing.T) {
	h := HealthData{Current: -5, Max: 100}
	h.Clamp()
	assert.Equal(t, 0.0, h.Current)

	h.Current = 130
	h.Clamp()
	assert.Equal(t, 100.0, h.Current)
}

func TestArenaClamp(t *testing.T) {
	a := ArenaData{Width: 50, Height: 40}
	assert.Equal(t, dmath.Vec2{X: 0, Y: 40}, a.Clamp(dmath.Vec2{X: -3, Y: 41}))
	assert.Equal(t, dmath.Vec2{X: 50, Y: 0}, a.Clamp(dmath.Vec2{X: 70, Y: -1}))
	assert.Equal(t, dmath.Vec2{X: 10, Y: 10}, a.Clamp(dmath.Vec2{X: 10, Y: 10}))
}

func TestPlayerInputEdges(t *testing.T) {
	var in PlayerInputData
	in.Set(map[cfg.ActionID]bool{cfg.ActionFire: true})
	assert.True(t, in.Pressed(cfg.ActionFire))
	assert.True(t, in.JustPressed(cfg.ActionFire))

	in.Advance()
	assert.True(t, in.Pressed(cfg.ActionFire))
	assert.False(t, in.JustPressed(cfg.ActionFire))

	in.Set(map[cfg.ActionID]bool{cfg.ActionCount: true, cfg.ActionNone: true})
	assert.False(t, in.Pressed(cfg.ActionFire))
	assert.False(t, in.Pressed(cfg.ActionNone))
}

func TestWavePhaseTransitions(t *testing.T) {
	w := WaveData{Phase: NewWavePhase()}
	assert.Equal(t, PhaseIdle, w.PhaseName())

	w.Transition(EventStart)
	assert.Equal(t, PhaseSpawning, w.PhaseName())
	w.Transition(EventCleared) // not allowed from spawning
	assert.Equal(t, PhaseSpawning, w.PhaseName())
	w.Transition(EventSpawned)
	assert.Equal(t, PhaseWaiting, w.PhaseName())
	w.Transition(EventCleared)
	assert.Equal(t, PhaseAdvancing, w.PhaseName())
	w.Transition(EventStart)
	assert.Equal(t, PhaseSpawning, w.PhaseName())
}

func TestGetHooksWithoutSingleton(t *testing.T) {
	hooks := GetHooks(donburi.NewWorld())
	assert.NotNil(t, hooks)
	assert.Nil(t, hooks.UI)
}

func TestDeltaTimeAndRNGFallbacks(t *testing.T) {
	w := donburi.NewWorld()
	assert.Equal(t, 0.0, DeltaTime(w))
	assert.NotNil(t, RNG(w))
}
