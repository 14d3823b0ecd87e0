package systems

import (
	"fmt"
	"testing"

	"github.com/automoto/wavebreak/components"
	cfg "github.com/automoto/wavebreak/config"
	"github.com/automoto/wavebreak/shared/leveldata"
	"github.com/automoto/wavebreak/systems/factory"
	"github.com/automoto/wavebreak/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

var center = dmath.Vec2{X: 100, Y: 100}

// recorder implements every hook and keeps the calls in order.
type recorder struct {
	calls []string

	coins      int
	xp         int
	kills      int
	waveLabels []int
	remaining  []int
	banners    int
	damage     []float64
	texts      []string
	shots      []components.Shot
}

func (r *recorder) GrantCurrency(amount int) {
	r.coins += amount
	r.calls = append(r.calls, fmt.Sprintf("currency:%d", amount))
}

func (r *recorder) GrantExperience(amount int) {
	r.xp += amount
	r.calls = append(r.calls, fmt.Sprintf("xp:%d", amount))
}

func (r *recorder) NotifyKill() {
	r.kills++
	r.calls = append(r.calls, "kill")
}

func (r *recorder) SetWaveLabel(n int) {
	r.waveLabels = append(r.waveLabels, n)
	r.calls = append(r.calls, fmt.Sprintf("wave:%d", n))
}

func (r *recorder) SetRemainingCount(n int) {
	r.remaining = append(r.remaining, n)
	r.calls = append(r.calls, fmt.Sprintf("remaining:%d", n))
}

func (r *recorder) ShowBossBanner() {
	r.banners++
	r.calls = append(r.calls, "banner")
}

func (r *recorder) DamageTaken(_ dmath.Vec2, amount float64) {
	r.damage = append(r.damage, amount)
	r.calls = append(r.calls, fmt.Sprintf("damage:%g", amount))
}

func (r *recorder) FloatingText(_ dmath.Vec2, text string) {
	r.texts = append(r.texts, text)
	r.calls = append(r.calls, "text:"+text)
}

func (r *recorder) Fire(shot components.Shot) {
	r.shots = append(r.shots, shot)
	r.calls = append(r.calls, "shot")
}

// newTestECS builds a world with a space, a 200x200 arena and a session whose
// hooks all report to the returned recorder. No player is created.
func newTestECS(t *testing.T) (*ecs.ECS, *recorder) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, 200, 200, 2, 2)
	factory.CreateArena(e, &leveldata.ArenaData{
		Name:        "test",
		Width:       200,
		Height:      200,
		PlayerSpawn: leveldata.Point{X: center.X, Y: center.Y},
		Respawn:     leveldata.Point{X: center.X, Y: center.Y},
	})
	rec := &recorder{}
	factory.CreateSession(e, 1, components.HooksData{
		Progression: rec,
		UI:          rec,
		Feedback:    rec,
		Launcher:    rec,
	})
	return e, rec
}

func addPlayer(t *testing.T, e *ecs.ECS) *donburi.Entry {
	t.Helper()
	return factory.CreatePlayer(e, center)
}

func addEnemy(t *testing.T, e *ecs.ECS, typeName string, pos dmath.Vec2) *donburi.Entry {
	t.Helper()
	enemy, err := factory.CreateEnemy(e, typeName, pos, 0)
	if err != nil {
		t.Fatalf("create enemy: %v", err)
	}
	return enemy
}

// step runs the given systems once with dt.
func step(e *ecs.ECS, dt float64, systems ...func(*ecs.ECS)) {
	SetDelta(e, dt)
	for _, s := range systems {
		s(e)
	}
}

func liveEnemies(w donburi.World) []*donburi.Entry {
	var out []*donburi.Entry
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		if !e.HasComponent(components.Death) {
			out = append(out, e)
		}
	})
	return out
}

func countPickups(w donburi.World, kind components.PickupKind) int {
	n := 0
	components.Pickup.Each(w, func(e *donburi.Entry) {
		if components.Pickup.Get(e).Kind == kind {
			n++
		}
	})
	return n
}

// restoreConfig snapshots the mutable tuning globals and puts them back when
// the test ends.
func restoreConfig(t *testing.T) {
	t.Helper()
	saved := cfg.Current()
	t.Cleanup(saved.Apply)
}

// acrossCell returns x positions stepping through one full 2-unit cell of
// the test space, both edges included.
func acrossCell() []float64 {
	var xs []float64
	for i := 0; i <= 8; i++ {
		xs = append(xs, 100+float64(i)*0.25)
	}
	return xs
}
