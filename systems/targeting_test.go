package systems

import (
	"testing"

	"github.com/automoto/wavebreak/tags"
	"github.com/stretchr/testify/assert"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestSelectTarget(t *testing.T) {
	origin := dmath.Vec2{}
	player := &Candidate{Position: dmath.Vec2{X: 5}, Category: tags.CategoryPlayer}
	near := Candidate{Position: dmath.Vec2{X: 3}, Category: tags.CategoryDecoy}
	tie := Candidate{Position: dmath.Vec2{Y: 5}, Category: tags.CategoryDecoy}
	far := Candidate{Position: dmath.Vec2{X: 9}, Category: tags.CategoryDecoy}

	tests := []struct {
		name   string
		player *Candidate
		decoys []Candidate
		want   dmath.Vec2
		ok     bool
	}{
		{"player only", player, nil, player.Position, true},
		{"closer decoy wins", player, []Candidate{far, near}, near.Position, true},
		{"tie keeps player", player, []Candidate{tie}, player.Position, true},
		{"farther decoy loses", player, []Candidate{far}, player.Position, true},
		{"decoys without player", nil, []Candidate{far, near}, near.Position, true},
		{"first of equal decoys", nil, []Candidate{tie, {Position: dmath.Vec2{X: -5}}}, tie.Position, true},
		{"nothing to target", nil, nil, dmath.Vec2{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SelectTarget(origin, tt.player, tt.decoys)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, got.Position)
			}
		})
	}
}

func TestCollectTargetsSkipsDeadPlayer(t *testing.T) {
	e, _ := newTestECS(t)
	player := addPlayer(t, e)

	p, decoys := collectTargets(e)
	assert.NotNil(t, p)
	assert.Empty(t, decoys)

	killPlayer(e, player)
	p, _ = collectTargets(e)
	assert.Nil(t, p)
}
