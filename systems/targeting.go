package systems

import (
	"math"

	"github.com/automoto/wavebreak/components"
	"github.com/automoto/wavebreak/shared/gamemath"
	"github.com/automoto/wavebreak/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// Candidate is something an enemy may attack.
type Candidate struct {
	Entry    *donburi.Entry
	Position dmath.Vec2
	Category tags.Category
}

// SelectTarget picks the nearest candidate to origin. The player is evaluated
// first and decoys in order; a decoy only wins when strictly closer, so ties
// go to the earlier candidate. ok is false when there is nothing to target.
func SelectTarget(origin dmath.Vec2, player *Candidate, decoys []Candidate) (target Candidate, ok bool) {
	best := math.Inf(1)
	if player != nil {
		target = *player
		best = gamemath.Distance(origin, player.Position)
		ok = true
	}
	for _, d := range decoys {
		dist := gamemath.Distance(origin, d.Position)
		if dist < best {
			target = d
			best = dist
			ok = true
		}
	}
	return target, ok
}

// collectTargets gathers the live player and all decoys. The player is nil
// while dead or absent.
func collectTargets(ecs *ecs.ECS) (*Candidate, []Candidate) {
	var player *Candidate
	if e, ok := tags.Player.First(ecs.World); ok && !components.Player.Get(e).Dead {
		player = &Candidate{Entry: e, Position: positionOf(e), Category: tags.CategoryPlayer}
	}

	var decoys []Candidate
	tags.Decoy.Each(ecs.World, func(e *donburi.Entry) {
		if components.KindOf(e) != tags.CategoryDecoy {
			return
		}
		decoys = append(decoys, Candidate{Entry: e, Position: positionOf(e), Category: tags.CategoryDecoy})
	})
	return player, decoys
}
