package core

import (
	"log"

	"github.com/automoto/wavebreak/components"
	"github.com/automoto/wavebreak/scenes"
	"github.com/automoto/wavebreak/shared/netcomponents"
	"github.com/automoto/wavebreak/tags"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/yohamta/donburi"
)

// replicator mirrors simulation state into the network components that
// necs sends to clients. Net components live on the simulation entries, so
// removing an entity also removes it on the clients.
type replicator struct {
	world donburi.World
	// synced registers new entries with srvsync; off when no transport runs
	synced bool
}

// Sync attaches net components to new entries and refreshes every mirror.
func (r *replicator) Sync(a *scenes.Arena, lastSeq uint32) {
	w := r.world

	// Collect first; adding components moves entries between archetypes
	var players, enemies, shots, pickups []*donburi.Entry
	tags.Player.Each(w, func(e *donburi.Entry) {
		if !e.HasComponent(netcomponents.NetPlayer) {
			players = append(players, e)
		}
	})
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		if !e.HasComponent(netcomponents.NetEnemy) {
			enemies = append(enemies, e)
		}
	})
	tags.Projectile.Each(w, func(e *donburi.Entry) {
		if !e.HasComponent(netcomponents.NetProjectile) {
			shots = append(shots, e)
		}
	})
	tags.Pickup.Each(w, func(e *donburi.Entry) {
		if !e.HasComponent(netcomponents.NetPickup) {
			pickups = append(pickups, e)
		}
	})

	for _, e := range players {
		attach(r, e, netcomponents.NetPlayer, true)
	}
	for _, e := range enemies {
		attach(r, e, netcomponents.NetEnemy, true)
	}
	for _, e := range shots {
		attach(r, e, netcomponents.NetProjectile, true)
	}
	for _, e := range pickups {
		attach(r, e, netcomponents.NetPickup, false)
	}
	if wave, ok := components.Wave.First(w); ok && !wave.HasComponent(netcomponents.NetWaveState) {
		attach(r, wave, netcomponents.NetWaveState, false)
	}

	shielded := false
	if state, ok := components.PowerupState.First(w); ok {
		shielded = components.PowerupState.Get(state).Shielded()
	}

	netcomponents.NetPlayer.Each(w, func(e *donburi.Entry) {
		pos := components.Transform.Get(e).Position
		player := components.Player.Get(e)
		hp := components.Health.Get(e)
		netcomponents.NetPlayer.SetValue(e, netcomponents.NetPlayerData{
			X:            pos.X,
			Y:            pos.Y,
			Facing:       player.Facing,
			Health:       hp.Current,
			MaxHealth:    hp.Max,
			Dead:         player.Dead,
			Shielded:     shielded,
			LastSequence: lastSeq,
		})
	})

	netcomponents.NetEnemy.Each(w, func(e *donburi.Entry) {
		pos := components.Transform.Get(e).Position
		enemy := components.Enemy.Get(e)
		hp := components.Health.Get(e)
		frozen := false
		if e.HasComponent(components.Status) {
			frozen = components.Status.Get(e).Frozen
		}
		netcomponents.NetEnemy.SetValue(e, netcomponents.NetEnemyData{
			X:         pos.X,
			Y:         pos.Y,
			TypeName:  enemy.TypeName,
			Variant:   int(enemy.Variant),
			Facing:    enemy.Facing,
			Health:    hp.Current,
			MaxHealth: hp.Max,
			Frozen:    frozen,
			Dying:     e.HasComponent(components.Death),
		})
	})

	netcomponents.NetProjectile.Each(w, func(e *donburi.Entry) {
		pos := components.Transform.Get(e).Position
		shot := components.Projectile.Get(e)
		netcomponents.NetProjectile.SetValue(e, netcomponents.NetProjectileData{
			X:     pos.X,
			Y:     pos.Y,
			VelX:  shot.Velocity.X,
			VelY:  shot.Velocity.Y,
			Owner: int(shot.Owner),
		})
	})

	netcomponents.NetPickup.Each(w, func(e *donburi.Entry) {
		pos := components.Transform.Get(e).Position
		pickup := components.Pickup.Get(e)
		netcomponents.NetPickup.SetValue(e, netcomponents.NetPickupData{
			X:     pos.X,
			Y:     pos.Y,
			Kind:  int(pickup.Kind),
			Value: pickup.Value,
		})
	})

	netcomponents.NetWaveState.Each(w, func(e *donburi.Entry) {
		sum := a.Summary()
		wave := components.Wave.Get(e)
		state := netcomponents.NetWaveStateData{
			Wave:    sum.Wave,
			Quota:   wave.Quota,
			Live:    sum.Live,
			Phase:   sum.Phase,
			Coins:   sum.Coins,
			Kills:   sum.Kills,
			Level:   sum.Level,
			Elapsed: sum.Elapsed,
		}
		if hud, ok := components.HUD.First(w); ok {
			h := components.HUD.Get(hud)
			state.Remaining = h.Remaining
			state.RemainingAlpha = h.RemainingAlpha
			state.BossBanner = h.BossBanner
			state.BannerAlpha = h.BannerAlpha
			state.BannerOffset = h.BannerOffset
		}
		netcomponents.NetWaveState.SetValue(e, state)
	})
}

// attach adds a zeroed net component and registers the entry with srvsync.
func attach[T any](r *replicator, e *donburi.Entry, c *donburi.ComponentType[T], interp bool) {
	donburi.Add(e, c, new(T))
	if !r.synced {
		return
	}

	entity := e.Entity()
	var err error
	if interp {
		err = srvsync.NetworkSync(r.world, &entity, srvsync.WithInterp(c))
	} else {
		err = srvsync.NetworkSync(r.world, &entity, c)
	}
	if err != nil {
		log.Printf("[server] Failed to setup network sync for %s: %v", c.Name(), err)
	}
}
