package systems

import (
	"github.com/automoto/wavebreak/components"
	cfg "github.com/automoto/wavebreak/config"
	"github.com/automoto/wavebreak/shared/gamemath"
	"github.com/automoto/wavebreak/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// DamageKind separates direct hits, which the shield mitigates, from splash.
type DamageKind int

const (
	DamageDirect DamageKind = iota
	DamageSplash
)

// DamageResult reports what a damage call did to its defender.
type DamageResult struct {
	Applied float64
	Health  float64
	Died    bool // true only on the call that killed
}

// ResolveDamage returns the damage that reaches a defender. Only direct hits
// on a shielded defender are mitigated.
func ResolveDamage(raw float64, shielded, splash bool) float64 {
	if shielded && !splash {
		return raw * cfg.Combat.ShieldFactor
	}
	return raw
}

// ApplyDamage is the single health writer for enemies. It returns true on the
// call that kills; damage to a dying or removed enemy is ignored.
func ApplyDamage(ecs *ecs.ECS, e *donburi.Entry, amount float64) bool {
	if e == nil || !e.Valid() || e.HasComponent(components.Death) || !e.HasComponent(components.Enemy) {
		return false
	}

	hp := components.Health.Get(e)
	hp.Current -= amount

	if fb := components.GetHooks(ecs.World).Feedback; fb != nil {
		fb.DamageTaken(positionOf(e), amount)
	}
	triggerFlash(e)

	if hp.Current <= 0 {
		hp.Clamp()
		resolveDeath(ecs, e)
		return true
	}
	hp.Clamp()
	return false
}

// DamagePlayer is the player's damage intake.
func DamagePlayer(ecs *ecs.ECS, player *donburi.Entry, raw float64, kind DamageKind) DamageResult {
	if player == nil || !player.Valid() || !player.HasComponent(components.Player) {
		return DamageResult{}
	}
	hp := components.Health.Get(player)
	if components.Player.Get(player).Dead {
		return DamageResult{Health: hp.Current}
	}

	shielded := false
	if e, ok := components.PowerupState.First(ecs.World); ok {
		shielded = components.PowerupState.Get(e).Shielded()
	}
	applied := ResolveDamage(raw, shielded, kind == DamageSplash)
	hp.Current -= applied

	if fb := components.GetHooks(ecs.World).Feedback; fb != nil {
		fb.DamageTaken(positionOf(player), applied)
	}
	triggerFlash(player)

	died := hp.Current <= 0
	hp.Clamp()
	if died {
		killPlayer(ecs, player)
	}
	return DamageResult{Applied: applied, Health: hp.Current, Died: died}
}

// applySplash damages every splash-damageable entity within radius of origin
// and returns how many were hit.
func applySplash(ecs *ecs.ECS, origin dmath.Vec2, radius float64, damage int) int {
	hits := 0
	for _, e := range nearby(ecs.World, origin, radius, tags.Player, tags.ResolvPlayer) {
		kind := components.KindOf(e)
		if !kind.SplashDamageable() {
			continue
		}
		if gamemath.Distance(origin, positionOf(e)) > radius {
			continue
		}
		if kind == tags.CategoryPlayer {
			DamagePlayer(ecs, e, float64(damage), DamageSplash)
			hits++
		}
	}
	return hits
}

// triggerFlash restarts the hit flash on e.
func triggerFlash(e *donburi.Entry) {
	if e.HasComponent(components.Flash) {
		components.Flash.Get(e).Remaining = cfg.Combat.FlashDuration
	}
}
