package tags

import "github.com/yohamta/donburi"

// Category is the closed set of entity kinds the simulation distinguishes.
// It is stored on each entry in components.Kind and compared by value.
type Category int

const (
	CategoryNone Category = iota
	CategoryPlayer
	CategoryEnemy
	CategoryDecoy
	CategoryPickup
	CategoryEffect
	CategoryTurret
	CategoryProjectile
	CategorySafeZone
)

var categoryNames = [...]string{
	CategoryNone:       "none",
	CategoryPlayer:     "player",
	CategoryEnemy:      "enemy",
	CategoryDecoy:      "decoy",
	CategoryPickup:     "pickup",
	CategoryEffect:     "effect",
	CategoryTurret:     "turret",
	CategoryProjectile: "projectile",
	CategorySafeZone:   "safezone",
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "unknown"
	}
	return categoryNames[c]
}

// Targetable reports whether enemies may pick an entity of this category as a target.
func (c Category) Targetable() bool {
	return c == CategoryPlayer || c == CategoryDecoy
}

// SplashDamageable reports whether bomber explosions hurt this category.
func (c Category) SplashDamageable() bool {
	return c == CategoryPlayer
}

var (
	Player     = donburi.NewTag().SetName("Player")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Decoy      = donburi.NewTag().SetName("Decoy")
	Pickup     = donburi.NewTag().SetName("Pickup")
	Effect     = donburi.NewTag().SetName("Effect")
	Turret     = donburi.NewTag().SetName("Turret")
	Projectile = donburi.NewTag().SetName("Projectile")
	SafeZone   = donburi.NewTag().SetName("SafeZone")
)

// Resolv tags for spatial queries
const (
	ResolvPlayer     = "Player"
	ResolvEnemy      = "Enemy"
	ResolvDecoy      = "Decoy"
	ResolvPickup     = "Pickup"
	ResolvProjectile = "Projectile"
	ResolvSafeZone   = "safezone"
	ResolvStorm      = "storm"
)

// ResolvTag maps a category to the resolv tag its collision objects carry.
func ResolvTag(c Category) string {
	switch c {
	case CategoryPlayer:
		return ResolvPlayer
	case CategoryEnemy:
		return ResolvEnemy
	case CategoryDecoy:
		return ResolvDecoy
	case CategoryPickup:
		return ResolvPickup
	case CategoryProjectile:
		return ResolvProjectile
	case CategorySafeZone:
		return ResolvSafeZone
	}
	return ""
}
