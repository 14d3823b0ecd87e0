// Package leveldata provides TMX arena parsing shared between client and server.
// It has no dependencies on donburi or resolv, pure data only.
package leveldata

// ArenaData holds everything the simulation reads from a TMX arena, in world
// units (one tile = one unit).
type ArenaData struct {
	Name        string
	Width       float64
	Height      float64
	PlayerSpawn Point
	Respawn     Point
	SafeZones   []Rect
}

// Point is a world position.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned area with its top-left corner at X, Y.
type Rect struct {
	X, Y, W, H float64
	Name       string
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}
