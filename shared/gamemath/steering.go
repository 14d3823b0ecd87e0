package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Distance is the planar Euclidean distance between two points.
func Distance(a, b dmath.Vec2) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Direction returns the unit vector from a toward b, or the zero vector when
// the points coincide.
func Direction(from, to dmath.Vec2) dmath.Vec2 {
	dx := to.X - from.X
	dy := to.Y - from.Y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return dmath.Vec2{}
	}
	return dmath.Vec2{X: dx / dist, Y: dy / dist}
}

// FacingAngle returns the heading in radians from a toward b.
func FacingAngle(from, to dmath.Vec2) float64 {
	return math.Atan2(to.Y-from.Y, to.X-from.X)
}

// MoveTowards steps current toward target by at most maxStep without
// overshooting it.
func MoveTowards(current, target dmath.Vec2, maxStep float64) dmath.Vec2 {
	dx := target.X - current.X
	dy := target.Y - current.Y
	dist := math.Hypot(dx, dy)
	if dist <= maxStep || dist == 0 {
		return target
	}
	return dmath.Vec2{
		X: current.X + dx/dist*maxStep,
		Y: current.Y + dy/dist*maxStep,
	}
}

// PointOnCircle returns the point at radius from center along angle (radians).
func PointOnCircle(center dmath.Vec2, radius, angle float64) dmath.Vec2 {
	return dmath.Vec2{
		X: center.X + math.Cos(angle)*radius,
		Y: center.Y + math.Sin(angle)*radius,
	}
}

// ClampFloat clamps v into [lo, hi].
func ClampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SprintMultiplier scales walking speed while sprinting.
const SprintMultiplier = 1.5

// Walk moves pos along dir, normalised, at speed for dt seconds. It reports
// false and leaves pos alone when dir is zero.
func Walk(pos, dir dmath.Vec2, speed, dt float64) (dmath.Vec2, bool) {
	length := math.Hypot(dir.X, dir.Y)
	if length == 0 {
		return pos, false
	}
	return dmath.Vec2{
		X: pos.X + dir.X/length*speed*dt,
		Y: pos.Y + dir.Y/length*speed*dt,
	}, true
}
