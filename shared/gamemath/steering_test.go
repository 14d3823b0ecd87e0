package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestMoveTowardsStopsAtTarget(t *testing.T) {
	got := MoveTowards(dmath.Vec2{}, dmath.Vec2{X: 3, Y: 4}, 10)
	assert.Equal(t, dmath.Vec2{X: 3, Y: 4}, got)
}

func TestMoveTowardsPartialStep(t *testing.T) {
	got := MoveTowards(dmath.Vec2{}, dmath.Vec2{X: 3, Y: 4}, 2.5)
	assert.InDelta(t, 1.5, got.X, 1e-9)
	assert.InDelta(t, 2.0, got.Y, 1e-9)
}

func TestDirectionOfCoincidentPointsIsZero(t *testing.T) {
	assert.Equal(t, dmath.Vec2{}, Direction(dmath.Vec2{X: 1, Y: 1}, dmath.Vec2{X: 1, Y: 1}))
}

func TestPointOnCircleKeepsRadius(t *testing.T) {
	center := dmath.Vec2{X: 10, Y: -2}
	for _, a := range []float64{0, 1, math.Pi, 5.5} {
		p := PointOnCircle(center, 7, a)
		assert.InDelta(t, 7.0, Distance(center, p), 1e-9)
	}
}

func TestFacingAngle(t *testing.T) {
	assert.InDelta(t, math.Pi/2, FacingAngle(dmath.Vec2{}, dmath.Vec2{Y: 5}), 1e-9)
	assert.InDelta(t, math.Pi, FacingAngle(dmath.Vec2{}, dmath.Vec2{X: -1}), 1e-9)
}

func TestWalkNormalisesDiagonal(t *testing.T) {
	got, moved := Walk(dmath.Vec2{}, dmath.Vec2{X: 1, Y: 1}, 10, 0.5)
	assert.True(t, moved)
	assert.InDelta(t, 5.0, Distance(dmath.Vec2{}, got), 1e-9)

	still, moved := Walk(dmath.Vec2{X: 2}, dmath.Vec2{}, 10, 1)
	assert.False(t, moved)
	assert.Equal(t, dmath.Vec2{X: 2}, still)
}
