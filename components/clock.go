package components

import (
	"math/rand"

	"github.com/yohamta/donburi"
)

// ClockData carries the step length for the systems of the current tick.
type ClockData struct {
	Delta   float64 // Seconds
	Elapsed float64
	Ticks   int
}

var Clock = donburi.NewComponentType[ClockData]()

// DeltaTime returns the current step length, zero without a clock.
func DeltaTime(w donburi.World) float64 {
	if e, ok := Clock.First(w); ok {
		return Clock.Get(e).Delta
	}
	return 0
}

type RandomData struct {
	*rand.Rand
}

var Random = donburi.NewComponentType[RandomData]()

// RNG returns the world's seeded source, or a fixed-seed fallback.
func RNG(w donburi.World) *rand.Rand {
	if e, ok := Random.First(w); ok {
		if r := Random.Get(e); r.Rand != nil {
			return r.Rand
		}
	}
	return fallbackRand
}

var fallbackRand = rand.New(rand.NewSource(1))
