package components

import (
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// TransformData is the authoritative planar position (entity center, world units).
// Collision objects are synced from it by UpdateObjects.
type TransformData struct {
	Position dmath.Vec2
}

var Transform = donburi.NewComponentType[TransformData]()
