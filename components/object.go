package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// PixelsPerUnit scales world units into resolv space coordinates. resolv
// maps objects to cells in whole pixels, so objects smaller than one world
// unit only land in the right cells once scaled.
const PixelsPerUnit = 16

type ObjectData struct {
	*resolv.Object
}

// NewObject builds a rectangle collision object from world-unit bounds.
func NewObject(x, y, w, h float64, tags ...string) *resolv.Object {
	obj := resolv.NewObject(x*PixelsPerUnit, y*PixelsPerUnit, w*PixelsPerUnit, h*PixelsPerUnit, tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, w*PixelsPerUnit, h*PixelsPerUnit))
	return obj
}

// Center places the object so its middle sits on pos (world units).
func (o ObjectData) Center(pos dmath.Vec2) {
	o.X = pos.X*PixelsPerUnit - o.W/2
	o.Y = pos.Y*PixelsPerUnit - o.H/2
	o.Update()
}

// Bounds returns the object's rectangle in world units.
func (o ObjectData) Bounds() (x, y, w, h float64) {
	return o.X / PixelsPerUnit, o.Y / PixelsPerUnit, o.W / PixelsPerUnit, o.H / PixelsPerUnit
}

// Contains reports whether the world point p lies inside the object.
func (o ObjectData) Contains(p dmath.Vec2) bool {
	x, y, w, h := o.Bounds()
	return p.X >= x && p.X <= x+w && p.Y >= y && p.Y <= y+h
}

var Object = donburi.NewComponentType[ObjectData]()

type SpaceData struct {
	*resolv.Space
}

// NewSpace builds a resolv space covering width x height world units with
// cells of cellWidth x cellHeight world units.
func NewSpace(width, height, cellWidth, cellHeight int) *resolv.Space {
	return resolv.NewSpace(width*PixelsPerUnit, height*PixelsPerUnit, cellWidth*PixelsPerUnit, cellHeight*PixelsPerUnit)
}

// CellSize returns the space's cell width in world units.
func (s SpaceData) CellSize() float64 {
	return float64(s.CellWidth) / PixelsPerUnit
}

var Space = donburi.NewComponentType[SpaceData]()
