package components

import (
	"github.com/automoto/wavebreak/tags"
	"github.com/yohamta/donburi"
)

// Kind stores the entry's category for by-value checks.
var Kind = donburi.NewComponentType[tags.Category]()

// KindOf returns the category of e, or CategoryNone when it has none.
func KindOf(e *donburi.Entry) tags.Category {
	if e == nil || !e.Valid() || !e.HasComponent(Kind) {
		return tags.CategoryNone
	}
	return *Kind.Get(e)
}
