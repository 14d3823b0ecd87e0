package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// HUDData holds what the client overlays on top of the arena. The simulation
// only writes it; drawing belongs to the client.
type HUDData struct {
	WaveLabel int

	Remaining      int
	RemainingAlpha float64
	RemainingFade  *gween.Tween

	// The banner shows for BannerTime seconds; the fade covers the last
	// BannerFade seconds of the rise.
	BossBanner    bool
	BannerAlpha   float64
	BannerOffset  float64
	BannerElapsed float64
	BannerRise    *gween.Tween
	BannerFade    *gween.Tween
}

var HUD = donburi.NewComponentType[HUDData]()
