package systems

import (
	"math"

	"github.com/automoto/wavebreak/components"
	cfg "github.com/automoto/wavebreak/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// HUD is the default UI hook. It records notices in the HUD singleton and
// UpdateHUD animates them.
type HUD struct {
	world donburi.World
}

func NewHUD(w donburi.World) *HUD {
	return &HUD{world: w}
}

func (h *HUD) data() *components.HUDData {
	if e, ok := components.HUD.First(h.world); ok {
		return components.HUD.Get(e)
	}
	return nil
}

func (h *HUD) SetWaveLabel(n int) {
	if hud := h.data(); hud != nil {
		hud.WaveLabel = n
	}
}

// SetRemainingCount shows "N enemies left" and fades it out.
func (h *HUD) SetRemainingCount(n int) {
	hud := h.data()
	if hud == nil {
		return
	}
	hud.Remaining = n
	hud.RemainingAlpha = 1
	hud.RemainingFade = gween.New(1, 0, float32(cfg.HUD.RemainingFade), ease.Linear)
}

// ShowBossBanner raises the banner for BannerTime seconds, fading it out
// over the last BannerFade of them.
func (h *HUD) ShowBossBanner() {
	hud := h.data()
	if hud == nil {
		return
	}
	hud.BossBanner = true
	hud.BannerAlpha = 1
	hud.BannerOffset = 0
	hud.BannerElapsed = 0
	hud.BannerRise = gween.New(0, float32(cfg.HUD.BannerRise), float32(cfg.HUD.BannerTime), ease.OutQuad)
	hud.BannerFade = gween.New(1, 0, float32(math.Min(cfg.HUD.BannerFade, cfg.HUD.BannerTime)), ease.Linear)
}

// UpdateHUD advances notice tweens.
func UpdateHUD(ecs *ecs.ECS) {
	e, ok := components.HUD.First(ecs.World)
	if !ok {
		return
	}
	hud := components.HUD.Get(e)
	dt := float32(components.DeltaTime(ecs.World))

	if hud.RemainingFade != nil {
		alpha, done := hud.RemainingFade.Update(dt)
		hud.RemainingAlpha = float64(alpha)
		if done {
			hud.RemainingFade = nil
			hud.RemainingAlpha = 0
		}
	}

	if !hud.BossBanner {
		return
	}
	hud.BannerElapsed += float64(dt)
	if hud.BannerRise != nil {
		offset, done := hud.BannerRise.Update(dt)
		hud.BannerOffset = float64(offset)
		if done {
			hud.BannerRise = nil
		}
	}
	if hud.BannerFade == nil {
		return
	}
	fadeStart := math.Max(cfg.HUD.BannerTime-cfg.HUD.BannerFade, 0)
	if over := hud.BannerElapsed - fadeStart; over > 0 {
		alpha, done := hud.BannerFade.Update(float32(math.Min(over, float64(dt))))
		hud.BannerAlpha = float64(alpha)
		if done {
			hud.BannerFade = nil
			hud.BannerRise = nil
			hud.BossBanner = false
			hud.BannerAlpha = 0
		}
	}
}
