package systems

import (
	"image/color"

	"github.com/automoto/gohta/components"
	cfg "github.com/automoto/gohta/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// StartFade restarts the menu fade-in from fully covered
func StartFade(e *ecs.ECS) {
	fade := GetOrCreateFade(e)
	if cfg.Menu.FadeSeconds <= 0 {
		fade.Tween = nil
		fade.Alpha = 1
		return
	}
	fade.Tween = gween.New(0, 1, cfg.Menu.FadeSeconds, ease.OutQuad)
	fade.Alpha = 0
}

// UpdateFade advances the fade-in by one tick
func UpdateFade(e *ecs.ECS) {
	advanceFade(GetOrCreateFade(e), 1/float32(ebiten.TPS()))
}

func advanceFade(fade *components.FadeData, dt float32) {
	if fade.Tween == nil {
		return
	}
	alpha, finished := fade.Tween.Update(dt)
	fade.Alpha = alpha
	if finished {
		fade.Alpha = 1
		fade.Tween = nil
	}
}

// DrawFade covers the screen with black at the remaining fade opacity
func DrawFade(e *ecs.ECS, screen *ebiten.Image) {
	fade := GetOrCreateFade(e)
	if fade.Alpha >= 1 {
		return
	}

	cover := color.NRGBA{A: uint8((1 - fade.Alpha) * 255)}
	b := screen.Bounds()
	vector.FillRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), cover, false)
}

// GetOrCreateFade returns the singleton Fade component, creating if needed
func GetOrCreateFade(e *ecs.ECS) *components.FadeData {
	entry, ok := components.Fade.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Fade))
		components.Fade.SetValue(entry, components.FadeData{Alpha: 1})
	}
	return components.Fade.Get(entry)
}
