package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FadeData drives the fade-in of the active menu (singleton component)
type FadeData struct {
	Tween *gween.Tween
	Alpha float32
}

var Fade = donburi.NewComponentType[FadeData]()
