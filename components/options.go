package components

import "github.com/yohamta/donburi"

// OptionsData stores the current values shown on the options screen
type OptionsData struct {
	SFXVolume       float64 // 0.0, 0.25, 0.50, 0.75, 1.0
	Muted           bool
	Fullscreen      bool
	ResolutionIndex int
}

// Options is the component type for options screen state
var Options = donburi.NewComponentType[OptionsData]()
