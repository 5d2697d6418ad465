package systems

import (
	"fmt"

	"github.com/automoto/gohta/components"
	cfg "github.com/automoto/gohta/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// InitOptions seeds the options screen state from saved settings
func InitOptions(e *ecs.ECS, saved *SavedSettings) *components.OptionsData {
	o := GetOrCreateOptions(e)
	*o = OptionsFromSaved(saved)
	return o
}

// GetOrCreateOptions returns the singleton Options component, creating if needed
func GetOrCreateOptions(e *ecs.ECS) *components.OptionsData {
	entry, ok := components.Options.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Options))
		components.Options.SetValue(entry, OptionsFromSaved(nil))
	}
	return components.Options.Get(entry)
}

// EffectiveSFXVolume is the volume actually played, zero while muted
func EffectiveSFXVolume(o *components.OptionsData) float64 {
	if o.Muted {
		return 0
	}
	return o.SFXVolume
}

// CycleSFXVolume steps the volume up, wrapping from max back to silent
func CycleSFXVolume(o *components.OptionsData) {
	steps := cfg.SettingsMenu.VolumeSteps
	idx := findClosestStepIndex(o.SFXVolume, steps)
	if idx == len(steps)-1 {
		o.SFXVolume = steps[0]
	} else {
		o.SFXVolume = adjustVolumeStep(o.SFXVolume, +1)
	}
	SetSFXVolume(EffectiveSFXVolume(o))
}

// adjustVolumeStep adjusts volume by stepping through predefined values
func adjustVolumeStep(current float64, direction int) float64 {
	steps := cfg.SettingsMenu.VolumeSteps
	currentIdx := findClosestStepIndex(current, steps)
	newIdx := currentIdx + direction
	if newIdx < 0 {
		newIdx = 0
	}
	if newIdx >= len(steps) {
		newIdx = len(steps) - 1
	}
	return steps[newIdx]
}

// findClosestStepIndex finds the closest step index for a volume value
func findClosestStepIndex(value float64, steps []float64) int {
	closest := 0
	minDiff := 2.0 // Start with a large difference
	for i, step := range steps {
		diff := value - step
		if diff < 0 {
			diff = -diff
		}
		if diff < minDiff {
			minDiff = diff
			closest = i
		}
	}
	return closest
}

// ToggleMute toggles the mute state. SFXVolume is kept so unmuting restores it.
func ToggleMute(o *components.OptionsData) {
	o.Muted = !o.Muted
	SetSFXVolume(EffectiveSFXVolume(o))
}

// ToggleFullscreen flips the fullscreen flag. ApplyDisplay makes it take effect.
func ToggleFullscreen(o *components.OptionsData) {
	o.Fullscreen = !o.Fullscreen
}

// CycleResolution cycles through available resolutions
func CycleResolution(o *components.OptionsData, direction int) {
	numResolutions := len(cfg.SettingsMenu.Resolutions)
	o.ResolutionIndex = (o.ResolutionIndex + direction + numResolutions) % numResolutions
}

// ApplyDisplay pushes the fullscreen and resolution options to the window
func ApplyDisplay(o *components.OptionsData) {
	ebiten.SetFullscreen(o.Fullscreen)
	if o.Fullscreen {
		return
	}
	res := cfg.SettingsMenu.Resolutions[o.ResolutionIndex]
	ebiten.SetWindowSize(res.Width, res.Height)
}

// VolumeLabel formats a volume as a percentage
func VolumeLabel(o *components.OptionsData) string {
	if o.Muted {
		return "MUTED"
	}
	return fmt.Sprintf("%d%%", int(o.SFXVolume*100+0.5))
}

// OnOffLabel formats a toggle
func OnOffLabel(on bool) string {
	if on {
		return "ON"
	}
	return "OFF"
}

// ResolutionLabel names the selected resolution
func ResolutionLabel(o *components.OptionsData) string {
	return cfg.SettingsMenu.Resolutions[o.ResolutionIndex].Label
}
