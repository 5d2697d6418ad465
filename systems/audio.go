package systems

import (
	"log"
	"sync"

	"github.com/automoto/gohta/assets"
	"github.com/automoto/gohta/components"
	cfg "github.com/automoto/gohta/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalSFXLoader    *assets.SFXLoader
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalSFXLoader = assets.NewSFXLoader(globalAudioContext)
	})
}

// PreloadAllSFX synthesizes all sound effects at startup to avoid lag on first play
func PreloadAllSFX() {
	initGlobalAudio()

	for id := range cfg.Sound.Tones {
		if err := globalSFXLoader.PreloadSFX(id); err != nil {
			log.Printf("Warning: failed to preload sound %d: %v", id, err)
		}
	}
}

// UpdateAudio plays the sound effects queued this frame
func UpdateAudio(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}

	audioData := components.Audio.Get(entry)
	if len(audioData.PendingSFX) == 0 {
		return
	}

	initGlobalAudio()
	for _, soundID := range audioData.PendingSFX {
		playSFX(soundID)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(soundID cfg.SoundID) {
	if globalSFXVolume <= 0 {
		return
	}

	player, err := globalSFXLoader.LoadSFX(soundID)
	if err != nil {
		return
	}

	player.SetVolume(globalSFXVolume)
	player.Play()
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0)
func SetSFXVolume(volume float64) {
	globalSFXVolume = volume
}

// GetSFXVolume returns the current SFX volume (0.0 - 1.0)
func GetSFXVolume() float64 {
	return globalSFXVolume
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
