package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/gohta/components"
	cfg "github.com/automoto/gohta/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	SFXVolume       float64 `json:"sfxVolume"`
	Muted           bool    `json:"muted"`
	Fullscreen      bool    `json:"fullscreen"`
	ResolutionIndex int     `json:"resolutionIndex"`
}

const settingsKey = "settings"

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "gohta",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk. Returns nil settings when nothing
// has been saved yet or persistence is unavailable.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	return decodeSettings(data)
}

func decodeSettings(data []byte) (*SavedSettings, error) {
	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}
	if settings.ResolutionIndex < 0 || settings.ResolutionIndex >= len(cfg.SettingsMenu.Resolutions) {
		settings.ResolutionIndex = cfg.SettingsMenu.DefaultResolutionIndex
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(settingsKey, data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SavedFromOptions converts the options screen state to its stored form
func SavedFromOptions(o *components.OptionsData) *SavedSettings {
	return &SavedSettings{
		SFXVolume:       o.SFXVolume,
		Muted:           o.Muted,
		Fullscreen:      o.Fullscreen,
		ResolutionIndex: o.ResolutionIndex,
	}
}

// OptionsFromSaved converts stored settings into options screen state.
// Nil settings give the defaults.
func OptionsFromSaved(saved *SavedSettings) components.OptionsData {
	if saved == nil {
		return components.OptionsData{
			SFXVolume:       cfg.Audio.DefaultSFXVol,
			ResolutionIndex: cfg.SettingsMenu.DefaultResolutionIndex,
		}
	}

	return components.OptionsData{
		SFXVolume:       saved.SFXVolume,
		Muted:           saved.Muted,
		Fullscreen:      saved.Fullscreen,
		ResolutionIndex: saved.ResolutionIndex,
	}
}

// SaveCurrentSettings saves the options screen state
func SaveCurrentSettings(o *components.OptionsData) {
	_ = SaveSettings(SavedFromOptions(o))
}

// ApplySavedSettingsGlobal applies settings without needing an ECS reference.
// Used during startup before scenes are created.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}

	o := OptionsFromSaved(saved)
	SetSFXVolume(EffectiveSFXVolume(&o))

	ebiten.SetFullscreen(saved.Fullscreen)

	// Apply resolution (only if not fullscreen)
	if !saved.Fullscreen && saved.ResolutionIndex < len(cfg.SettingsMenu.Resolutions) {
		res := cfg.SettingsMenu.Resolutions[saved.ResolutionIndex]
		ebiten.SetWindowSize(res.Width, res.Height)
	}
}
