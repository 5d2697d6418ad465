package systems

import (
	"testing"

	"github.com/automoto/gohta/components"
	cfg "github.com/automoto/gohta/config"
)

func TestOptionsFromSavedDefaults(t *testing.T) {
	o := OptionsFromSaved(nil)

	if o.SFXVolume != cfg.Audio.DefaultSFXVol {
		t.Errorf("volume = %v, want %v", o.SFXVolume, cfg.Audio.DefaultSFXVol)
	}
	if o.ResolutionIndex != cfg.SettingsMenu.DefaultResolutionIndex || o.Muted || o.Fullscreen {
		t.Errorf("unexpected defaults %+v", o)
	}
}

func TestSavedFromOptions(t *testing.T) {
	o := &components.OptionsData{SFXVolume: 1, Muted: true, Fullscreen: true, ResolutionIndex: 3}

	s := SavedFromOptions(o)

	if *s != (SavedSettings{SFXVolume: 1, Muted: true, Fullscreen: true, ResolutionIndex: 3}) {
		t.Errorf("saved = %+v", *s)
	}
}

func TestDecodeSettingsClampsResolution(t *testing.T) {
	s, err := decodeSettings([]byte(`{"sfxVolume":0.5,"resolutionIndex":99}`))
	if err != nil {
		t.Fatal(err)
	}
	if s.ResolutionIndex != cfg.SettingsMenu.DefaultResolutionIndex {
		t.Errorf("resolution index = %d, want default", s.ResolutionIndex)
	}
	if s.SFXVolume != 0.5 {
		t.Errorf("volume = %v", s.SFXVolume)
	}
}

func TestDecodeSettingsRejectsGarbage(t *testing.T) {
	if _, err := decodeSettings([]byte("not json")); err == nil {
		t.Error("expected parse error")
	}
}

func TestSaveSettingsWithoutStore(t *testing.T) {
	if gdataInitialized {
		t.Skip("persistence initialized by another test")
	}
	if err := SaveSettings(&SavedSettings{}); err != nil {
		t.Errorf("save without a store should be a no-op, got %v", err)
	}
	if s, err := LoadSettings(); s != nil || err != nil {
		t.Errorf("load without a store = %v, %v", s, err)
	}
}
