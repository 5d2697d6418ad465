package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// UI sounds
	SoundMenuNavigate
	SoundMenuSelect
	SoundMenuBack
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// ToneConfig describes a synthesized sound effect
type ToneConfig struct {
	Frequency  float64 // Hz
	DurationMs int
	Volume     float64 // 0.0 to 1.0 before the SFX volume setting
}

// SoundConfig maps sound IDs to their synthesized tones
type SoundConfig struct {
	Tones map[SoundID]ToneConfig
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.75,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]ToneConfig{
			SoundMenuNavigate: {Frequency: 660, DurationMs: 40, Volume: 0.35},
			SoundMenuSelect:   {Frequency: 880, DurationMs: 90, Volume: 0.5},
			SoundMenuBack:     {Frequency: 440, DurationMs: 90, Volume: 0.5},
		},
	}
}
