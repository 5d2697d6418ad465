package config

// Resolution represents a display resolution option
type Resolution struct {
	Width  int
	Height int
	Label  string
}

// SettingsMenuConfig contains options screen configuration
type SettingsMenuConfig struct {
	Resolutions            []Resolution
	DefaultResolutionIndex int
	VolumeSteps            []float64
}

// SettingsMenu is the global options screen configuration
var SettingsMenu SettingsMenuConfig

func init() {
	SettingsMenu = SettingsMenuConfig{
		Resolutions: []Resolution{
			{Width: 800, Height: 600, Label: "800 x 600"},
			{Width: 1024, Height: 768, Label: "1024 x 768"},
			{Width: 1280, Height: 960, Label: "1280 x 960"},
			{Width: 1600, Height: 1200, Label: "1600 x 1200"},
		},
		DefaultResolutionIndex: 0,
		VolumeSteps:            []float64{0, 0.25, 0.5, 0.75, 1.0},
	}
}
