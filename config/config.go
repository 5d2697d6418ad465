package config

import "image/color"

// Config holds general window configuration
type Config struct {
	Width  int    `yaml:"width" toml:"width"`
	Height int    `yaml:"height" toml:"height"`
	Title  string `yaml:"title" toml:"title"`

	// HeightDivisions splits the window height into proportional layout units
	HeightDivisions int `yaml:"height_divisions" toml:"height_divisions"`
}

// ButtonConfig contains the shared look of every launcher button
type ButtonConfig struct {
	Width       int        `yaml:"width" toml:"width"`
	Height      int        `yaml:"height" toml:"height"`
	BorderWidth float32    `yaml:"border_width" toml:"border_width"`
	FontSize    float64    `yaml:"font_size" toml:"font_size"`
	FillColor   color.RGBA `yaml:"-" toml:"-"`
	HoverColor  color.RGBA `yaml:"-" toml:"-"`
	FocusColor  color.RGBA `yaml:"-" toml:"-"`
	BorderColor color.RGBA `yaml:"-" toml:"-"`
	TextColor   color.RGBA `yaml:"-" toml:"-"`
}

// MenuScreenConfig describes one menu screen's background and title.
// Title geometry is expressed in window height units.
type MenuScreenConfig struct {
	BackgroundColor color.RGBA `yaml:"-" toml:"-"`
	TitleText       string     `yaml:"title_text" toml:"title_text"`
	TitleColor      color.RGBA `yaml:"-" toml:"-"`
	TitleCenterY    float64    `yaml:"title_center_y" toml:"title_center_y"`
	TitleWrapWidth  int        `yaml:"title_wrap_width" toml:"title_wrap_width"`
}

// MenuConfig contains launcher menu configuration values
type MenuConfig struct {
	Main    MenuScreenConfig `yaml:"main" toml:"main"`
	Dummy   MenuScreenConfig `yaml:"dummy" toml:"dummy"`
	Options MenuScreenConfig `yaml:"options" toml:"options"`

	// Title font size, in height units
	TitleFontSize float64 `yaml:"title_font_size" toml:"title_font_size"`

	// Ordinal layout, in height units
	ButtonStartY float64 `yaml:"button_start_y" toml:"button_start_y"`
	ButtonGapY   float64 `yaml:"button_gap_y" toml:"button_gap_y"`

	FadeSeconds float32 `yaml:"fade_seconds" toml:"fade_seconds"`
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	StartState StateID // State the dispatcher boots into
	StartMenu  bool    // Use the event-driven StartMenu for MAIN
}

// Global configuration instances
var C *Config
var Button ButtonConfig
var Menu MenuConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	SkyBlue      = color.RGBA{R: 25, G: 205, B: 255, A: 255}
	Charcoal     = color.RGBA{R: 50, G: 50, B: 50, A: 255}
	Grey         = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
)

func init() {
	C = &Config{
		Width:           800,
		Height:          600,
		Title:           "GOHTA",
		HeightDivisions: 12,
	}

	Button = ButtonConfig{
		Width:       320,
		Height:      50,
		BorderWidth: 3,
		FontSize:    22,
		FillColor:   DarkBlue,
		HoverColor:  LightBlue,
		FocusColor:  BrightOrange,
		BorderColor: Charcoal,
		TextColor:   White,
	}

	Menu = MenuConfig{
		Main: MenuScreenConfig{
			BackgroundColor: SkyBlue,
			TitleText:       "GEARS OF HALO THEFT AUTO 5",
			TitleColor:      Charcoal,
			TitleCenterY:    1.875,
			TitleWrapWidth:  12,
		},
		Dummy: MenuScreenConfig{
			BackgroundColor: Grey,
			TitleText:       "Dummy Menu",
			TitleColor:      Charcoal,
			TitleCenterY:    1.875,
			TitleWrapWidth:  12,
		},
		Options: MenuScreenConfig{
			BackgroundColor: color.RGBA{R: 20, G: 20, B: 30, A: 255},
			TitleText:       "OPTIONS",
			TitleColor:      White,
			TitleCenterY:    1.875,
			TitleWrapWidth:  12,
		},
		TitleFontSize: 1.15,
		ButtonStartY:  4,
		ButtonGapY:    0.75,
		FadeSeconds:   0.35,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		StartState: StateMain,
		StartMenu:  false,
	}
}
