package components

import "github.com/yohamta/donburi"

// ButtonData is a clickable launcher button. X/Y is the button centre.
type ButtonData struct {
	Name   string
	Label  string
	X, Y   float64
	Width  float64
	Height float64
	Action Action

	// Recomputed on every check
	Pressed bool
	Hovered bool

	Focused bool // Keyboard/gamepad focus
}

var Button = donburi.NewComponentType[ButtonData]()
