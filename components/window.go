package components

import "github.com/yohamta/donburi"

// WindowData is the drawable surface's layout constants
type WindowData struct {
	Width      int
	Height     int
	CenterX    int
	CenterY    int
	HeightUnit int // Proportional layout unit
}

var Window = donburi.NewComponentType[WindowData]()
