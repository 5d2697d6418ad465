package components

import (
	cfg "github.com/automoto/gohta/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// Widgets is an extra widget tree drawn on top of a menu's buttons
type Widgets interface {
	Update()
	Draw(screen *ebiten.Image)
}

// MenuData is a named collection of buttons bound to one state value
type MenuData struct {
	Name  string
	State cfg.StateID
	Style *cfg.MenuScreenConfig

	Buttons map[string]*donburi.Entry
	Order   []string // Insertion order, used for check and draw

	FocusIndex int    // -1 = no keyboard focus yet
	Back       Action // Run when the back action is pressed
	Widgets    Widgets
}

var Menu = donburi.NewComponentType[MenuData]()
