package systems

import (
	"github.com/automoto/gohta/components"
	cfg "github.com/automoto/gohta/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Main menu button names, in ordinal order
const (
	ButtonSP      = "SP"
	ButtonHost    = "HOST"
	ButtonJoin    = "JOIN"
	ButtonOptions = "OPTIONS"
	ButtonQuit    = "QUIT"
)

// mainMenuEntry is one row of the launch menu column
type mainMenuEntry struct {
	name   string
	label  string
	target cfg.StateID
}

var mainMenuEntries = []mainMenuEntry{
	{ButtonSP, "SINGLE PLAYER", cfg.StateSP},
	{ButtonHost, "HOST", cfg.StateHost},
	{ButtonJoin, "JOIN", cfg.StateJoin},
	{ButtonOptions, "OPTIONS", cfg.StateOptions},
}

// NewMainMenu builds the MAIN screen. Each button requests its state
// directly from the dispatcher, except QUIT which goes to the platform.
func NewMainMenu(e *ecs.ECS) (*donburi.Entry, error) {
	return newLaunchMenu(e, "MainMenu", func(entry mainMenuEntry) components.Action {
		return components.TransitionTo(entry.target)
	})
}

func newLaunchMenu(e *ecs.ECS, name string, actionFor func(mainMenuEntry) components.Action) (*donburi.Entry, error) {
	menuEntry, err := NewMenu(e, name, cfg.StateMain, &cfg.Menu.Main)
	if err != nil {
		return nil, err
	}

	w := GetOrCreateWindow(e)
	for i, entry := range mainMenuEntries {
		x, y := ButtonCoordsFromOrder(w, i+1)
		AddButton(e, menuEntry, entry.name, entry.label, x, y, actionFor(entry))
	}

	x, y := ButtonCoordsFromOrder(w, len(mainMenuEntries)+1)
	AddButton(e, menuEntry, ButtonQuit, "QUIT", x, y, components.Quit())

	return menuEntry, nil
}
