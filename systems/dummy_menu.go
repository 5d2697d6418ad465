package systems

import (
	"github.com/automoto/gohta/components"
	cfg "github.com/automoto/gohta/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ButtonExitToMain is the dummy menu's only button
const ButtonExitToMain = "EXIT_TO_MAIN"

// NewDummyMenu builds a placeholder screen bound to state with a single
// button back to MAIN at the window centre.
func NewDummyMenu(e *ecs.ECS, state cfg.StateID) (*donburi.Entry, error) {
	menuEntry, err := NewMenu(e, "DummyMenu("+state.String()+")", state, &cfg.Menu.Dummy)
	if err != nil {
		return nil, err
	}

	back := components.TransitionTo(cfg.StateMain)
	w := GetOrCreateWindow(e)
	AddButton(e, menuEntry, ButtonExitToMain, "BACK TO MAIN", w.CenterX, w.CenterY, back)
	components.Menu.Get(menuEntry).Back = back

	return menuEntry, nil
}
