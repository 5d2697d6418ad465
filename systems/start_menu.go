package systems

import (
	"github.com/automoto/gohta/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewStartMenu builds the event-driven variant of the MAIN screen. Its
// buttons post START_MENU events naming the target; the event subscriber
// turns them into transitions.
func NewStartMenu(e *ecs.ECS) (*donburi.Entry, error) {
	return newLaunchMenu(e, "StartMenu", func(entry mainMenuEntry) components.Action {
		return components.PostEvent(StartMenuEvent, map[string]string{
			MenuNamePayloadKey: entry.target.String(),
		})
	})
}
