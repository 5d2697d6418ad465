package systems

import (
	"log"

	"github.com/automoto/gohta/components"
	"github.com/automoto/gohta/platform"
	"github.com/yohamta/donburi/ecs"
)

// ExecuteAction runs a button command
func ExecuteAction(e *ecs.ECS, action components.Action) {
	switch action.Kind {
	case components.ActionNone:
	case components.ActionTransition:
		RequestTransition(e, action.Target)
	case components.ActionCustomEvent:
		PostCustomEvent(e, action.Event, action.Payload)
	case components.ActionQuit:
		// Straight to the platform, the dispatcher never sees QUIT
		events := PlatformEvents(e)
		if events == nil {
			log.Printf("Warning: quit requested with no platform queue attached")
			return
		}
		events.PostQuit()
	default:
		log.Printf("Warning: unknown action kind %d", action.Kind)
	}
}

// AttachPlatform gives systems access to the platform event queue
func AttachPlatform(e *ecs.ECS, events platform.Events) {
	entry, ok := components.Platform.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Platform))
	}
	components.Platform.SetValue(entry, components.PlatformData{Events: events})
}

// PlatformEvents returns the attached platform queue, or nil
func PlatformEvents(e *ecs.ECS) platform.Events {
	entry, ok := components.Platform.First(e.World)
	if !ok {
		return nil
	}
	return components.Platform.Get(entry).Events
}
