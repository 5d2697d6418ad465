package systems

import (
	"log"

	cfg "github.com/automoto/gohta/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// Custom event names and payload keys
const (
	StartMenuEvent     = "START_MENU"
	MenuNamePayloadKey = "MENU_NAME"
)

// CustomEvent is a named launcher event with a string payload
type CustomEvent struct {
	Name    string
	Payload map[string]string
}

// CustomEvents carries custom launcher events between systems
var CustomEvents = events.NewEventType[CustomEvent]()

// PostCustomEvent queues a custom event. Subscribers see it when
// UpdateEvents runs.
func PostCustomEvent(e *ecs.ECS, name string, payload map[string]string) {
	CustomEvents.Publish(e.World, CustomEvent{Name: name, Payload: payload})
}

// UpdateEvents delivers queued custom events to their subscribers
func UpdateEvents(e *ecs.ECS) {
	CustomEvents.ProcessEvents(e.World)
}

// handleStartMenuEvent turns START_MENU events into transition requests
func handleStartMenuEvent(w donburi.World, evt CustomEvent) {
	if evt.Name != StartMenuEvent {
		return
	}

	name, ok := evt.Payload[MenuNamePayloadKey]
	if !ok {
		log.Printf("Warning: %s event without %s", StartMenuEvent, MenuNamePayloadKey)
		return
	}

	target, err := cfg.ParseScreenState(name)
	if err != nil {
		log.Printf("Warning: %s event ignored: %v", StartMenuEvent, err)
		return
	}
	requestTransition(w, target)
}
