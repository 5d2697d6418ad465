package systems

import (
	"log"

	"github.com/automoto/gohta/components"
	cfg "github.com/automoto/gohta/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// InitDispatcher resets the dispatcher to the given state and subscribes the
// custom event handlers the first time it runs on a world.
func InitDispatcher(e *ecs.ECS, initial cfg.StateID) {
	d := GetOrCreateDispatcher(e)
	subscribed := d.Subscribed
	*d = components.DispatcherData{
		Current:    initial,
		Previous:   initial,
		Subscribed: true,
	}
	if !subscribed {
		CustomEvents.Subscribe(e.World, handleStartMenuEvent)
	}
	log.Printf("State: starting in %s", initial)
}

// UpdateDispatcher applies the transition requests queued during the previous
// frame. Must run BEFORE UpdateMenus so menus see the new state.
func UpdateDispatcher(e *ecs.ECS) {
	d := GetOrCreateDispatcher(e)
	d.Frame++
	d.Changed = false

	if len(d.Pending) == 0 {
		return
	}

	for _, target := range d.Pending {
		if target == d.Current {
			continue
		}
		log.Printf("State: %s -> %s (frame %d)", d.Current, target, d.Frame)
		d.Previous = d.Current
		d.Current = target
		d.Changed = true
	}
	d.Pending = d.Pending[:0]
}

// CurrentState returns the state menus compare against this frame
func CurrentState(e *ecs.ECS) cfg.StateID {
	return GetOrCreateDispatcher(e).Current
}

// RequestTransition queues a state change for the next dispatch.
// The current state is not touched.
func RequestTransition(e *ecs.ECS, target cfg.StateID) {
	requestTransition(e.World, target)
}

// PendingTransitions returns the requests waiting for the next dispatch
func PendingTransitions(e *ecs.ECS) []cfg.StateID {
	return GetOrCreateDispatcher(e).Pending
}

func requestTransition(w donburi.World, target cfg.StateID) {
	if !target.IsScreen() {
		log.Printf("Warning: transition to %s ignored, not a screen state", target)
		return
	}
	d := dispatcherFor(w)
	d.Pending = append(d.Pending, target)
}

// GetOrCreateDispatcher returns the singleton Dispatcher component, creating if needed
func GetOrCreateDispatcher(e *ecs.ECS) *components.DispatcherData {
	return dispatcherFor(e.World)
}

func dispatcherFor(w donburi.World) *components.DispatcherData {
	entry, ok := components.Dispatcher.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Dispatcher))
		components.Dispatcher.SetValue(entry, components.DispatcherData{
			Current:  cfg.StateMain,
			Previous: cfg.StateMain,
		})
	}
	return components.Dispatcher.Get(entry)
}
