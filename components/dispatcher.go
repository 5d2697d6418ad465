package components

import (
	cfg "github.com/automoto/gohta/config"
	"github.com/yohamta/donburi"
)

// DispatcherData holds the global launcher state and queued transition requests
type DispatcherData struct {
	Current  cfg.StateID
	Previous cfg.StateID
	Pending  []cfg.StateID
	Changed  bool // Current changed during this frame's dispatch
	Frame    int

	// Custom event handlers are subscribed to this world
	Subscribed bool
}

var Dispatcher = donburi.NewComponentType[DispatcherData]()
