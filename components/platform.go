package components

import (
	"github.com/automoto/gohta/platform"
	"github.com/yohamta/donburi"
)

// PlatformData gives systems access to the platform event queue
type PlatformData struct {
	Events platform.Events
}

var Platform = donburi.NewComponentType[PlatformData]()
