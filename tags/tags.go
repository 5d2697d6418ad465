package tags

import "github.com/yohamta/donburi"

var (
	Menu    = donburi.NewTag().SetName("Menu")
	Button  = donburi.NewTag().SetName("Button")
	Pointer = donburi.NewTag().SetName("Pointer")
)

// Resolv tags for hit testing
const (
	ResolvButton  = "button"
	ResolvPointer = "pointer"
)
