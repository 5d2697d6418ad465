package components

import (
	cfg "github.com/automoto/gohta/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputMouse
	InputXbox
	InputPlayStation
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all
// actions and the pointer. JustPressed/JustReleased are computed on demand.
type InputData struct {
	Current         [cfg.ActionCount]bool
	Previous        [cfg.ActionCount]bool
	PointerX        int
	PointerY        int
	PointerDown     bool
	PointerWasDown  bool
	LastInputMethod InputMethod
}

var Input = donburi.NewComponentType[InputData]()
