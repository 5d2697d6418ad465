package systems

import (
	"strings"

	"github.com/automoto/gohta/components"
	cfg "github.com/automoto/gohta/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Cache controller types to avoid string allocation every frame
var controllerTypeCache = make(map[ebiten.GamepadID]components.InputMethod)

// UpdateInput polls raw input and updates the Input component.
// Must run BEFORE UpdateMenus in the system order.
func UpdateInput(e *ecs.ECS) {
	input := getOrCreateInput(e)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	analogUp, analogDown, analogGpID := getAnalogStickState(gamepadIDs)

	var keyboardUsed, gamepadUsed bool
	var activeGamepadID ebiten.GamepadID

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
					activeGamepadID = gpID
				}
			}
		}
	}

	// Merge analog stick into directional actions
	if analogUp {
		input.Current[cfg.ActionMenuUp] = true
		gamepadUsed = true
		activeGamepadID = analogGpID
	}
	if analogDown {
		input.Current[cfg.ActionMenuDown] = true
		gamepadUsed = true
		activeGamepadID = analogGpID
	}

	x, y := ebiten.CursorPosition()
	SetPointer(input, x, y, ebiten.IsMouseButtonPressed(cfg.Input.PointerButton))

	// Gamepad takes priority if both used
	if gamepadUsed {
		input.LastInputMethod = getControllerType(activeGamepadID)
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	} else if input.PointerDown {
		input.LastInputMethod = components.InputMouse
	}
}

// SetPointer records this frame's pointer position and button state
func SetPointer(input *components.InputData, x, y int, down bool) {
	input.PointerWasDown = input.PointerDown
	input.PointerX = x
	input.PointerY = y
	input.PointerDown = down
}

// PointerJustPressed reports a pointer press edge (down now, up last frame)
func PointerJustPressed(input *components.InputData) bool {
	return input.PointerDown && !input.PointerWasDown
}

// getControllerType returns cached controller type, detecting on first access
func getControllerType(gpID ebiten.GamepadID) components.InputMethod {
	if method, ok := controllerTypeCache[gpID]; ok {
		return method
	}

	name := strings.ToLower(ebiten.GamepadName(gpID))
	var method components.InputMethod
	if strings.Contains(name, "ps4") || strings.Contains(name, "ps5") ||
		strings.Contains(name, "playstation") || strings.Contains(name, "dualshock") ||
		strings.Contains(name, "dualsense") {
		method = components.InputPlayStation
	} else {
		// Default gamepad to Xbox-style
		method = components.InputXbox
	}

	controllerTypeCache[gpID] = method
	return method
}

// getAnalogStickState reads the left stick's vertical axis from all gamepads
func getAnalogStickState(gamepads []ebiten.GamepadID) (up, down bool, activeGpID ebiten.GamepadID) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if vertical < -deadzone {
			up = true
			activeGpID = gpID
		}
		if vertical > deadzone {
			down = true
			activeGpID = gpID
		}
	}

	return
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
