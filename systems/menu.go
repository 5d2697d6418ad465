package systems

import (
	"errors"
	"fmt"

	"github.com/automoto/gohta/archetypes"
	"github.com/automoto/gohta/components"
	cfg "github.com/automoto/gohta/config"
	"github.com/automoto/gohta/fonts"
	"github.com/automoto/gohta/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ErrStateAlreadyBound is returned when a second menu claims a state
var ErrStateAlreadyBound = errors.New("state already bound to a menu")

// NewMenu creates an empty menu bound to state. Each state has at most one menu.
func NewMenu(e *ecs.ECS, name string, state cfg.StateID, style *cfg.MenuScreenConfig) (*donburi.Entry, error) {
	if existing, ok := MenuForState(e, state); ok {
		return nil, fmt.Errorf("%w: %s is bound to %q", ErrStateAlreadyBound, state, components.Menu.Get(existing).Name)
	}

	entry := archetypes.Menu.Spawn(e)
	components.Menu.SetValue(entry, components.MenuData{
		Name:       name,
		State:      state,
		Style:      style,
		Buttons:    make(map[string]*donburi.Entry),
		FocusIndex: -1,
	})
	return entry, nil
}

// AddButton adds a named button to the menu. Reusing a name replaces the
// old button but keeps its slot in the check and draw order.
func AddButton(e *ecs.ECS, menuEntry *donburi.Entry, name, label string, x, y int, action components.Action) *donburi.Entry {
	return addButton(e, menuEntry, name, NewButton(e, name, label, x, y, action))
}

func addButton(e *ecs.ECS, menuEntry *donburi.Entry, name string, button *donburi.Entry) *donburi.Entry {
	menu := components.Menu.Get(menuEntry)
	if old, ok := menu.Buttons[name]; ok {
		DestroyButton(e, old)
	} else {
		menu.Order = append(menu.Order, name)
	}
	menu.Buttons[name] = button
	return button
}

// MenuButtons returns the menu's buttons in insertion order
func MenuButtons(menu *components.MenuData) []*donburi.Entry {
	buttons := make([]*donburi.Entry, 0, len(menu.Order))
	for _, name := range menu.Order {
		buttons = append(buttons, menu.Buttons[name])
	}
	return buttons
}

// MenuForState returns the menu bound to state, if any
func MenuForState(e *ecs.ECS, state cfg.StateID) (*donburi.Entry, bool) {
	var found *donburi.Entry
	tags.Menu.Each(e.World, func(entry *donburi.Entry) {
		if found == nil && components.Menu.Get(entry).State == state {
			found = entry
		}
	})
	return found, found != nil
}

// ActiveMenu returns the menu bound to the current state. States without a
// menu, such as SP, have no active menu.
func ActiveMenu(e *ecs.ECS) (*donburi.Entry, bool) {
	return MenuForState(e, CurrentState(e))
}

// CheckMenu checks every button in insertion order, even after one fires.
// Returns how many fired.
func CheckMenu(e *ecs.ECS, menuEntry *donburi.Entry) int {
	fired := 0
	for _, button := range MenuButtons(components.Menu.Get(menuEntry)) {
		if CheckButton(e, button) {
			fired++
		}
	}
	return fired
}

// UpdateMenus polls the active menu. Must run AFTER UpdateDispatcher.
func UpdateMenus(e *ecs.ECS) {
	input := getOrCreateInput(e)
	syncPointer(e, input)

	menuEntry, ok := ActiveMenu(e)
	if !ok {
		return
	}
	menu := components.Menu.Get(menuEntry)

	if GetOrCreateDispatcher(e).Changed {
		resetMenu(menu)
		StartFade(e)
	}

	updateFocus(e, menu, input)
	CheckMenu(e, menuEntry)

	if GetAction(input, cfg.ActionMenuBack).JustPressed && menu.Back.Kind != components.ActionNone {
		PlaySFX(e, cfg.SoundMenuBack)
		ExecuteAction(e, menu.Back)
	}

	if menu.Widgets != nil {
		menu.Widgets.Update()
	}
}

// resetMenu clears focus and hover left over from the last visit
func resetMenu(menu *components.MenuData) {
	menu.FocusIndex = -1
	for _, button := range MenuButtons(menu) {
		btn := components.Button.Get(button)
		btn.Focused = false
		btn.Hovered = false
		btn.Pressed = false
	}
}

// updateFocus moves keyboard focus with wrap-around
func updateFocus(e *ecs.ECS, menu *components.MenuData, input *components.InputData) {
	n := len(menu.Order)
	if n == 0 {
		return
	}

	up := GetAction(input, cfg.ActionMenuUp).JustPressed
	down := GetAction(input, cfg.ActionMenuDown).JustPressed
	switch {
	case down && !up:
		PlaySFX(e, cfg.SoundMenuNavigate)
		menu.FocusIndex = (menu.FocusIndex + 1) % n
	case up && !down:
		PlaySFX(e, cfg.SoundMenuNavigate)
		if menu.FocusIndex < 0 {
			menu.FocusIndex = n - 1
		} else {
			menu.FocusIndex = (menu.FocusIndex - 1 + n) % n
		}
	}

	for i, button := range MenuButtons(menu) {
		components.Button.Get(button).Focused = i == menu.FocusIndex
	}
}

// DrawMenus renders the active menu: background, title, buttons, widgets
func DrawMenus(e *ecs.ECS, screen *ebiten.Image) {
	menuEntry, ok := ActiveMenu(e)
	if !ok {
		return
	}
	menu := components.Menu.Get(menuEntry)
	w := GetOrCreateWindow(e)

	if menu.Style != nil {
		screen.Fill(menu.Style.BackgroundColor)
		drawTitle(screen, w, menu.Style)
	}

	for _, button := range MenuButtons(menu) {
		DrawButton(screen, components.Button.Get(button))
	}

	if menu.Widgets != nil {
		menu.Widgets.Draw(screen)
	}

	if len(menu.Order) > 0 {
		drawMenuHint(screen, w, getOrCreateInput(e).LastInputMethod)
	}
}

func drawTitle(screen *ebiten.Image, w *components.WindowData, style *cfg.MenuScreenConfig) {
	face, ok := fonts.Title.Lookup()
	if !ok || style.TitleText == "" {
		return
	}

	lines := WrapText(style.TitleText, style.TitleWrapWidth)
	widths := make([]int, len(lines))
	for i, line := range lines {
		widths[i] = text.BoundString(face, line).Dx()
	}

	metrics := face.Metrics()
	lineHeight := metrics.Height.Ceil()
	ascent := metrics.Ascent.Ceil()
	centerY := int(style.TitleCenterY * float64(w.HeightUnit))

	for i, origin := range TitleLineOrigins(w, widths, lineHeight, centerY) {
		text.Draw(screen, lines[i], face, origin[0], origin[1]+ascent, style.TitleColor)
	}
}

func drawMenuHint(screen *ebiten.Image, w *components.WindowData, method components.InputMethod) {
	face, ok := fonts.Hint.Lookup()
	if !ok {
		return
	}

	hint := getMenuHint(method)
	hintW := text.BoundString(face, hint).Dx()
	vector.FillRect(screen, 0, float32(w.Height-24), float32(w.Width), 24, cfg.Charcoal, false)
	text.Draw(screen, hint, face, (w.Width-hintW)/2, w.Height-8, cfg.White)
}

// getMenuHint returns the appropriate hint for menu navigation
func getMenuHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "Left Stick/D-Pad: Navigate   Cross: Select   Circle: Back"
	case components.InputXbox:
		return "Left Stick/D-Pad: Navigate   A: Select   B: Back"
	case components.InputMouse:
		return "Click a button"
	}
	return "Arrows: Navigate   Enter: Select   Esc: Back"
}
