package systems

import (
	"image/color"
	"math"

	"github.com/automoto/gohta/archetypes"
	"github.com/automoto/gohta/components"
	cfg "github.com/automoto/gohta/config"
	"github.com/automoto/gohta/fonts"
	"github.com/automoto/gohta/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewButton spawns a button entity centred on (x, y) with the configured
// button size, and registers its hit region in the space.
func NewButton(e *ecs.ECS, name, label string, x, y int, action components.Action) *donburi.Entry {
	return NewButtonWithSize(e, name, label, x, y, cfg.Button.Width, cfg.Button.Height, action)
}

// NewButtonWithSize is NewButton with an explicit size
func NewButtonWithSize(e *ecs.ECS, name, label string, x, y, width, height int, action components.Action) *donburi.Entry {
	entry := archetypes.Button.Spawn(e)

	components.Button.SetValue(entry, components.ButtonData{
		Name:   name,
		Label:  label,
		X:      float64(x),
		Y:      float64(y),
		Width:  float64(width),
		Height: float64(height),
		Action: action,
	})

	// Whole-pixel edges so the space cells cover the last row and column
	obj := resolv.NewObject(
		math.Floor(float64(x)-float64(width)/2),
		math.Floor(float64(y)-float64(height)/2),
		float64(width), float64(height),
		tags.ResolvButton,
	)
	components.Object.Set(entry, &components.ObjectData{Object: obj})
	if width > 0 && height > 0 {
		AddToSpace(e, obj)
	}

	return entry
}

// DestroyButton removes a button's hit region and entity
func DestroyButton(e *ecs.ECS, entry *donburi.Entry) {
	if !entry.Valid() {
		return
	}
	if obj := objectOf(entry); obj != nil && obj.Space != nil {
		RemoveFromSpace(e, obj)
	}
	e.World.Remove(entry.Entity())
}

// CheckButton polls the pointer and focus against the button and runs its
// action on a press edge. Returns whether the button fired.
func CheckButton(e *ecs.ECS, entry *donburi.Entry) bool {
	btn := components.Button.Get(entry)
	input := getOrCreateInput(e)

	btn.Hovered = false
	if obj := objectOf(entry); obj != nil {
		btn.Hovered = pointerOver(obj, input)
	}

	clicked := btn.Hovered && PointerJustPressed(input)
	selected := btn.Focused && btn.Width > 0 && btn.Height > 0 &&
		GetAction(input, cfg.ActionMenuSelect).JustPressed

	btn.Pressed = clicked || selected
	if !btn.Pressed {
		return false
	}

	PlaySFX(e, cfg.SoundMenuSelect)
	ExecuteAction(e, btn.Action)
	return true
}

// DrawButton renders the button box and its centred label
func DrawButton(screen *ebiten.Image, btn *components.ButtonData) {
	if btn.Width <= 0 || btn.Height <= 0 {
		return
	}

	x := float32(btn.X - btn.Width/2)
	y := float32(btn.Y - btn.Height/2)
	w := float32(btn.Width)
	h := float32(btn.Height)

	vector.FillRect(screen, x, y, w, h, buttonFill(btn), false)
	vector.StrokeRect(screen, x, y, w, h, cfg.Button.BorderWidth, cfg.Button.BorderColor, false)

	face, ok := fonts.Label.Lookup()
	if !ok {
		return
	}
	bounds := text.BoundString(face, btn.Label)
	tx := int(btn.X) - bounds.Dx()/2
	// Baseline so the glyph box sits centred on Y
	ty := int(btn.Y) - bounds.Min.Y - bounds.Dy()/2
	text.Draw(screen, btn.Label, face, tx, ty, cfg.Button.TextColor)
}

func buttonFill(btn *components.ButtonData) color.Color {
	switch {
	case btn.Focused:
		return cfg.Button.FocusColor
	case btn.Hovered:
		return cfg.Button.HoverColor
	default:
		return cfg.Button.FillColor
	}
}
