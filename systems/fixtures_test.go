package systems

import (
	"testing"

	"github.com/automoto/gohta/components"
	cfg "github.com/automoto/gohta/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// fakePlatform records quit requests instead of closing a window
type fakePlatform struct {
	quits int
}

func (f *fakePlatform) PostQuit() { f.quits++ }

// newTestECS builds a world with a dispatcher in MAIN and a fake platform
func newTestECS(t *testing.T) (*ecs.ECS, *fakePlatform) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	p := &fakePlatform{}
	AttachPlatform(e, p)
	InitDispatcher(e, cfg.StateMain)
	return e, p
}

// click simulates a pointer press edge at (x, y) for the next UpdateMenus
func click(e *ecs.ECS, x, y int) {
	input := getOrCreateInput(e)
	SetPointer(input, x, y, false)
	SetPointer(input, x, y, true)
}

// release lifts the pointer without moving it
func release(e *ecs.ECS) {
	input := getOrCreateInput(e)
	SetPointer(input, input.PointerX, input.PointerY, false)
}

// pressActions advances the action buffers one frame with ids held
func pressActions(e *ecs.ECS, ids ...cfg.ActionID) {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	for _, id := range ids {
		input.Current[id] = true
	}
}

// buttonCentre returns the centre of a named button in a menu
func buttonCentre(t *testing.T, menuEntry *donburi.Entry, name string) (int, int) {
	t.Helper()
	menu := components.Menu.Get(menuEntry)
	entry, ok := menu.Buttons[name]
	if !ok {
		t.Fatalf("menu %s has no button %s", menu.Name, name)
	}
	btn := components.Button.Get(entry)
	return int(btn.X), int(btn.Y)
}

func pendingEquals(got []cfg.StateID, want ...cfg.StateID) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
