package systems

import (
	"errors"
	"testing"

	"github.com/automoto/gohta/components"
	cfg "github.com/automoto/gohta/config"
	"github.com/automoto/gohta/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// registerLaunchMenus binds the same screens as the launch scene, minus the
// options widgets
func registerLaunchMenus(t *testing.T, e *ecs.ECS, useStartMenu bool) *donburi.Entry {
	t.Helper()

	var main *donburi.Entry
	var err error
	if useStartMenu {
		main, err = NewStartMenu(e)
	} else {
		main, err = NewMainMenu(e)
	}
	if err != nil {
		t.Fatalf("main menu: %v", err)
	}
	for _, state := range []cfg.StateID{cfg.StateHost, cfg.StateJoin} {
		if _, err := NewDummyMenu(e, state); err != nil {
			t.Fatalf("dummy menu %s: %v", state, err)
		}
	}
	return main
}

func TestAtMostOneMenuPerState(t *testing.T) {
	e, _ := newTestECS(t)
	registerLaunchMenus(t, e, false)

	counts := map[cfg.StateID]int{}
	tags.Menu.Each(e.World, func(entry *donburi.Entry) {
		counts[components.Menu.Get(entry).State]++
	})

	for state, n := range counts {
		if n != 1 {
			t.Errorf("state %s has %d menus", state, n)
		}
	}
	if counts[cfg.StateSP] != 0 {
		t.Error("SP should have no menu")
	}
}

func TestSecondMenuForStateFails(t *testing.T) {
	e, _ := newTestECS(t)
	registerLaunchMenus(t, e, false)

	_, err := NewStartMenu(e)
	if !errors.Is(err, ErrStateAlreadyBound) {
		t.Errorf("expected ErrStateAlreadyBound, got %v", err)
	}

	_, err = NewDummyMenu(e, cfg.StateHost)
	if !errors.Is(err, ErrStateAlreadyBound) {
		t.Errorf("expected ErrStateAlreadyBound for HOST, got %v", err)
	}
}

func TestActiveMenuFollowsState(t *testing.T) {
	e, _ := newTestECS(t)
	main := registerLaunchMenus(t, e, false)

	active, ok := ActiveMenu(e)
	if !ok || active.Entity() != main.Entity() {
		t.Fatal("MAIN should activate the main menu")
	}

	RequestTransition(e, cfg.StateJoin)
	UpdateDispatcher(e)

	active, ok = ActiveMenu(e)
	if !ok {
		t.Fatal("JOIN should have an active menu")
	}
	if got := components.Menu.Get(active).State; got != cfg.StateJoin {
		t.Errorf("active menu state = %s, want JOIN", got)
	}
}

func TestMainMenuButtonRequestsItsTarget(t *testing.T) {
	targets := map[string]cfg.StateID{
		ButtonSP:      cfg.StateSP,
		ButtonHost:    cfg.StateHost,
		ButtonJoin:    cfg.StateJoin,
		ButtonOptions: cfg.StateOptions,
	}

	for name, target := range targets {
		t.Run(name, func(t *testing.T) {
			e, p := newTestECS(t)
			main := registerLaunchMenus(t, e, false)

			x, y := buttonCentre(t, main, name)
			click(e, x, y)
			UpdateMenus(e)

			if !pendingEquals(PendingTransitions(e), target) {
				t.Errorf("pending = %v, want [%s]", PendingTransitions(e), target)
			}
			if p.quits != 0 {
				t.Error("only QUIT should reach the platform queue")
			}
		})
	}
}

func TestQuitBypassesDispatcher(t *testing.T) {
	e, p := newTestECS(t)
	main := registerLaunchMenus(t, e, false)

	x, y := buttonCentre(t, main, ButtonQuit)
	click(e, x, y)
	UpdateMenus(e)

	if p.quits != 1 {
		t.Errorf("platform quits = %d, want 1", p.quits)
	}
	if n := len(PendingTransitions(e)); n != 0 {
		t.Errorf("QUIT must not go through the dispatcher, pending = %v", PendingTransitions(e))
	}

	UpdateDispatcher(e)
	if got := CurrentState(e); got != cfg.StateMain {
		t.Errorf("state = %s, want MAIN", got)
	}
}

func TestQuitWithoutPlatformIsIgnored(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	InitDispatcher(e, cfg.StateMain)

	ExecuteAction(e, components.Quit())

	if n := len(PendingTransitions(e)); n != 0 {
		t.Errorf("pending = %v, want none", PendingTransitions(e))
	}
}

func TestSPIsNoOpPlaceholder(t *testing.T) {
	e, p := newTestECS(t)
	main := registerLaunchMenus(t, e, false)

	RequestTransition(e, cfg.StateSP)
	UpdateDispatcher(e)

	if _, ok := ActiveMenu(e); ok {
		t.Fatal("SP should have no active menu")
	}

	// Clicks where MAIN's buttons used to be do nothing
	for _, name := range []string{ButtonSP, ButtonHost, ButtonQuit} {
		x, y := buttonCentre(t, main, name)
		click(e, x, y)
		UpdateMenus(e)
		release(e)
		UpdateDispatcher(e)
	}

	if got := CurrentState(e); got != cfg.StateSP {
		t.Errorf("state = %s, want SP", got)
	}
	if p.quits != 0 {
		t.Error("inactive QUIT button fired")
	}
}

func TestCheckVisitsEveryButton(t *testing.T) {
	e, _ := newTestECS(t)

	menuEntry, err := NewMenu(e, "Stacked", cfg.StateMain, &cfg.Menu.Main)
	if err != nil {
		t.Fatal(err)
	}
	// Two buttons on the same spot: the first firing must not stop the second
	AddButton(e, menuEntry, "first", "FIRST", 400, 300, components.TransitionTo(cfg.StateHost))
	AddButton(e, menuEntry, "second", "SECOND", 400, 300, components.TransitionTo(cfg.StateJoin))

	click(e, 400, 300)
	syncPointer(e, getOrCreateInput(e))

	if fired := CheckMenu(e, menuEntry); fired != 2 {
		t.Errorf("fired = %d, want 2", fired)
	}
	if !pendingEquals(PendingTransitions(e), cfg.StateHost, cfg.StateJoin) {
		t.Errorf("pending = %v, want [HOST JOIN] in insertion order", PendingTransitions(e))
	}
}

func TestAddButtonReplacesInPlace(t *testing.T) {
	e, _ := newTestECS(t)

	menuEntry, err := NewMenu(e, "Replace", cfg.StateMain, &cfg.Menu.Main)
	if err != nil {
		t.Fatal(err)
	}
	old := AddButton(e, menuEntry, "a", "A", 200, 100, components.TransitionTo(cfg.StateHost))
	AddButton(e, menuEntry, "b", "B", 200, 200, components.TransitionTo(cfg.StateJoin))
	replacement := AddButton(e, menuEntry, "a", "A2", 200, 300, components.TransitionTo(cfg.StateOptions))

	menu := components.Menu.Get(menuEntry)
	if len(menu.Order) != 2 || menu.Order[0] != "a" || menu.Order[1] != "b" {
		t.Errorf("order = %v, want [a b]", menu.Order)
	}
	if menu.Buttons["a"].Entity() != replacement.Entity() {
		t.Error("name should map to the replacement button")
	}
	if old.Valid() {
		t.Error("replaced button entity should be removed")
	}

	// The old hit region is gone
	click(e, 200, 100)
	UpdateMenus(e)
	if n := len(PendingTransitions(e)); n != 0 {
		t.Errorf("old region still fires: %v", PendingTransitions(e))
	}
}

func TestStartMenuPostsEvents(t *testing.T) {
	e, p := newTestECS(t)
	start := registerLaunchMenus(t, e, true)

	x, y := buttonCentre(t, start, ButtonOptions)
	click(e, x, y)
	UpdateMenus(e)

	if n := len(PendingTransitions(e)); n != 0 {
		t.Fatalf("start menu should post an event, not a transition: %v", PendingTransitions(e))
	}

	UpdateEvents(e)
	if !pendingEquals(PendingTransitions(e), cfg.StateOptions) {
		t.Errorf("pending = %v, want [OPTIONS]", PendingTransitions(e))
	}

	release(e)
	UpdateDispatcher(e)
	x, y = buttonCentre(t, start, ButtonQuit)
	RequestTransition(e, cfg.StateMain)
	UpdateDispatcher(e)
	click(e, x, y)
	UpdateMenus(e)
	if p.quits != 1 {
		t.Errorf("start menu QUIT should post to the platform, quits = %d", p.quits)
	}
}

func TestDummyMenuBackToMain(t *testing.T) {
	e, _ := newTestECS(t)
	registerLaunchMenus(t, e, false)

	RequestTransition(e, cfg.StateHost)
	UpdateDispatcher(e)

	dummy, ok := ActiveMenu(e)
	if !ok {
		t.Fatal("HOST should have a dummy menu")
	}
	x, y := buttonCentre(t, dummy, ButtonExitToMain)
	w := GetOrCreateWindow(e)
	if x != w.CenterX || y != w.CenterY {
		t.Errorf("dummy button at (%d,%d), want window centre (%d,%d)", x, y, w.CenterX, w.CenterY)
	}

	click(e, x, y)
	UpdateMenus(e)
	UpdateDispatcher(e)

	if got := CurrentState(e); got != cfg.StateMain {
		t.Errorf("state = %s, want MAIN", got)
	}
}

func TestBackActionOnDummyMenu(t *testing.T) {
	e, _ := newTestECS(t)
	registerLaunchMenus(t, e, false)

	RequestTransition(e, cfg.StateJoin)
	UpdateDispatcher(e)

	pressActions(e, cfg.ActionMenuBack)
	UpdateMenus(e)

	if !pendingEquals(PendingTransitions(e), cfg.StateMain) {
		t.Errorf("pending = %v, want [MAIN]", PendingTransitions(e))
	}
}

func TestBackActionIgnoredOnMainMenu(t *testing.T) {
	e, p := newTestECS(t)
	registerLaunchMenus(t, e, false)

	pressActions(e, cfg.ActionMenuBack)
	UpdateMenus(e)

	if n := len(PendingTransitions(e)); n != 0 || p.quits != 0 {
		t.Errorf("back on MAIN should do nothing, pending = %v quits = %d", PendingTransitions(e), p.quits)
	}
}

func TestKeyboardFocusAndSelect(t *testing.T) {
	e, _ := newTestECS(t)
	main := registerLaunchMenus(t, e, false)

	pressActions(e, cfg.ActionMenuDown)
	UpdateMenus(e)
	pressActions(e)
	UpdateMenus(e)
	pressActions(e, cfg.ActionMenuDown)
	UpdateMenus(e)

	menu := components.Menu.Get(main)
	if menu.FocusIndex != 1 {
		t.Fatalf("focus = %d, want 1", menu.FocusIndex)
	}
	if !components.Button.Get(menu.Buttons[ButtonHost]).Focused {
		t.Error("HOST should be focused")
	}

	pressActions(e, cfg.ActionMenuSelect)
	UpdateMenus(e)

	if !pendingEquals(PendingTransitions(e), cfg.StateHost) {
		t.Errorf("pending = %v, want [HOST]", PendingTransitions(e))
	}
}

func TestKeyboardFocusWraps(t *testing.T) {
	e, _ := newTestECS(t)
	main := registerLaunchMenus(t, e, false)

	pressActions(e, cfg.ActionMenuUp)
	UpdateMenus(e)

	menu := components.Menu.Get(main)
	if menu.FocusIndex != len(menu.Order)-1 {
		t.Errorf("up from no focus should land on the last button, got %d", menu.FocusIndex)
	}

	pressActions(e)
	UpdateMenus(e)
	pressActions(e, cfg.ActionMenuDown)
	UpdateMenus(e)

	if menu.FocusIndex != 0 {
		t.Errorf("down from the last button should wrap to 0, got %d", menu.FocusIndex)
	}
}

func TestFocusResetsOnStateChange(t *testing.T) {
	e, _ := newTestECS(t)
	main := registerLaunchMenus(t, e, false)

	pressActions(e, cfg.ActionMenuDown)
	UpdateMenus(e)

	RequestTransition(e, cfg.StateHost)
	UpdateDispatcher(e)
	RequestTransition(e, cfg.StateMain)
	UpdateDispatcher(e)
	pressActions(e)
	UpdateMenus(e)

	if got := components.Menu.Get(main).FocusIndex; got != -1 {
		t.Errorf("focus = %d, want -1 after returning to MAIN", got)
	}
	if GetOrCreateFade(e).Tween == nil {
		t.Error("returning to a menu should start a fade-in")
	}
}

func TestSelectWithoutFocusDoesNothing(t *testing.T) {
	e, _ := newTestECS(t)
	registerLaunchMenus(t, e, false)

	pressActions(e, cfg.ActionMenuSelect)
	UpdateMenus(e)

	if n := len(PendingTransitions(e)); n != 0 {
		t.Errorf("pending = %v, want none", PendingTransitions(e))
	}
}
