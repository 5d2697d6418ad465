package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/gohta/components"
	cfg "github.com/automoto/gohta/config"
	"github.com/automoto/gohta/platform"
	"github.com/automoto/gohta/systems"
	"github.com/automoto/gohta/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LaunchScene runs the launcher menus on one world
type LaunchScene struct {
	ecs      *ecs.ECS
	events   platform.Events
	settings *systems.SavedSettings
	once     sync.Once
}

// NewLaunchScene creates the launcher scene. Quit requests go to events.
func NewLaunchScene(events platform.Events, settings *systems.SavedSettings) *LaunchScene {
	return &LaunchScene{events: events, settings: settings}
}

func (ls *LaunchScene) Update() {
	ls.once.Do(ls.configure)
	ls.ecs.Update()
}

func (ls *LaunchScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ls.ecs == nil {
		return
	}
	ls.ecs.Draw(screen)
}

func (ls *LaunchScene) configure() {
	ls.ecs = ecs.NewECS(donburi.NewWorld())

	systems.AttachPlatform(ls.ecs, ls.events)
	systems.InitDispatcher(ls.ecs, cfg.Debug.StartState)
	options := systems.InitOptions(ls.ecs, ls.settings)

	if err := RegisterMenus(ls.ecs, cfg.Debug.StartMenu, options); err != nil {
		log.Fatalf("Failed to build menus: %v", err)
	}
	systems.StartFade(ls.ecs)

	// Dispatcher before menus so menus see this frame's state
	ls.ecs.AddSystem(systems.UpdateInput)
	ls.ecs.AddSystem(systems.UpdateDispatcher)
	ls.ecs.AddSystem(systems.UpdateSession)
	ls.ecs.AddSystem(systems.UpdateMenus)
	ls.ecs.AddSystem(systems.UpdateEvents)
	ls.ecs.AddSystem(systems.UpdateFade)
	ls.ecs.AddSystem(systems.UpdateAudio)

	ls.ecs.AddRenderer(cfg.Default, systems.DrawMenus)
	ls.ecs.AddRenderer(cfg.Overlay, systems.DrawFade)
}

// RegisterMenus builds one menu per bound state. MAIN gets either the
// direct MainMenu or the event-driven StartMenu. HOST and JOIN get dummy
// placeholders; SP has no menu.
func RegisterMenus(e *ecs.ECS, useStartMenu bool, options *components.OptionsData) error {
	var err error
	if useStartMenu {
		_, err = systems.NewStartMenu(e)
	} else {
		_, err = systems.NewMainMenu(e)
	}
	if err != nil {
		return err
	}

	for _, state := range []cfg.StateID{cfg.StateHost, cfg.StateJoin} {
		if _, err := systems.NewDummyMenu(e, state); err != nil {
			return err
		}
	}

	optionsEntry, err := systems.NewMenu(e, "OptionsMenu", cfg.StateOptions, &cfg.Menu.Options)
	if err != nil {
		return err
	}

	back := components.TransitionTo(cfg.StateMain)
	menu := components.Menu.Get(optionsEntry)
	menu.Back = back
	menu.Widgets = ui.NewOptionsUI(options,
		func() { systems.SaveCurrentSettings(options) },
		func() { systems.ExecuteAction(e, back) },
	)
	return nil
}
