package main

import (
	"flag"
	"image"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/automoto/gohta/config"
	"github.com/automoto/gohta/fonts"
	"github.com/automoto/gohta/platform"
	"github.com/automoto/gohta/scenes"
	"github.com/automoto/gohta/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
	events *platform.Queue
}

func NewGame(events *platform.Queue, settings *systems.SavedSettings) *Game {
	// Menus cannot render without their fonts
	hu := float64(config.C.Height / config.C.HeightDivisions)
	if err := fonts.LoadDefaults(float64(int(config.Menu.TitleFontSize*hu)), config.Button.FontSize, 12); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewLaunchScene(events, settings),
		events: events,
	}
}

func (g *Game) Update() error {
	if g.events.QuitRequested() {
		return ebiten.Termination
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "YAML or TOML file overriding window, button and menu settings")
	state := flag.String("state", "MAIN", "State to start in (MAIN, SP, HOST, JOIN, OPTIONS)")
	menu := flag.String("menu", "main", "Launch screen for MAIN: main (direct transitions) or start (event-driven)")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	startState, err := config.ParseScreenState(*state)
	if err != nil {
		log.Fatalf("Invalid -state: %v", err)
	}
	config.Debug.StartState = startState

	switch strings.ToLower(*menu) {
	case "main":
		config.Debug.StartMenu = false
	case "start":
		config.Debug.StartMenu = true
	default:
		log.Fatalf("Invalid -menu %q: want main or start", *menu)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	saved, err := systems.LoadSettings()
	if err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}
	systems.PreloadAllSFX()

	events := platform.NewQueue()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down launcher...")
		events.PostQuit()
	}()

	if err := ebiten.RunGame(NewGame(events, saved)); err != nil {
		log.Fatal(err)
	}
}
