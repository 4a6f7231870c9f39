package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/tilecaster/internal/config"
	"chosenoffset.com/tilecaster/internal/core/geom"
	"chosenoffset.com/tilecaster/internal/core/raycast"
	"chosenoffset.com/tilecaster/internal/framedump"
	"chosenoffset.com/tilecaster/internal/game"
	ebitenrender "chosenoffset.com/tilecaster/internal/render/ebiten"
	"chosenoffset.com/tilecaster/internal/render/terminal"
	"chosenoffset.com/tilecaster/internal/world/tilemap"
)

func main() {
	configPath := flag.String("config", "", "YAML settings file (built-in defaults when empty)")
	mapRef := flag.String("map", "", "map file, or map name in the maps directory")
	backend := flag.String("backend", "ebiten", "front-end: ebiten or term")
	listMaps := flag.Bool("list-maps", false, "list the maps directory and exit")
	debug := flag.Bool("debug", false, "show the debug overlay")
	record := flag.String("record", "", "write every frame as CSV to this file")
	writeConfig := flag.String("write-config", "", "write the effective settings to this file and exit")
	logPath := flag.String("log", "", "log file (the terminal front-end logs nowhere by default)")
	flag.Parse()

	if *backend == "term" {
		log.SetOutput(io.Discard)
	}
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *writeConfig != "" {
		if err := cfg.WriteYAML(*writeConfig); err != nil {
			log.Fatalf("Failed to write config: %v", err)
		}
		log.Printf("Wrote settings to %s", *writeConfig)
		return
	}

	if *listMaps {
		log.Printf("Scanning %s for maps...", cfg.World.MapsDir)
		maps, err := tilemap.ScanMapDirectory(cfg.World.MapsDir)
		if err != nil {
			log.Fatalf("Failed to scan maps directory: %v", err)
		}
		for _, m := range maps {
			fmt.Printf("%-16s %s\n", m.Name, m.Path)
		}
		return
	}

	ref := cfg.World.Map
	if *mapRef != "" {
		ref = *mapRef
	}
	world, err := tilemap.Open(cfg.World.MapsDir, ref)
	if err != nil {
		log.Fatalf("Failed to load map: %v", err)
	}
	log.Printf("Loaded map %q (%dx%d)", world.Name, world.Grid.Width(), world.Grid.Height())

	cam := startCamera(cfg, world)
	opts := game.OptionsFromConfig(cfg)
	opts.Debug = *debug

	var recorder *framedump.Writer
	if *record != "" {
		recorder, err = framedump.Create(*record)
		if err != nil {
			log.Fatalf("Failed to open frame dump: %v", err)
		}
	}

	switch *backend {
	case "ebiten":
		err = runWindow(cfg, world, cam, opts, recorder)
	case "term":
		err = runTerminal(cfg, world, cam, opts, recorder)
	default:
		err = fmt.Errorf("unknown backend %q (want ebiten or term)", *backend)
	}
	if recorder != nil {
		log.Printf("Recorded %d frames to %s", recorder.Frames(), *record)
		if cerr := recorder.Close(); cerr != nil {
			log.Printf("Failed to close frame dump: %v", cerr)
		}
	}
	if err != nil {
		log.Printf("Exiting: %v", err)
		os.Exit(1)
	}
}

// startCamera puts the camera on the map spawn, then applies overrides.
func startCamera(cfg *config.Config, world *tilemap.Map) raycast.Camera {
	cam := game.StartCamera(world, cfg.Camera.FOV(), cfg.Window.Width)
	if cfg.Camera.HasPosition() {
		pos := geom.V(cfg.Camera.X, cfg.Camera.Y)
		if world.Grid.BlocksPoint(pos) {
			log.Printf("Camera override %v is inside a wall, using the map spawn", pos)
		} else {
			cam.Position = pos
		}
	}
	if facing, ok := cfg.Camera.Facing(); ok {
		cam.Facing = geom.FromRadians(facing)
	}
	if err := cam.Validate(); err != nil {
		log.Fatalf("Bad camera settings: %v", err)
	}
	return cam
}

func attach(g *game.Game, recorder *framedump.Writer) {
	if recorder != nil {
		g.Recorder = recorder
	}
}

func runWindow(cfg *config.Config, world *tilemap.Map, cam raycast.Camera, opts game.Options, recorder *framedump.Writer) error {
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	g := game.New(world, cam, inputMgr, cfg.Window.Width, cfg.Window.Height, opts)
	attach(g, recorder)

	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(fmt.Sprintf("%s - %s", cfg.Window.Title, world.Name))
	engine.SetTPS(cfg.Window.TPS)

	log.Println("Starting window front-end...")
	return engine.RunGame(g)
}

func runTerminal(cfg *config.Config, world *tilemap.Map, cam raycast.Camera, opts game.Options, recorder *framedump.Writer) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	engine := terminal.NewEngine(screen, cfg.Terminal.FPS)

	// Terminal units are cells.
	opts.CharW, opts.LineH = 1, 1
	opts.Radar.Scale = cfg.Terminal.RadarScale
	opts.Radar.OffsetX, opts.Radar.OffsetY = 1, 1

	g := game.New(world, cam, engine.Input(), cfg.Window.Width, cfg.Window.Height, opts)
	attach(g, recorder)

	engine.SetWindowTitle(world.Name)
	engine.SetTPS(cfg.Window.TPS)

	log.Println("Starting terminal front-end...")
	return engine.RunGame(g)
}
