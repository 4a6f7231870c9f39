// Command raydump casts one frame, or a full turn of frames, from a fixed
// camera and writes the hits as CSV.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"chosenoffset.com/tilecaster/internal/config"
	"chosenoffset.com/tilecaster/internal/core/geom"
	"chosenoffset.com/tilecaster/internal/core/raycast"
	"chosenoffset.com/tilecaster/internal/framedump"
	"chosenoffset.com/tilecaster/internal/world/tilemap"
)

// options are the command-line settings.
type options struct {
	configPath, mapRef, out string
	x, y, facing, fov       float64
	width, sweep            int
}

func main() {
	var o options
	flag.StringVar(&o.configPath, "config", "", "YAML settings file (built-in defaults when empty)")
	flag.StringVar(&o.mapRef, "map", "", "map file, or map name in the maps directory")
	flag.Float64Var(&o.x, "x", math.NaN(), "camera x (map spawn when unset)")
	flag.Float64Var(&o.y, "y", math.NaN(), "camera y (map spawn when unset)")
	flag.Float64Var(&o.facing, "facing", math.NaN(), "facing in degrees, clockwise from +x")
	flag.Float64Var(&o.fov, "fov", 0, "field of view in degrees (config value when 0)")
	flag.IntVar(&o.width, "width", 0, "number of rays (window width when 0)")
	flag.StringVar(&o.out, "out", "", "output file (stdout when empty)")
	flag.IntVar(&o.sweep, "sweep", 0, "cast this many frames, turning 360/n degrees between them")
	flag.Parse()

	if err := run(o); err != nil {
		log.Fatal(err)
	}
}

func run(o options) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ref := cfg.World.Map
	if o.mapRef != "" {
		ref = o.mapRef
	}
	world, err := tilemap.Open(cfg.World.MapsDir, ref)
	if err != nil {
		return fmt.Errorf("failed to load map: %w", err)
	}

	cam := raycast.Camera{
		Position:  world.Spawn,
		Facing:    world.Facing,
		FOV:       geom.FromRadians(cfg.Camera.FOV()),
		ViewWidth: cfg.Window.Width,
	}
	if !math.IsNaN(o.x) && !math.IsNaN(o.y) {
		cam.Position = geom.V(o.x, o.y)
	}
	if !math.IsNaN(o.facing) {
		cam.Facing = geom.FromDegrees(o.facing)
	} else if facing, ok := cfg.Camera.Facing(); ok {
		cam.Facing = geom.FromRadians(facing)
	}
	if o.fov != 0 {
		cam.FOV = geom.FromDegrees(o.fov)
	}
	if o.width != 0 {
		cam.ViewWidth = o.width
	}

	var w io.Writer = os.Stdout
	if o.out != "" {
		f, err := os.Create(o.out)
		if err != nil {
			return fmt.Errorf("failed to create output: %w", err)
		}
		defer f.Close()
		w = f
	}

	if o.sweep <= 0 {
		hits, err := raycast.Cast(cam, world.Grid)
		if err != nil {
			return fmt.Errorf("cast failed: %w", err)
		}
		if err := framedump.Write(w, hits); err != nil {
			return fmt.Errorf("failed to write hits: %w", err)
		}
		return nil
	}

	dump := framedump.NewWriter(w)
	defer dump.Close()
	step := 2 * math.Pi / float64(o.sweep)
	var hits []raycast.Hit
	for i := 0; i < o.sweep; i++ {
		hits, err = raycast.CastInto(hits, cam, world.Grid)
		if err != nil {
			return fmt.Errorf("cast failed on frame %d: %w", i, err)
		}
		if err := dump.WriteFrame(hits); err != nil {
			return fmt.Errorf("failed to write frame %d: %w", i, err)
		}
		cam.Facing = cam.Facing.Rotate(step)
	}
	log.Printf("Wrote %d frames", dump.Frames())
	return nil
}
