package game

import (
	"image/color"

	"chosenoffset.com/tilecaster/internal/config"
)

// Message represents an on-screen message that fades over time.
type Message struct {
	Text     string
	TimeLeft float64 // Seconds remaining
	MaxTime  float64 // Initial duration
}

// Options carries the settings a Game reads every tick.
type Options struct {
	Controls config.ControlsConfig
	Render   config.RenderConfig
	Radar    config.RadarConfig

	TPS       int // ticks per second, sets the movement step
	RefHeight int // screen height WallScale was chosen for
	Debug     bool

	// Text metrics in surface units
	CharW, LineH int
}

// OptionsFromConfig builds Options for a window front-end.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Controls:  cfg.Controls,
		Render:    cfg.Render,
		Radar:     cfg.Radar,
		TPS:       cfg.Window.TPS,
		RefHeight: cfg.Window.Height,
		CharW:     6,
		LineH:     16,
	}
}

// Radar colours.
var (
	radarFloor    = color.RGBA{40, 40, 48, 200}
	radarWall     = color.RGBA{150, 150, 160, 230}
	radarPlayer   = color.RGBA{255, 220, 80, 255}
	radarCrossing = color.RGBA{255, 255, 255, 255}
	rayPalette    = []color.RGBA{
		{255, 99, 71, 160},
		{60, 179, 113, 160},
		{65, 105, 225, 160},
		{238, 130, 238, 160},
		{255, 215, 0, 160},
		{64, 224, 208, 160},
	}
)
