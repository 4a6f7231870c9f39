// Package config loads the YAML settings shared by the front-ends.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all settings.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Camera   CameraConfig   `yaml:"camera"`
	Controls ControlsConfig `yaml:"controls"`
	Render   RenderConfig   `yaml:"render"`
	Radar    RadarConfig    `yaml:"radar"`
	Terminal TerminalConfig `yaml:"terminal"`
	World    WorldConfig    `yaml:"world"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	TPS    int    `yaml:"tps"`
}

// CameraConfig overrides the map spawn. A zero position keeps the spawn and
// an absent facing keeps the map's facing.
type CameraConfig struct {
	X         float64  `yaml:"x"`
	Y         float64  `yaml:"y"`
	FacingDeg *float64 `yaml:"facing_deg,omitempty"`
	FOVDeg    float64  `yaml:"fov_deg"`
}

// ControlsConfig holds movement settings.
type ControlsConfig struct {
	MoveSpeed  float64 `yaml:"move_speed"` // tiles per second
	TurnRate   float64 `yaml:"turn_rate"`  // radians per second
	HoldToMove bool    `yaml:"hold_to_move"`
	BodyRadius float64 `yaml:"body_radius"` // tiles kept clear of walls
}

// RenderConfig holds first-person view settings.
type RenderConfig struct {
	WallScale        float64 `yaml:"wall_scale"` // strip height at distance 1
	Ceiling          Color   `yaml:"ceiling"`
	Floor            Color   `yaml:"floor"`
	Wall             Color   `yaml:"wall"`
	Enemy            Color   `yaml:"enemy"`
	SideDim          float64 `yaml:"side_dim"`
	Ambient          float64 `yaml:"ambient"`
	Falloff          float64 `yaml:"falloff"` // tiles until ambient is reached
	ClampMinDistance float64 `yaml:"clamp_min_distance"`
}

// RadarConfig holds the top-down overlay settings.
type RadarConfig struct {
	Enabled       bool    `yaml:"enabled"`
	Scale         float64 `yaml:"scale"` // pixels per tile
	OffsetX       float64 `yaml:"offset_x"`
	OffsetY       float64 `yaml:"offset_y"`
	ShowGrid      bool    `yaml:"show_grid"`
	ShowCrossings bool    `yaml:"show_crossings"`
	Every         int     `yaml:"every"` // draw every n-th ray
}

// TerminalConfig holds settings for the character-cell front-end.
type TerminalConfig struct {
	RadarScale float64 `yaml:"radar_scale"` // cells per tile
	FPS        int     `yaml:"fps"`
}

// WorldConfig selects the map.
type WorldConfig struct {
	Map     string `yaml:"map"`
	MapsDir string `yaml:"maps_dir"`
}

// FOV returns the field of view in radians.
func (c CameraConfig) FOV() float64 {
	return c.FOVDeg * math.Pi / 180
}

// Facing returns the facing override in radians. ok is false when the
// map's facing should be kept.
func (c CameraConfig) Facing() (radians float64, ok bool) {
	if c.FacingDeg == nil {
		return 0, false
	}
	return *c.FacingDeg * math.Pi / 180, true
}

// HasPosition reports whether the spawn is overridden.
func (c CameraConfig) HasPosition() bool {
	return c.X != 0 || c.Y != 0
}

// DefaultConfig returns the embedded defaults.
func DefaultConfig() *Config {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		panic(fmt.Sprintf("config: embedded defaults are broken: %v", err))
	}
	return cfg
}

// Load reads path over the embedded defaults. An empty path or a missing
// file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("Config file %s not found, using defaults", path)
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	// Only keys present in the file overwrite the defaults.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks ranges the front-ends rely on.
func (c *Config) Validate() error {
	var problems []string
	check := func(ok bool, format string, args ...any) {
		if !ok {
			problems = append(problems, fmt.Sprintf(format, args...))
		}
	}

	check(c.Window.Width > 0 && c.Window.Height > 0, "window size %dx%d", c.Window.Width, c.Window.Height)
	check(c.Window.TPS > 0, "window.tps %d", c.Window.TPS)
	check(c.Camera.FOVDeg > 0 && c.Camera.FOVDeg < 180, "camera.fov_deg %v outside (0, 180)", c.Camera.FOVDeg)
	check(c.Controls.MoveSpeed >= 0, "controls.move_speed %v", c.Controls.MoveSpeed)
	check(c.Controls.TurnRate >= 0, "controls.turn_rate %v", c.Controls.TurnRate)
	check(c.Controls.BodyRadius >= 0 && c.Controls.BodyRadius < 0.5, "controls.body_radius %v outside [0, 0.5)", c.Controls.BodyRadius)
	check(c.Render.WallScale > 0, "render.wall_scale %v", c.Render.WallScale)
	check(c.Render.SideDim >= 0 && c.Render.SideDim <= 1, "render.side_dim %v outside [0, 1]", c.Render.SideDim)
	check(c.Render.Ambient >= 0 && c.Render.Ambient <= 1, "render.ambient %v outside [0, 1]", c.Render.Ambient)
	check(c.Render.Falloff > 0, "render.falloff %v", c.Render.Falloff)
	check(c.Render.ClampMinDistance > 0, "render.clamp_min_distance %v", c.Render.ClampMinDistance)
	check(c.Radar.Scale > 0, "radar.scale %v", c.Radar.Scale)
	check(c.Radar.Every >= 1, "radar.every %d", c.Radar.Every)
	check(c.Terminal.RadarScale > 0, "terminal.radar_scale %v", c.Terminal.RadarScale)
	check(c.Terminal.FPS > 0, "terminal.fps %d", c.Terminal.FPS)

	if len(problems) > 0 {
		return fmt.Errorf("%s: %w", strings.Join(problems, "; "), ErrInvalidConfig)
	}
	return nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Color is an opaque colour written as "#rrggbb".
type Color color.RGBA

// RGB builds an opaque Color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xff}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA(c).RGBA()
}

// ParseColor parses "#rrggbb" or "rrggbb".
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("colour %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("colour %q: %w", s, err)
	}
	return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// String returns the "#rrggbb" form.
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*c = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (c Color) MarshalYAML() (any, error) {
	return c.String(), nil
}
