package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Expected defaults to validate, got %v", err)
	}
	if cfg.Window.Width != 640 || cfg.Window.Height != 640 {
		t.Errorf("Expected 640x640 window, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Controls.MoveSpeed != 30 || cfg.Controls.TurnRate != 30 {
		t.Errorf("Expected speed 30 and turn rate 30, got %v and %v", cfg.Controls.MoveSpeed, cfg.Controls.TurnRate)
	}
	if cfg.Render.WallScale != 640 {
		t.Errorf("Expected wall scale 640, got %v", cfg.Render.WallScale)
	}
	if cfg.Render.Wall != RGB(0xc8, 0xc8, 0xc8) {
		t.Errorf("Expected wall colour #c8c8c8, got %v", cfg.Render.Wall)
	}
	if cfg.Camera.HasPosition() {
		t.Errorf("Expected the default camera to use the map spawn")
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Window.TPS != 60 {
		t.Errorf("Expected tps 60, got %d", cfg.Window.TPS)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Expected defaults for a missing file, got %v", err)
	}
	if cfg.Camera.FOVDeg != 60 {
		t.Errorf("Expected fov 60, got %v", cfg.Camera.FOVDeg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	data := "camera:\n  fov_deg: 90\nrender:\n  wall: \"#102030\"\ncontrols:\n  hold_to_move: true\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Camera.FOVDeg != 90 {
		t.Errorf("Expected fov 90, got %v", cfg.Camera.FOVDeg)
	}
	if cfg.Render.Wall != RGB(0x10, 0x20, 0x30) {
		t.Errorf("Expected wall #102030, got %v", cfg.Render.Wall)
	}
	if !cfg.Controls.HoldToMove {
		t.Errorf("Expected hold_to_move to be set")
	}
	// Untouched keys keep their defaults.
	if cfg.Window.Width != 640 {
		t.Errorf("Expected width 640, got %d", cfg.Window.Width)
	}
	if cfg.Render.Floor != RGB(0x3a, 0x3a, 0x3a) {
		t.Errorf("Expected default floor colour, got %v", cfg.Render.Floor)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"bad colour": "render:\n  wall: \"#12\"\n",
		"bad yaml":   "window: [\n",
		"fov":        "camera:\n  fov_deg: 180\n",
		"side dim":   "render:\n  side_dim: 2\n",
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "cfg.yaml")
			if err := os.WriteFile(path, []byte(data), 0644); err != nil {
				t.Fatalf("Failed to write config: %v", err)
			}
			if _, err := Load(path); err == nil {
				t.Errorf("Expected an error")
			}
		})
	}
}

func TestValidateWrapsSentinel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Radar.Every = 0
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := DefaultConfig()
	cfg.Render.Ceiling = RGB(1, 2, 3)
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML failed: %v", err)
	}

	back, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if back.Render.Ceiling != cfg.Render.Ceiling {
		t.Errorf("Expected ceiling %v, got %v", cfg.Render.Ceiling, back.Render.Ceiling)
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#ff8000")
	if err != nil {
		t.Fatalf("ParseColor failed: %v", err)
	}
	if c.R != 0xff || c.G != 0x80 || c.B != 0 || c.A != 0xff {
		t.Errorf("Expected ff8000 opaque, got %+v", c)
	}
	if c.String() != "#ff8000" {
		t.Errorf("Expected #ff8000, got %s", c.String())
	}
	if _, err := ParseColor("zzzzzz"); err == nil {
		t.Errorf("Expected an error for non-hex input")
	}
}

func TestCameraFacingOverride(t *testing.T) {
	if _, ok := DefaultConfig().Camera.Facing(); ok {
		t.Error("Expected the default camera to keep the map facing")
	}

	cases := []struct {
		yaml string
		want float64
	}{
		{"camera:\n  facing_deg: 0\n", 0},
		{"camera:\n  facing_deg: 90\n", math.Pi / 2},
		{"camera:\n  facing_deg: -45\n", -math.Pi / 4},
	}
	for _, c := range cases {
		path := filepath.Join(t.TempDir(), "cfg.yaml")
		if err := os.WriteFile(path, []byte(c.yaml), 0644); err != nil {
			t.Fatalf("Failed to write config: %v", err)
		}
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		got, ok := cfg.Camera.Facing()
		if !ok {
			t.Errorf("%q: expected a facing override", c.yaml)
			continue
		}
		if math.Abs(got-c.want) > 1e-12 {
			t.Errorf("%q: expected facing %v, got %v", c.yaml, c.want, got)
		}
	}
}
