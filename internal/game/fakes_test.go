package game

import (
	"image/color"

	"chosenoffset.com/tilecaster/internal/config"
	"chosenoffset.com/tilecaster/internal/render"
	"chosenoffset.com/tilecaster/internal/world/tilemap"
)

type vline struct {
	x, y0, y1 int
	clr       color.Color
}

// fakeSurface records draw calls.
type fakeSurface struct {
	w, h    int
	fills   int
	vlines  []vline
	rects   int
	lines   int
	circles int
	texts   []string
}

func (s *fakeSurface) Size() (int, int)          { return s.w, s.h }
func (s *fakeSurface) Fill(color.Color)          { s.fills++ }
func (s *fakeSurface) Text(str string, _, _ int) { s.texts = append(s.texts, str) }

func (s *fakeSurface) VLine(x, y0, y1 int, clr color.Color) {
	s.vlines = append(s.vlines, vline{x, y0, y1, clr})
}

func (s *fakeSurface) Line(_, _, _, _, _ float32, _ color.Color) { s.lines++ }
func (s *fakeSurface) Rect(_, _, _, _ float32, _ color.Color)    { s.rects++ }
func (s *fakeSurface) Circle(_, _, _ float32, _ color.Color)     { s.circles++ }

// fakeInput reports a fixed set of keys as pressed and just pressed.
type fakeInput struct {
	pressed map[render.Key]bool
	just    map[render.Key]bool
}

func newFakeInput() *fakeInput {
	return &fakeInput{pressed: map[render.Key]bool{}, just: map[render.Key]bool{}}
}

func (in *fakeInput) IsKeyPressed(k render.Key) bool     { return in.pressed[k] }
func (in *fakeInput) IsKeyJustPressed(k render.Key) bool { return in.just[k] }

// tap marks keys as pressed this tick only.
func (in *fakeInput) tap(keys ...render.Key) {
	in.just = map[render.Key]bool{}
	for _, k := range keys {
		in.just[k] = true
	}
}

func newTestGame(input render.InputManager) *Game {
	cfg := config.DefaultConfig()
	world := tilemap.DefaultMap()
	cam := StartCamera(world, cfg.Camera.FOV(), cfg.Window.Width)
	return New(world, cam, input, cfg.Window.Width, cfg.Window.Height, OptionsFromConfig(cfg))
}
