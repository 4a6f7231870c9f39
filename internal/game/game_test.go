package game

import (
	"errors"
	"math"
	"testing"

	"chosenoffset.com/tilecaster/internal/config"
	"chosenoffset.com/tilecaster/internal/core/geom"
	"chosenoffset.com/tilecaster/internal/core/raycast"
	"chosenoffset.com/tilecaster/internal/render"
	"chosenoffset.com/tilecaster/internal/world/tilemap"
)

func TestColumnSpan(t *testing.T) {
	cases := []struct {
		name     string
		perp     float64
		top, bot int
	}{
		{"unit distance fills the screen", 1, 0, 640},
		{"twice as far is half as tall", 2, 160, 480},
		{"very close is clamped", 0.01, 0, 640},
		{"zero uses the minimum distance", 0, 0, 640},
		{"far away", 64, 315, 325},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			top, bot := ColumnSpan(tc.perp, 640, 640, 0.05)
			if top != tc.top || bot != tc.bot {
				t.Errorf("Expected [%d, %d), got [%d, %d)", tc.top, tc.bot, top, bot)
			}
		})
	}
}

func TestColumnSpanNaN(t *testing.T) {
	top, bot := ColumnSpan(math.NaN(), 100, 100, 0.5)
	if top != 0 || bot != 100 {
		t.Errorf("Expected NaN to clamp to the minimum distance, got [%d, %d)", top, bot)
	}
}

func TestUpdateEscapeQuits(t *testing.T) {
	in := newFakeInput()
	g := newTestGame(in)
	in.tap(render.KeyEscape)
	if err := g.Update(); !errors.Is(err, render.ErrQuit) {
		t.Errorf("Expected ErrQuit, got %v", err)
	}
}

func TestUpdateStepForward(t *testing.T) {
	in := newFakeInput()
	g := newTestGame(in)
	start := g.Camera.Position

	in.tap(render.KeyW)
	if err := g.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	// 30 tiles/s at 60 ticks/s is half a tile per press.
	moved := g.Camera.Position.Sub(start)
	if math.Abs(moved.X-0.5) > 1e-9 || math.Abs(moved.Y) > 1e-9 {
		t.Errorf("Expected to move half a tile east, moved %v", moved)
	}

	// Nothing new pressed: no movement in press mode.
	in.tap()
	before := g.Camera.Position
	if err := g.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if g.Camera.Position != before {
		t.Errorf("Expected no movement without a new press, moved to %v", g.Camera.Position)
	}
}

func TestUpdateHoldToMove(t *testing.T) {
	in := newFakeInput()
	g := newTestGame(in)
	g.opts.Controls.HoldToMove = true
	g.opts.Controls.MoveSpeed = 3
	start := g.Camera.Position

	in.pressed[render.KeyW] = true
	for i := 0; i < 10; i++ {
		if err := g.Update(); err != nil {
			t.Fatalf("Update failed: %v", err)
		}
	}
	if got := g.Camera.Position.X - start.X; math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Expected 10 ticks at 3 tiles/s to move 0.5, moved %v", got)
	}
}

func TestUpdateToggles(t *testing.T) {
	in := newFakeInput()
	g := newTestGame(in)
	radar := g.ShowRadar

	in.tap(render.KeyM, render.KeyTab)
	if err := g.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if g.ShowRadar == radar {
		t.Errorf("Expected M to toggle the radar")
	}
	if !g.ShowDebug {
		t.Errorf("Expected Tab to enable the debug overlay")
	}
	if len(g.Messages) != 1 {
		t.Errorf("Expected a radar message, got %d messages", len(g.Messages))
	}
}

func TestMessagesExpire(t *testing.T) {
	g := newTestGame(newFakeInput())
	g.ShowMessage("hello")
	for i := 0; i < 2*60+1; i++ {
		g.updateMessages(1.0 / 60)
	}
	if len(g.Messages) != 0 {
		t.Errorf("Expected the message to expire, got %v", g.Messages)
	}
}

func TestDrawCastsOneColumnPerPixel(t *testing.T) {
	g := newTestGame(newFakeInput())
	g.ShowDebug = true
	s := &fakeSurface{w: 320, h: 200}
	g.Draw(s)

	if len(g.Hits()) != 320 {
		t.Fatalf("Expected 320 hits, got %d", len(g.Hits()))
	}
	if len(s.vlines) != 320 {
		t.Fatalf("Expected 320 wall strips, got %d", len(s.vlines))
	}
	for i, v := range s.vlines {
		if v.x != i {
			t.Fatalf("Expected strip %d at x=%d, got %d", i, i, v.x)
		}
		if v.y0 < 0 || v.y1 > 200 || v.y0 > v.y1 {
			t.Fatalf("strip %d out of bounds: [%d, %d)", i, v.y0, v.y1)
		}
	}
	if s.fills != 1 {
		t.Errorf("Expected one background fill, got %d", s.fills)
	}
	if s.rects == 0 || s.lines == 0 || s.circles == 0 {
		t.Errorf("Expected the radar to draw, got %d rects %d lines %d circles", s.rects, s.lines, s.circles)
	}
	if len(s.texts) != 4 {
		t.Errorf("Expected 4 debug lines, got %v", s.texts)
	}
}

func TestDrawReusesHitBuffer(t *testing.T) {
	g := newTestGame(newFakeInput())
	s := &fakeSurface{w: 64, h: 64}
	g.Draw(s)
	first := &g.Hits()[0]
	g.Draw(s)
	if &g.Hits()[0] != first {
		t.Errorf("Expected the hit buffer to be reused between frames")
	}
}

func TestDrawNearWallIsTaller(t *testing.T) {
	world := &tilemap.Map{Name: "box", Grid: tilemap.Bounded(9, 8), Spawn: geom.V(1.5, 4), Facing: geom.FromRadians(0)}
	opts := OptionsFromConfig(config.DefaultConfig())
	cam := raycast.NewCamera(world.Spawn, 0, 1, 64)
	g := New(world, cam, newFakeInput(), 64, 64, opts)
	g.ShowRadar = false

	s := &fakeSurface{w: 64, h: 64}
	g.Draw(s)
	far := s.vlines[32].y1 - s.vlines[32].y0

	g.Camera.Position = geom.V(6.5, 4)
	s = &fakeSurface{w: 64, h: 64}
	g.Draw(s)
	near := s.vlines[32].y1 - s.vlines[32].y0

	if near <= far {
		t.Errorf("Expected a nearer wall to be taller, got %d <= %d", near, far)
	}
}

type countingRecorder struct{ frames, columns int }

func (r *countingRecorder) WriteFrame(hits []raycast.Hit) error {
	r.frames++
	r.columns += len(hits)
	return nil
}

func TestDrawRecordsFrames(t *testing.T) {
	g := newTestGame(newFakeInput())
	rec := &countingRecorder{}
	g.Recorder = rec
	s := &fakeSurface{w: 32, h: 32}
	g.Draw(s)
	g.Draw(s)
	if rec.frames != 2 || rec.columns != 64 {
		t.Errorf("Expected 2 frames of 32 columns, got %d frames %d columns", rec.frames, rec.columns)
	}
}
