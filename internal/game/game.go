// Package game is the first-person walker: it turns key presses into camera
// motion and draws the raycast view with a top-down radar.
package game

import (
	"log"
	"time"

	"chosenoffset.com/tilecaster/internal/core/geom"
	"chosenoffset.com/tilecaster/internal/core/raycast"
	"chosenoffset.com/tilecaster/internal/render"
	"chosenoffset.com/tilecaster/internal/render/shading"
	"chosenoffset.com/tilecaster/internal/world/tilemap"
)

// Game holds all game state and logic.
type Game struct {
	ScreenWidth  int
	ScreenHeight int
	World        *tilemap.Map
	Camera       raycast.Camera
	InputMgr     render.InputManager
	Shading      shading.Model

	opts Options

	// Recorder receives every cast frame when set
	Recorder FrameRecorder

	// Per-frame results, reused between frames
	hits      []raycast.Hit
	uncertain int

	// UI state
	Messages  []Message
	ShowRadar bool
	ShowDebug bool

	// Debug
	FrameCount int
	fps        float64
	fpsFrames  int
	fpsSince   time.Time
	lastWarn   time.Time
	now        func() time.Time
}

// FrameRecorder stores cast frames, see framedump.Writer.
type FrameRecorder interface {
	WriteFrame(hits []raycast.Hit) error
}

// New creates a game on world with the camera at its start.
func New(world *tilemap.Map, cam raycast.Camera, input render.InputManager, width, height int, opts Options) *Game {
	if opts.TPS <= 0 {
		opts.TPS = 60
	}
	if opts.RefHeight <= 0 {
		opts.RefHeight = height
	}
	if opts.CharW <= 0 || opts.LineH <= 0 {
		opts.CharW, opts.LineH = 6, 16
	}
	return &Game{
		ScreenWidth:  width,
		ScreenHeight: height,
		World:        world,
		Camera:       cam,
		InputMgr:     input,
		Shading: shading.Model{
			Ambient: opts.Render.Ambient,
			Falloff: opts.Render.Falloff,
			SideDim: opts.Render.SideDim,
		},
		opts:      opts,
		ShowRadar: opts.Radar.Enabled,
		ShowDebug: opts.Debug,
		now:       time.Now,
	}
}

// StartCamera places a camera on the map spawn with the map's facing. fov is
// in radians.
func StartCamera(world *tilemap.Map, fov float64, width int) raycast.Camera {
	return raycast.Camera{
		Position:  world.Spawn,
		Facing:    world.Facing,
		FOV:       geom.FromRadians(fov),
		ViewWidth: width,
	}
}

// Update handles game logic updates.
func (g *Game) Update() error {
	dt := 1.0 / float64(g.opts.TPS)
	g.updateMessages(dt)

	if g.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		return render.ErrQuit
	}
	if g.InputMgr.IsKeyJustPressed(render.KeyM) {
		g.ShowRadar = !g.ShowRadar
		g.ShowMessage(onOff("Radar", g.ShowRadar))
	}
	if g.InputMgr.IsKeyJustPressed(render.KeyTab) {
		g.ShowDebug = !g.ShowDebug
	}

	cmd := ReadCommand(g.InputMgr, g.opts.Controls.HoldToMove)
	if cmd != 0 {
		g.Camera = g.move(cmd, dt)
	}
	return nil
}

// move steers the camera and keeps it out of walls.
func (g *Game) move(cmd Command, dt float64) raycast.Camera {
	c := g.opts.Controls
	next := Steer(g.Camera, cmd, dt, c.MoveSpeed, c.TurnRate)
	next.Position = Slide(g.World.Grid, g.Camera.Position, next.Position, c.BodyRadius)
	return next
}

// Layout returns the game's logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenWidth, g.ScreenHeight
}

// Hits returns the rays of the last drawn frame.
func (g *Game) Hits() []raycast.Hit {
	return g.hits
}

// Position returns the camera position.
func (g *Game) Position() geom.Vec2 {
	return g.Camera.Position
}

func (g *Game) updateMessages(dt float64) {
	var active []Message
	for _, msg := range g.Messages {
		msg.TimeLeft -= dt
		if msg.TimeLeft > 0 {
			active = append(active, msg)
		}
	}
	g.Messages = active
}

// ShowMessage adds a new message to be displayed on screen.
func (g *Game) ShowMessage(text string) {
	g.Messages = append(g.Messages, Message{
		Text:     text,
		TimeLeft: 2.0,
		MaxTime:  2.0,
	})
	log.Printf("Message: %s", text)
}

// noteUncertain logs frames with step-capped rays at most once a second.
func (g *Game) noteUncertain(n int) {
	g.uncertain = n
	if n == 0 {
		return
	}
	now := g.now()
	if now.Sub(g.lastWarn) < time.Second {
		return
	}
	g.lastWarn = now
	log.Printf("WARNING: %d rays hit the step cap at %v", n, g.Camera.Position)
}

func (g *Game) tickFPS() {
	now := g.now()
	if g.fpsSince.IsZero() {
		g.fpsSince = now
	}
	g.fpsFrames++
	if elapsed := now.Sub(g.fpsSince); elapsed >= time.Second {
		g.fps = float64(g.fpsFrames) / elapsed.Seconds()
		g.fpsFrames = 0
		g.fpsSince = now
	}
}

func onOff(what string, on bool) string {
	if on {
		return what + " on"
	}
	return what + " off"
}
