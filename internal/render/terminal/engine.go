package terminal

import (
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/tilecaster/internal/render"
)

// Engine runs a render.Game in a terminal.
type Engine struct {
	screen tcell.Screen
	input  *InputManager
	title  string
	tps    int
	fps    int
}

// NewEngine creates an engine drawing on screen at fps frames per second.
// The screen is initialised by RunGame and finalised when it returns.
func NewEngine(screen tcell.Screen, fps int) *Engine {
	if fps <= 0 {
		fps = 30
	}
	return &Engine{
		screen: screen,
		input:  NewInputManager(),
		tps:    60,
		fps:    fps,
	}
}

// Input returns the input manager fed by this engine.
func (e *Engine) Input() *InputManager {
	return e.input
}

// SetWindowSize is a no-op: the terminal decides its size.
func (e *Engine) SetWindowSize(width, height int) {}

// SetWindowTitle remembers the title for the status line.
func (e *Engine) SetWindowTitle(title string) {
	e.title = title
}

// SetTPS sets how often the game is updated.
func (e *Engine) SetTPS(tps int) {
	if tps > 0 {
		e.tps = tps
	}
}

// RunGame runs the game until it returns render.ErrQuit or another error.
func (e *Engine) RunGame(game render.Game) error {
	if err := e.screen.Init(); err != nil {
		return fmt.Errorf("failed to init terminal: %w", err)
	}
	defer e.screen.Fini()
	e.screen.HideCursor()

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := e.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	tick := time.NewTicker(time.Second / time.Duration(e.tps))
	defer tick.Stop()
	frame := time.NewTicker(time.Second / time.Duration(e.fps))
	defer frame.Stop()

	surface := NewSurface(e.screen)
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				e.input.HandleKey(ev)
			case *tcell.EventResize:
				e.screen.Sync()
			}

		case <-tick.C:
			e.input.BeginTick()
			if err := game.Update(); err != nil {
				if errors.Is(err, render.ErrQuit) {
					return nil
				}
				return err
			}

		case <-frame.C:
			w, h := e.screen.Size()
			game.Layout(w, h)
			game.Draw(surface)
			if e.title != "" {
				surface.Text(e.title, 0, 0)
			}
			e.screen.Show()
		}
	}
}
