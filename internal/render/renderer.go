// Package render defines the drawing and input contract between the game
// and its front-ends, so the same game runs in a window or a terminal.
package render

import (
	"errors"
	"image/color"
)

// ErrQuit is returned by Game.Update when the player asks to leave.
// Backends treat it as a clean shutdown.
var ErrQuit = errors.New("quit requested")

// Surface is the drawing target for one frame. Coordinates are in the
// backend's own units: pixels for a window, character cells for a terminal.
type Surface interface {
	// Size returns the drawable width and height.
	Size() (width, height int)

	// Fill paints the whole surface.
	Fill(clr color.Color)

	// VLine paints column x from row y0 up to, not including, y1.
	VLine(x, y0, y1 int, clr color.Color)

	// Line draws a segment of the given stroke width.
	Line(x0, y0, x1, y1, width float32, clr color.Color)

	// Rect fills an axis-aligned rectangle.
	Rect(x, y, w, h float32, clr color.Color)

	// Circle fills a circle.
	Circle(x, y, radius float32, clr color.Color)

	// Text prints a line of text with its top-left corner at (x, y).
	Text(s string, x, y int)
}

// InputManager reports keyboard state for the current tick.
type InputManager interface {
	IsKeyPressed(key Key) bool
	IsKeyJustPressed(key Key) bool
}

// Key is a backend-neutral key code.
type Key int

// Key constants used by the game
const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyM   // radar toggle
	KeyTab // debug overlay toggle
	KeyEscape
)

// Keys lists every key the game reads.
var Keys = []Key{KeyW, KeyA, KeyS, KeyD, KeyUp, KeyDown, KeyLeft, KeyRight, KeyM, KeyTab, KeyEscape}

// Game is driven by an Engine: Update once per tick, Draw once per frame.
type Game interface {
	// Update advances the game by one tick. Returning ErrQuit ends the run.
	Update() error

	// Draw draws the current frame.
	Draw(screen Surface)

	// Layout accepts the outside size and returns the logical screen size.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine manages the game loop and the output device.
type Engine interface {
	// SetWindowSize sets the window size. Backends without windows ignore it.
	SetWindowSize(width, height int)

	// SetWindowTitle sets the title or status line.
	SetWindowTitle(title string)

	// SetTPS sets how many times per second Update is called.
	SetTPS(tps int)

	// RunGame blocks until the game quits or fails.
	RunGame(game Game) error
}
