// Package ebiten implements the render contract on top of Ebitengine.
package ebiten

import (
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"chosenoffset.com/tilecaster/internal/render"
)

// EbitenSurface wraps an ebiten.Image to implement render.Surface.
type EbitenSurface struct {
	img *ebiten.Image
}

// WrapImage wraps an existing ebiten.Image as a render.Surface.
func WrapImage(img *ebiten.Image) *EbitenSurface {
	return &EbitenSurface{img: img}
}

// Size returns the image bounds in pixels.
func (s *EbitenSurface) Size() (width, height int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// Fill paints the whole image.
func (s *EbitenSurface) Fill(clr color.Color) {
	s.img.Fill(clr)
}

// VLine draws a one pixel wide wall strip.
func (s *EbitenSurface) VLine(x, y0, y1 int, clr color.Color) {
	if y1 <= y0 {
		return
	}
	vector.DrawFilledRect(s.img, float32(x), float32(y0), 1, float32(y1-y0), clr, false)
}

// Line draws a segment.
func (s *EbitenSurface) Line(x0, y0, x1, y1, width float32, clr color.Color) {
	vector.StrokeLine(s.img, x0, y0, x1, y1, width, clr, true)
}

// Rect fills a rectangle.
func (s *EbitenSurface) Rect(x, y, w, h float32, clr color.Color) {
	vector.DrawFilledRect(s.img, x, y, w, h, clr, false)
}

// Circle fills a circle.
func (s *EbitenSurface) Circle(x, y, radius float32, clr color.Color) {
	vector.DrawFilledCircle(s.img, x, y, radius, clr, true)
}

// Text draws text using the debug font. The debug font is always white.
func (s *EbitenSurface) Text(str string, x, y int) {
	ebitenutil.DebugPrintAt(s.img, str, x, y)
}

// EbitenInputManager reads the keyboard through ebiten and inpututil.
type EbitenInputManager struct{}

// NewInputManager returns the ebiten keyboard reader.
func NewInputManager() render.InputManager {
	return &EbitenInputManager{}
}

// IsKeyPressed reports whether key is held.
func (m *EbitenInputManager) IsKeyPressed(key render.Key) bool {
	k, ok := keyToEbitenKey(key)
	return ok && ebiten.IsKeyPressed(k)
}

// IsKeyJustPressed reports whether key went down this tick.
func (m *EbitenInputManager) IsKeyJustPressed(key render.Key) bool {
	k, ok := keyToEbitenKey(key)
	return ok && inpututil.IsKeyJustPressed(k)
}

// keyToEbitenKey maps key onto ebiten's key set.
func keyToEbitenKey(key render.Key) (ebiten.Key, bool) {
	switch key {
	case render.KeyW:
		return ebiten.KeyW, true
	case render.KeyA:
		return ebiten.KeyA, true
	case render.KeyS:
		return ebiten.KeyS, true
	case render.KeyD:
		return ebiten.KeyD, true
	case render.KeyUp:
		return ebiten.KeyArrowUp, true
	case render.KeyDown:
		return ebiten.KeyArrowDown, true
	case render.KeyLeft:
		return ebiten.KeyArrowLeft, true
	case render.KeyRight:
		return ebiten.KeyArrowRight, true
	case render.KeyM:
		return ebiten.KeyM, true
	case render.KeyTab:
		return ebiten.KeyTab, true
	case render.KeyEscape:
		return ebiten.KeyEscape, true
	default:
		return 0, false
	}
}

// EbitenEngine runs a render.Game in an ebiten window.
type EbitenEngine struct{}

// NewEngine returns the window engine.
func NewEngine() render.Engine {
	return &EbitenEngine{}
}

// SetWindowSize sizes the window and lets the user resize it.
func (e *EbitenEngine) SetWindowSize(width, height int) {
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
}

// SetWindowTitle names the window.
func (e *EbitenEngine) SetWindowTitle(title string) {
	ebiten.SetWindowTitle(title)
}

// SetTPS sets the tick rate.
func (e *EbitenEngine) SetTPS(tps int) {
	ebiten.SetTPS(tps)
}

// RunGame runs the game loop with the provided game. A render.ErrQuit from
// the game ends the loop without an error.
func (e *EbitenEngine) RunGame(game render.Game) error {
	err := ebiten.RunGame(&gameAdapter{game: game})
	if errors.Is(err, render.ErrQuit) {
		return nil
	}
	return err
}

// gameAdapter exposes a render.Game as an ebiten.Game.
type gameAdapter struct {
	game render.Game
}

// Update forwards to the game, mapping ErrQuit to ebiten.Termination.
func (a *gameAdapter) Update() error {
	err := a.game.Update()
	if errors.Is(err, render.ErrQuit) {
		return ebiten.Termination
	}
	return err
}

// Draw hands the game a Surface over the screen image.
func (a *gameAdapter) Draw(screen *ebiten.Image) {
	a.game.Draw(&EbitenSurface{img: screen})
}

// Layout implements ebiten.Game.
func (a *gameAdapter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.game.Layout(outsideWidth, outsideHeight)
}
