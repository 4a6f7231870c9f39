// Package terminal implements the render contract on a character-cell
// terminal with tcell. One screen cell is one unit of the Surface.
package terminal

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/tilecaster/internal/render/shading"
)

// Shade runes from bright to dark.
var shades = []rune{'█', '▓', '▒', '░'}

// ShadeRune picks a block rune for a wall colour by its luminance.
func ShadeRune(clr color.Color) rune {
	l := shading.Luminance(clr)
	switch {
	case l >= 0.6:
		return shades[0]
	case l >= 0.4:
		return shades[1]
	case l >= 0.2:
		return shades[2]
	default:
		return shades[3]
	}
}

// Surface draws on a tcell.Screen.
type Surface struct {
	screen tcell.Screen
}

// NewSurface wraps screen.
func NewSurface(screen tcell.Screen) *Surface {
	return &Surface{screen: screen}
}

// Size returns the terminal size in cells.
func (s *Surface) Size() (width, height int) {
	return s.screen.Size()
}

// Fill paints every cell with a blank of the given background.
func (s *Surface) Fill(clr color.Color) {
	s.screen.Fill(' ', tcell.StyleDefault.Background(tcell.FromImageColor(clr)))
}

// VLine draws a wall strip with a rune matching its brightness.
func (s *Surface) VLine(x, y0, y1 int, clr color.Color) {
	style := tcell.StyleDefault.
		Foreground(tcell.FromImageColor(clr)).
		Background(tcell.ColorBlack)
	r := ShadeRune(clr)
	for y := y0; y < y1; y++ {
		s.screen.SetContent(x, y, r, nil, style)
	}
}

// Rect fills the cells whose centres fall inside the rectangle.
func (s *Surface) Rect(x, y, w, h float32, clr color.Color) {
	style := tcell.StyleDefault.Background(tcell.FromImageColor(clr))
	x0, x1 := cellSpan(x, w)
	y0, y1 := cellSpan(y, h)
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			s.screen.SetContent(cx, cy, ' ', nil, style)
		}
	}
}

// cellSpan returns the cells [a, b) with centres inside [start, start+size).
func cellSpan(start, size float32) (a, b int) {
	a = int(math.Ceil(float64(start) - 0.5))
	b = int(math.Ceil(float64(start+size) - 0.5))
	return a, b
}

// Line plots a segment with dots, keeping each cell's background.
func (s *Surface) Line(x0, y0, x1, y1, _ float32, clr color.Color) {
	ax, ay := int(math.Floor(float64(x0))), int(math.Floor(float64(y0)))
	bx, by := int(math.Floor(float64(x1))), int(math.Floor(float64(y1)))
	dx, dy := abs(bx-ax), -abs(by-ay)
	sx, sy := 1, 1
	if ax > bx {
		sx = -1
	}
	if ay > by {
		sy = -1
	}
	fg := tcell.FromImageColor(clr)
	e := dx + dy
	for {
		s.plot(ax, ay, '·', fg)
		if ax == bx && ay == by {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			ax += sx
		}
		if e2 <= dx {
			e += dx
			ay += sy
		}
	}
}

// Circle marks the cells within radius of the centre, at least the centre.
func (s *Surface) Circle(x, y, radius float32, clr color.Color) {
	fg := tcell.FromImageColor(clr)
	cx, cy := int(math.Floor(float64(x))), int(math.Floor(float64(y)))
	r := int(radius)
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				s.plot(cx+dx, cy+dy, '●', fg)
			}
		}
	}
}

// Text prints str in white over the existing background.
func (s *Surface) Text(str string, x, y int) {
	for _, r := range str {
		s.plot(x, y, r, tcell.ColorWhite)
		x++
	}
}

func (s *Surface) plot(x, y int, r rune, fg tcell.Color) {
	_, _, style, _ := s.screen.GetContent(x, y)
	s.screen.SetContent(x, y, r, nil, style.Foreground(fg))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
