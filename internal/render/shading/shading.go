// Package shading darkens wall colours with distance and wall orientation.
package shading

import (
	"image/color"
	"math"

	"chosenoffset.com/tilecaster/internal/core/raycast"
)

// Model is the lighting applied to wall strips.
type Model struct {
	Ambient float64 // brightness floor (0.0 = pitch black, 1.0 = fully lit)
	Falloff float64 // distance in tiles at which Ambient is reached
	SideDim float64 // multiplier for walls hit on a horizontal grid line
}

// DefaultModel returns the built-in lighting.
func DefaultModel() Model {
	return Model{Ambient: 0.25, Falloff: 12, SideDim: 0.6}
}

// Brightness returns the light level in [0, 1] for a wall at dist.
func (m Model) Brightness(dist float64, side raycast.Side) float64 {
	b := 1.0
	if m.Falloff > 0 {
		t := math.Min(math.Max(dist/m.Falloff, 0), 1)
		b = 1 - (1-m.Ambient)*t
	}
	if side == raycast.SideHorizontal {
		b *= m.SideDim
	}
	return math.Min(math.Max(b, 0), 1)
}

// Wall returns base lit for a wall at dist.
func (m Model) Wall(base color.Color, dist float64, side raycast.Side) color.RGBA {
	return Scale(base, m.Brightness(dist, side))
}

// Scale multiplies the colour channels of c by f and makes it opaque.
func Scale(c color.Color, f float64) color.RGBA {
	r, g, b, _ := c.RGBA()
	ch := func(v uint32) uint8 {
		return uint8(math.Round(math.Min(float64(v>>8)*f, 255)))
	}
	return color.RGBA{R: ch(r), G: ch(g), B: ch(b), A: 0xff}
}

// Luminance returns the perceived brightness of c in [0, 1].
func Luminance(c color.Color) float64 {
	r, g, b, _ := c.RGBA()
	return (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)) / 0xffff
}
