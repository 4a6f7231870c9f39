// Package geom provides the small value types used by the raycaster: a 2D
// vector and an angle stored as a unit direction.
package geom

import (
	"errors"
	"fmt"
	"math"
)

// ZeroGuard is substituted for vector components that are exactly zero before
// rotating, so that slopes derived from the result stay finite.
const ZeroGuard = 1e-5

// ErrDegenerateVector is returned when a zero-length vector is normalized.
var ErrDegenerateVector = errors.New("degenerate vector")

// Vec2 is a point or direction in world (tile) units.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the z component of the 3D cross product of v and o.
func (v Vec2) Cross(o Vec2) float64 {
	return v.X*o.Y - v.Y*o.X
}

// Magnitude returns the Euclidean length of v.
func (v Vec2) Magnitude() float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance returns the Euclidean distance between v and o.
func (v Vec2) Distance(o Vec2) float64 {
	return o.Sub(v).Magnitude()
}

// Normalize returns v scaled to unit length.
func (v Vec2) Normalize() (Vec2, error) {
	m := v.Magnitude()
	if m == 0 || math.IsNaN(m) || math.IsInf(m, 0) {
		return Vec2{}, fmt.Errorf("normalize %v: %w", v, ErrDegenerateVector)
	}
	return Vec2{v.X / m, v.Y / m}, nil
}

// GuardZero replaces components that are exactly zero with ZeroGuard.
func (v Vec2) GuardZero() Vec2 {
	if v.X == 0 {
		v.X = ZeroGuard
	}
	if v.Y == 0 {
		v.Y = ZeroGuard
	}
	return v
}

// Rotate rotates v around the origin by theta radians. Zero components are
// guarded first.
func (v Vec2) Rotate(theta float64) Vec2 {
	v = v.GuardZero()
	sin, cos := math.Sincos(theta)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// IsFinite reports whether both components are finite numbers.
func (v Vec2) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) && !math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// String implements fmt.Stringer.
func (v Vec2) String() string {
	return fmt.Sprintf("(%.4f, %.4f)", v.X, v.Y)
}
