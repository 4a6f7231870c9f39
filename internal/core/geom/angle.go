package geom

import "math"

// Angle is a direction stored as (cos θ, sin θ).
//
// World y grows downwards (row index), so a growing angle turns clockwise
// on screen.
type Angle struct {
	v Vec2
}

// FromRadians builds the angle (cos r, sin r).
func FromRadians(r float64) Angle {
	sin, cos := math.Sincos(r)
	return Angle{v: Vec2{cos, sin}}
}

// FromDegrees builds an angle from degrees.
func FromDegrees(d float64) Angle {
	return FromRadians(d * math.Pi / 180)
}

// AngleOf returns the direction of v. It fails for the zero vector.
func AngleOf(v Vec2) (Angle, error) {
	u, err := v.Normalize()
	if err != nil {
		return Angle{}, err
	}
	return Angle{v: u}, nil
}

// Vec returns the unit direction.
func (a Angle) Vec() Vec2 {
	return a.v
}

// Forward is an alias of Vec, named for movement code.
func (a Angle) Forward() Vec2 {
	return a.v
}

// Radians returns atan2(y, x) in (-π, π].
func (a Angle) Radians() float64 {
	return math.Atan2(a.v.Y, a.v.X)
}

// Degrees returns Radians converted to degrees.
func (a Angle) Degrees() float64 {
	return a.Radians() * 180 / math.Pi
}

// Span returns |Radians()|, used when an angle describes an angular width.
func (a Angle) Span() float64 {
	return math.Abs(a.Radians())
}

// Slope returns y/x. ok is false when x is zero.
func (a Angle) Slope() (slope float64, ok bool) {
	if a.v.X == 0 {
		return 0, false
	}
	return a.v.Y / a.v.X, true
}

// Rotate returns the angle turned by delta radians.
func (a Angle) Rotate(delta float64) Angle {
	r := a.v.Rotate(delta)
	u, err := r.Normalize()
	if err != nil {
		return FromRadians(a.Radians() + delta)
	}
	return Angle{v: u}
}

// To returns the signed angle from a to b in (-π, π].
func (a Angle) To(b Angle) float64 {
	return math.Atan2(a.v.Cross(b.v), a.v.Dot(b.v))
}

// IsZero reports whether a was never initialised.
func (a Angle) IsZero() bool {
	return a.v.X == 0 && a.v.Y == 0
}
