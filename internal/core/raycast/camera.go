// Package raycast casts one ray per screen column across a tile grid and
// reports where each ray first meets a wall.
package raycast

import (
	"errors"
	"fmt"
	"math"

	"chosenoffset.com/tilecaster/internal/core/geom"
)

// ErrInvalidCamera is returned when a camera cannot produce a frame.
var ErrInvalidCamera = errors.New("invalid camera")

// MinViewWidth is the smallest number of rays a camera may cast.
const MinViewWidth = 2

// Camera is the viewer: where it stands, where it looks and how wide.
type Camera struct {
	Position  geom.Vec2
	Facing    geom.Angle
	FOV       geom.Angle // only the magnitude is used, see Span
	ViewWidth int        // rays per frame, one per screen column
}

// NewCamera builds a camera from a facing and field of view in radians.
func NewCamera(pos geom.Vec2, facing, fov float64, viewWidth int) Camera {
	return Camera{
		Position:  pos,
		Facing:    geom.FromRadians(facing),
		FOV:       geom.FromRadians(fov),
		ViewWidth: viewWidth,
	}
}

// Span returns the horizontal field of view in radians.
func (c Camera) Span() float64 {
	return c.FOV.Span()
}

// Validate checks the camera invariants.
func (c Camera) Validate() error {
	if c.ViewWidth < MinViewWidth {
		return fmt.Errorf("view width %d < %d: %w", c.ViewWidth, MinViewWidth, ErrInvalidCamera)
	}
	span := c.Span()
	if !(span > 0 && span < math.Pi) {
		return fmt.Errorf("field of view %.6f rad outside (0, π): %w", span, ErrInvalidCamera)
	}
	if !c.Position.IsFinite() {
		return fmt.Errorf("position %v is not finite: %w", c.Position, ErrInvalidCamera)
	}
	if c.Facing.IsZero() || !c.Facing.Vec().IsFinite() {
		return fmt.Errorf("facing is unset: %w", ErrInvalidCamera)
	}
	return nil
}

// Offset returns the angle of column i relative to Facing. Column 0 is the
// left edge of the screen at -Span/2, the last column is at +Span/2, and
// mirrored columns get exactly negated offsets.
func (c Camera) Offset(i int) float64 {
	last := c.ViewWidth - 1
	return c.Span() / 2 * (float64(2*i-last) / float64(last))
}

// Rays returns the ViewWidth ray directions, left to right.
func (c Camera) Rays() ([]geom.Angle, error) {
	return c.AppendRays(nil)
}

// AppendRays appends the ray directions to dst.
func (c Camera) AppendRays(dst []geom.Angle) ([]geom.Angle, error) {
	if err := c.Validate(); err != nil {
		return dst, err
	}
	facing := c.Facing.Radians()
	for i := 0; i < c.ViewWidth; i++ {
		dst = append(dst, geom.FromRadians(facing+c.Offset(i)))
	}
	return dst, nil
}
