package raycast

import (
	"math"

	"chosenoffset.com/tilecaster/internal/core/geom"
)

// Offset returns the signed angle of ray relative to facing, in (-π, π].
func Offset(facing, ray geom.Angle) float64 {
	return facing.To(ray)
}

// PerpDistance projects a ray length onto the camera forward axis. Using it
// for wall heights keeps straight walls straight.
func PerpDistance(length, offset float64) float64 {
	return length * math.Cos(offset)
}
