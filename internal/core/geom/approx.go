package geom

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// BoundaryULPs is the tolerance used to decide that a coordinate sits on a
// tile boundary.
const BoundaryULPs = 3

// NearInteger reports whether x lies within BoundaryULPs of an integer.
func NearInteger(x float64) bool {
	return scalar.EqualWithinULP(x, math.Round(x), BoundaryULPs)
}

// SnapFloor returns the index of the tile containing x. A value on (or within
// ULPs of) a boundary is attributed to the tile on the negative side when
// negative is set, otherwise to the tile on the positive side.
func SnapFloor(x float64, negative bool) int {
	if NearInteger(x) {
		n := int(math.Round(x))
		if negative {
			n--
		}
		return n
	}
	return int(math.Floor(x))
}
