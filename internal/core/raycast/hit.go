package raycast

import "chosenoffset.com/tilecaster/internal/core/geom"

// Side is the orientation of the grid line a ray crossed into its wall.
type Side uint8

const (
	// SideVertical is a crossing of a line x = const (an east or west face).
	SideVertical Side = iota
	// SideHorizontal is a crossing of a line y = const.
	SideHorizontal
)

// String implements fmt.Stringer.
func (s Side) String() string {
	if s == SideHorizontal {
		return "horizontal"
	}
	return "vertical"
}

// Status says how far a hit can be trusted.
type Status uint8

const (
	// StatusOK is a normal wall hit.
	StatusOK Status = iota
	// StatusDegenerate is a zero-length hit: the camera is inside a wall or
	// the geometry was not finite.
	StatusDegenerate
	// StatusUncertain means the step cap was reached; Length is the last
	// crossing found.
	StatusUncertain
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusDegenerate:
		return "degenerate"
	case StatusUncertain:
		return "uncertain"
	default:
		return "ok"
	}
}

// Coord addresses a grid cell.
type Coord struct {
	Col, Row int
}

// Hit is the result for one column.
type Hit struct {
	Column int
	Angle  geom.Angle
	Offset float64 // radians from the camera facing, negative to the left
	Length float64 // distance from the camera to Point
	Point  geom.Vec2
	Cell   Coord
	Side   Side
	Steps  int
	Status Status
}

// Perpendicular returns the fish-eye corrected distance of the hit.
func (h Hit) Perpendicular() float64 {
	return PerpDistance(h.Length, h.Offset)
}
