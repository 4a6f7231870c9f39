package raycast

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"

	"chosenoffset.com/tilecaster/internal/core/geom"
)

// cellIndex returns the tile index of coordinate x for a ray moving in
// direction d along that axis. On a boundary the tile ahead of the ray wins.
func cellIndex(x, d float64) int {
	return geom.SnapFloor(x, d < 0)
}

// nextBoundary finds the first grid line a ray from p along d reaches.
//
// The candidate lines are the far edges of the tile containing p: its right
// edge for d.X > 0 and its left edge for d.X < 0, and the same along y.
// The parametric distance to each is compared and the crossing coordinate is
// set exactly to the line. A tie within BoundaryULPs is a corner and both
// coordinates are set. Components of d must be non-zero.
func nextBoundary(p, d geom.Vec2) (next geom.Vec2, side Side, ok bool) {
	cx := float64(cellIndex(p.X, d.X))
	if d.X > 0 {
		cx++
	}
	cy := float64(cellIndex(p.Y, d.Y))
	if d.Y > 0 {
		cy++
	}

	tx := (cx - p.X) / d.X
	ty := (cy - p.Y) / d.Y
	if math.IsNaN(tx) || math.IsNaN(ty) || math.IsInf(tx, 0) || math.IsInf(ty, 0) {
		return p, SideVertical, false
	}

	switch {
	case scalar.EqualWithinULP(tx, ty, geom.BoundaryULPs):
		return geom.V(cx, cy), SideVertical, true
	case tx < ty:
		return geom.V(cx, clampToward(p.Y+tx*d.Y, cy, d.Y)), SideVertical, true
	default:
		return geom.V(clampToward(p.X+ty*d.X, cx, d.X), cy), SideHorizontal, true
	}
}

// clampToward keeps a rounded coordinate from passing the line it has not
// crossed yet.
func clampToward(v, limit, d float64) float64 {
	if d > 0 && v > limit {
		return limit
	}
	if d < 0 && v < limit {
		return limit
	}
	return v
}

// enteredCell returns the tile a ray moves into after reaching boundary
// point n. Negative indices are clamped to 0 so the outer ring is found even
// if rounding lands a hair outside the grid.
func enteredCell(n, d geom.Vec2) Coord {
	c := Coord{Col: cellIndex(n.X, d.X), Row: cellIndex(n.Y, d.Y)}
	if c.Col < 0 {
		c.Col = 0
	}
	if c.Row < 0 {
		c.Row = 0
	}
	return c
}
