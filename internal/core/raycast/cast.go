package raycast

import (
	"math"

	"chosenoffset.com/tilecaster/internal/core/geom"
)

// NudgeEpsilon is how far a ray is pushed along its direction when it
// starts exactly on a tile boundary.
const NudgeEpsilon = 1e-5

// Map is the read-only view of the world the caster needs. Out of range
// cells must report as blocking.
type Map interface {
	Width() int
	Height() int
	Blocks(col, row int) bool
}

// MaxSteps is the step cap for a ray through m. A ray from inside a closed
// ring needs at most Width+Height crossings, the rest is headroom.
func MaxSteps(m Map) int {
	return 2*(m.Width()+m.Height()) + 4
}

// StepFunc observes a walk. from is where the boundary search started
// (after any nudge) and to is the boundary it found.
type StepFunc func(from, to geom.Vec2)

// Cast casts one ray per camera column and returns the hits left to right.
func Cast(cam Camera, m Map) ([]Hit, error) {
	return CastInto(nil, cam, m)
}

// CastInto is Cast reusing dst's storage. The returned slice has exactly
// cam.ViewWidth entries on success.
func CastInto(dst []Hit, cam Camera, m Map) ([]Hit, error) {
	if err := cam.Validate(); err != nil {
		return dst[:0], err
	}
	n := cam.ViewWidth
	if cap(dst) < n {
		dst = make([]Hit, n)
	} else {
		dst = dst[:n]
	}

	facing := cam.Facing.Radians()
	for i := 0; i < n; i++ {
		off := cam.Offset(i)
		h := CastRay(cam.Position, geom.FromRadians(facing+off), m, nil)
		h.Column = i
		h.Offset = off
		dst[i] = h
	}
	return dst, nil
}

// Trace casts a single ray and also returns the boundary crossings it
// stepped through, one per step.
func Trace(origin geom.Vec2, dir geom.Angle, m Map) ([]geom.Vec2, Hit) {
	var pts []geom.Vec2
	h := CastRay(origin, dir, m, func(_, to geom.Vec2) {
		pts = append(pts, to)
	})
	return pts, h
}

// CastRay walks a single ray from origin until it enters a blocking cell.
// onStep may be nil.
func CastRay(origin geom.Vec2, dir geom.Angle, m Map, onStep StepFunc) Hit {
	h := Hit{
		Angle:  dir,
		Point:  origin,
		Status: StatusDegenerate,
	}
	d, ok := rayDirection(dir)
	if !ok || !origin.IsFinite() {
		return h
	}
	h.Cell = Coord{Col: floorIndex(origin.X), Row: floorIndex(origin.Y)}

	pos := origin
	limit := MaxSteps(m)
	for h.Steps < limit {
		start := pos
		nudged := false
		if geom.NearInteger(pos.X) || geom.NearInteger(pos.Y) {
			pos = pos.Add(d.Scale(NudgeEpsilon))
			nudged = true
		}

		// A nudge can cross a second boundary lying within epsilon, so the
		// cell it lands in is checked before searching further.
		here := Coord{Col: cellIndex(pos.X, d.X), Row: cellIndex(pos.Y, d.Y)}
		if m.Blocks(here.Col, here.Row) {
			switch {
			case !nudged:
				// Only the origin can start strictly inside a wall.
				h.Point = origin
				h.Cell = here
				h.Length = 0
				return h
			case h.Steps == 0:
				h.Point = origin
				h.Cell = here
				h.Length = 0
				h.Status = StatusOK
				return h
			}
			next, side, ok := nextBoundary(start, d)
			if !ok || enteredCell(start, d) == here {
				next, side = start, h.Side
			}
			h.Point = next
			h.Side = side
			h.Cell = here
			h.Length = rayLength(origin, next, d)
			h.Status = StatusOK
			return h
		}

		next, side, ok := nextBoundary(pos, d)
		if !ok {
			h.Point = origin
			h.Length = 0
			return h
		}
		h.Steps++
		if onStep != nil {
			onStep(pos, next)
		}

		h.Point = next
		h.Side = side
		h.Length = rayLength(origin, next, d)
		h.Cell = enteredCell(next, d)
		if m.Blocks(h.Cell.Col, h.Cell.Row) {
			h.Status = StatusOK
			return h
		}
		pos = next
	}
	h.Status = StatusUncertain
	return h
}

// rayDirection returns the unit direction used for stepping. Components
// smaller than geom.ZeroGuard run along a grid line and are stepped as if
// exactly zero, whatever their sign, so FromDegrees(270) and FromDegrees(-90)
// cast the same ray and every nudge leaves the line it started on.
func rayDirection(dir geom.Angle) (geom.Vec2, bool) {
	v := dir.Vec()
	if !v.IsFinite() || (v.X == 0 && v.Y == 0) {
		return v, false
	}
	if math.Abs(v.X) >= geom.ZeroGuard && math.Abs(v.Y) >= geom.ZeroGuard {
		return v, true
	}
	if math.Abs(v.X) < geom.ZeroGuard {
		v.X = 0
	}
	if math.Abs(v.Y) < geom.ZeroGuard {
		v.Y = 0
	}
	u, err := v.GuardZero().Normalize()
	if err != nil {
		return v, false
	}
	return u, true
}

// rayLength measures origin→p as the ray parameter along the dominant axis
// of d. Mirrored rays measure identically this way.
func rayLength(origin, p, d geom.Vec2) float64 {
	if math.Abs(d.X) >= math.Abs(d.Y) {
		return (p.X - origin.X) / d.X
	}
	return (p.Y - origin.Y) / d.Y
}

func floorIndex(v float64) int {
	return int(math.Floor(v))
}
