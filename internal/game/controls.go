package game

import (
	"math"

	"chosenoffset.com/tilecaster/internal/core/geom"
	"chosenoffset.com/tilecaster/internal/core/raycast"
	"chosenoffset.com/tilecaster/internal/render"
)

// Command is the set of movement intents read in one tick.
type Command uint8

const (
	CmdForward Command = 1 << iota
	CmdBack
	CmdStrafeLeft
	CmdStrafeRight
	CmdTurnLeft
	CmdTurnRight
)

// Has reports whether every bit of f is set.
func (c Command) Has(f Command) bool {
	return c&f == f
}

var bindings = []struct {
	key render.Key
	cmd Command
}{
	{render.KeyW, CmdForward},
	{render.KeyS, CmdBack},
	{render.KeyA, CmdStrafeLeft},
	{render.KeyD, CmdStrafeRight},
	{render.KeyUp, CmdForward},
	{render.KeyDown, CmdBack},
	{render.KeyLeft, CmdTurnLeft},
	{render.KeyRight, CmdTurnRight},
}

// ReadCommand collects the movement keys. With hold set a key counts while it
// is down, otherwise only on the tick it goes down.
func ReadCommand(in render.InputManager, hold bool) Command {
	var cmd Command
	for _, b := range bindings {
		if hold && in.IsKeyPressed(b.key) || !hold && in.IsKeyJustPressed(b.key) {
			cmd |= b.cmd
		}
	}
	return cmd
}

// Steer applies cmd to cam for a tick of dt seconds. Turning happens first
// so a combined turn and move goes along the new facing. Left turns are
// counter-clockwise on screen. Steer does not look at the map.
func Steer(cam raycast.Camera, cmd Command, dt, speed, turnRate float64) raycast.Camera {
	turn := 0.0
	if cmd.Has(CmdTurnLeft) {
		turn -= turnRate * dt
	}
	if cmd.Has(CmdTurnRight) {
		turn += turnRate * dt
	}
	if turn != 0 {
		cam.Facing = cam.Facing.Rotate(turn)
	}

	forward := cam.Facing.Forward()
	right := geom.V(-forward.Y, forward.X)
	var move geom.Vec2
	if cmd.Has(CmdForward) {
		move = move.Add(forward)
	}
	if cmd.Has(CmdBack) {
		move = move.Sub(forward)
	}
	if cmd.Has(CmdStrafeRight) {
		move = move.Add(right)
	}
	if cmd.Has(CmdStrafeLeft) {
		move = move.Sub(right)
	}
	cam.Position = cam.Position.Add(move.Scale(speed * dt))
	return cam
}

// maxSubstep bounds how far Slide moves per collision check.
const maxSubstep = 0.25

// Slide moves a body of the given radius from `from` towards `to`, one axis
// at a time, so it stops at walls and slides along them.
func Slide(m raycast.Map, from, to geom.Vec2, radius float64) geom.Vec2 {
	delta := to.Sub(from)
	n := int(math.Ceil(math.Max(math.Abs(delta.X), math.Abs(delta.Y)) / maxSubstep))
	if n < 1 {
		n = 1
	}
	step := delta.Scale(1 / float64(n))

	pos := from
	for i := 0; i < n; i++ {
		if x := pos.X + step.X; !bodyBlocked(m, geom.V(x, pos.Y), radius) {
			pos.X = x
		}
		if y := pos.Y + step.Y; !bodyBlocked(m, geom.V(pos.X, y), radius) {
			pos.Y = y
		}
	}
	return pos
}

// bodyBlocked reports whether a square of half-size radius around p
// overlaps a blocking cell.
func bodyBlocked(m raycast.Map, p geom.Vec2, radius float64) bool {
	c0 := int(math.Floor(p.X - radius))
	c1 := int(math.Floor(p.X + radius))
	r0 := int(math.Floor(p.Y - radius))
	r1 := int(math.Floor(p.Y + radius))
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if m.Blocks(col, row) {
				return true
			}
		}
	}
	return false
}
