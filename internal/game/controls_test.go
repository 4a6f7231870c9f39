package game

import (
	"math"
	"testing"

	"chosenoffset.com/tilecaster/internal/core/geom"
	"chosenoffset.com/tilecaster/internal/core/raycast"
	"chosenoffset.com/tilecaster/internal/render"
	"chosenoffset.com/tilecaster/internal/world/tilemap"
)

func eastCamera() raycast.Camera {
	return raycast.NewCamera(geom.V(4.5, 4.5), 0, 1, 64)
}

func TestReadCommand(t *testing.T) {
	in := newFakeInput()
	in.tap(render.KeyW, render.KeyLeft)
	in.pressed[render.KeyD] = true

	cmd := ReadCommand(in, false)
	if !cmd.Has(CmdForward) || !cmd.Has(CmdTurnLeft) {
		t.Errorf("Expected forward and turn left, got %08b", cmd)
	}
	if cmd.Has(CmdStrafeRight) {
		t.Errorf("Expected held keys to be ignored in press mode")
	}

	cmd = ReadCommand(in, true)
	if cmd != CmdStrafeRight {
		t.Errorf("Expected only strafe right in hold mode, got %08b", cmd)
	}
}

func TestSteerForwardAndBack(t *testing.T) {
	cam := Steer(eastCamera(), CmdForward, 0.5, 2, 0)
	if math.Abs(cam.Position.X-5.5) > 1e-9 || math.Abs(cam.Position.Y-4.5) > 1e-9 {
		t.Errorf("Expected (5.5, 4.5), got %v", cam.Position)
	}
	cam = Steer(cam, CmdBack, 0.5, 2, 0)
	if math.Abs(cam.Position.X-4.5) > 1e-9 {
		t.Errorf("Expected to return to x=4.5, got %v", cam.Position)
	}
}

func TestSteerStrafe(t *testing.T) {
	// Facing east on a y-down map, the right hand points to +y.
	cam := Steer(eastCamera(), CmdStrafeRight, 1, 1, 0)
	if math.Abs(cam.Position.Y-5.5) > 1e-9 || math.Abs(cam.Position.X-4.5) > 1e-9 {
		t.Errorf("Expected strafe right to reach (4.5, 5.5), got %v", cam.Position)
	}
	cam = Steer(eastCamera(), CmdStrafeLeft, 1, 1, 0)
	if math.Abs(cam.Position.Y-3.5) > 1e-9 {
		t.Errorf("Expected strafe left to reach y=3.5, got %v", cam.Position)
	}
	cam = Steer(eastCamera(), CmdStrafeLeft|CmdStrafeRight, 1, 1, 0)
	if cam.Position != eastCamera().Position {
		t.Errorf("Expected opposite strafes to cancel, got %v", cam.Position)
	}
}

func TestSteerTurn(t *testing.T) {
	start := raycast.NewCamera(geom.V(4.5, 4.5), 1, 1, 64)
	left := Steer(start, CmdTurnLeft, 0.1, 0, 2)
	if got := start.Facing.To(left.Facing); math.Abs(got+0.2) > 1e-9 {
		t.Errorf("Expected left to turn by -0.2 rad, got %v", got)
	}
	right := Steer(start, CmdTurnRight, 0.1, 0, 2)
	if got := start.Facing.To(right.Facing); math.Abs(got-0.2) > 1e-9 {
		t.Errorf("Expected right to turn by +0.2 rad, got %v", got)
	}
	if left.Position != start.Position {
		t.Errorf("Expected turning not to move, got %v", left.Position)
	}
}

func TestSlideStopsAtWall(t *testing.T) {
	grid := tilemap.Bounded(9, 8)
	got := Slide(grid, geom.V(6.5, 4.5), geom.V(9.5, 4.5), 0.2)
	if got.X > 7.8+1e-9 {
		t.Errorf("Expected to stop before the east wall, got %v", got)
	}
	if grid.BlocksPoint(got) {
		t.Errorf("Expected to stay in an open cell, got %v", got)
	}
}

func TestSlideAlongWall(t *testing.T) {
	grid := tilemap.Bounded(9, 8)
	// Pushing diagonally into the north wall keeps the x motion.
	got := Slide(grid, geom.V(3.5, 1.5), geom.V(4.5, 0.5), 0.2)
	if math.Abs(got.X-4.5) > 1e-9 {
		t.Errorf("Expected to slide to x=4.5, got %v", got)
	}
	if got.Y < 1.2-1e-9 {
		t.Errorf("Expected to stay clear of the north wall, got %v", got)
	}
}

func TestSlideCannotTunnel(t *testing.T) {
	grid := tilemap.Bounded(9, 8)
	grid.Set(4, 4, tilemap.Wall)
	got := Slide(grid, geom.V(3.5, 4.5), geom.V(5.5, 4.5), 0.1)
	if got.X >= 4 {
		t.Errorf("Expected the pillar to stop the move, got %v", got)
	}
}
