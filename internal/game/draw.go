package game

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"chosenoffset.com/tilecaster/internal/core/geom"
	"chosenoffset.com/tilecaster/internal/core/raycast"
	"chosenoffset.com/tilecaster/internal/render"
	"chosenoffset.com/tilecaster/internal/world/tilemap"
)

// ColumnSpan returns the rows [top, bottom) of a wall strip at perpendicular
// distance perp, centred on the horizon and clamped to the screen. Distances
// below minDist are treated as minDist.
func ColumnSpan(perp float64, screenH int, wallScale, minDist float64) (top, bottom int) {
	if !(perp >= minDist) {
		perp = minDist
	}
	half := wallScale / perp / 2
	mid := float64(screenH) / 2
	top = int(math.Round(mid - half))
	bottom = int(math.Round(mid + half))
	if top < 0 {
		top = 0
	}
	if bottom > screenH {
		bottom = screenH
	}
	return top, bottom
}

// Draw renders the game to the screen.
func (g *Game) Draw(screen render.Surface) {
	g.FrameCount++
	g.tickFPS()

	w, h := screen.Size()
	if w < raycast.MinViewWidth || h <= 0 {
		return
	}
	g.Camera.ViewWidth = w

	hits, err := raycast.CastInto(g.hits, g.Camera, g.World.Grid)
	if err != nil {
		log.Printf("Failed to cast frame: %v", err)
		return
	}
	g.hits = hits
	if g.Recorder != nil {
		if err := g.Recorder.WriteFrame(hits); err != nil {
			log.Printf("Failed to record frame, recording stopped: %v", err)
			g.Recorder = nil
		}
	}

	g.drawView(screen, w, h)
	if g.ShowRadar {
		g.drawRadar(screen)
	}
	g.drawUI(screen)
}

// drawView paints ceiling, floor and one shaded wall strip per column.
func (g *Game) drawView(screen render.Surface, w, h int) {
	r := g.opts.Render
	screen.Fill(r.Ceiling)
	screen.Rect(0, float32(h)/2, float32(w), float32(h)-float32(h)/2, r.Floor)

	scale := r.WallScale * float64(h) / float64(g.opts.RefHeight)
	uncertain := 0
	for _, hit := range g.hits {
		if hit.Status == raycast.StatusUncertain {
			uncertain++
		}
		perp := hit.Perpendicular()
		top, bottom := ColumnSpan(perp, h, scale, r.ClampMinDistance)
		screen.VLine(hit.Column, top, bottom, g.Shading.Wall(r.Wall, perp, hit.Side))
	}
	g.noteUncertain(uncertain)
}

// toRadar converts a world position to radar coordinates.
func (g *Game) toRadar(p geom.Vec2) (float32, float32) {
	rc := g.opts.Radar
	return float32(rc.OffsetX + p.X*rc.Scale), float32(rc.OffsetY + p.Y*rc.Scale)
}

// drawRadar draws the top-down map with the camera and a sample of rays.
func (g *Game) drawRadar(screen render.Surface) {
	rc := g.opts.Radar
	grid := g.World.Grid
	sc := float32(rc.Scale)

	for row := 0; row < grid.Height(); row++ {
		for col := 0; col < grid.Width(); col++ {
			x, y := g.toRadar(geom.V(float64(col), float64(row)))
			var clr color.Color
			switch grid.At(col, row) {
			case tilemap.Wall:
				clr = radarWall
			case tilemap.Enemy:
				clr = g.opts.Render.Enemy
			default:
				if !rc.ShowGrid {
					continue
				}
				clr = radarFloor
			}
			screen.Rect(x, y, sc, sc, clr)
		}
	}

	cx, cy := g.toRadar(g.Camera.Position)
	every := rc.Every
	if every < 1 {
		every = 1
	}
	for i := 0; i < len(g.hits); i += every {
		hit := g.hits[i]
		hx, hy := g.toRadar(hit.Point)
		screen.Line(cx, cy, hx, hy, 1, rayPalette[(i/every)%len(rayPalette)])
		if rc.ShowCrossings {
			pts, _ := raycast.Trace(g.Camera.Position, hit.Angle, grid)
			for _, p := range pts {
				px, py := g.toRadar(p)
				screen.Circle(px, py, 1.5, radarCrossing)
			}
		}
	}

	fx, fy := g.toRadar(g.Camera.Position.Add(g.Camera.Facing.Vec().Scale(0.75)))
	screen.Line(cx, cy, fx, fy, 2, radarPlayer)
	screen.Circle(cx, cy, sc/4, radarPlayer)
}

// drawUI prints messages and, when enabled, the debug overlay.
func (g *Game) drawUI(screen render.Surface) {
	w, h := screen.Size()
	cw, lh := g.opts.CharW, g.opts.LineH
	y := h - lh*len(g.Messages)
	for _, msg := range g.Messages {
		screen.Text(msg.Text, cw, y)
		y += lh
	}

	if !g.ShowDebug {
		return
	}
	lines := []string{
		fmt.Sprintf("FPS %.1f", g.fps),
		fmt.Sprintf("pos %.2f, %.2f", g.Camera.Position.X, g.Camera.Position.Y),
		fmt.Sprintf("facing %.1f deg", g.Camera.Facing.Degrees()),
		fmt.Sprintf("rays %d uncertain %d", len(g.hits), g.uncertain),
	}
	for i, line := range lines {
		screen.Text(line, w-cw*(len(line)+1), lh/2+lh*i)
	}
}
