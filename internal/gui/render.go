package gui

import (
	"fmt"
	"math"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mkarev/trajlab/internal/viz"
)

const pathWidth = 2.0

func vec2(x, y float64) rl.Vector2 {
	return rl.NewVector2(float32(x), float32(y))
}

// drawFlight paints one frame: grid, axes, the dashed path flown so
// far, the actor, then the fixed overlay. An empty trajectory leaves
// the surface blank.
func (a *App) drawFlight() {
	if a.Sol == nil || len(a.Sol.Trajectory) == 0 {
		return
	}
	idx := a.Timeline.Index(time.Now())

	maxX, maxY := a.Sol.Bounds()
	m := viz.NewMapper(maxX, maxY, winW, winH, scenePad)

	rl.BeginMode2D(a.camera())
	a.drawGrid(m)
	a.drawAxes(m)
	a.drawPath(m, idx)
	a.drawActor(m, idx)
	rl.EndMode2D()

	a.drawOverlay(idx)
}

// drawGrid rules decade-spaced lines labeled with physical values. A
// zero step means the extent was degenerate; that axis is skipped
// rather than looped on.
func (a *App) drawGrid(m viz.Mapper) {
	if stepX := viz.GridStep(m.MaxX); stepX > 0 {
		for gx := stepX; gx <= m.MaxX; gx += stepX {
			px, py := m.Map(gx, 0)
			_, top := m.Map(gx, m.MaxY)
			rl.DrawLineV(vec2(px, top), vec2(px, py), ColGrid)
			a.drawText(fmt.Sprintf("%g", gx), int(px)-8, int(py)+10, 13, ColTextDim)
		}
	}

	if stepY := viz.GridStep(m.MaxY); stepY > 0 {
		for gy := stepY; gy <= m.MaxY; gy += stepY {
			px, py := m.Map(0, gy)
			right, _ := m.Map(m.MaxX, gy)
			rl.DrawLineV(vec2(px, py), vec2(right, py), ColGrid)
			a.drawText(fmt.Sprintf("%g", gy), int(px)-40, int(py)-7, 13, ColTextDim)
		}
	}
}

func (a *App) drawAxes(m viz.Mapper) {
	ox, oy := m.Map(0, 0)
	xEnd, _ := m.Map(m.MaxX, 0)
	_, yEnd := m.Map(0, m.MaxY)

	rl.DrawLineEx(vec2(ox, oy), vec2(xEnd, oy), 2, ColAccent)
	rl.DrawLineEx(vec2(ox, oy), vec2(ox, yEnd), 2, ColAccent)

	a.drawText("x (m)", int(xEnd)-40, int(oy)+26, 14, ColText)
	a.drawText("y (m)", int(ox)+8, int(yEnd)-6, 14, ColText)

	// Landing platform for elevated targets.
	if hf := a.Sol.FinalHeight; hf > 0 {
		x0, py := m.Map(0, hf)
		x1, _ := m.Map(m.MaxX, hf)
		rl.DrawLineV(vec2(x0, py), vec2(x1, py), ColVector)
	}
}

// drawPath connects samples 0..idx with a dashed stroke. The dash
// phase carries across segments so the pattern runs continuously along
// the curve instead of restarting at every sample.
func (a *App) drawPath(m viz.Mapper, idx int) {
	traj := a.Sol.Trajectory
	phase := float32(0)
	px, py := m.Map(traj[0].X, traj[0].Y)
	from := vec2(px, py)
	for i := 1; i <= idx; i++ {
		nx, ny := m.Map(traj[i].X, traj[i].Y)
		to := vec2(nx, ny)
		phase = dashedLine(from, to, dashOn, dashOff, phase, ColPath)
		from = to
	}
}

// dashedLine strokes from..to with an on/off pixel pattern starting at
// phase and returns the phase after to, for the next segment. A
// non-positive on length falls back to a solid stroke.
func dashedLine(from, to rl.Vector2, on, off, phase float32, col rl.Color) float32 {
	if on <= 0 {
		rl.DrawLineEx(from, to, pathWidth, col)
		return phase
	}

	period := on + off
	length := rl.Vector2Distance(from, to)
	if length == 0 {
		return phase
	}
	dir := rl.Vector2Scale(rl.Vector2Subtract(to, from), 1/length)

	for d := float32(0); d < length; {
		pos := float32(math.Mod(float64(phase), float64(period)))
		run := length - d
		if pos < on {
			if r := on - pos; r < run {
				run = r
			}
			p0 := rl.Vector2Add(from, rl.Vector2Scale(dir, d))
			p1 := rl.Vector2Add(from, rl.Vector2Scale(dir, d+run))
			rl.DrawLineEx(p0, p1, pathWidth, col)
		} else if r := period - pos; r < run {
			run = r
		}
		d += run
		phase += run
	}
	return phase
}

// drawActor places the projectile at the current sample, rotated along
// the instantaneous velocity. Screen y grows downward, so the vertical
// delta is negated. At the final sample the lookahead clamps to the
// sample itself.
func (a *App) drawActor(m viz.Mapper, idx int) {
	traj := a.Sol.Trajectory
	cur := traj[idx]
	next := cur
	if idx+1 < len(traj) {
		next = traj[idx+1]
	}
	angle := math.Atan2(-(next.Y - cur.Y), next.X-cur.X)

	px, py := m.Map(cur.X, cur.Y)
	pos := vec2(px, py)

	if a.ShowVectors {
		tip := rl.Vector2Add(pos, vec2(cur.VX*vecScale, -cur.VY*vecScale))
		rl.DrawLineEx(pos, tip, 1.5, ColVector)
		rl.DrawCircleV(tip, 2, ColVector)
	}

	if a.texReady && a.Tex.ID != 0 {
		src := rl.NewRectangle(0, 0, float32(a.Tex.Width), float32(a.Tex.Height))
		dst := rl.NewRectangle(float32(px), float32(py), actorSize, actorSize)
		origin := rl.NewVector2(actorSize/2, actorSize/2)
		rl.DrawTexturePro(a.Tex, src, dst, origin, float32(angle*180/math.Pi), rl.White)
		return
	}

	rl.DrawCircleV(pos, 7, ColSelect)
	nose := rl.Vector2Add(pos, vec2(12*math.Cos(angle), 12*math.Sin(angle)))
	rl.DrawLineEx(pos, nose, 2, ColSelect)
}

// drawOverlay renders the info panel top right, outside the camera so
// it stays fixed while panning. Masked mode shows placeholders only.
func (a *App) drawOverlay(idx int) {
	lines := viz.OverlayLines(a.Sol, idx, a.Masked)
	for i, ln := range lines {
		col := ColText
		if i == 0 && a.Masked {
			col = ColAccent
		}
		a.drawText(ln, winW-310, 70+i*24, 16, col)
	}
}

// drawSpeedStrip plots the speed profile up to the current frame,
// bottom left. The dip marks the apex. The readout is withheld in
// practice mode; the shape alone gives nothing away.
func (a *App) drawSpeedStrip() {
	if a.Sol == nil || len(a.Sol.Trajectory) < 2 {
		return
	}
	idx := a.Timeline.Index(time.Now())
	if idx < 1 {
		return
	}
	traj := a.Sol.Trajectory[:idx+1]

	rectX, rectY := 30, 600
	width, height := 400, 60

	// Normalize Data
	minV, maxV := traj[0].V, traj[0].V
	for _, p := range traj {
		if p.V < minV {
			minV = p.V
		}
		if p.V > maxV {
			maxV = p.V
		}
	}
	if maxV == minV {
		maxV = minV + 1
	}

	// Draw Line Strip
	points := make([]rl.Vector2, len(traj))
	for i, p := range traj {
		px := float32(rectX) + (float32(i)/float32(len(traj)-1))*float32(width)
		norm := (p.V - minV) / (maxV - minV)
		py := float32(rectY+height) - float32(norm)*float32(height)
		points[i] = rl.NewVector2(px, py)
	}
	rl.DrawLineStrip(points, ColAccent)

	if a.Masked {
		a.drawText("v: --.-- m/s", rectX+width+10, rectY+height-10, 14, ColText)
		return
	}
	a.drawText(fmt.Sprintf("v: %.2f m/s", traj[len(traj)-1].V), rectX+width+10, rectY+height-10, 14, ColText)
}
