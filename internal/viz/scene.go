package viz

import (
	"fmt"
	"math"

	"github.com/mkarev/trajlab/internal/physics"
)

const (
	// Dash pattern for the flown path, in sub-pixels.
	dashOn  = 3
	dashOff = 3

	// Actor footprint in sub-pixels.
	actorSize   = 11
	actorRadius = 4

	// Margin reserved for axes and labels, in sub-pixels.
	scenePadding = 12

	gridDotSpacing = 4
)

// Scene paints one frame of a flight onto a braille canvas: grid, axes,
// the dashed path flown so far, the actor at the current sample, and an
// info overlay. The masked flag is fixed for the scene's lifetime.
type Scene struct {
	Canvas *Canvas
	Mapper Mapper

	sol    *physics.Solution
	sprite *Sprite
	masked bool
}

// NewScene sizes a scene for a canvas of w x h cells. sprite may be nil.
func NewScene(sol *physics.Solution, sprite *Sprite, w, h int, masked bool) *Scene {
	s := &Scene{
		Canvas: NewCanvas(w, h),
		sol:    sol,
		sprite: sprite,
		masked: masked,
	}
	s.fit()
	return s
}

// Resize rebuilds the canvas and mapping for new cell dimensions.
// Non-positive dimensions are ignored.
func (s *Scene) Resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	s.Canvas = NewCanvas(w, h)
	s.fit()
}

func (s *Scene) fit() {
	maxX, maxY := 0.0, 0.0
	if s.sol != nil {
		maxX, maxY = s.sol.Bounds()
	}
	s.Mapper = NewMapper(maxX, maxY,
		float64(s.Canvas.Width*2), float64(s.Canvas.Height*4), scenePadding)
}

// Masked reports whether numeric results are being suppressed.
func (s *Scene) Masked() bool {
	return s.masked
}

// Render paints the frame for the given sample index. An empty
// trajectory leaves the canvas at background only.
func (s *Scene) Render(idx int) {
	s.Canvas.Clear()
	if s.sol == nil || len(s.sol.Trajectory) == 0 {
		return
	}
	if idx < 0 {
		idx = 0
	}
	if idx > len(s.sol.Trajectory)-1 {
		idx = len(s.sol.Trajectory) - 1
	}

	s.drawGrid()
	s.drawAxes()
	s.drawPath(idx)
	s.drawActor(idx)
	s.drawOverlay(idx)
}

// drawGrid dots vertical and horizontal lines at decade spacing, each
// labeled with its physical value. A zero step means the extent was
// degenerate; the grid is skipped entirely rather than looped on.
func (s *Scene) drawGrid() {
	m := s.Mapper

	if stepX := GridStep(m.MaxX); stepX > 0 {
		for gx := stepX; gx <= m.MaxX; gx += stepX {
			x0, y0 := m.MapInt(gx, 0)
			_, y1 := m.MapInt(gx, m.MaxY)
			for y := y1; y <= y0; y += gridDotSpacing {
				s.Canvas.Set(x0, y)
			}
			s.Canvas.Label(x0/2-1, y0/4+1, fmt.Sprintf("%g", gx))
		}
	}

	if stepY := GridStep(m.MaxY); stepY > 0 {
		for gy := stepY; gy <= m.MaxY; gy += stepY {
			x0, y0 := m.MapInt(0, gy)
			x1, _ := m.MapInt(m.MaxX, gy)
			for x := x0; x <= x1; x += gridDotSpacing {
				s.Canvas.Set(x, y0)
			}
			s.Canvas.Label(0, y0/4, fmt.Sprintf("%g", gy))
		}
	}
}

func (s *Scene) drawAxes() {
	m := s.Mapper
	ox, oy := m.MapInt(0, 0)
	xEnd, _ := m.MapInt(m.MaxX, 0)
	_, yEnd := m.MapInt(0, m.MaxY)

	s.Canvas.DrawLine(ox, oy, xEnd, oy)
	s.Canvas.DrawLine(ox, oy, ox, yEnd)

	s.Canvas.Label(ox/2, oy/4+1, "0")
	s.Canvas.Label(xEnd/2-4, oy/4+1, "x (m)")
	s.Canvas.Label(ox/2+1, yEnd/4, "y (m)")
}

// drawPath connects samples 0..idx with a dashed stroke. The dash
// counter is local, carried across segments for a continuous pattern
// and discarded afterwards, so later drawing is unaffected.
func (s *Scene) drawPath(idx int) {
	traj := s.sol.Trajectory
	phase := 0
	px, py := s.Mapper.MapInt(traj[0].X, traj[0].Y)
	for i := 1; i <= idx; i++ {
		nx, ny := s.Mapper.MapInt(traj[i].X, traj[i].Y)
		phase = s.Canvas.DashedLine(px, py, nx, ny, dashOn, dashOff, phase)
		px, py = nx, ny
	}
}

// drawActor places the projectile at the current sample, oriented along
// the instantaneous velocity. The angle negates the vertical delta
// because surface y grows downward. At the final sample the lookahead
// clamps to the sample itself.
func (s *Scene) drawActor(idx int) {
	traj := s.sol.Trajectory
	cur := traj[idx]
	next := cur
	if idx+1 < len(traj) {
		next = traj[idx+1]
	}
	angle := math.Atan2(-(next.Y - cur.Y), next.X-cur.X)

	px, py := s.Mapper.MapInt(cur.X, cur.Y)
	if s.sprite != nil && s.sprite.Stamp(s.Canvas, px, py, angle, actorSize) {
		return
	}

	s.Canvas.FillCircle(px, py, actorRadius)
	s.Canvas.Glyph(px, py, headingGlyph(angle))
}

// headingGlyph picks the arrow closest to a screen-space angle.
var headingArrows = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

func headingGlyph(angle float64) rune {
	oct := int(math.Round(angle/(math.Pi/4))) % 8
	if oct < 0 {
		oct += 8
	}
	return headingArrows[oct]
}

func (s *Scene) drawOverlay(idx int) {
	lines := OverlayLines(s.sol, idx, s.masked)

	width := 0
	for _, l := range lines {
		if len([]rune(l)) > width {
			width = len([]rune(l))
		}
	}
	col := s.Canvas.Width - width - 2
	if col < 0 {
		col = 0
	}
	for i, l := range lines {
		s.Canvas.Label(col, 1+i, l)
	}
}

// OverlayLines builds the info panel text for one frame. In masked mode
// every value is a fixed placeholder; nothing derived from the payload
// appears. In full mode the panel shows the live sample followed by the
// flight summary, at the precision each field is displayed with.
func OverlayLines(sol *physics.Solution, idx int, masked bool) []string {
	if masked {
		return []string{
			"Practice Mode",
			"Time: --.-- s",
			"Position: (--.-, --.-) m",
			"Velocity: --.-- m/s",
		}
	}

	p := sol.Trajectory[idx]
	return []string{
		fmt.Sprintf("Time: %.2f s", p.Time),
		fmt.Sprintf("Position: (%.1f, %.1f) m", p.X, p.Y),
		fmt.Sprintf("Velocity: %.2f m/s", p.V),
		fmt.Sprintf("Energy: %.0f J/kg", p.TotalEnergy),
		fmt.Sprintf("Max H: %.2f m", sol.MaxHeight),
		fmt.Sprintf("Range: %.2f m", sol.Range),
		fmt.Sprintf("Total T: %.2f s", sol.TotalTime),
		fmt.Sprintf("Impact V: %.2f m/s", sol.ImpactVelocity),
	}
}
